package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blood-donation-backend/internal/domains/bloodunit"
	"blood-donation-backend/internal/infrastructure/database"
)

// mongoRepository implements bloodunit.Repository
type mongoRepository struct {
	db *database.MongoDB
}

func NewMongoRepository(db *database.MongoDB) bloodunit.Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	return r.db.Collection(ctx, database.CollectionBloodUnits)
}

// lookupStages join appointment được tham chiếu vào field appointmentDoc.
// Unit không có appointment (hoặc appointment đã bị xóa) vẫn được giữ lại.
func lookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionAppointments},
			{Key: "localField", Value: "appointment"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "appointmentDoc"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$appointmentDoc"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func (r *mongoRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*bloodunit.Detail, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate blood units: %w", err)
	}
	defer cursor.Close(ctx)

	details := make([]*bloodunit.Detail, 0)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("failed to decode blood units: %w", err)
	}

	return details, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]*bloodunit.Detail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	return r.aggregate(ctx, append(pipeline, lookupStages()...))
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*bloodunit.Detail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$limit", Value: 1}},
	}

	details, err := r.aggregate(ctx, append(pipeline, lookupStages()...))
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return details[0], nil
}

func (r *mongoRepository) Create(ctx context.Context, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *u
	created.ID = primitive.NewObjectID()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, &created); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, bloodunit.NewBagNumberExists(u.BagNumber)
		}
		return nil, fmt.Errorf("failed to insert blood unit: %w", err)
	}

	return &created, nil
}

// Update thay toàn bộ field mutable trong một lệnh FindOneAndUpdate.
// Appointment nil thì gỡ tham chiếu cũ.
func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"bagNumber":    u.BagNumber,
		"bloodType":    u.BloodType,
		"donationDate": u.DonationDate,
		"expiryDate":   u.ExpiryDate,
		"volume":       u.Volume,
		"status":       u.Status,
		"location":     u.Location,
		"donorName":    u.DonorName,
		"updatedAt":    time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if u.Appointment != nil {
		set["appointment"] = *u.Appointment
	} else {
		update["$unset"] = bson.M{"appointment": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated bloodunit.BloodUnit
	if err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		if database.IsDuplicateKey(err) {
			return nil, bloodunit.NewBagNumberExists(u.BagNumber)
		}
		return nil, fmt.Errorf("failed to update blood unit: %w", err)
	}

	return &updated, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete blood unit: %w", err)
	}

	return res.DeletedCount > 0, nil
}
