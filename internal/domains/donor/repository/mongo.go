package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blood-donation-backend/internal/domains/donor"
	"blood-donation-backend/internal/infrastructure/database"
)

// mongoRepository implements donor.Repository
type mongoRepository struct {
	db *database.MongoDB
}

// NewMongoRepository creates a new donor repository instance
func NewMongoRepository(db *database.MongoDB) donor.Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	return r.db.Collection(ctx, database.CollectionDonors)
}

// List trả về donors theo thứ tự lưu trữ tự nhiên
func (r *mongoRepository) List(ctx context.Context) ([]*donor.Donor, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query donors: %w", err)
	}
	defer cursor.Close(ctx)

	donors := make([]*donor.Donor, 0)
	if err := cursor.All(ctx, &donors); err != nil {
		return nil, fmt.Errorf("failed to decode donors: %w", err)
	}

	return donors, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*donor.Donor, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var d donor.Donor
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get donor by id: %w", err)
	}

	return &d, nil
}

func (r *mongoRepository) Create(ctx context.Context, d *donor.Donor) (*donor.Donor, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *d
	created.ID = primitive.NewObjectID()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("failed to insert donor: %w", err)
	}

	return &created, nil
}

// Update thay toàn bộ field mutable trong một lệnh FindOneAndUpdate
func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, d *donor.Donor) (*donor.Donor, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"name":           d.Name,
		"email":          d.Email,
		"phone":          d.Phone,
		"bloodType":      d.BloodType,
		"address":        d.Address,
		"dateOfBirth":    d.DateOfBirth,
		"medicalNotes":   d.MedicalNotes,
		"totalDonations": d.TotalDonations,
		"status":         d.Status,
		"updatedAt":      time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated donor.Donor
	if err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update donor: %w", err)
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
		return false, fmt.Errorf("failed to delete donor: %w", err)
	}

	return res.DeletedCount > 0, nil
}
