package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blood-donation-backend/internal/domains/appointment"
	"blood-donation-backend/internal/infrastructure/database"
)

// mongoRepository implements appointment.Repository
type mongoRepository struct {
	db *database.MongoDB
}

func NewMongoRepository(db *database.MongoDB) appointment.Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	return r.db.Collection(ctx, database.CollectionAppointments)
}

func (r *mongoRepository) List(ctx context.Context) ([]*appointment.Appointment, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := make([]*appointment.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}

	return appointments, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*appointment.Appointment, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var a appointment.Appointment
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment by id: %w", err)
	}

	return &a, nil
}

func (r *mongoRepository) Create(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *a
	created.ID = primitive.NewObjectID()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}

	return &created, nil
}

// UpdateStatus chỉ đụng vào field status, updatedAt giữ nguyên
func (r *mongoRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to appointment.Status) (*appointment.Appointment, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated appointment.Appointment
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
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
		return false, fmt.Errorf("failed to delete appointment: %w", err)
	}

	return res.DeletedCount > 0, nil
}
