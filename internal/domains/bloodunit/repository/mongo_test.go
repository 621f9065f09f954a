package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/appointment"
	appointmentRepo "blood-donation-backend/internal/domains/appointment/repository"
	"blood-donation-backend/internal/domains/bloodunit"
	"blood-donation-backend/internal/infrastructure/database"
	"blood-donation-backend/internal/shared"
)

// setupMongo chỉ chạy khi có MONGODB_TEST_URI, mỗi test dùng database riêng
func setupMongo(t *testing.T) *database.MongoDB {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	db := database.NewMongoDB(&database.MongoConfig{
		URI:            uri,
		Database:       "blood_donation_test_" + primitive.NewObjectID().Hex(),
		ConnectTimeout: 5 * time.Second,
		MaxRetries:     1,
	})

	ctx := context.Background()
	conn, err := db.EnsureConnection(ctx)
	require.NoError(t, err)
	require.NoError(t, db.EnsureIndexes(ctx))

	t.Cleanup(func() {
		_ = conn.Drop(context.Background())
		_ = db.Close(context.Background())
	})
	return db
}

func unit(bag string) *bloodunit.BloodUnit {
	return &bloodunit.BloodUnit{
		BagNumber:    bag,
		BloodType:    shared.BloodTypeOPos,
		DonationDate: "2024-01-01",
		ExpiryDate:   "2024-02-12",
		Volume:       450,
		Status:       bloodunit.StatusAvailable,
	}
}

func TestMongoRepository_DuplicateBagNumber(t *testing.T) {
	db := setupMongo(t)
	repo := NewMongoRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, unit("BAG-1"))
	require.NoError(t, err)

	dup := unit("BAG-1")
	dup.Volume = 300
	_, err = repo.Create(ctx, dup)
	assert.True(t, bloodunit.IsBagNumberExists(err))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, 450, list[0].Volume)
}

func TestMongoRepository_LookupAppointment(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()

	appt, err := appointmentRepo.NewMongoRepository(db).Create(ctx, &appointment.Appointment{
		DonorName: "Jane Doe", BloodType: shared.BloodTypeOPos,
		AppointmentDate: "2024-01-01", AppointmentTime: "09:00", Status: appointment.StatusCompleted,
	})
	require.NoError(t, err)

	repo := NewMongoRepository(db)
	withAppt := unit("BAG-2")
	withAppt.Appointment = &appt.ID
	created, err := repo.Create(ctx, withAppt)
	require.NoError(t, err)
	_, err = repo.Create(ctx, unit("BAG-3"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AppointmentDoc)
	assert.Equal(t, "Jane Doe", got.AppointmentDoc.DonorName)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "BAG-3", list[0].BagNumber)
	assert.Nil(t, list[0].AppointmentDoc)
}

func TestMongoRepository_UpdateAndDelete(t *testing.T) {
	db := setupMongo(t)
	repo := NewMongoRepository(db)
	ctx := context.Background()

	a, err := repo.Create(ctx, unit("BAG-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, unit("BAG-2"))
	require.NoError(t, err)

	changed := unit("BAG-1")
	changed.Status = bloodunit.StatusUsed
	updated, err := repo.Update(ctx, a.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, bloodunit.StatusUsed, updated.Status)
	assert.WithinDuration(t, a.CreatedAt, updated.CreatedAt, time.Millisecond)

	_, err = repo.Update(ctx, a.ID, unit("BAG-2"))
	assert.True(t, bloodunit.IsBagNumberExists(err))

	missing, err := repo.Update(ctx, primitive.NewObjectID(), unit("BAG-9"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
