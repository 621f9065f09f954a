package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/appointment"
	"blood-donation-backend/internal/domains/bloodunit"
	"blood-donation-backend/internal/shared"
	"blood-donation-backend/pkg/cache"
)

type mockRepository struct {
	ListFn    func(ctx context.Context) ([]*bloodunit.Detail, error)
	GetByIDFn func(ctx context.Context, id primitive.ObjectID) (*bloodunit.Detail, error)
	CreateFn  func(ctx context.Context, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error)
	UpdateFn  func(ctx context.Context, id primitive.ObjectID, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error)
	DeleteFn  func(ctx context.Context, id primitive.ObjectID) (bool, error)
}

var _ bloodunit.Repository = (*mockRepository)(nil)

func (m *mockRepository) List(ctx context.Context) ([]*bloodunit.Detail, error) {
	return m.ListFn(ctx)
}

func (m *mockRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*bloodunit.Detail, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockRepository) Create(ctx context.Context, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
	return m.CreateFn(ctx, u)
}

func (m *mockRepository) Update(ctx context.Context, id primitive.ObjectID, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
	return m.UpdateFn(ctx, id, u)
}

func (m *mockRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return m.DeleteFn(ctx, id)
}

type mockCache struct {
	deletes int
}

var _ cache.Cache = (*mockCache)(nil)

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	m.deletes++
	return nil
}

func (m *mockCache) Ping(ctx context.Context) error { return nil }

func newTestService(repo bloodunit.Repository, c cache.Cache) *bloodUnitService {
	svc := NewBloodUnitService(repo, c).(*bloodUnitService)
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func sampleDetails() []*bloodunit.Detail {
	apptID := primitive.NewObjectID()
	return []*bloodunit.Detail{
		{
			BloodUnit: bloodunit.BloodUnit{
				ID: primitive.NewObjectID(), BagNumber: "BAG-002", BloodType: shared.BloodTypeOPos,
				DonationDate: "2023-12-01", ExpiryDate: "2024-01-05", Volume: 450,
				Status: bloodunit.StatusAvailable, Appointment: &apptID,
			},
			AppointmentDoc: &appointment.Appointment{ID: apptID, DonorName: "Jane Doe", AppointmentDate: "2023-12-01"},
		},
		{
			BloodUnit: bloodunit.BloodUnit{
				ID: primitive.NewObjectID(), BagNumber: "BAG-001", BloodType: shared.BloodTypeANeg,
				DonationDate: "2023-12-20", ExpiryDate: "2024-03-01", Volume: 300,
				Status: bloodunit.StatusReserved,
			},
		},
	}
}

func TestListBloodUnits_DerivesExpiry(t *testing.T) {
	repo := &mockRepository{
		ListFn: func(ctx context.Context) ([]*bloodunit.Detail, error) { return sampleDetails(), nil },
	}
	svc := newTestService(repo, nil)

	units, err := svc.ListBloodUnits(context.Background(), bloodunit.ListFilter{})

	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "BAG-002", units[0].BagNumber)
	assert.Equal(t, bloodunit.ExpiryExpiringSoon, units[0].ExpiryStatus)
	require.NotNil(t, units[0].Appointment)
	assert.Equal(t, "Jane Doe", units[0].Appointment.DonorName)
	assert.Equal(t, bloodunit.ExpiryGood, units[1].ExpiryStatus)

	soon, err := svc.ListBloodUnits(context.Background(), bloodunit.ListFilter{Expiry: "expiring-soon"})
	require.NoError(t, err)
	assert.Len(t, soon, 1)
}

func TestListBloodUnits_RepositoryError(t *testing.T) {
	repo := &mockRepository{
		ListFn: func(ctx context.Context) ([]*bloodunit.Detail, error) { return nil, errors.New("down") },
	}
	svc := newTestService(repo, nil)

	_, err := svc.ListBloodUnits(context.Background(), bloodunit.ListFilter{})

	assert.Equal(t, bloodunit.CodeListFailed, bloodunit.GetErrorCode(err))
}

func TestCreateBloodUnit_Defaults(t *testing.T) {
	var stored *bloodunit.BloodUnit
	repo := &mockRepository{
		CreateFn: func(ctx context.Context, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
			stored = u
			out := *u
			out.ID = primitive.NewObjectID()
			return &out, nil
		},
	}
	c := &mockCache{}
	svc := newTestService(repo, c)

	resp, err := svc.CreateBloodUnit(context.Background(), &bloodunit.BloodUnitRequest{
		BagNumber: "BAG-9", BloodType: shared.BloodTypeBPos, DonationDate: "2024-01-01", ExpiryDate: "2024-02-12",
	})

	require.NoError(t, err)
	assert.Equal(t, 450, stored.Volume)
	assert.Equal(t, bloodunit.StatusAvailable, stored.Status)
	assert.Equal(t, bloodunit.ExpiryGood, resp.ExpiryStatus)
	assert.Nil(t, resp.Appointment)
	assert.Equal(t, 1, c.deletes)
}

func TestCreateBloodUnit_JoinsAppointment(t *testing.T) {
	apptID := primitive.NewObjectID()
	repo := &mockRepository{
		CreateFn: func(ctx context.Context, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
			out := *u
			out.ID = primitive.NewObjectID()
			return &out, nil
		},
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*bloodunit.Detail, error) {
			return &bloodunit.Detail{
				BloodUnit:      bloodunit.BloodUnit{ID: id, BagNumber: "BAG-9", ExpiryDate: "2024-02-12", Appointment: &apptID},
				AppointmentDoc: &appointment.Appointment{ID: apptID, DonorName: "Jane Doe"},
			}, nil
		},
	}
	svc := newTestService(repo, nil)

	resp, err := svc.CreateBloodUnit(context.Background(), &bloodunit.BloodUnitRequest{
		BagNumber: "BAG-9", BloodType: shared.BloodTypeBPos, DonationDate: "2024-01-01", ExpiryDate: "2024-02-12",
		Appointment: apptID.Hex(),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, "Jane Doe", resp.Appointment.DonorName)
}

func TestCreateBloodUnit_DuplicateBagNumber(t *testing.T) {
	repo := &mockRepository{
		CreateFn: func(ctx context.Context, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
			return nil, bloodunit.NewBagNumberExists(u.BagNumber)
		},
	}
	c := &mockCache{}
	svc := newTestService(repo, c)

	_, err := svc.CreateBloodUnit(context.Background(), &bloodunit.BloodUnitRequest{
		BagNumber: "BAG-1", BloodType: shared.BloodTypeBPos, DonationDate: "2024-01-01", ExpiryDate: "2024-02-12",
	})

	assert.True(t, bloodunit.IsBagNumberExists(err))
	assert.Zero(t, c.deletes)
}

func TestCreateBloodUnit_Invalid(t *testing.T) {
	svc := newTestService(&mockRepository{}, nil)

	_, err := svc.CreateBloodUnit(context.Background(), &bloodunit.BloodUnitRequest{BagNumber: "BAG-1"})

	assert.True(t, bloodunit.IsValidationError(err))
}

func TestUpdateBloodUnit(t *testing.T) {
	req := &bloodunit.BloodUnitRequest{
		BagNumber: "BAG-1", BloodType: shared.BloodTypeBPos, DonationDate: "2024-01-01", ExpiryDate: "2024-02-12",
		Status: bloodunit.StatusUsed,
	}

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepository{
			UpdateFn: func(ctx context.Context, id primitive.ObjectID, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
				return nil, nil
			},
		}
		svc := newTestService(repo, nil)

		_, err := svc.UpdateBloodUnit(context.Background(), primitive.NewObjectID(), req)
		assert.True(t, bloodunit.IsBloodUnitNotFound(err))
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := &mockRepository{
			UpdateFn: func(ctx context.Context, id primitive.ObjectID, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
				return nil, bloodunit.NewBagNumberExists(u.BagNumber)
			},
		}
		svc := newTestService(repo, nil)

		_, err := svc.UpdateBloodUnit(context.Background(), primitive.NewObjectID(), req)
		assert.True(t, bloodunit.IsBagNumberExists(err))
	})

	t.Run("success", func(t *testing.T) {
		repo := &mockRepository{
			UpdateFn: func(ctx context.Context, id primitive.ObjectID, u *bloodunit.BloodUnit) (*bloodunit.BloodUnit, error) {
				out := *u
				out.ID = id
				return &out, nil
			},
		}
		c := &mockCache{}
		svc := newTestService(repo, c)

		resp, err := svc.UpdateBloodUnit(context.Background(), primitive.NewObjectID(), req)
		require.NoError(t, err)
		assert.Equal(t, bloodunit.StatusUsed, resp.Status)
		assert.Equal(t, 1, c.deletes)
	})
}

func TestDeleteBloodUnit_Missing(t *testing.T) {
	repo := &mockRepository{
		DeleteFn: func(ctx context.Context, id primitive.ObjectID) (bool, error) { return false, nil },
	}
	svc := newTestService(repo, nil)

	assert.True(t, bloodunit.IsBloodUnitNotFound(svc.DeleteBloodUnit(context.Background(), primitive.NewObjectID())))
}

func TestExportBloodUnits(t *testing.T) {
	repo := &mockRepository{
		ListFn: func(ctx context.Context) ([]*bloodunit.Detail, error) { return sampleDetails(), nil },
	}
	svc := newTestService(repo, nil)

	data, err := svc.ExportBloodUnits(context.Background(), bloodunit.ListFilter{BloodType: "O+"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "BAG-002", rows[1][1])
	assert.Equal(t, "4", rows[1][6])
	assert.Equal(t, "expiring-soon", rows[1][7])
	assert.Equal(t, "2023-12-01", rows[1][11])
}
