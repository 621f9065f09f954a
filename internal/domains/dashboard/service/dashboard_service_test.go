package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/appointment"
	"blood-donation-backend/internal/domains/bloodunit"
	"blood-donation-backend/internal/domains/dashboard"
	"blood-donation-backend/internal/domains/donor"
	"blood-donation-backend/internal/shared"
	"blood-donation-backend/pkg/cache"
)

// Các repository giả chỉ cần List

type donorRepo struct {
	donor.Repository
	list []*donor.Donor
	err  error
}

func (r *donorRepo) List(ctx context.Context) ([]*donor.Donor, error) { return r.list, r.err }

type appointmentRepo struct {
	appointment.Repository
	list []*appointment.Appointment
}

func (r *appointmentRepo) List(ctx context.Context) ([]*appointment.Appointment, error) {
	return r.list, nil
}

type unitRepo struct {
	bloodunit.Repository
	list  []*bloodunit.Detail
	calls int
}

func (r *unitRepo) List(ctx context.Context) ([]*bloodunit.Detail, error) {
	r.calls++
	return r.list, nil
}

// memoryCache lưu JSON giống RedisCache
type memoryCache struct {
	data   map[string][]byte
	getErr error
	setErr error
}

var _ cache.Cache = (*memoryCache)(nil)

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func fixtures() (*donorRepo, *appointmentRepo, *unitRepo) {
	return &donorRepo{list: []*donor.Donor{{Name: "Jane", Status: donor.StatusActive}}},
		&appointmentRepo{list: []*appointment.Appointment{{AppointmentDate: "2024-01-03", Status: appointment.StatusScheduled}}},
		&unitRepo{list: []*bloodunit.Detail{
			{BloodUnit: bloodunit.BloodUnit{ID: primitive.NewObjectID(), BloodType: shared.BloodTypeONeg, Status: bloodunit.StatusAvailable, ExpiryDate: "2024-01-04"}},
		}}
}

func newTestService(c cache.Cache) (*dashboardService, *unitRepo) {
	d, a, u := fixtures()
	svc := NewDashboardService(d, a, u, c, Config{StockTarget: 10, CacheTTL: time.Minute}).(*dashboardService)
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc, u
}

func TestGetSummary_WithoutCache(t *testing.T) {
	svc, _ := newTestService(nil)

	s, err := svc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalDonors)
	assert.Equal(t, 1, s.ActiveDonors)
	assert.Equal(t, 1, s.UpcomingAppointments)
	assert.Equal(t, 1, s.BloodUnitsAvailable)
	assert.Equal(t, 1, s.ExpiringSoon)
}

func TestGetSummary_CachesResult(t *testing.T) {
	c := newMemoryCache()
	svc, units := newTestService(c)

	first, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Contains(t, c.data, cache.KeyDashboardSummary)

	second, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, units.calls)
	assert.Equal(t, first.Inventory, second.Inventory)
	assert.Equal(t, first.BloodUnitsAvailable, second.BloodUnitsAvailable)

	cache.Invalidate(context.Background(), c, cache.KeyDashboardSummary)
	_, err = svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, units.calls)
}

func TestGetSummary_CacheErrorsAreIgnored(t *testing.T) {
	c := newMemoryCache()
	c.getErr = errors.New("redis down")
	c.setErr = errors.New("redis down")
	svc, _ := newTestService(c)

	s, err := svc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalDonors)
}

func TestGetSummary_RepositoryError(t *testing.T) {
	_, a, u := fixtures()
	svc := NewDashboardService(&donorRepo{err: errors.New("timeout")}, a, u, nil, Config{StockTarget: 10})

	_, err := svc.GetSummary(context.Background())

	var dErr *dashboard.DashboardError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, dashboard.CodeSummaryFailed, dErr.Code)
}
