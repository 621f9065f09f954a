package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/bloodunit"
	"blood-donation-backend/pkg/cache"
)

type bloodUnitService struct {
	repo  bloodunit.Repository
	cache cache.Cache
	now   func() time.Time
}

func NewBloodUnitService(repo bloodunit.Repository, c cache.Cache) bloodunit.Service {
	return &bloodUnitService{
		repo:  repo,
		cache: c,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *bloodUnitService) ListBloodUnits(ctx context.Context, filter bloodunit.ListFilter) ([]*bloodunit.Response, error) {
	details, err := s.repo.List(ctx)
	if err != nil {
		return nil, bloodunit.NewListBloodUnitError(err)
	}

	units := bloodunit.NewResponses(details, s.now())
	return bloodunit.FilterUnits(units, filter), nil
}

func (s *bloodUnitService) GetBloodUnit(ctx context.Context, id primitive.ObjectID) (*bloodunit.Response, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, bloodunit.NewGetBloodUnitError(err)
	}
	if d == nil {
		return nil, bloodunit.NewBloodUnitNotFound()
	}
	return bloodunit.NewResponse(d, s.now()), nil
}

func (s *bloodUnitService) CreateBloodUnit(ctx context.Context, req *bloodunit.BloodUnitRequest) (*bloodunit.Response, error) {
	if req == nil {
		return nil, bloodunit.NewInvalidRequest("request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, bloodunit.NewValidationError(err)
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		if bloodunit.IsBagNumberExists(err) {
			return nil, err
		}
		return nil, bloodunit.NewCreateBloodUnitError(err)
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return s.withAppointment(ctx, created), nil
}

func (s *bloodUnitService) UpdateBloodUnit(ctx context.Context, id primitive.ObjectID, req *bloodunit.BloodUnitRequest) (*bloodunit.Response, error) {
	if req == nil {
		return nil, bloodunit.NewInvalidRequest("request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, bloodunit.NewValidationError(err)
	}

	updated, err := s.repo.Update(ctx, id, req.ToModel())
	if err != nil {
		if bloodunit.IsBagNumberExists(err) {
			return nil, err
		}
		return nil, bloodunit.NewUpdateBloodUnitError(err)
	}
	if updated == nil {
		return nil, bloodunit.NewBloodUnitNotFound()
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return s.withAppointment(ctx, updated), nil
}

func (s *bloodUnitService) DeleteBloodUnit(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return bloodunit.NewDeleteBloodUnitError(err)
	}
	if !deleted {
		return bloodunit.NewBloodUnitNotFound()
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return nil
}

// withAppointment đọc lại unit qua $lookup để response có appointment đã join.
// Write đã thành công nên lỗi đọc lại chỉ làm mất phần join.
func (s *bloodUnitService) withAppointment(ctx context.Context, u *bloodunit.BloodUnit) *bloodunit.Response {
	d := &bloodunit.Detail{BloodUnit: *u}
	if u.Appointment != nil {
		if joined, err := s.repo.GetByID(ctx, u.ID); err == nil && joined != nil {
			d = joined
		}
	}
	return bloodunit.NewResponse(d, s.now())
}
