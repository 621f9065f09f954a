package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/donor"
	"blood-donation-backend/pkg/cache"
)

// donorService implements donor.Service
type donorService struct {
	repo  donor.Repository
	cache cache.Cache
}

// NewDonorService creates a new donor service instance.
// c có thể nil khi Redis bị tắt.
func NewDonorService(repo donor.Repository, c cache.Cache) donor.Service {
	return &donorService{
		repo:  repo,
		cache: c,
	}
}

func (s *donorService) ListDonors(ctx context.Context, filter donor.ListFilter) ([]*donor.Donor, error) {
	donors, err := s.repo.List(ctx)
	if err != nil {
		return nil, donor.NewListDonorError(err)
	}
	return donor.FilterDonors(donors, filter), nil
}

func (s *donorService) GetDonor(ctx context.Context, id primitive.ObjectID) (*donor.Donor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, donor.NewGetDonorError(err)
	}
	if d == nil {
		return nil, donor.NewDonorNotFound()
	}
	return d, nil
}

func (s *donorService) CreateDonor(ctx context.Context, req *donor.DonorRequest) (*donor.Donor, error) {
	if req == nil {
		return nil, donor.NewInvalidRequest("request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, donor.NewValidationError(err)
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, donor.NewCreateDonorError(err)
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return created, nil
}

func (s *donorService) UpdateDonor(ctx context.Context, id primitive.ObjectID, req *donor.DonorRequest) (*donor.Donor, error) {
	if req == nil {
		return nil, donor.NewInvalidRequest("request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, donor.NewValidationError(err)
	}

	updated, err := s.repo.Update(ctx, id, req.ToModel())
	if err != nil {
		return nil, donor.NewUpdateDonorError(err)
	}
	if updated == nil {
		return nil, donor.NewDonorNotFound()
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return updated, nil
}

func (s *donorService) DeleteDonor(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return donor.NewDeleteDonorError(err)
	}
	if !deleted {
		return donor.NewDonorNotFound()
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return nil
}
