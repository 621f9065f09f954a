package donor

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines business operations for Donor domain
type Service interface {
	ListDonors(ctx context.Context, filter ListFilter) ([]*Donor, error)
	GetDonor(ctx context.Context, id primitive.ObjectID) (*Donor, error)
	CreateDonor(ctx context.Context, req *DonorRequest) (*Donor, error)
	UpdateDonor(ctx context.Context, id primitive.ObjectID, req *DonorRequest) (*Donor, error)
	DeleteDonor(ctx context.Context, id primitive.ObjectID) error
}
