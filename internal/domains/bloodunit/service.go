package bloodunit

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines business operations for BloodUnit domain
type Service interface {
	ListBloodUnits(ctx context.Context, filter ListFilter) ([]*Response, error)
	GetBloodUnit(ctx context.Context, id primitive.ObjectID) (*Response, error)
	CreateBloodUnit(ctx context.Context, req *BloodUnitRequest) (*Response, error)
	UpdateBloodUnit(ctx context.Context, id primitive.ObjectID, req *BloodUnitRequest) (*Response, error)
	DeleteBloodUnit(ctx context.Context, id primitive.ObjectID) error

	// ExportBloodUnits build file XLSX từ danh sách đã lọc
	ExportBloodUnits(ctx context.Context, filter ListFilter) ([]byte, error)
}
