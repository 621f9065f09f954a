package bloodunit

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines all data access operations for BloodUnit domain
type Repository interface {
	// List join appointment, sắp xếp theo createdAt giảm dần
	List(ctx context.Context) ([]*Detail, error)

	// GetByID returns nil if not found
	GetByID(ctx context.Context, id primitive.ObjectID) (*Detail, error)

	// Create trả về BagNumberExists khi trùng bagNumber
	Create(ctx context.Context, u *BloodUnit) (*BloodUnit, error)

	// Update thay toàn bộ field mutable, returns nil if not found
	Update(ctx context.Context, id primitive.ObjectID, u *BloodUnit) (*BloodUnit, error)

	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
