package appointment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines all data access operations for Appointment domain
type Repository interface {
	// List sắp xếp theo createdAt giảm dần
	List(ctx context.Context) ([]*Appointment, error)

	// GetByID returns nil if not found
	GetByID(ctx context.Context, id primitive.ObjectID) (*Appointment, error)

	Create(ctx context.Context, a *Appointment) (*Appointment, error)

	// UpdateStatus chỉ $set status khi status hiện tại vẫn là from.
	// Trả về nil nếu không có document nào khớp.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to Status) (*Appointment, error)

	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
