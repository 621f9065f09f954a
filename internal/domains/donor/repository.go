package donor

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines all data access operations for Donor domain
type Repository interface {
	// List returns every donor in natural storage order
	List(ctx context.Context) ([]*Donor, error)

	// GetByID returns nil if not found
	GetByID(ctx context.Context, id primitive.ObjectID) (*Donor, error)

	// Create inserts and returns the stored donor with generated ID and timestamps
	Create(ctx context.Context, d *Donor) (*Donor, error)

	// Update replaces mutable fields, returns nil if not found
	Update(ctx context.Context, id primitive.ObjectID, d *Donor) (*Donor, error)

	// Delete returns false if nothing was deleted
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
