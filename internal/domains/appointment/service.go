package appointment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines business operations for Appointment domain
type Service interface {
	ListAppointments(ctx context.Context, filter ListFilter) ([]*Appointment, error)
	GetAppointment(ctx context.Context, id primitive.ObjectID) (*Appointment, error)
	CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, req *UpdateStatusRequest) (*Appointment, error)
	DeleteAppointment(ctx context.Context, id primitive.ObjectID) error
}
