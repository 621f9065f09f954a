package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/appointment"
	"blood-donation-backend/pkg/cache"
)

type appointmentService struct {
	repo  appointment.Repository
	cache cache.Cache
}

func NewAppointmentService(repo appointment.Repository, c cache.Cache) appointment.Service {
	return &appointmentService{
		repo:  repo,
		cache: c,
	}
}

func (s *appointmentService) ListAppointments(ctx context.Context, filter appointment.ListFilter) ([]*appointment.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, appointment.NewListAppointmentError(err)
	}
	return appointment.FilterAppointments(appointments, filter), nil
}

func (s *appointmentService) GetAppointment(ctx context.Context, id primitive.ObjectID) (*appointment.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, appointment.NewGetAppointmentError(err)
	}
	if a == nil {
		return nil, appointment.NewAppointmentNotFound()
	}
	return a, nil
}

func (s *appointmentService) CreateAppointment(ctx context.Context, req *appointment.CreateAppointmentRequest) (*appointment.Appointment, error) {
	if req == nil {
		return nil, appointment.NewInvalidRequest("request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, appointment.NewValidationError(err)
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, appointment.NewCreateAppointmentError(err)
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return created, nil
}

// UpdateStatus áp dụng state machine scheduled → completed|cancelled.
// Gửi lại status hiện tại trả về record không ghi gì xuống DB.
func (s *appointmentService) UpdateStatus(ctx context.Context, id primitive.ObjectID, req *appointment.UpdateStatusRequest) (*appointment.Appointment, error) {
	if req == nil {
		return nil, appointment.NewInvalidRequest("request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, appointment.NewValidationError(err)
	}

	current, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Status == req.Status {
		return current, nil
	}
	if !current.Status.CanTransitionTo(req.Status) {
		return nil, appointment.NewInvalidTransition(current.Status, req.Status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, current.Status, req.Status)
	if err != nil {
		return nil, appointment.NewUpdateAppointmentError(err)
	}
	if updated == nil {
		// Document bị xóa hoặc đổi status giữa lúc đọc và ghi
		latest, err := s.GetAppointment(ctx, id)
		if err != nil {
			return nil, err
		}
		if latest.Status == req.Status {
			return latest, nil
		}
		log.Warn().
			Str("appointment_id", id.Hex()).
			Str("status", string(latest.Status)).
			Msg("Appointment status changed concurrently")
		return nil, appointment.NewInvalidTransition(latest.Status, req.Status)
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return updated, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appointment.NewDeleteAppointmentError(err)
	}
	if !deleted {
		return appointment.NewAppointmentNotFound()
	}

	cache.Invalidate(ctx, s.cache, cache.KeyDashboardSummary)
	return nil
}
