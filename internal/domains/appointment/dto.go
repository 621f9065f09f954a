package appointment

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blood-donation-backend/internal/shared"
	"blood-donation-backend/internal/shared/utils"
)

// CreateAppointmentRequest là payload của POST /appointments.
// Status không nhận từ client, appointment mới luôn là scheduled.
type CreateAppointmentRequest struct {
	DonorName       string           `json:"donorName"`
	DonorEmail      string           `json:"donorEmail"`
	DonorPhone      string           `json:"donorPhone"`
	BloodType       shared.BloodType `json:"bloodType"`
	AppointmentDate string           `json:"appointmentDate"`
	AppointmentTime string           `json:"appointmentTime"`
	Location        string           `json:"location"`
	Staff           string           `json:"staff"`
	Notes           string           `json:"notes"`
}

func (r CreateAppointmentRequest) normalized() CreateAppointmentRequest {
	r.DonorName = strings.TrimSpace(r.DonorName)
	r.DonorEmail = strings.ToLower(strings.TrimSpace(r.DonorEmail))
	r.DonorPhone = strings.TrimSpace(r.DonorPhone)
	r.AppointmentDate = strings.TrimSpace(r.AppointmentDate)
	r.AppointmentTime = strings.TrimSpace(r.AppointmentTime)
	r.Location = strings.TrimSpace(r.Location)
	r.Staff = strings.TrimSpace(r.Staff)
	return r
}

func (r CreateAppointmentRequest) Validate() error {
	r = r.normalized()
	return validation.ValidateStruct(&r,
		validation.Field(&r.DonorName,
			validation.Required.Error("donorName is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.DonorEmail, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.DonorPhone, validation.Length(0, 30)),
		validation.Field(&r.BloodType,
			validation.Required.Error("bloodType is required"),
			validation.In(shared.BloodTypeValues()...).Error("must be one of A+, A-, B+, B-, AB+, AB-, O+, O-"),
		),
		validation.Field(&r.AppointmentDate,
			validation.Required.Error("appointmentDate is required"),
			validation.Date(shared.DateLayout).Error("must be a date in YYYY-MM-DD format"),
		),
		validation.Field(&r.AppointmentTime,
			validation.Required.Error("appointmentTime is required"),
			validation.By(clockRule),
		),
		validation.Field(&r.Location, validation.Length(0, 200)),
		validation.Field(&r.Staff, validation.Length(0, 200)),
	)
}

func clockRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" || utils.IsValidClock(s) {
		return nil
	}
	return errors.New("must be a time in HH:MM format")
}

func (r *CreateAppointmentRequest) ToModel() *Appointment {
	n := r.normalized()
	return &Appointment{
		DonorName:       n.DonorName,
		DonorEmail:      n.DonorEmail,
		DonorPhone:      n.DonorPhone,
		BloodType:       n.BloodType,
		AppointmentDate: n.AppointmentDate,
		AppointmentTime: n.AppointmentTime,
		Status:          StatusScheduled,
		Location:        n.Location,
		Staff:           n.Staff,
		Notes:           n.Notes,
	}
}

// UpdateStatusRequest là payload của PUT /appointments/:id, chỉ đổi status
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusScheduled, StatusCompleted, StatusCancelled).Error("must be one of scheduled, completed, cancelled"),
		),
	)
}

// ListFilter là query params của GET /appointments
type ListFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Date   string `form:"date"`
}
