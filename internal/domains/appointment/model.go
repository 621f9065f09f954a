package appointment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/shared"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo: chỉ scheduled → completed/cancelled.
// Giữ nguyên status hiện tại luôn hợp lệ (no-op).
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return s == StatusScheduled && (next == StatusCompleted || next == StatusCancelled)
}

// Appointment là lịch hẹn hiến máu, liên kết donor qua tên
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	DonorName       string             `bson:"donorName" json:"donorName"`
	DonorEmail      string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	DonorPhone      string             `bson:"donorPhone,omitempty" json:"donorPhone,omitempty"`
	BloodType       shared.BloodType   `bson:"bloodType" json:"bloodType"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	AppointmentTime string             `bson:"appointmentTime" json:"appointmentTime"`
	Status          Status             `bson:"status" json:"status"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	Staff           string             `bson:"staff,omitempty" json:"staff,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
