package donor

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/shared"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeferred Status = "deferred"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDeferred:
		return true
	}
	return false
}

// Donor là người hiến máu. Appointment và BloodUnit tham chiếu donor
// qua tên (denormalized), không có foreign key nên xóa donor không cascade.
type Donor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	BloodType      shared.BloodType   `bson:"bloodType" json:"bloodType"`
	Address        string             `bson:"address" json:"address"`
	DateOfBirth    string             `bson:"dateOfBirth" json:"dateOfBirth"`
	MedicalNotes   string             `bson:"medicalNotes" json:"medicalNotes"`
	TotalDonations int                `bson:"totalDonations" json:"totalDonations"`
	Status         Status             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
