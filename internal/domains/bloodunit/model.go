package bloodunit

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/appointment"
	"blood-donation-backend/internal/shared"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusExpired   Status = "expired"
	StatusUsed      Status = "used"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusExpired, StatusUsed:
		return true
	}
	return false
}

// DefaultVolume là thể tích túi máu chuẩn (ml)
const DefaultVolume = 450

// BloodUnit là một túi máu trong kho.
// Status lưu trong DB độc lập với hạn dùng tính toán (ExpiryStatus),
// một túi quá hạn vẫn có thể mang status available.
type BloodUnit struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	BagNumber    string              `bson:"bagNumber" json:"bagNumber"`
	BloodType    shared.BloodType    `bson:"bloodType" json:"bloodType"`
	DonationDate string              `bson:"donationDate" json:"donationDate"`
	ExpiryDate   string              `bson:"expiryDate" json:"expiryDate"`
	Volume       int                 `bson:"volume" json:"volume"`
	Status       Status              `bson:"status" json:"status"`
	Location     string              `bson:"location,omitempty" json:"location,omitempty"`
	DonorName    string              `bson:"donorName,omitempty" json:"donorName,omitempty"`
	Appointment  *primitive.ObjectID `bson:"appointment,omitempty" json:"appointment,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Detail là kết quả $lookup: blood unit kèm appointment được tham chiếu
type Detail struct {
	BloodUnit      `bson:",inline"`
	AppointmentDoc *appointment.Appointment `bson:"appointmentDoc,omitempty"`
}

// Response là representation trả về client.
// Field Appointment ở tầng ngoài che field id cùng tên của BloodUnit,
// nên JSON "appointment" là document đã join còn id gốc nằm ở "appointmentId"
// (vẫn có khi appointment đã bị xóa).
type Response struct {
	BloodUnit
	Appointment     *appointment.Appointment `json:"appointment,omitempty"`
	AppointmentID   *primitive.ObjectID      `json:"appointmentId,omitempty"`
	ExpiryStatus    ExpiryStatus             `json:"expiryStatus"`
	DaysUntilExpiry *int                     `json:"daysUntilExpiry"`
}

// NewResponse gắn appointment đã join và trạng thái hạn dùng tại thời điểm now
func NewResponse(d *Detail, now time.Time) *Response {
	days, ok := DaysUntilExpiry(now, d.ExpiryDate)
	resp := &Response{
		BloodUnit:     d.BloodUnit,
		Appointment:   d.AppointmentDoc,
		AppointmentID: d.BloodUnit.Appointment,
		ExpiryStatus:  ExpiryUnknown,
	}
	if ok {
		resp.ExpiryStatus = ClassifyDays(days)
		resp.DaysUntilExpiry = &days
	}
	return resp
}

func NewResponses(details []*Detail, now time.Time) []*Response {
	out := make([]*Response, 0, len(details))
	for _, d := range details {
		out = append(out, NewResponse(d, now))
	}
	return out
}
