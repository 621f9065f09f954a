package bloodunit

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/shared"
	"blood-donation-backend/internal/shared/utils"
)

// BloodUnitRequest dùng cho cả create và update (PUT thay toàn bộ field)
type BloodUnitRequest struct {
	BagNumber    string           `json:"bagNumber"`
	BloodType    shared.BloodType `json:"bloodType"`
	DonationDate string           `json:"donationDate"`
	ExpiryDate   string           `json:"expiryDate"`
	Volume       *int             `json:"volume"`
	Status       Status           `json:"status"`
	Location     string           `json:"location"`
	DonorName    string           `json:"donorName"`
	Appointment  string           `json:"appointment"`

	// AppointmentID là alias của Appointment, khớp field appointmentId trong response
	AppointmentID string `json:"appointmentId"`
}

func (r BloodUnitRequest) normalized() BloodUnitRequest {
	r.BagNumber = strings.TrimSpace(r.BagNumber)
	r.DonationDate = strings.TrimSpace(r.DonationDate)
	r.ExpiryDate = strings.TrimSpace(r.ExpiryDate)
	r.Location = strings.TrimSpace(r.Location)
	r.DonorName = strings.TrimSpace(r.DonorName)
	r.Appointment = strings.TrimSpace(r.Appointment)
	r.AppointmentID = strings.TrimSpace(r.AppointmentID)
	if r.Appointment == "" {
		r.Appointment = r.AppointmentID
	}
	return r
}

// Validate chạy trên giá trị đã trim, bagNumber chỉ có khoảng trắng bị coi là rỗng
func (r BloodUnitRequest) Validate() error {
	r = r.normalized()
	return validation.ValidateStruct(&r,
		validation.Field(&r.BagNumber,
			validation.Required.Error("bagNumber is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.BloodType,
			validation.Required.Error("bloodType is required"),
			validation.In(shared.BloodTypeValues()...).Error("must be one of A+, A-, B+, B-, AB+, AB-, O+, O-"),
		),
		validation.Field(&r.DonationDate,
			validation.Required.Error("donationDate is required"),
			validation.Date(shared.DateLayout).Error("must be a date in YYYY-MM-DD format"),
		),
		validation.Field(&r.ExpiryDate,
			validation.Required.Error("expiryDate is required"),
			validation.Date(shared.DateLayout).Error("must be a date in YYYY-MM-DD format"),
			validation.By(r.notBeforeDonation),
		),
		validation.Field(&r.Volume, validation.By(positiveVolume)),
		validation.Field(&r.Status,
			validation.In(StatusAvailable, StatusReserved, StatusExpired, StatusUsed).Error("must be one of available, reserved, expired, used"),
		),
		validation.Field(&r.Location, validation.Length(0, 200)),
		validation.Field(&r.DonorName, validation.Length(0, 200)),
		validation.Field(&r.Appointment, validation.By(objectIDHex)),
		validation.Field(&r.AppointmentID, validation.By(objectIDHex)),
	)
}

func (r BloodUnitRequest) notBeforeDonation(value interface{}) error {
	expiry, err := utils.ParseDate(r.ExpiryDate)
	if err != nil {
		return nil
	}
	donation, err := utils.ParseDate(r.DonationDate)
	if err != nil {
		return nil
	}
	if expiry.Before(donation) {
		return errors.New("must not be before donationDate")
	}
	return nil
}

func positiveVolume(value interface{}) error {
	v, _ := value.(*int)
	if v != nil && *v <= 0 {
		return errors.New("must be greater than 0")
	}
	return nil
}

func objectIDHex(value interface{}) error {
	s, _ := value.(string)
	if s == "" || primitive.IsValidObjectID(s) {
		return nil
	}
	return errors.New("must be a valid appointment id")
}

// ToModel áp dụng default volume 450 và status available.
// Gọi sau Validate, appointment id đã hợp lệ.
func (r *BloodUnitRequest) ToModel() *BloodUnit {
	n := r.normalized()
	u := &BloodUnit{
		BagNumber:    n.BagNumber,
		BloodType:    n.BloodType,
		DonationDate: n.DonationDate,
		ExpiryDate:   n.ExpiryDate,
		Volume:       DefaultVolume,
		Status:       n.Status,
		Location:     n.Location,
		DonorName:    n.DonorName,
	}
	if r.Volume != nil {
		u.Volume = *r.Volume
	}
	if u.Status == "" {
		u.Status = StatusAvailable
	}
	if id, err := primitive.ObjectIDFromHex(n.Appointment); err == nil {
		u.Appointment = &id
	}
	return u
}

// ListFilter là query params của GET /blood-units và /blood-units/export
type ListFilter struct {
	Search    string `form:"search"`
	BloodType string `form:"bloodType"`
	Status    string `form:"status"`
	Location  string `form:"location"`
	Expiry    string `form:"expiry"`
}
