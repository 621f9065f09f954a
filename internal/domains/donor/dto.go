package donor

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blood-donation-backend/internal/shared"
)

// DonorRequest là payload cho cả create và update (PUT thay toàn bộ field)
type DonorRequest struct {
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	BloodType      shared.BloodType `json:"bloodType"`
	Address        string           `json:"address"`
	DateOfBirth    string           `json:"dateOfBirth"`
	MedicalNotes   string           `json:"medicalNotes"`
	TotalDonations *int             `json:"totalDonations"`
	Status         Status           `json:"status"`
}

// normalized trim các field text trước khi validate và lưu
func (r DonorRequest) normalized() DonorRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	return r
}

// Validate chạy trên giá trị đã trim, name chỉ có khoảng trắng bị coi là rỗng
func (r DonorRequest) Validate() error {
	r = r.normalized()
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Email,
			is.EmailFormat.Error("invalid email format"),
			validation.Length(0, 255),
		),
		validation.Field(&r.Phone, validation.Length(0, 30)),
		validation.Field(&r.BloodType,
			validation.In(shared.BloodTypeValues()...).Error("must be one of A+, A-, B+, B-, AB+, AB-, O+, O-"),
		),
		validation.Field(&r.DateOfBirth,
			validation.Date(shared.DateLayout).Error("must be a date in YYYY-MM-DD format"),
		),
		validation.Field(&r.TotalDonations, validation.Min(0)),
		validation.Field(&r.Status,
			validation.In(StatusActive, StatusInactive, StatusDeferred).Error("must be one of active, inactive, deferred"),
		),
	)
}

// ToModel trim input và áp dụng default (status active, totalDonations 0)
func (r *DonorRequest) ToModel() *Donor {
	n := r.normalized()
	d := &Donor{
		Name:         n.Name,
		Email:        n.Email,
		Phone:        n.Phone,
		BloodType:    n.BloodType,
		Address:      n.Address,
		DateOfBirth:  n.DateOfBirth,
		MedicalNotes: n.MedicalNotes,
		Status:       r.Status,
	}
	if r.TotalDonations != nil {
		d.TotalDonations = *r.TotalDonations
	}
	if d.Status == "" {
		d.Status = StatusActive
	}
	return d
}

// ListFilter là query params của GET /donors
type ListFilter struct {
	Search    string `form:"search"`
	BloodType string `form:"bloodType"`
	Status    string `form:"status"`
}
