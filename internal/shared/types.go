package shared

// BloodType là một trong 8 tổ hợp ABO/Rh
type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

// AllBloodTypes theo thứ tự hiển thị trên dashboard
var AllBloodTypes = []BloodType{
	BloodTypeOPos, BloodTypeAPos, BloodTypeBPos, BloodTypeABPos,
	BloodTypeONeg, BloodTypeANeg, BloodTypeBNeg, BloodTypeABNeg,
}

func (b BloodType) IsValid() bool {
	for _, bt := range AllBloodTypes {
		if b == bt {
			return true
		}
	}
	return false
}

func (b BloodType) String() string {
	return string(b)
}

// BloodTypeValues dùng cho validation.In(...)
func BloodTypeValues() []interface{} {
	out := make([]interface{}, len(AllBloodTypes))
	for i, bt := range AllBloodTypes {
		out[i] = bt
	}
	return out
}

// DateLayout là format của mọi ngày lưu dạng string (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// TimeLayout là format giờ hẹn (HH:MM)
const TimeLayout = "15:04"
