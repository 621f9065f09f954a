package bloodunit

import (
	"time"

	"blood-donation-backend/internal/shared/utils"
)

// ExpiryStatus là trạng thái hạn dùng tính từ expiryDate, không lưu DB
type ExpiryStatus string

const (
	ExpiryExpired       ExpiryStatus = "expired"
	ExpiryExpiringSoon  ExpiryStatus = "expiring-soon"
	ExpiryExpiringMonth ExpiryStatus = "expiring-month"
	ExpiryGood          ExpiryStatus = "good"
	ExpiryUnknown       ExpiryStatus = "unknown"
)

const (
	soonThresholdDays  = 7
	monthThresholdDays = 30
)

// DaysUntilExpiry tính số ngày lịch từ now tới expiryDate (YYYY-MM-DD).
// ok = false khi expiryDate không parse được.
func DaysUntilExpiry(now time.Time, expiryDate string) (int, bool) {
	expiry, err := utils.ParseDate(expiryDate)
	if err != nil {
		return 0, false
	}
	return utils.DaysBetween(now, expiry), true
}

func ClassifyDays(days int) ExpiryStatus {
	switch {
	case days < 0:
		return ExpiryExpired
	case days <= soonThresholdDays:
		return ExpiryExpiringSoon
	case days <= monthThresholdDays:
		return ExpiryExpiringMonth
	default:
		return ExpiryGood
	}
}

// ClassifyExpiry phân loại hạn dùng theo ngày lịch
func ClassifyExpiry(now time.Time, expiryDate string) ExpiryStatus {
	days, ok := DaysUntilExpiry(now, expiryDate)
	if !ok {
		return ExpiryUnknown
	}
	return ClassifyDays(days)
}
