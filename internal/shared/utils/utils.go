package utils

import (
	"time"

	"blood-donation-backend/internal/shared"
)

// ParseDate parse chuỗi YYYY-MM-DD thành midnight UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(shared.DateLayout, s, time.UTC)
}

// TruncateToDate bỏ phần giờ, giữ ngày theo lịch của t
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween trả về số ngày lịch từ from tới to (âm nếu to trước from)
func DaysBetween(from, to time.Time) int {
	diff := TruncateToDate(to).Sub(TruncateToDate(from))
	return int(diff.Hours() / 24)
}

// IsValidClock kiểm tra chuỗi đúng format HH:MM
func IsValidClock(s string) bool {
	_, err := time.Parse(shared.TimeLayout, s)
	return err == nil && len(s) == len(shared.TimeLayout)
}
