package dashboard

import (
	"time"

	"blood-donation-backend/internal/domains/appointment"
	"blood-donation-backend/internal/domains/bloodunit"
	"blood-donation-backend/internal/domains/donor"
	"blood-donation-backend/internal/shared"
	"blood-donation-backend/internal/shared/utils"
)

// upcomingWindowDays: appointment trong [today, today+7] được tính là sắp tới
const upcomingWindowDays = 7

// StockPercentage tính % so với target, làm tròn xuống và chặn ở 100
func StockPercentage(units, target int) int {
	if target <= 0 || units <= 0 {
		return 0
	}
	pct := units * 100 / target
	if pct > 100 {
		return 100
	}
	return pct
}

// LevelFor: good ≥70, medium ≥50, low >30, còn lại critical
func LevelFor(percentage int) StockLevel {
	switch {
	case percentage >= 70:
		return LevelGood
	case percentage >= 50:
		return LevelMedium
	case percentage > 30:
		return LevelLow
	default:
		return LevelCritical
	}
}

// usable: túi available và chưa quá hạn theo ngày lịch
func usable(now time.Time, u *bloodunit.BloodUnit) bool {
	return u.Status == bloodunit.StatusAvailable &&
		bloodunit.ClassifyExpiry(now, u.ExpiryDate) != bloodunit.ExpiryExpired
}

// BuildSummary tổng hợp dashboard từ snapshot của ba collection
func BuildSummary(now time.Time, donors []*donor.Donor, appointments []*appointment.Appointment, units []*bloodunit.BloodUnit, stockTarget int) *Summary {
	s := &Summary{
		TotalDonors: len(donors),
		GeneratedAt: now,
	}

	for _, d := range donors {
		if d.Status == donor.StatusActive {
			s.ActiveDonors++
		}
	}

	for _, a := range appointments {
		if a.Status != appointment.StatusScheduled {
			continue
		}
		date, err := utils.ParseDate(a.AppointmentDate)
		if err != nil {
			continue
		}
		if days := utils.DaysBetween(now, date); days >= 0 && days <= upcomingWindowDays {
			s.UpcomingAppointments++
		}
	}

	perType := make(map[shared.BloodType]int, len(shared.AllBloodTypes))
	for _, u := range units {
		if !usable(now, u) {
			continue
		}
		s.BloodUnitsAvailable++
		perType[u.BloodType]++
		if bloodunit.ClassifyExpiry(now, u.ExpiryDate) == bloodunit.ExpiryExpiringSoon {
			s.ExpiringSoon++
		}
	}

	s.Inventory = make([]BloodTypeStock, 0, len(shared.AllBloodTypes))
	for _, bt := range shared.AllBloodTypes {
		pct := StockPercentage(perType[bt], stockTarget)
		s.Inventory = append(s.Inventory, BloodTypeStock{
			BloodType:  bt,
			Units:      perType[bt],
			Percentage: pct,
			Level:      LevelFor(pct),
		})
	}

	return s
}
