package dashboard

import (
	"time"

	"blood-donation-backend/internal/shared"
)

// StockLevel là mức tồn kho của một nhóm máu so với target
type StockLevel string

const (
	LevelGood     StockLevel = "good"
	LevelMedium   StockLevel = "medium"
	LevelLow      StockLevel = "low"
	LevelCritical StockLevel = "critical"
)

// BloodTypeStock là một dòng inventory trên dashboard
type BloodTypeStock struct {
	BloodType  shared.BloodType `json:"bloodType"`
	Units      int              `json:"units"`
	Percentage int              `json:"percentage"`
	Level      StockLevel       `json:"level"`
}

// Summary là response của GET /dashboard/summary
type Summary struct {
	TotalDonors          int              `json:"totalDonors"`
	ActiveDonors         int              `json:"activeDonors"`
	UpcomingAppointments int              `json:"upcomingAppointments"`
	BloodUnitsAvailable  int              `json:"bloodUnitsAvailable"`
	ExpiringSoon         int              `json:"expiringSoon"`
	Inventory            []BloodTypeStock `json:"inventory"`
	GeneratedAt          time.Time        `json:"generatedAt"`
}
