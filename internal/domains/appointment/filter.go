package appointment

import "blood-donation-backend/internal/shared/utils"

// Matches: search theo donorName, status và date khớp chính xác
func (f ListFilter) Matches(a *Appointment) bool {
	return utils.MatchesSearch(f.Search, a.DonorName) &&
		utils.MatchesExact(f.Status, string(a.Status)) &&
		utils.MatchesExact(f.Date, a.AppointmentDate)
}

func FilterAppointments(appointments []*Appointment, f ListFilter) []*Appointment {
	out := make([]*Appointment, 0, len(appointments))
	for _, a := range appointments {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}
