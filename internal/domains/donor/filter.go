package donor

import "blood-donation-backend/internal/shared/utils"

// Matches: search khớp name hoặc email, bloodType và status khớp chính xác
func (f ListFilter) Matches(d *Donor) bool {
	return utils.MatchesSearch(f.Search, d.Name, d.Email) &&
		utils.MatchesExact(f.BloodType, string(d.BloodType)) &&
		utils.MatchesExact(f.Status, string(d.Status))
}

// FilterDonors giữ nguyên thứ tự đầu vào
func FilterDonors(donors []*Donor, f ListFilter) []*Donor {
	out := make([]*Donor, 0, len(donors))
	for _, d := range donors {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}
