package bloodunit

import "blood-donation-backend/internal/shared/utils"

// Matches: search theo bagNumber/donorName, còn location, bloodType, status
// và expiry (trạng thái tính toán) khớp chính xác
func (f ListFilter) Matches(u *Response) bool {
	return utils.MatchesSearch(f.Search, u.BagNumber, u.DonorName) &&
		utils.MatchesExact(f.Location, u.Location) &&
		utils.MatchesExact(f.BloodType, string(u.BloodType)) &&
		utils.MatchesExact(f.Status, string(u.Status)) &&
		utils.MatchesExact(f.Expiry, string(u.ExpiryStatus))
}

func FilterUnits(units []*Response, f ListFilter) []*Response {
	out := make([]*Response, 0, len(units))
	for _, u := range units {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}
