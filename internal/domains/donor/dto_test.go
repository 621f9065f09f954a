package donor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blood-donation-backend/internal/shared"
	"blood-donation-backend/internal/shared/utils"
)

func intPtr(v int) *int { return &v }

func TestDonorRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       DonorRequest
		wantField string
	}{
		{name: "minimal valid", req: DonorRequest{Name: "Jane Doe"}},
		{
			name: "full valid",
			req: DonorRequest{
				Name: "Jane Doe", Email: "jane@x.io", BloodType: shared.BloodTypeONeg,
				DateOfBirth: "1990-05-01", TotalDonations: intPtr(3), Status: StatusDeferred,
			},
		},
		{name: "missing name", req: DonorRequest{Email: "jane@x.io"}, wantField: "name"},
		{name: "blank name", req: DonorRequest{Name: "   ", Email: "jane@x.io"}, wantField: "name"},
		{name: "padded email", req: DonorRequest{Name: "Jane", Email: " jane@x.io "}},
		{name: "bad email", req: DonorRequest{Name: "Jane", Email: "not-an-email"}, wantField: "email"},
		{name: "bad blood type", req: DonorRequest{Name: "Jane", BloodType: "C+"}, wantField: "bloodType"},
		{name: "bad date of birth", req: DonorRequest{Name: "Jane", DateOfBirth: "01/05/1990"}, wantField: "dateOfBirth"},
		{name: "negative donations", req: DonorRequest{Name: "Jane", TotalDonations: intPtr(-1)}, wantField: "totalDonations"},
		{name: "bad status", req: DonorRequest{Name: "Jane", Status: "banned"}, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, utils.ValidationDetails(err), tt.wantField)
		})
	}
}

func TestDonorRequest_ToModel_AppliesDefaults(t *testing.T) {
	req := &DonorRequest{Name: "  Jane Doe ", Email: " Jane@X.io ", BloodType: shared.BloodTypeONeg}

	d := req.ToModel()

	assert.Equal(t, "Jane Doe", d.Name)
	assert.Equal(t, "jane@x.io", d.Email)
	assert.Equal(t, StatusActive, d.Status)
	assert.Equal(t, 0, d.TotalDonations)
	assert.Equal(t, shared.BloodTypeONeg, d.BloodType)
}

func TestDonorRequest_ToModel_KeepsExplicitValues(t *testing.T) {
	req := &DonorRequest{Name: "Jane", TotalDonations: intPtr(7), Status: StatusInactive}

	d := req.ToModel()

	assert.Equal(t, 7, d.TotalDonations)
	assert.Equal(t, StatusInactive, d.Status)
}

func TestFilterDonors(t *testing.T) {
	donors := []*Donor{
		{Name: "Nguyễn Văn An", Email: "an@x.io", BloodType: shared.BloodTypeOPos, Status: StatusActive},
		{Name: "Jane Doe", Email: "jane@x.io", BloodType: shared.BloodTypeONeg, Status: StatusDeferred},
		{Name: "John Roe", Email: "john@x.io", BloodType: shared.BloodTypeONeg, Status: StatusActive},
	}

	t.Run("empty filter keeps order", func(t *testing.T) {
		got := FilterDonors(donors, ListFilter{})
		assert.Equal(t, donors, got)
	})

	t.Run("search ignores diacritics", func(t *testing.T) {
		got := FilterDonors(donors, ListFilter{Search: "nguyen"})
		require.Len(t, got, 1)
		assert.Equal(t, "an@x.io", got[0].Email)
	})

	t.Run("search matches email", func(t *testing.T) {
		got := FilterDonors(donors, ListFilter{Search: "JOHN@"})
		require.Len(t, got, 1)
		assert.Equal(t, "John Roe", got[0].Name)
	})

	t.Run("blood type and status combine", func(t *testing.T) {
		got := FilterDonors(donors, ListFilter{BloodType: "O-", Status: "active"})
		require.Len(t, got, 1)
		assert.Equal(t, "John Roe", got[0].Name)
	})

	t.Run("all means no constraint", func(t *testing.T) {
		got := FilterDonors(donors, ListFilter{BloodType: "all", Status: "all"})
		assert.Len(t, got, 3)
	})
}

func TestMapErrorToHTTP(t *testing.T) {
	status, _, code, _ := MapErrorToHTTP(NewDonorNotFound())
	assert.Equal(t, 404, status)
	assert.Equal(t, CodeNotFound, code)

	verr := DonorRequest{}.Validate()
	status, _, code, details := MapErrorToHTTP(NewValidationError(verr))
	assert.Equal(t, 400, status)
	assert.Equal(t, CodeValidation, code)
	assert.Contains(t, details, "name")

	status, _, code, _ = MapErrorToHTTP(NewCreateDonorError(assert.AnError))
	assert.Equal(t, 500, status)
	assert.Equal(t, CodeCreateFailed, code)

	status, _, _, _ = MapErrorToHTTP(assert.AnError)
	assert.Equal(t, 500, status)
}
