package donor

import (
	"errors"
	"fmt"
	"net/http"

	"blood-donation-backend/internal/shared/utils"
)

// DonorError định nghĩa base error cho donor domain
type DonorError struct {
	Code    string // Error code duy nhất (VD: "DONOR_NOT_FOUND")
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *DonorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *DonorError) Unwrap() error {
	return e.Err
}

const (
	CodeNotFound        = "DONOR_NOT_FOUND"
	CodeValidation      = "DONOR_VALIDATION_FAILED"
	CodeListFailed      = "LIST_DONOR_ERROR"
	CodeGetFailed       = "GET_DONOR_ERROR"
	CodeCreateFailed    = "CREATE_DONOR_ERROR"
	CodeUpdateFailed    = "UPDATE_DONOR_ERROR"
	CodeDeleteFailed    = "DELETE_DONOR_ERROR"
	CodeInvalidRequest  = "INVALID_DONOR_REQUEST"
	CodeUnknown         = "UNKNOWN_ERROR"
	CodeInternalFailure = "INTERNAL_ERROR"
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewDonorNotFound() *DonorError {
	return &DonorError{Code: CodeNotFound, Message: "Donor not found"}
}

// NewValidationError bọc lỗi ozzo-validation
func NewValidationError(err error) *DonorError {
	return &DonorError{Code: CodeValidation, Message: "Invalid donor data", Err: err}
}

func NewInvalidRequest(message string) *DonorError {
	return &DonorError{Code: CodeInvalidRequest, Message: message}
}

func NewListDonorError(err error) *DonorError {
	return &DonorError{Code: CodeListFailed, Message: "Failed to fetch donors", Err: err}
}

func NewGetDonorError(err error) *DonorError {
	return &DonorError{Code: CodeGetFailed, Message: "Failed to fetch donor", Err: err}
}

func NewCreateDonorError(err error) *DonorError {
	return &DonorError{Code: CodeCreateFailed, Message: "Failed to add donor", Err: err}
}

func NewUpdateDonorError(err error) *DonorError {
	return &DonorError{Code: CodeUpdateFailed, Message: "Failed to update donor", Err: err}
}

func NewDeleteDonorError(err error) *DonorError {
	return &DonorError{Code: CodeDeleteFailed, Message: "Failed to delete donor", Err: err}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsDonorNotFound(err error) bool {
	return GetErrorCode(err) == CodeNotFound
}

func IsValidationError(err error) bool {
	code := GetErrorCode(err)
	return code == CodeValidation || code == CodeInvalidRequest
}

func GetErrorCode(err error) string {
	var dErr *DonorError
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return CodeUnknown
}

// MapErrorToHTTP trả về status code, message, code và details (nếu có)
func MapErrorToHTTP(err error) (int, string, string, map[string]string) {
	var dErr *DonorError
	if !errors.As(err, &dErr) {
		return http.StatusInternalServerError, "Internal server error", CodeInternalFailure, nil
	}

	switch {
	case IsDonorNotFound(err):
		return http.StatusNotFound, dErr.Message, dErr.Code, nil
	case IsValidationError(err):
		return http.StatusBadRequest, dErr.Message, dErr.Code, utils.ValidationDetails(dErr.Err)
	default:
		return http.StatusInternalServerError, dErr.Message, dErr.Code, nil
	}
}
