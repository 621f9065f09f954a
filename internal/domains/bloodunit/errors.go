package bloodunit

import (
	"errors"
	"fmt"
	"net/http"

	"blood-donation-backend/internal/shared/utils"
)

// BloodUnitError định nghĩa base error cho blood unit domain
type BloodUnitError struct {
	Code    string
	Message string
	Err     error
}

func (e *BloodUnitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *BloodUnitError) Unwrap() error {
	return e.Err
}

const (
	CodeNotFound        = "BLOOD_UNIT_NOT_FOUND"
	CodeValidation      = "BLOOD_UNIT_VALIDATION_FAILED"
	CodeInvalidRequest  = "INVALID_BLOOD_UNIT_REQUEST"
	CodeBagNumberExists = "BAG_NUMBER_EXISTS"
	CodeListFailed      = "LIST_BLOOD_UNIT_ERROR"
	CodeGetFailed       = "GET_BLOOD_UNIT_ERROR"
	CodeCreateFailed    = "CREATE_BLOOD_UNIT_ERROR"
	CodeUpdateFailed    = "UPDATE_BLOOD_UNIT_ERROR"
	CodeDeleteFailed    = "DELETE_BLOOD_UNIT_ERROR"
	CodeExportFailed    = "EXPORT_BLOOD_UNIT_ERROR"
	CodeUnknown         = "UNKNOWN_ERROR"
	CodeInternalFailure = "INTERNAL_ERROR"
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewBloodUnitNotFound() *BloodUnitError {
	return &BloodUnitError{Code: CodeNotFound, Message: "Blood unit not found"}
}

func NewValidationError(err error) *BloodUnitError {
	return &BloodUnitError{Code: CodeValidation, Message: "Invalid blood unit data", Err: err}
}

func NewInvalidRequest(message string) *BloodUnitError {
	return &BloodUnitError{Code: CodeInvalidRequest, Message: message}
}

// NewBagNumberExists được repository trả về khi vi phạm unique index bagNumber
func NewBagNumberExists(bagNumber string) *BloodUnitError {
	return &BloodUnitError{
		Code:    CodeBagNumberExists,
		Message: fmt.Sprintf("Blood unit with bag number %q already exists", bagNumber),
	}
}

func NewListBloodUnitError(err error) *BloodUnitError {
	return &BloodUnitError{Code: CodeListFailed, Message: "Failed to fetch blood units", Err: err}
}

func NewGetBloodUnitError(err error) *BloodUnitError {
	return &BloodUnitError{Code: CodeGetFailed, Message: "Failed to fetch blood unit", Err: err}
}

func NewCreateBloodUnitError(err error) *BloodUnitError {
	return &BloodUnitError{Code: CodeCreateFailed, Message: "Failed to add blood unit", Err: err}
}

func NewUpdateBloodUnitError(err error) *BloodUnitError {
	return &BloodUnitError{Code: CodeUpdateFailed, Message: "Failed to update blood unit", Err: err}
}

func NewDeleteBloodUnitError(err error) *BloodUnitError {
	return &BloodUnitError{Code: CodeDeleteFailed, Message: "Failed to delete blood unit", Err: err}
}

func NewExportBloodUnitError(err error) *BloodUnitError {
	return &BloodUnitError{Code: CodeExportFailed, Message: "Failed to export blood units", Err: err}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsBloodUnitNotFound(err error) bool {
	return GetErrorCode(err) == CodeNotFound
}

func IsValidationError(err error) bool {
	code := GetErrorCode(err)
	return code == CodeValidation || code == CodeInvalidRequest
}

func IsBagNumberExists(err error) bool {
	return GetErrorCode(err) == CodeBagNumberExists
}

func GetErrorCode(err error) string {
	var bErr *BloodUnitError
	if errors.As(err, &bErr) {
		return bErr.Code
	}
	return CodeUnknown
}

func MapErrorToHTTP(err error) (int, string, string, map[string]string) {
	var bErr *BloodUnitError
	if !errors.As(err, &bErr) {
		return http.StatusInternalServerError, "Internal server error", CodeInternalFailure, nil
	}

	switch {
	case IsBloodUnitNotFound(err):
		return http.StatusNotFound, bErr.Message, bErr.Code, nil
	case IsValidationError(err):
		return http.StatusBadRequest, bErr.Message, bErr.Code, utils.ValidationDetails(bErr.Err)
	case IsBagNumberExists(err):
		return http.StatusConflict, bErr.Message, bErr.Code, nil
	default:
		return http.StatusInternalServerError, bErr.Message, bErr.Code, nil
	}
}
