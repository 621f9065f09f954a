package appointment

import (
	"errors"
	"fmt"
	"net/http"

	"blood-donation-backend/internal/shared/utils"
)

// AppointmentError định nghĩa base error cho appointment domain
type AppointmentError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppointmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppointmentError) Unwrap() error {
	return e.Err
}

const (
	CodeNotFound          = "APPOINTMENT_NOT_FOUND"
	CodeValidation        = "APPOINTMENT_VALIDATION_FAILED"
	CodeInvalidRequest    = "INVALID_APPOINTMENT_REQUEST"
	CodeInvalidTransition = "INVALID_STATUS_TRANSITION"
	CodeListFailed        = "LIST_APPOINTMENT_ERROR"
	CodeGetFailed         = "GET_APPOINTMENT_ERROR"
	CodeCreateFailed      = "CREATE_APPOINTMENT_ERROR"
	CodeUpdateFailed      = "UPDATE_APPOINTMENT_ERROR"
	CodeDeleteFailed      = "DELETE_APPOINTMENT_ERROR"
	CodeUnknown           = "UNKNOWN_ERROR"
	CodeInternalFailure   = "INTERNAL_ERROR"
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewAppointmentNotFound() *AppointmentError {
	return &AppointmentError{Code: CodeNotFound, Message: "Appointment not found"}
}

func NewValidationError(err error) *AppointmentError {
	return &AppointmentError{Code: CodeValidation, Message: "Invalid appointment data", Err: err}
}

func NewInvalidRequest(message string) *AppointmentError {
	return &AppointmentError{Code: CodeInvalidRequest, Message: message}
}

func NewInvalidTransition(from, to Status) *AppointmentError {
	return &AppointmentError{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("Cannot change appointment status from %s to %s", from, to),
	}
}

func NewListAppointmentError(err error) *AppointmentError {
	return &AppointmentError{Code: CodeListFailed, Message: "Failed to fetch appointments", Err: err}
}

func NewGetAppointmentError(err error) *AppointmentError {
	return &AppointmentError{Code: CodeGetFailed, Message: "Failed to fetch appointment", Err: err}
}

func NewCreateAppointmentError(err error) *AppointmentError {
	return &AppointmentError{Code: CodeCreateFailed, Message: "Failed to create appointment", Err: err}
}

func NewUpdateAppointmentError(err error) *AppointmentError {
	return &AppointmentError{Code: CodeUpdateFailed, Message: "Failed to update appointment", Err: err}
}

func NewDeleteAppointmentError(err error) *AppointmentError {
	return &AppointmentError{Code: CodeDeleteFailed, Message: "Failed to delete appointment", Err: err}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsAppointmentNotFound(err error) bool {
	return GetErrorCode(err) == CodeNotFound
}

func IsValidationError(err error) bool {
	code := GetErrorCode(err)
	return code == CodeValidation || code == CodeInvalidRequest
}

func IsInvalidTransition(err error) bool {
	return GetErrorCode(err) == CodeInvalidTransition
}

func GetErrorCode(err error) string {
	var aErr *AppointmentError
	if errors.As(err, &aErr) {
		return aErr.Code
	}
	return CodeUnknown
}

func MapErrorToHTTP(err error) (int, string, string, map[string]string) {
	var aErr *AppointmentError
	if !errors.As(err, &aErr) {
		return http.StatusInternalServerError, "Internal server error", CodeInternalFailure, nil
	}

	switch {
	case IsAppointmentNotFound(err):
		return http.StatusNotFound, aErr.Message, aErr.Code, nil
	case IsValidationError(err):
		return http.StatusBadRequest, aErr.Message, aErr.Code, utils.ValidationDetails(aErr.Err)
	case IsInvalidTransition(err):
		return http.StatusConflict, aErr.Message, aErr.Code, nil
	default:
		return http.StatusInternalServerError, aErr.Message, aErr.Code, nil
	}
}
