package dashboard

import (
	"errors"
	"fmt"
	"net/http"
)

type DashboardError struct {
	Code    string
	Message string
	Err     error
}

func (e *DashboardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

const (
	CodeSummaryFailed   = "DASHBOARD_SUMMARY_ERROR"
	CodeInternalFailure = "INTERNAL_ERROR"
)

func NewSummaryError(err error) *DashboardError {
	return &DashboardError{Code: CodeSummaryFailed, Message: "Failed to build dashboard summary", Err: err}
}

// MapErrorToHTTP: dashboard chỉ có lỗi hạ tầng nên luôn là 500
func MapErrorToHTTP(err error) (int, string, string) {
	var dErr *DashboardError
	if errors.As(err, &dErr) {
		return http.StatusInternalServerError, dErr.Message, dErr.Code
	}
	return http.StatusInternalServerError, "Internal server error", CodeInternalFailure
}
