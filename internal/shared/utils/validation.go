package utils

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationDetails chuyển ozzo validation.Errors thành map field → message
// để trả về trong response. Lỗi không phải validation.Errors trả về nil.
func ValidationDetails(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		if ferr != nil {
			details[field] = ferr.Error()
		}
	}
	return details
}
