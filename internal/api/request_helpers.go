package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskhub-api/internal/domain"
)

// getPathID extracts an integer ID from the URL path parameters.
// Returns a domain.ErrInvalidID-wrapped error when the parameter is missing
// or non-numeric. Zero and negative values are well-formed ids that simply
// match no row, so lookups on them surface as not-found.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// validationDetail turns a request validation failure into the client-facing
// detail string, naming the field and the rule that failed. Field names come
// from the json tags registered on the shared validator.
func validationDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Validation error: invalid request"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Validation error: %s is required", fe.Field())
	case "min":
		return fmt.Sprintf("Validation error: %s must not be empty", fe.Field())
	case "max":
		return fmt.Sprintf("Validation error: %s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("Validation error: %s must be positive", fe.Field())
	default:
		return fmt.Sprintf("Validation error: %s is invalid", fe.Field())
	}
}
