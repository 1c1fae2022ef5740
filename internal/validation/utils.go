package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/imtaco/showroom-live/internal/errors"
)

// Error is one failed field in a 400 response.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationError flattens validator errors; anything else yields nil.
func FormatValidationError(err error) []Error {
	verrs, ok := errors.As[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	out := make([]Error, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, Error{
			Field:   e.Field(),
			Message: e.Error(),
		})
	}
	return out
}
