package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var groupRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,32}$`)

func init() {
	MustRegisterGin("group", ValidateGroup)
}

// ValidateGroup validates group names: 1-32 ASCII letters or digits
func ValidateGroup(fl validator.FieldLevel) bool {
	return groupRegex.MatchString(fl.Field().String())
}
