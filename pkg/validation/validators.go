package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// EmailPattern is the address shape accepted by the contact form on both
// sides of the wire.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var emailRegex = regexp.MustCompile(EmailPattern)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("trimmed_min", TrimmedMin)
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// TrimmedMin checks the rune length of the trimmed string against the tag
// parameter, e.g. `validate:"trimmed_min=2"`.
func TrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
}

// ContactEmail validates against EmailPattern.
func ContactEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// IsEmail reports whether s matches EmailPattern.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}
