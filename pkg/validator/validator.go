package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("username", validateUsername)
	v.RegisterValidation("password", validatePassword)
	v.RegisterValidation("clock", validateClock)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validateUsername restricts usernames to letters, numbers, underscores and
// hyphens; length bounds are separate min/max tags.
func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegexp.MatchString(fl.Field().String())
}

// validatePassword requires at least one digit, one lowercase letter, one
// uppercase letter and one special character.
func validatePassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			hasSpecial = true
		}
	}
	return hasDigit && hasLower && hasUpper && hasSpecial
}

// validateClock accepts 24-hour "HH:MM" values.
func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

func (cv *CustomValidator) FormatValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "min":
				messages = append(messages, field+" must be at least "+e.Param()+" characters")
			case "max":
				messages = append(messages, field+" must be at most "+e.Param()+" characters")
			case "len":
				messages = append(messages, field+" must be exactly "+e.Param()+" characters")
			case "numeric":
				messages = append(messages, field+" must contain only digits")
			case "oneof":
				messages = append(messages, field+" must be one of: "+e.Param())
			case "datetime":
				messages = append(messages, field+" must be in the format yyyy-mm-dd")
			case "username":
				messages = append(messages, field+" can only contain letters, numbers, underscores, and hyphens")
			case "password":
				messages = append(messages, field+" must contain a number, a lowercase letter, an uppercase letter, and a special character")
			case "clock":
				messages = append(messages, field+" must be in the format HH:MM")
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, "; ")
	}
	return "invalid request"
}
