package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Language fluency validation
	validate.RegisterValidation("fluency", func(fl validator.FieldLevel) bool {
		fluency := fl.Field().String()
		validLevels := []string{"say_hello", "beginner", "intermediate", "advanced", "fluent", "native"}
		for _, l := range validLevels {
			if fluency == l {
				return true
			}
		}
		return false
	})

	// Language code validation (ISO 639-3 style, up to 3 lowercase letters)
	validate.RegisterValidation("language_code", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) == 0 || len(code) > 3 {
			return false
		}
		for _, r := range code {
			if r < 'a' || r > 'z' {
				return false
			}
		}
		return true
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "fluency":
			errors[field] = "Invalid fluency. Must be: say_hello, beginner, intermediate, advanced, fluent, or native"
		case "language_code":
			errors[field] = "Invalid language code"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
