package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagMongoURI accepts an empty string or a mongodb:// / mongodb+srv:// connection string.
const TagMongoURI = "mongouri"

var mongoSchemes = []string{"mongodb://", "mongodb+srv://"}

// New creates a new validator instance with the project's custom tags registered.
func New() *Validate {
	validate := validator.New()
	// Only fails on an empty tag name or a nil func
	_ = validate.RegisterValidation(TagMongoURI, isMongoURI)
	return validate
}

func isMongoURI(fl validator.FieldLevel) bool {
	uri := fl.Field().String()
	if uri == "" {
		return true
	}
	for _, scheme := range mongoSchemes {
		if strings.HasPrefix(uri, scheme) && len(uri) > len(scheme) {
			return true
		}
	}
	return false
}
