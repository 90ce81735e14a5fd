package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	GSTPattern           = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	MobilePattern        = regexp.MustCompile(`^\d{10}$`)
	AadhaarPattern       = regexp.MustCompile(`^\d{12}$`)
	VehicleNumberPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z]{1,2}[0-9]{1,4}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report violations under the wire names clients actually send.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("gst", func(fl validator.FieldLevel) bool {
		return GSTPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("indian_mobile", func(fl validator.FieldLevel) bool {
		return MobilePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("aadhaar", func(fl validator.FieldLevel) bool {
		return AadhaarPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("vehicle_plate", func(fl validator.FieldLevel) bool {
		return VehicleNumberPattern.MatchString(fl.Field().String())
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ViolationMessages flattens the error from ValidateStruct into the per-field
// messages the API reports. A nil error yields nil.
func ViolationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{"invalid request payload"}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, fieldError.Field()+" is required")
		case "gst":
			messages = append(messages, fieldError.Field()+" is not a valid GST number")
		case "indian_mobile":
			messages = append(messages, fieldError.Field()+" must be a 10 digit mobile number")
		case "aadhaar":
			messages = append(messages, fieldError.Field()+" must be a 12 digit number")
		case "vehicle_plate":
			messages = append(messages, fieldError.Field()+" is not a valid registration plate")
		default:
			messages = append(messages, fieldError.Field()+" is invalid")
		}
	}
	return messages
}
