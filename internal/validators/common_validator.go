package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("vehicle_category", validateVehicleCategory)
	validate.RegisterValidation("fuel_type", validateFuelType)
	validate.RegisterValidation("listing_type", validateListingType)
	validate.RegisterValidation("listing_status", validateListingStatus)
	validate.RegisterValidation("discount_type", validateDiscountType)
	validate.RegisterValidation("booking_type", validateBookingType)
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return strings.Join(parts, "; ")
}

// ValidateStruct runs tag validation and flattens the result into field
// errors suitable for an API response.
func ValidateStruct(s interface{}) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "url":
		return "must be a valid URL"
	case "object_id":
		return "must be a valid object id"
	case "vehicle_category":
		return "must be one of BIKE, SCOOTER, EV"
	case "fuel_type":
		return "must be one of PETROL, ELECTRIC, HYBRID"
	case "listing_type":
		return "must be one of NEW, USED"
	case "listing_status":
		return "must be one of AVAILABLE, SOLD, HOLD"
	case "discount_type":
		return "must be one of percentage, fixed, cashback"
	case "booking_type":
		return "must be one of TEST_RIDE, INQUIRY, SERVICE"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

func validateVehicleCategory(fl validator.FieldLevel) bool {
	return models.ValidCategory(models.VehicleCategory(fl.Field().String()))
}

func validateFuelType(fl validator.FieldLevel) bool {
	return models.ValidFuelType(models.FuelType(fl.Field().String()))
}

func validateListingType(fl validator.FieldLevel) bool {
	return models.ValidListingType(models.ListingType(fl.Field().String()))
}

func validateListingStatus(fl validator.FieldLevel) bool {
	return models.ValidListingStatus(models.ListingStatus(fl.Field().String()))
}

func validateDiscountType(fl validator.FieldLevel) bool {
	return models.ValidDiscountType(models.DiscountType(fl.Field().String()))
}

func validateBookingType(fl validator.FieldLevel) bool {
	return models.ValidBookingType(models.BookingType(fl.Field().String()))
}
