package http

import (
	"github.com/go-playground/validator/v10"

	"fleet-admin-backend/internal/domain/vehicle"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// vehicle_type must come from the fixed selector set
	_ = v.RegisterValidation("vehicletype", func(fl validator.FieldLevel) bool {
		return vehicle.ValidType(fl.Field().String())
	})
	// trip status filter values
	_ = v.RegisterValidation("tripstatus", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "all", "STARTED", "ENDED":
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "vehicletype":
			out = append(out, FieldError{Field: field, Message: "must be a known vehicle type"})
		case "tripstatus":
			out = append(out, FieldError{Field: field, Message: "must be all, STARTED or ENDED"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
