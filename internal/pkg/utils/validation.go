package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("request_kind", validateRequestKind)
	validate.RegisterValidation("visit_type", validateVisitType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRequestKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	// The two legacy aliases are still accepted at the boundary and
	// normalized before persistence.
	switch value {
	case "lab", "pharmacy", "book_test_visit", "order_medicine":
		return true
	}
	return false
}

func validateVisitType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "lab" || value == "home"
}
