package address

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Tag is the struct tag that applies IsValidAddress, e.g.
//
//	type PersonForm struct {
//		Address string `validate:"required,address"`
//	}
const Tag = "address"

// RegisterValidation adds the address tag to v. The field must be a string;
// it is trimmed before the shape check.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(Tag, validateField)
}

func validateField(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	_, err := New(field.String(), false)
	return err == nil
}
