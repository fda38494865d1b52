package currency

import "github.com/go-playground/validator/v10"

// RegisterValidation registers the schema as a custom validation on a
// go-playground validator instance, so struct fields can opt in with a tag
// such as `validate:"currency_code"`. The tagged field must hold a string.
// The tag only reports validity; it does not rewrite the field to uppercase.
func (s *Schema) RegisterValidation(v *validator.Validate, tag string) error {
	return v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, err := s.Validate(fl.Field().String())
		return err == nil
	})
}
