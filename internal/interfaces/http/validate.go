package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida del validador de structs (tags `validate`).
var validate = validator.New()

// validStruct valida el DTO contra sus tags; devuelve false si falló.
func validStruct(in any) bool {
	return validate.Struct(in) == nil
}
