// Package validation checks raw input payloads against the per-entity field
// rules and reports every violation as a human-readable message.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank rejects strings that are empty after trimming, which the
	// plain "required" tag does not.
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// messages maps a failing field to its violation text. Keys are struct
// namespaces because the same field name carries different bounds per
// entity (grocery price may be zero, clothes price may not).
var messages = map[string]string{
	"UserInput.Firstname":    "Firstname is required and must be a non-empty string",
	"UserInput.Lastname":     "Lastname is required and must be a non-empty string",
	"UserInput.Username":     "Username is required and must be a non-empty string",
	"UserInput.Password":     "Password is required and must be at least 6 characters long",
	"GroceryInput.Name":      "Name is required and must be a non-empty string",
	"GroceryInput.Quantity":  "Quantity is required and must be a non-negative number",
	"GroceryInput.Price":     "Price is required and must be a non-negative number",
	"ClothesInput.Name":      "Name is required and must be a non-empty string",
	"ClothesInput.Size":      "Size is required and must be a non-empty string",
	"ClothesInput.Price":     "Price is required and must be a positive number",
	"ElectronicsInput.Name":  "Name is required and must be a non-empty string",
	"ElectronicsInput.Brand": "Brand is required and must be a non-empty string",
	"ElectronicsInput.Price": "Price is required and must be a positive number",
}

// Check validates an input payload and returns all violations, one message
// per failed field, in field declaration order. An empty result means the
// payload is valid. Check never panics on bad input.
func Check(input any) []string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a struct at all; treat it as a single shape violation.
		return []string{"Request body is required and must be an object"}
	}

	violations := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, found := messages[fe.StructNamespace()]; found {
			violations = append(violations, msg)
		} else {
			violations = append(violations, fmt.Sprintf("%s is invalid", fe.StructField()))
		}
	}
	return violations
}
