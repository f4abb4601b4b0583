package kbo

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"kbo-games-service/internal/providers"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Report upstream field names (G_DT) instead of Go field names (GameDate).
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateRawGame(v *validator.Validate, index int, raw RawGame) error {
	err := v.Struct(raw)
	if err == nil {
		return nil
	}

	schemaErr := &providers.SchemaError{Provider: providerName, Index: index, Err: err}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		schemaErr.Field = fieldErrs[0].Field()
	}
	return schemaErr
}
