package dto

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/offerdesk-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los mensajes usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate aplica las etiquetas validate de s. Devuelve el primer incumplimiento como
// domain.ErrInvalidInput.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Invalid("%s", err.Error())
	}
	return domain.Invalid("%s", fieldMessage(verrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "hexcolor":
		return field + " must be a hex color"
	case "min", "gte":
		return field + " must be at least " + fe.Param()
	case "max", "lte":
		return field + " must be at most " + fe.Param()
	}
	return field + " is invalid"
}

// jsonPath quita del namespace el tipo raíz y los structs embebidos (nombres Go en mayúscula):
// "SetupCompanyRequest.CompanySections.profile.companyName" -> "profile.companyName".
func jsonPath(ns string) string {
	parts := strings.Split(ns, ".")
	out := parts[:0]
	for _, p := range parts {
		if p != "" && unicode.IsUpper(rune(p[0])) {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ".")
}
