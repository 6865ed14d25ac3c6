// Package validation valida los DTO de entrada con go-playground/validator y
// traduce los fallos a un error de dominio con detalle por campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/directorio-api/internal/domain"
)

// DateLayout es el formato de fechas de nacimiento en la API.
const DateLayout = "2006-01-02"

var personNameRe = regexp.MustCompile(`^[a-zA-ZáéíóúñÁÉÍÓÚÑüÜ\s]{1,50}$`)

// FieldError describe un campo inválido.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Error agrupa los campos inválidos; se comporta como domain.ErrInvalidInput.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Usar el nombre JSON en los mensajes.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
			return personNameRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
			d, err := time.Parse(DateLayout, fl.Field().String())
			if err != nil {
				// el formato lo reporta la regla datetime
				return true
			}
			return !d.After(today())
		})
		validate = v
	})
	return validate
}

// Struct valida s según sus tags `validate`. Devuelve *Error o nil.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.InvalidInput(err.Error())
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
			Type:    fe.Tag(),
		})
	}
	return out
}

// NormalizeName recorta y lleva a NFC para que "é" compuesta y descompuesta
// se comparen y validen igual.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.InvalidInput(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return d, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "uuid":
		return "value is not a valid uuid"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "datetime":
		return "date must use the format YYYY-MM-DD"
	case "notfuture":
		return "birth date cannot be in the future"
	case "personname":
		return "name must contain only letters and be max 50 characters"
	default:
		return "invalid value"
	}
}
