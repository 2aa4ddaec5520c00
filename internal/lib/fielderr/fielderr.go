// Package fielderr собирает ошибки проверки входных данных по именам полей формы.
//
// Ключ — имя поля так, как оно называется в форме и в JSON (например, minCartValue),
// значение — человеко-читаемое сообщение.
package fielderr

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator"
)

// Errors ошибки проверки, сгруппированные по полям.
type Errors map[string]string

// Add добавляет сообщение для поля, если для него еще нет ошибки.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Required добавляет стандартное сообщение об обязательном поле.
func (e Errors) Required(field string) {
	e.Add(field, fmt.Sprintf("field %s is a required field", field))
}

// Err возвращает nil, если ошибок нет. Это избавляет от nil-map внутри интерфейса error.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error собирает сообщения в одну строку в порядке имен полей.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e[f])
	}
	return strings.Join(msgs, ", ")
}

// FromValidator переводит ошибки validator в Errors.
// Имена полей берутся из err.Field(), поэтому валидатор должен быть создан через NewValidator.
func FromValidator(errs validator.ValidationErrors) Errors {
	out := make(Errors, len(errs))
	for _, err := range errs {
		field := err.Field()
		switch err.ActualTag() {
		case "required":
			out.Required(field)
		case "email":
			out.Add(field, fmt.Sprintf("field %s must be a valid email", field))
		case "oneof":
			out.Add(field, fmt.Sprintf("field %s must be one of: %s", field, err.Param()))
		case "gte":
			out.Add(field, fmt.Sprintf("field %s must be at least %s", field, err.Param()))
		case "numeric":
			out.Add(field, fmt.Sprintf("field %s can contain only numbers", field))
		default:
			out.Add(field, fmt.Sprintf("field %s is not a valid", field))
		}
	}
	return out
}

// NewValidator создает validator, который называет поля по json-тегу.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check проверяет структуру и возвращает Errors либо исходную ошибку валидатора.
func Check(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return FromValidator(verrs)
	}
	return err
}
