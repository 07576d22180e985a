package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях используем имена json полей, а не полей Go
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register phone validation: %v", err))
	}

	return v
}

// Validate проверяет теги `validate` модели запроса и возвращает
// одно сообщение со списком невалидных полей
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": обязательное поле"
	case "datetime":
		return fmt.Sprintf("%s: ожидается дата в формате %s", fe.Field(), fe.Param())
	case "phone":
		return fe.Field() + ": некорректный номер телефона"
	case "max":
		return fmt.Sprintf("%s: не более %s символов", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + ": некорректный email"
	case "oneof":
		return fmt.Sprintf("%s: допустимые значения [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: некорректное значение (%s)", fe.Field(), fe.Tag())
	}
}
