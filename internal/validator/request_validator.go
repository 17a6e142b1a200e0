package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"shop/internal/usecase"

	playground "github.com/go-playground/validator/v10"
)

// echoのValidatorとして登録する
type RequestValidator struct {
	v *playground.Validate
}

func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	//エラーのキーはjsonの名前にする
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{v: v}
}

// 失敗したら項目ごとのメッセージ付きの400
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ves playground.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	fields := map[string][]string{}
	for _, fe := range ves {
		key := fe.Field()
		fields[key] = append(fields[key], message(fe))
	}
	return usecase.NewValidationError(fields)
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "url", "http_url":
		return "enter a valid URL"
	case "len":
		return fmt.Sprintf("ensure this field has exactly %s characters", fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	default:
		return "invalid value"
	}
}
