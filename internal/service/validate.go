package service

import (
	"errors"
	"reflect"
	"strings"

	"field-sales/internal/models"

	"github.com/go-playground/validator/v10"
)

// newValidator - validator с json-именами полей и правилом visit_type.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("visit_type", func(fl validator.FieldLevel) bool {
		return models.IsVisitType(fl.Field().String())
	})
	return v
}

// validationError переводит ошибку validator в models.ValidationError по первому полю.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &models.ValidationError{Field: fe.Field()}
	case "visit_type":
		return &models.ValidationError{Field: fe.Field(), Reason: "unknown visit type"}
	case "gt":
		if fe.Kind() == reflect.Slice {
			return &models.ValidationError{Field: fe.Field()}
		}
		return &models.ValidationError{Field: fe.Field(), Reason: "must be greater than " + fe.Param()}
	default:
		return &models.ValidationError{Field: fe.Field(), Reason: "failed " + fe.Tag()}
	}
}
