package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/joycesaquino/customer/models"
)

// Field names accepted by CustomerValidator.Validate to restrict validation
// to a subset of the input.
const (
	FieldFirstName = "FirstName"
	FieldEmail     = "Email"
)

const tagCustomerStatus = "customer_status"

// CustomerValidator validates customer create and update inputs.
type CustomerValidator struct {
	validate *validator.Validate
}

func NewCustomerValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so the messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// the tag is static and the function non-nil, so this cannot fail
	_ = v.RegisterValidation(tagCustomerStatus, func(fl validator.FieldLevel) bool {
		return models.CustomerStatus(fl.Field().String()).IsValid()
	})

	return &CustomerValidator{validate: v}
}

func (v *CustomerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CustomerCreate:
		return v.validateStruct(ctx, &value, fields...)
	case *models.CustomerCreate:
		if value == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, value)
		}
		return v.validateStruct(ctx, value, fields...)

	case models.CustomerUpdate:
		return v.validateStruct(ctx, &value, fields...)
	case *models.CustomerUpdate:
		if value == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, value)
		}
		return v.validateStruct(ctx, value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CustomerValidator) validateStruct(ctx context.Context, s any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, s, fields...)
	} else {
		err = v.validate.StructCtx(ctx, s)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errs = append(errs, fmt.Errorf("%w: %s", sentinelForTag(fe.Tag()), fe.Field()))
	}
	return errors.Join(errs...)
}

func sentinelForTag(tag string) error {
	switch tag {
	case "required":
		return ErrRequiredField
	case "max":
		return ErrFieldTooLong
	case tagCustomerStatus:
		return models.ErrInvalidCustomerStatus
	default:
		return ErrInvalidField
	}
}
