// Package protocol holds logic shared by the wire protocols.
package protocol

import (
	"reflect"
	"strings"
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/go-playground/validator/v10"

	"github.com/Laisky/cloudsdk/apierror"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateInput checks the `validate` tags of in and reports every failure in
// a single *apierror.InvalidParamsError. A nil input is itself invalid.
func ValidateInput(operation string, in any) error {
	if in == nil {
		return &apierror.InvalidParamsError{
			Context: operation,
			Fields:  []apierror.ParamError{{Field: "input", Reason: "must not be nil"}},
		}
	}
	rv := reflect.ValueOf(in)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return &apierror.InvalidParamsError{
			Context: operation,
			Fields:  []apierror.ParamError{{Field: "input", Reason: "must not be nil"}},
		}
	}

	err := validatorInstance().Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrapf(err, "validate %s input", operation)
	}

	perr := &apierror.InvalidParamsError{Context: operation}
	for _, fe := range verrs {
		perr.Add(fieldPath(fe.Namespace()), reason(fe))
	}
	return perr
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " element(s) or characters"
	case "max":
		return "must have at most " + fe.Param() + " element(s) or characters"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
