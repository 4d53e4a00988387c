package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newDTOValidator validates request DTOs outside of gin binding (imports, CLI)
// using the same `binding` tags, reporting fields by their JSON names.
func newDTOValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationMessage renders the first failing field of a validator error.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
	}
	return err.Error()
}
