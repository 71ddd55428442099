package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var (
	zipCodePattern     = regexp.MustCompile(`^\d{5}$`)
	phoneNumberPattern = regexp.MustCompile(`^\+?[0-9][0-9\- ().]{6,18}[0-9]$`)
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := Register(v); err != nil {
			log.Fatalf("register validators failed: %s", err)
		}
	}
}

// Register installs json tag names and the custom rules on v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"zipcode":     zipCodeValidator,
		"phonenumber": phoneNumberValidator,
		"date":        dateValidator,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

var zipCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return zipCodePattern.MatchString(fl.Field().String())
}

var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	return phoneNumberPattern.MatchString(fl.Field().String())
}

var dateValidator validator.Func = func(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
