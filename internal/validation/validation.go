package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	once sync.Once

	// standalone validates structs outside of a request binding context
	// (form submission flows). It reads the same `binding` tags Gin uses
	// so request payload types carry a single set of rules.
	standalone *govalidator.Validate
	trans      ut.Translator
)

func setup() {
	standalone = govalidator.New()
	standalone.SetTagName("binding")
	registerCommon(standalone)

	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		registerCommon(v)
	}
}

// registerCommon applies shared configuration to a validator instance:
// JSON tag names in error messages plus English translations.
func registerCommon(v *govalidator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(v, trans)
}

// Setup eagerly initializes both the standalone validator and Gin's
// binding engine. Safe to call more than once.
func Setup() {
	once.Do(setup)
}

// Check validates dst and returns a map of field name → human-readable
// error message, or nil when the value is valid.
func Check(dst interface{}) map[string]string {
	once.Do(setup)

	err := standalone.Struct(dst)
	if err == nil {
		return nil
	}
	return TranslateErrors(err)
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	once.Do(setup)

	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}
