package bind

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	perr "piptrade/internal/platform/errors"
	"piptrade/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// Validator bundles the shared validator with its english translator
type Validator struct {
	V     *validator.Validate
	Trans ut.Translator
}

// short overrides for the stock english messages, {0} is the field, {1} the param
var shortMessages = map[string]string{
	"min": "{0} must be at least {1}",
	"max": "{0} must be at most {1}",
	"gte": "{0} must be {1} or greater",
	"lte": "{0} must be {1} or less",
}

var shared = sync.OnceValue(func() *Validator {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = entrans.RegisterDefaultTranslations(v, trans)

	for tag, text := range shortMessages {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return &Validator{V: v, Trans: trans}
})

// Get returns the process wide validator
func Get() *Validator { return shared() }

// jsonName reports fields by their wire name
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// Validate checks v, or each struct element when v is a slice or array
// Anything else passes untouched
func Validate(v any) error {
	rv := deref(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Struct:
		return asValidation(Get().V.Struct(rv.Interface()), "")
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			el := deref(rv.Index(i))
			if el.Kind() != reflect.Struct {
				continue
			}
			if err := asValidation(Get().V.Struct(el.Interface()), "["+strconv.Itoa(i)+"]."); err != nil {
				return err
			}
		}
	}
	return nil
}

func deref(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

// asValidation turns the first validator failure into a coded error naming the field
func asValidation(err error, prefix string) error {
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		logger.Get().Error().Err(inv).Msg("validator misuse")
		return perr.JSONErrf("validation error")
	}
	field, msg := FirstFailure(err)
	return perr.WithField(perr.Validationf("%s%s", prefix, msg), prefix+field)
}

// FirstFailure returns the field and translated message of the first failure
func FirstFailure(err error) (field, msg string) {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Trans)
	}
	if err == nil {
		return "", ""
	}
	return "", err.Error()
}
