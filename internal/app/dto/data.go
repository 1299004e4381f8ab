package dto

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const positiveAmountTag = "positive_amount"

var (
	Validate = newValidator()
	trans    ut.Translator
)

func newValidator() *validator.Validate {
	v := validator.New()
	//nolint:errcheck
	v.RegisterValidation(positiveAmountTag, positiveAmount)

	return v
}

// positiveAmount rejects amounts that read as a number not above zero. Free
// text such as "50k INR" passes.
func positiveAmount(fl validator.FieldLevel) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	if err != nil {
		return true
	}

	return n > 0
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	err = Validate.RegisterTranslation(positiveAmountTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(positiveAmountTag, "{0} must be greater than 0", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(positiveAmountTag, fe.Field())
			return t
		})
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return nil
}

// ValidateSingleError validates req and reports only the first failing field,
// translated when the validator has been initialized.
func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			if trans == nil {
				return errors.New(ve[0].Error())
			}
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}
