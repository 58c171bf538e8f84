package Controllers

import (
	"log"

	frlocale "github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	frtrans "github.com/go-playground/validator/v10/translations/fr"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var validate *validator.Validate
var trans ut.Translator

func init() {
	validate = validator.New()
	french := frlocale.New()
	uni := ut.New(french, french)
	trans, _ = uni.GetTranslator("fr")
	if err := frtrans.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Println("failed to register validator translations:", err)
	}
}

// validationErrors translates a validator error into user-facing messages.
func validationErrors(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Translate(trans))
	}
	return out
}

func knownChild(children []string, name string) bool {
	for _, c := range children {
		if c == name {
			return true
		}
	}
	return false
}
