package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"agroflow-backend/pkg/i18n"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	ptTranslations "github.com/go-playground/validator/v10/translations/pt"
)

// FieldErrors maps a JSON field name to a localized message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation error"
	}
	b, err := json.Marshal(fe)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Fields returns the field names in stable order.
func (fe FieldErrors) Fields() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fieldMessages picks the i18n key for a failed (field, tag) pair. The same
// message is used for every tag on a field, matching what the form shows.
var fieldMessages = map[string]i18n.Key{
	"name":    i18n.KeyNameTooShort,
	"email":   i18n.KeyInvalidEmail,
	"message": i18n.KeyMessageTooShort,
}

// Validator validates request structs and reports failures in the
// requested language.
type Validator struct {
	validate    *validator.Validate
	translators map[i18n.Language]ut.Translator
}

// New builds a Validator with PT and EN translations registered.
func New() (*Validator, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(validate)

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, pt.New())

	v := &Validator{
		validate:    validate,
		translators: make(map[i18n.Language]ut.Translator, 2),
	}

	registrations := []struct {
		lang     i18n.Language
		defaults func(*validator.Validate, ut.Translator) error
	}{
		{i18n.EN, enTranslations.RegisterDefaultTranslations},
		{i18n.PT, ptTranslations.RegisterDefaultTranslations},
	}

	for _, r := range registrations {
		trans, ok := uni.GetTranslator(r.lang.String())
		if !ok {
			return nil, fmt.Errorf("validation: translator %q not found", r.lang)
		}
		if err := r.defaults(validate, trans); err != nil {
			return nil, fmt.Errorf("validation: register %s defaults: %w", r.lang, err)
		}
		if err := registerContactTranslations(validate, trans, r.lang); err != nil {
			return nil, err
		}
		v.translators[r.lang] = trans
	}

	return v, nil
}

// Validate checks data and returns FieldErrors on failure. Non-validation
// errors (e.g. a nil pointer) are returned unchanged.
func (v *Validator) Validate(data any, lang i18n.Language) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	trans, ok := v.translators[lang]
	if !ok {
		trans = v.translators[i18n.Fallback]
	}

	out := make(FieldErrors, len(validateErrs))
	for _, fe := range validateErrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = fe.Translate(trans)
	}
	return out
}

func registerContactTranslations(validate *validator.Validate, trans ut.Translator, lang i18n.Language) error {
	register := func(ut ut.Translator) error {
		for _, key := range fieldMessages {
			if err := ut.Add(string(key), i18n.Translate(key, lang), true); err != nil {
				return err
			}
		}
		return nil
	}

	translate := func(ut ut.Translator, fe validator.FieldError) string {
		key, ok := fieldMessages[fe.Field()]
		if !ok {
			return fe.(error).Error()
		}
		msg, err := ut.T(string(key))
		if err != nil {
			return i18n.Translate(key, lang)
		}
		return msg
	}

	for _, tag := range []string{"required", "email", "contact_email", "trimmed_min"} {
		if err := validate.RegisterTranslation(tag, trans, register, translate); err != nil {
			return fmt.Errorf("validation: register %s translation for %s: %w", tag, lang, err)
		}
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
