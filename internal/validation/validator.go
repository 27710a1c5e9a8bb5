package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	esTranslations "github.com/go-playground/validator/v10/translations/es"
	"github.com/labstack/echo/v4"
)

const payloadErrorMessage = "Error de validación en los datos enviados"

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError holds all violations found in payload
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for _, err := range e.violations {
		buff.WriteString(err.Message)
		buff.WriteString("\n")
	}

	return buff.String()
}

// Violation appends new violation
func (e *PayloadError) Violation(field, message string) {
	e.violations = append(e.violations, violation{Field: field, Message: message})
}

// Fields returns names of invalid fields in order of appearance
func (e *PayloadError) Fields() []string {
	fields := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// MarshalJSON renders payload error as message with list of violations
func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message string      `json:"message"`
		Errors  []violation `json:"errors"`
	}{
		Message: payloadErrorMessage,
		Errors:  e.violations,
	})
}

// EchoValidator is echo.Validator implementation based on go-playground validator
type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Echo builds EchoValidator
func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// New builds validator with cliente rules registered and spanish messages
func New() (*EchoValidator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]func(string) bool{
		"ruc":        ValidRUC,
		"phone":      ValidPhone,
		"basicemail": ValidEmail,
		"notblank":   NotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, stringRule(fn)); err != nil {
			return nil, fmt.Errorf("failed to register %s validation - %w", tag, err)
		}
	}

	esLocale := es.New()
	unvTranslator := ut.New(esLocale, esLocale)
	trans, ok := unvTranslator.GetTranslator("es")
	if !ok {
		return nil, errors.New("missing es translations")
	}

	if err := esTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations - %w", err)
	}

	messages := map[string]string{
		"ruc":        "El RUC debe tener exactamente 11 dígitos numéricos",
		"phone":      "Formato de teléfono inválido",
		"basicemail": "Formato de correo electrónico inválido",
		"notblank":   "{0} no puede estar vacío",
	}
	for tag, msg := range messages {
		if err := registerTranslation(v, trans, tag, msg); err != nil {
			return nil, fmt.Errorf("failed to register %s translation - %w", tag, err)
		}
	}

	return Echo(v, trans), nil
}

// Validate validates struct according to its tags
func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0)}
	for _, e := range ve {
		pldErr.Violation(e.Field(), e.Translate(v.translator))
	}
	return pldErr
}

func stringRule(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	}
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) error {
	return v.RegisterTranslation(tag, trans, func(t ut.Translator) error {
		return t.Add(tag, text, true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, err := t.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return msg
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
