package listing

import (
	"github.com/umalmyha/clientes/internal/validation"
)

// FieldInvalid applies single field rule
func FieldInvalid(field Field, value string) bool {
	switch field {
	case FieldRUC:
		return !validation.ValidRUC(value)
	case FieldRazonSocial:
		return !validation.ValidRazonSocial(value)
	case FieldTelefono:
		return !validation.ValidPhone(value)
	case FieldCorreo:
		return !validation.ValidEmail(value)
	case FieldDireccion:
		return !validation.ValidDireccion(value)
	}
	return false
}

// ValidateForm applies every field rule
func ValidateForm(f Form) FieldErrors {
	var errs FieldErrors
	for _, field := range Fields {
		errs = errs.with(field, FieldInvalid(field, f.Get(field)))
	}
	return errs
}

// FieldMessage explains why value of field is rejected, empty when it is fine
func FieldMessage(field Field, value string) string {
	if !FieldInvalid(field, value) {
		return ""
	}

	switch field {
	case FieldRUC:
		switch validation.CheckRUC(value) {
		case validation.RUCRequired:
			return "El RUC es obligatorio"
		case validation.RUCBadSize:
			return "El RUC debe tener exactamente 11 dígitos"
		default:
			return "El RUC solo puede contener números"
		}
	case FieldRazonSocial:
		if !validation.NotBlank(value) {
			return "La razón social es obligatoria"
		}
		return "La razón social no puede superar 200 caracteres"
	case FieldTelefono:
		return "Formato de teléfono inválido"
	case FieldCorreo:
		return "Formato de correo electrónico inválido"
	default:
		return "La dirección no puede superar 200 caracteres"
	}
}
