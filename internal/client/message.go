package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Messages shown when response carries nothing better
const (
	UnexpectedErrorMessage = "Ocurrió un error inesperado"
	ValidationErrorMessage = "Error de validación en los datos enviados"
	UnknownStatusMessage   = "Error desconocido"
	BadRequestMessage      = "Solicitud inválida. Verifique los datos ingresados."
	NotFoundMessage        = "Cliente no encontrado."
	ConflictMessage        = "Ya existe un cliente con este RUC."
	InternalErrorMessage   = "Error interno del servidor. Intente nuevamente."
	UnreachableMessage     = "No se pudo conectar con el servidor."
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          BadRequestMessage,
	http.StatusNotFound:            NotFoundMessage,
	http.StatusConflict:            ConflictMessage,
	http.StatusInternalServerError: InternalErrorMessage,
}

type errorBody struct {
	Errors  json.RawMessage `json:"errors"`
	Message string          `json:"message"`
	Title   string          `json:"title"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Message translates error of cliente API into text for user
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		if errors.Is(err, ErrUnreachable) {
			return UnreachableMessage
		}
		return UnexpectedErrorMessage
	}

	if msg := bodyMessage(apiErr.Body); msg != "" {
		return msg
	}

	if msg, ok := statusMessages[apiErr.Status]; ok {
		return msg
	}

	statusText := apiErr.StatusText
	if statusText == "" {
		statusText = UnknownStatusMessage
	}
	return fmt.Sprintf("Error %d: %s", apiErr.Status, statusText)
}

func bodyMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if len(eb.Errors) > 0 && string(eb.Errors) != "null" {
			return validationMessage(eb.Errors)
		}

		if eb.Message != "" {
			return eb.Message
		}
		return eb.Title
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	return trimmed
}

// validationMessage picks first message of either [{field, message}] list or {field: [messages]} map
func validationMessage(raw json.RawMessage) string {
	var list []fieldError
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, fe := range list {
			if fe.Message != "" {
				return fe.Message
			}
		}
		return ValidationErrorMessage
	}

	var byField map[string][]string
	if err := json.Unmarshal(raw, &byField); err == nil {
		fields := make([]string, 0, len(byField))
		for field := range byField {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			if msgs := byField[field]; len(msgs) > 0 && msgs[0] != "" {
				return msgs[0]
			}
		}
	}
	return ValidationErrorMessage
}
