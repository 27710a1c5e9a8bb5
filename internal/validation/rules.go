package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field limits of cliente
const (
	RUCLength      = 11
	MaxRazonSocial = 200
	MaxTelefono    = 20
	MaxCorreo      = 100
	MaxDireccion   = 200
	MinPhoneDigits = 7
)

// RUCViolation describes why RUC is invalid, empty value means RUC is fine
type RUCViolation string

// RUC violations
const (
	RUCValid    RUCViolation = ""
	RUCRequired RUCViolation = "required"
	RUCBadSize  RUCViolation = "length"
	RUCNotDigit RUCViolation = "digits"
)

var (
	rucRegex   = regexp.MustCompile(`^[0-9]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\-+()]+$`)
	nonDigit   = regexp.MustCompile(`\D`)
)

// CheckRUC returns the first rule RUC breaks
func CheckRUC(ruc string) RUCViolation {
	if strings.TrimSpace(ruc) == "" {
		return RUCRequired
	}

	if len(ruc) != RUCLength {
		return RUCBadSize
	}

	if !rucRegex.MatchString(ruc) {
		return RUCNotDigit
	}
	return RUCValid
}

// ValidRUC reports whether RUC consists of exactly 11 digits
func ValidRUC(ruc string) bool {
	return CheckRUC(ruc) == RUCValid
}

// ValidRazonSocial reports whether legal name is present and fits column
func ValidRazonSocial(razonSocial string) bool {
	return NotBlank(razonSocial) && utf8.RuneCountInString(razonSocial) <= MaxRazonSocial
}

// ValidEmail reports whether email is absent or looks like an address
func ValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return true
	}
	return emailRegex.MatchString(email) && utf8.RuneCountInString(email) <= MaxCorreo
}

// ValidPhone reports whether phone is absent or has allowed symbols and enough digits
func ValidPhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}

	if !phoneRegex.MatchString(phone) || utf8.RuneCountInString(phone) > MaxTelefono {
		return false
	}
	return len(nonDigit.ReplaceAllString(phone, "")) >= MinPhoneDigits
}

// ValidDireccion reports whether address fits column
func ValidDireccion(direccion string) bool {
	return utf8.RuneCountInString(direccion) <= MaxDireccion
}

// NotBlank reports whether s contains anything but whitespaces
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
