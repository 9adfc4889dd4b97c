package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const ptCountryCode = "+351"

var ptPhoneRegex = regexp.MustCompile(`^(\+351)?9\d{8}$`)

// NormalizePhone strips spaces and dashes and prefixes the Portuguese country code.
// "912 345 678", "351912345678" and "+351912345678" all become "+351912345678".
func NormalizePhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	switch {
	case strings.HasPrefix(cleaned, ptCountryCode):
		return cleaned
	case strings.HasPrefix(cleaned, "351"):
		return "+" + cleaned
	default:
		return ptCountryCode + cleaned
	}
}

// IsValidPTPhone reports whether phone is a Portuguese mobile number
func IsValidPTPhone(phone string) bool {
	return ptPhoneRegex.MatchString(NormalizePhone(phone))
}

// MaskPhone hides the middle digits of a Portuguese number for public listings (962***040)
func MaskPhone(phone string) string {
	digits := strings.TrimPrefix(NormalizePhone(phone), ptCountryCode)
	if len(digits) != 9 {
		return "***"
	}
	return digits[:3] + "***" + digits[6:]
}

// MaskName keeps the first name and the initial of the last name (João S.)
func MaskName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	last, _ := utf8.DecodeRuneInString(parts[len(parts)-1])
	return parts[0] + " " + string(unicode.ToUpper(last)) + "."
}
