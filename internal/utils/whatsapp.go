package utils

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
)

const whatsAppBaseURL = "https://wa.me/"

// localNumberLength is the length of a national number that still needs the country code.
const localNumberLength = 10

// NormalizePhone keeps only the digits of phone and prefixes countryCode to
// ten-digit local numbers.
func NormalizePhone(phone, countryCode string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == localNumberLength {
		digits = countryCode + digits
	}
	return digits
}

// BuildWhatsAppLink returns the wa.me deep link for text sent to phone.
func BuildWhatsAppLink(phone, countryCode, text string) (string, error) {
	digits := NormalizePhone(phone, strings.TrimFunc(countryCode, func(r rune) bool { return !unicode.IsDigit(r) }))
	if digits == "" {
		return "", fmt.Errorf("%w: record has no phone number", apperrors.ErrMissingData)
	}
	return whatsAppBaseURL + digits + "?text=" + encodeURIComponent(text), nil
}

// encodeURIComponent percent-encodes text for a query value, spaces as %20.
func encodeURIComponent(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
