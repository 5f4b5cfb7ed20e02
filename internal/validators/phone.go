package validators

import "strings"

// PhoneDisplayPrefix is shown in front of the stored ten digits.
const PhoneDisplayPrefix = "+(90) "

// PhoneDigits is the length of a normalized phone number.
const PhoneDigits = 10

// NormalizePhone reduces user input to the local ten digit number. Non-digits
// are stripped; a number with the 90 country code or any number longer than
// ten digits keeps its last ten. Shorter input is returned as is so the
// length check can reject it.
func NormalizePhone(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "90") && len(digits) >= 12 {
		return digits[len(digits)-PhoneDigits:]
	}
	if len(digits) > PhoneDigits {
		return digits[len(digits)-PhoneDigits:]
	}
	return digits
}

// IsPhone reports whether v normalizes to exactly ten digits.
func IsPhone(v string) bool {
	return len(NormalizePhone(v)) == PhoneDigits
}

// FormatPhone renders stored digits for display; empty stays empty.
func FormatPhone(digits string) string {
	if digits == "" {
		return ""
	}
	return PhoneDisplayPrefix + digits
}
