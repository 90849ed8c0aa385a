// Package validation holds the pure payment-credential validators. These are
// stateless and do no I/O; the checkout frontend duplicates them for
// optimistic feedback but this copy is the authoritative one.
package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	vpaPattern        = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
)

// ValidateVPA reports whether id is a well-formed UPI virtual payment
// address ("local@handle").
func ValidateVPA(id string) bool {
	if id == "" {
		return false
	}
	return vpaPattern.MatchString(id)
}

// cleanCardNumber strips the spaces and hyphens users type between digit
// groups.
func cleanCardNumber(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	return strings.ReplaceAll(number, "-", "")
}

// ValidateLuhn reports whether number passes the Luhn checksum. Anything
// that is not 13-19 digits after cleaning is rejected outright.
func ValidateLuhn(number string) bool {
	cleaned := cleanCardNumber(number)
	if !cardNumberPattern.MatchString(cleaned) {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// CardNetwork classifies a card number by its issuer prefix. The prefix
// ranges are mutually exclusive by construction.
func CardNetwork(number string) string {
	cleaned := cleanCardNumber(number)
	if cleaned == "" {
		return "unknown"
	}

	switch {
	case strings.HasPrefix(cleaned, "4"):
		return "visa"
	case len(cleaned) >= 2 && cleaned[0] == '5' && cleaned[1] >= '1' && cleaned[1] <= '5':
		return "mastercard"
	case strings.HasPrefix(cleaned, "34") || strings.HasPrefix(cleaned, "37"):
		return "amex"
	case strings.HasPrefix(cleaned, "60") || strings.HasPrefix(cleaned, "65"):
		return "rupay"
	case len(cleaned) >= 2 && cleaned[0] == '8' && cleaned[1] >= '1' && cleaned[1] <= '9':
		return "rupay"
	default:
		return "unknown"
	}
}

// ValidateExpiry reports whether the month/year pair is a real month that is
// not in the past. Two-digit years are taken as 20xx. A card expiring this
// calendar month is still valid.
func ValidateExpiry(month, year int) bool {
	return validateExpiryAt(month, year, time.Now())
}

func validateExpiryAt(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}

	currentYear, currentMonth, _ := now.Date()
	if year < currentYear {
		return false
	}
	if year == currentYear && month < int(currentMonth) {
		return false
	}
	return true
}

// CardLast4 returns the last four digits of a cleaned card number.
func CardLast4(number string) string {
	cleaned := cleanCardNumber(number)
	if len(cleaned) < 4 {
		return cleaned
	}
	return cleaned[len(cleaned)-4:]
}
