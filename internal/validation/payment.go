package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// Payment validates the payment step. Only the card path has field rules;
// wallet and redirect methods collect their details elsewhere.
func Payment(details models.PaymentDetails) *Result {
	r := &Result{}

	method := effectiveMethod(details.Method)
	r.check("method", method,
		validation.In(models.PaymentCreditCard, models.PaymentPayPal, models.PaymentApplePay).
			Error("Unsupported payment method"),
	)
	if method != models.PaymentCreditCard {
		return r
	}

	r.check("card_number", details.CardNumber,
		validation.Required.Error("Card number is required"),
		validation.By(func(value any) error {
			if !cardNumberPattern.MatchString(NormalizeCardNumber(value.(string))) {
				return errors.New("Please enter a valid 16-digit card number")
			}
			return nil
		}),
	)
	r.check("cardholder_name", strings.TrimSpace(details.CardholderName),
		validation.Required.Error("Cardholder name is required"),
	)
	r.check("expiry", details.Expiry,
		validation.Required.Error("Expiry date is required"),
		validation.Match(expiryPattern).Error("Please use MM/YY format"),
	)
	r.check("cvv", details.CVV,
		validation.Required.Error("CVV is required"),
		validation.Match(cvvPattern).Error("CVV must be 3 or 4 digits"),
	)

	return r
}

func effectiveMethod(m models.PaymentMethod) models.PaymentMethod {
	if m == "" {
		return models.PaymentCreditCard
	}
	return m
}

// NormalizeCardNumber strips all whitespace.
func NormalizeCardNumber(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FormatCardNumber groups the first 16 digits in runs of four. Input with
// fewer than four digits is returned unchanged.
func FormatCardNumber(s string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if len(digits) < 4 {
		return s
	}
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+4, len(digits))
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// PaymentDescriptor is the human-readable payment method stored on a booking.
func PaymentDescriptor(details models.PaymentDetails) string {
	switch effectiveMethod(details.Method) {
	case models.PaymentPayPal:
		return "PayPal"
	case models.PaymentApplePay:
		return "Apple Pay"
	default:
		n := NormalizeCardNumber(details.CardNumber)
		if len(n) > 4 {
			n = n[len(n)-4:]
		}
		return "Card ending in " + n
	}
}
