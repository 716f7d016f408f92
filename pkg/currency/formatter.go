package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Format renders amount in en-US style with two fraction digits:
// "$1,543.36", "-£12.50", "CHF 1,000.00".
func Format(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(code)

	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	formatted := addThousandsSeparator(intPart, ",") + "." + fracPart

	prefix, ok := symbols[code]
	if !ok {
		prefix = code + " "
	}

	result := prefix + formatted
	if negative {
		result = "-" + result
	}

	return result
}

func FormatFloat(amount float64, code string) string {
	return Format(decimal.NewFromFloat(amount), code)
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
