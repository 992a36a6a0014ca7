// Package currencyutils parses and formats the Brazilian-real amounts that
// appear in chat messages.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/models"
)

// ErrNegativeAmount is returned for amounts below zero; balances only ever
// move by non-negative quantities.
var ErrNegativeAmount = errors.New("amount must not be negative")

var symbolPattern = regexp.MustCompile(`(?i)r\$|\$|reais|real|\s`)

// ParseAmount parses a user-typed amount such as "50", "12,90", "R$ 7.5" or
// "1.234,56" into a decimal. Both "." and "," are accepted as the decimal
// separator.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': empty", amountStr)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return amount, nil
}

// StandardizeAmount strips currency markers and converts the string into the
// form decimal.NewFromString expects.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")

	switch {
	case strings.Contains(amountStr, ",") && strings.Contains(amountStr, "."):
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case strings.Contains(amountStr, ","):
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}

	return amountStr
}

// Format renders an amount the way every response shows it: "R$ 50.00".
func Format(amount decimal.Decimal) string {
	return models.CurrencySymbol + " " + amount.StringFixed(2)
}

// FormatSigned renders an amount with a leading sign glued to the symbol,
// as used in history lines: "+R$ 600.00".
func FormatSigned(sign string, amount decimal.Decimal) string {
	return sign + models.CurrencySymbol + " " + amount.StringFixed(2)
}

// Sum adds up a list of amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
