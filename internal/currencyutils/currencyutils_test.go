package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  string
		hasError  bool
	}{
		{"Integer", "100", "100", false},
		{"Dot decimal", "12.50", "12.5", false},
		{"Comma decimal", "12,90", "12.9", false},
		{"With currency marker", "R$ 7,5", "7.5", false},
		{"With currency word", "30reais", "30", false},
		{"European thousands", "1.234,56", "1234.56", false},
		{"US thousands", "1,234.56", "1234.56", false},
		{"Zero", "0", "0", false},
		{"Spaces", "  45  ", "45", false},
		{"Negative", "-5", "", true},
		{"Empty", "", "", true},
		{"Non-numeric", "abc", "", true},
		{"Malformed", "1.2.3", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.amountStr)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)), "got %s", got)
		})
	}
}

func TestParseAmount_NegativeSentinel(t *testing.T) {
	_, err := ParseAmount("-10")
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 50.00", Format(decimal.NewFromInt(50)))
	assert.Equal(t, "R$ -12.30", Format(decimal.RequireFromString("-12.3")))
	assert.Equal(t, "+R$ 600.00", FormatSigned("+", decimal.NewFromInt(600)))
}

func TestSum(t *testing.T) {
	total := Sum(decimal.RequireFromString("0.1"), decimal.RequireFromString("0.2"))
	assert.Equal(t, "0.3", total.String())
	assert.True(t, Sum().IsZero())
}
