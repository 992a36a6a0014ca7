package directory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/financas/internal/ledger"
	"fjacquet/financas/internal/models"
)

var at = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	d := New("principal", "2026-10")
	assert.Equal(t, "Principal", d.CurrentUser)
	assert.Equal(t, "2026-10", d.CurrentMonth)
	require.Contains(t, d.Users, "Principal")

	d = New("  ", "2026-10")
	assert.Equal(t, models.DefaultUserName, d.CurrentUser)
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"maria":          "Maria",
		"MARIA":          "Maria",
		"  ana   paula ": "Ana Paula",
		"joão":           "João",
		"":               "",
		"   ":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeName(in), "input %q", in)
	}
}

func TestSwitchUser_CaseInsensitiveIdentity(t *testing.T) {
	d := New("Principal", "2026-10")

	first, created, err := d.SwitchUser("maria")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Maria", d.CurrentUser)
	_, _ = first.CreditGeneral(decimal.NewFromInt(10), "x", at)

	second, created, err := d.SwitchUser("MARIA")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, []string{"Maria", "Principal"}, d.Names())
}

func TestSwitchUser_EmptyName(t *testing.T) {
	d := New("Principal", "2026-10")
	_, _, err := d.SwitchUser("   ")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, "Principal", d.CurrentUser)
	assert.Len(t, d.Users, 1)
}

func TestResolveCurrent_AutoCreates(t *testing.T) {
	d := &Directory{CurrentUser: "Fantasma"}
	l := d.ResolveCurrent()
	require.NotNil(t, l)
	assert.True(t, l.Total().IsZero())
	assert.Contains(t, d.Users, "Fantasma")
}

func TestRollOverIfNeeded(t *testing.T) {
	d := New("Principal", "2026-09")
	principal := d.ResolveCurrent()
	_, _ = principal.CreditGeneral(decimal.NewFromInt(100), "salário", at)
	_, _ = principal.AddFixedBill(decimal.NewFromInt(50), 10, "luz")
	maria, _, _ := d.SwitchUser("Maria")
	_, _ = maria.CreditVoucher(models.MealVoucher, decimal.NewFromInt(600), at)

	assert.True(t, d.RollOverIfNeeded("2026-10"))
	assert.Equal(t, "2026-10", d.CurrentMonth)
	for _, name := range d.Names() {
		assert.Empty(t, d.Users[name].Transactions, name)
	}
	assert.True(t, principal.Balance.Equal(decimal.NewFromInt(100)))
	assert.Len(t, principal.Bills, 1)
	assert.True(t, maria.MealVoucher.Equal(decimal.NewFromInt(600)))

	// idempotent for the same month
	_, _ = maria.DebitGeneral(decimal.NewFromInt(5), "café", at)
	assert.False(t, d.RollOverIfNeeded("2026-10"))
	assert.Len(t, maria.Transactions, 1)
}

func TestNormalize_RepairsDecodedState(t *testing.T) {
	d := &Directory{Users: map[string]*ledger.Ledger{"Principal": nil}}
	d.Normalize("Principal", "2026-10")
	assert.Equal(t, "Principal", d.CurrentUser)
	assert.Equal(t, "2026-10", d.CurrentMonth)
	require.NotNil(t, d.Users["Principal"])
	assert.NotNil(t, d.Users["Principal"].Transactions)
}

func TestWipe(t *testing.T) {
	d := New("Principal", "2026-10")
	_, _, _ = d.SwitchUser("Maria")
	d.Wipe("Principal", "2026-11")
	assert.Equal(t, []string{"Principal"}, d.Names())
	assert.Equal(t, "Principal", d.CurrentUser)
	assert.Equal(t, "2026-11", d.CurrentMonth)
}

func TestLedgerLookup(t *testing.T) {
	d := New("Principal", "2026-10")
	_, ok := d.Ledger("principal")
	assert.True(t, ok)
	_, ok = d.Ledger("ninguém")
	assert.False(t, ok)
}

func TestMonthKeyAndClocks(t *testing.T) {
	assert.Equal(t, "2026-10", MonthKey(at))
	assert.Equal(t, at, FixedClock(at)())
	assert.NotNil(t, SystemClock(nil)())
}
