package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/ledger"
	"fjacquet/financas/internal/models"
)

var at = time.Date(2026, 10, 16, 12, 30, 0, 0, time.Local)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRenderer_ExpenseRecorded(t *testing.T) {
	r := NewRenderer(0)
	l := ledger.New()
	l.Balance = d("100")
	tx, err := l.DebitGeneral(d("50"), "almoço", at)
	require.NoError(t, err)

	out := r.ExpenseRecorded(tx, l)
	assert.Contains(t, out, "R$ 50.00 - almoço")
	assert.Contains(t, out, "Saldo: R$ 50.00")
}

func TestRenderer_Balances(t *testing.T) {
	l := ledger.New()
	l.Balance = d("10.5")
	l.MealVoucher = d("20")
	l.FoodVoucher = d("30")

	out := NewRenderer(0).Balances(l)
	assert.Contains(t, out, "*Saldo Geral:* R$ 10.50")
	assert.Contains(t, out, "*Vale Refeição:* R$ 20.00")
	assert.True(t, strings.HasSuffix(out, "R$ 60.50"))
}

func TestRenderer_RecentHistory(t *testing.T) {
	r := NewRenderer(2)
	l := ledger.New()
	assert.Equal(t, r.NoTransactions(), r.RecentHistory(l))

	_, err := l.CreditGeneral(d("3000"), "salário", at)
	require.NoError(t, err)
	_, err = l.DebitGeneral(d("50"), "almoço", at)
	require.NoError(t, err)
	_, err = l.CreditVoucher(models.MealVoucher, d("600"), at)
	require.NoError(t, err)

	out := r.RecentHistory(l)
	assert.Contains(t, out, "ÚLTIMAS 2 TRANSAÇÕES")
	assert.Contains(t, out, "💳 +R$ 600.00\n   Crédito VR\n   16/10/2026 12:30")
	assert.Contains(t, out, "💸 -R$ 50.00")
	assert.NotContains(t, out, "salário")
	assert.Contains(t, out, "💡 Total: 3 transações")
	// newest first
	assert.Less(t, strings.Index(out, "Crédito VR"), strings.Index(out, "almoço"))
}

func TestRenderer_FullHistory(t *testing.T) {
	r := NewRenderer(1)
	l := ledger.New()
	_, _ = l.CreditGeneral(d("3000"), "salário", at)
	_, _ = l.DebitGeneral(d("50"), "almoço", at)

	out := r.FullHistory(l)
	assert.Contains(t, out, "TODAS AS TRANSAÇÕES (2)")
	assert.Contains(t, out, "💵 +R$ 3000.00 - salário")
	assert.Contains(t, out, "💸 -R$ 50.00 - almoço")
}

func TestRenderer_FixedBills(t *testing.T) {
	r := NewRenderer(0)
	l := ledger.New()
	assert.Contains(t, r.FixedBills(l), "Nenhuma conta fixa cadastrada")

	_, _ = l.AddFixedBill(d("1200"), 20, "aluguel")
	_, _ = l.AddFixedBill(d("99.9"), 5, "internet")

	out := r.FixedBills(l)
	assert.Contains(t, out, "1. 📅 Dia 5\n   💰 R$ 99.90\n   📝 internet")
	assert.Contains(t, out, "2. 📅 Dia 20")
	assert.Contains(t, out, "*Total mensal:* R$ 1299.90")
}

func TestRenderer_UserList(t *testing.T) {
	dir := directory.New("Principal", "2026-10")
	_, _, err := dir.SwitchUser("maria")
	require.NoError(t, err)

	out := NewRenderer(0).UserList(dir)
	assert.Contains(t, out, "✅ *Maria*")
	assert.Contains(t, out, "   *Principal*")
	assert.Less(t, strings.Index(out, "Maria"), strings.Index(out, "Principal"))
}

func TestRenderer_Errors(t *testing.T) {
	r := NewRenderer(0)
	assert.Equal(t, "⚠️ Saldo insuficiente no VR!\n💳 Disponível: R$ 20.00", r.InsufficientFunds(models.MealVoucher, d("20")))
	assert.Equal(t, "❌ Conta #3 não encontrada!", r.FixedBillNotFound(3, false))
	assert.Contains(t, r.FixedBillNotFound(3, true), "contas fixas")
	assert.True(t, strings.HasPrefix(r.FormatError("Use: x"), "❌ Formato inválido!"))
}

func TestRenderer_SummaryAndStats(t *testing.T) {
	r := NewRenderer(0)
	l := ledger.New()
	_, _ = l.CreditGeneral(d("3000"), "salário", at)
	_, _ = l.CreditVoucher(models.FoodVoucher, d("300"), at)
	_, _ = l.DebitVoucher(models.FoodVoucher, d("120"), "mercado", at)
	_, _ = l.DebitGeneral(d("50"), "almoço", at)

	summary := r.MonthSummary(l)
	assert.Contains(t, summary, "Total Entradas: R$ 3300.00")
	assert.Contains(t, summary, "Total Gastos: R$ 170.00")
	assert.Contains(t, summary, "Vale Alimentação: R$ 120.00")
	assert.Contains(t, summary, "*Transações:* 4")

	stats := r.Stats(l)
	assert.Contains(t, stats, "Total de transações: 4")
	assert.Contains(t, stats, "Gastos: 2")
	assert.Contains(t, stats, "Entradas: 2")
}

func TestRenderer_GuideUsesLimit(t *testing.T) {
	r := NewRenderer(15)
	assert.Contains(t, r.Help(), fmt.Sprintf("Últimas %d transações", 15))
	assert.Contains(t, r.Welcome("Principal"), "*Usuário:* Principal")
}
