package report

import (
	"fmt"
	"strings"

	"fjacquet/financas/internal/currencyutils"
	"fjacquet/financas/internal/ledger"
	"fjacquet/financas/internal/models"
)

func (r *Renderer) ExpenseRecorded(tx models.Transaction, l *ledger.Ledger) string {
	return fmt.Sprintf("✅ Gasto registrado!\n💸 %s - %s\n💰 Saldo: %s",
		money(tx.Amount), tx.Description, money(l.Balance))
}

func (r *Renderer) IncomeRecorded(tx models.Transaction, l *ledger.Ledger) string {
	return fmt.Sprintf("✅ Entrada registrada!\n💵 %s - %s\n💰 Saldo: %s",
		money(tx.Amount), tx.Description, money(l.Balance))
}

func (r *Renderer) VoucherDebited(v models.Voucher, tx models.Transaction, l *ledger.Ledger) string {
	return fmt.Sprintf("✅ Gasto %s registrado!\n%s %s - %s\n💳 Saldo %s: %s",
		v.Label(), voucherEmoji(v), money(tx.Amount), tx.Description, v.Label(), money(l.VoucherBalance(v)))
}

func (r *Renderer) VoucherCredited(v models.Voucher, tx models.Transaction, l *ledger.Ledger) string {
	return fmt.Sprintf("✅ %s creditado!\n💳 + %s\n%s Saldo %s: %s",
		v.Label(), money(tx.Amount), voucherEmoji(v), v.Label(), money(l.VoucherBalance(v)))
}

// Balances shows the three balances and their sum.
func (r *Renderer) Balances(l *ledger.Ledger) string {
	return fmt.Sprintf(`💰 *SALDOS ATUAIS*

💵 *Saldo Geral:* %s
🍽️ *Vale Refeição:* %s
🛒 *Vale Alimentação:* %s

📊 *Total Disponível:*
%s`, money(l.Balance), money(l.MealVoucher), money(l.FoodVoucher), money(l.Total()))
}

func (r *Renderer) NoTransactions() string {
	return "📋 Nenhuma transação registrada ainda."
}

// RecentHistory lists the newest RecentLimit transactions, newest first.
func (r *Renderer) RecentHistory(l *ledger.Ledger) string {
	if len(l.Transactions) == 0 {
		return r.NoTransactions()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *ÚLTIMAS %d TRANSAÇÕES*\n\n", r.RecentLimit)
	for _, tx := range l.Recent(r.RecentLimit) {
		fmt.Fprintf(&b, "%s %s\n", emojiFor(tx.Kind), signed(tx))
		fmt.Fprintf(&b, "   %s\n", tx.Description)
		fmt.Fprintf(&b, "   %s\n\n", tx.Timestamp)
	}
	if total := len(l.Transactions); total > r.RecentLimit {
		fmt.Fprintf(&b, "💡 Total: %d transações\n", total)
		b.WriteString("Use 'extrato completo' para ver todas")
	}
	return strings.TrimSpace(b.String())
}

// FullHistory lists every transaction, newest first.
func (r *Renderer) FullHistory(l *ledger.Ledger) string {
	if len(l.Transactions) == 0 {
		return r.NoTransactions()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *TODAS AS TRANSAÇÕES (%d)*\n\n", len(l.Transactions))
	for _, tx := range l.Recent(len(l.Transactions)) {
		fmt.Fprintf(&b, "%s %s - %s\n", emojiFor(tx.Kind), signed(tx), tx.Description)
		fmt.Fprintf(&b, "   %s\n\n", tx.Timestamp)
	}
	return strings.TrimSpace(b.String())
}

func signed(tx models.Transaction) string {
	return currencyutils.FormatSigned(tx.Sign(), tx.Amount)
}

func (r *Renderer) Stats(l *ledger.Ledger) string {
	s := l.Stats()
	return fmt.Sprintf(`📊 *ESTATÍSTICAS*

📝 Total de transações: %d
💸 Gastos: %d
💵 Entradas: %d

💡 Use 'extrato' para ver as últimas %d
💡 Use 'extrato completo' para ver todas`, s.Total, s.Expenses, s.Credits, r.RecentLimit)
}

func (r *Renderer) MonthSummary(l *ledger.Ledger) string {
	s := l.Summary()
	return fmt.Sprintf(`📊 *RESUMO DO MÊS*

💰 *SALDOS ATUAIS:*
• Geral: %s
• VR: %s
• VA: %s

📈 *MOVIMENTAÇÃO:*
• Total Entradas: %s
• Total Gastos: %s

💸 *GASTOS POR CATEGORIA:*
• Geral: %s
• Vale Refeição: %s
• Vale Alimentação: %s

📝 *Transações:* %d`,
		money(s.Balance), money(s.MealVoucher), money(s.FoodVoucher),
		money(s.TotalIn), money(s.TotalOut),
		money(s.GeneralOut), money(s.MealVoucherOut), money(s.FoodVoucherOut),
		s.TransactionCount)
}
