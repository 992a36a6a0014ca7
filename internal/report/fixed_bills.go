package report

import (
	"fmt"
	"strings"

	"fjacquet/financas/internal/ledger"
	"fjacquet/financas/internal/models"
)

const addFixedBillHint = "conta fixa [valor] [dia] [descrição]\nEx: conta fixa 150 10 aluguel"

func (r *Renderer) FixedBillAdded(bill models.FixedBill) string {
	return fmt.Sprintf("✅ Conta fixa cadastrada!\n💳 %s\n📅 Todo dia %d\n📝 %s\n\n💡 Use 'contas fixas' para ver todas",
		money(bill.Amount), bill.Day, bill.Description)
}

func (r *Renderer) InvalidDay() string {
	return "❌ Dia inválido! Use um dia entre 1 e 31."
}

// FixedBills lists the bills with the 1-based numbers pay/remove expect.
func (r *Renderer) FixedBills(l *ledger.Ledger) string {
	bills := l.FixedBills()
	if len(bills) == 0 {
		return "📋 Nenhuma conta fixa cadastrada.\n\n💡 Cadastre: " + addFixedBillHint
	}

	var b strings.Builder
	b.WriteString("💳 *CONTAS FIXAS DO MÊS*\n\n")
	for i, bill := range bills {
		fmt.Fprintf(&b, "%d. 📅 Dia %d\n", i+1, bill.Day)
		fmt.Fprintf(&b, "   💰 %s\n", money(bill.Amount))
		fmt.Fprintf(&b, "   📝 %s\n\n", bill.Description)
	}
	fmt.Fprintf(&b, "📊 *Total mensal:* %s", money(l.FixedBillsTotal()))
	return b.String()
}

// FixedBillNotFound reports a bad bill number; listHint adds the pointer
// to "contas fixas".
func (r *Renderer) FixedBillNotFound(index int, listHint bool) string {
	msg := fmt.Sprintf("❌ Conta #%d não encontrada!", index)
	if listHint {
		msg += "\nUse 'contas fixas' para ver a lista."
	}
	return msg
}

func (r *Renderer) FixedBillRemoved(bill models.FixedBill) string {
	return fmt.Sprintf("🗑️ Conta fixa removida!\n💳 %s\n📝 %s", money(bill.Amount), bill.Description)
}

func (r *Renderer) FixedBillPaid(bill models.FixedBill, l *ledger.Ledger) string {
	return fmt.Sprintf("✅ Pagamento registrado!\n💳 %s\n📝 %s\n💰 Saldo: %s",
		money(bill.Amount), bill.Description, money(l.Balance))
}
