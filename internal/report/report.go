// Package report renders the chat responses. Every text is Portuguese and
// uses WhatsApp markup (*bold*) and emoji; amounts go through
// currencyutils.Format so they always show two decimals.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/currencyutils"
	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/ledger"
	"fjacquet/financas/internal/models"
)

// DefaultRecentLimit is how many transactions "extrato" shows.
const DefaultRecentLimit = 10

// Renderer builds response strings.
type Renderer struct {
	RecentLimit int
}

// NewRenderer returns a Renderer. A non-positive limit uses DefaultRecentLimit.
func NewRenderer(recentLimit int) *Renderer {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Renderer{RecentLimit: recentLimit}
}

var kindEmoji = map[models.TransactionKind]string{
	models.KindIncome:             "💵",
	models.KindExpense:            "💸",
	models.KindMealVoucherExpense: "🍽️",
	models.KindFoodVoucherExpense: "🛒",
	models.KindMealVoucherCredit:  "💳",
	models.KindFoodVoucherCredit:  "💳",
}

func emojiFor(kind models.TransactionKind) string {
	if e, ok := kindEmoji[kind]; ok {
		return e
	}
	return "📌"
}

func voucherEmoji(v models.Voucher) string {
	if v == models.FoodVoucher {
		return "🛒"
	}
	return "🍽️"
}

func money(d decimal.Decimal) string {
	return currencyutils.Format(d)
}

func balancesBlock(l *ledger.Ledger) string {
	return fmt.Sprintf("💰 Saldo: %s\n🍽️ VR: %s\n🛒 VA: %s",
		money(l.Balance), money(l.MealVoucher), money(l.FoodVoucher))
}

// Users

func (r *Renderer) UserCreated(name string) string {
	return fmt.Sprintf("✅ Usuário *%s* criado e selecionado!\n\n💡 Agora todas as transações serão registradas para %s.", name, name)
}

func (r *Renderer) UserSwitched(name string, l *ledger.Ledger) string {
	return fmt.Sprintf("✅ Usuário alterado para *%s*\n\n%s", name, balancesBlock(l))
}

func (r *Renderer) EmptyUserName() string {
	return "❌ Digite o nome do usuário!\nEx: usuario Maria"
}

func (r *Renderer) CurrentUser(name string) string {
	return fmt.Sprintf("👤 Usuário atual: *%s*\n\n💡 Para trocar: usuario [nome]\nEx: usuario Maria", name)
}

// UserList shows every user with balances, the selected one marked.
func (r *Renderer) UserList(dir *directory.Directory) string {
	var b strings.Builder
	b.WriteString("👥 *USUÁRIOS CADASTRADOS:*\n\n")
	for _, name := range dir.Names() {
		l := dir.Users[name]
		marker := "  "
		if name == dir.CurrentUser {
			marker = "✅"
		}
		fmt.Fprintf(&b, "%s *%s*\n", marker, name)
		fmt.Fprintf(&b, "   💰 Saldo: %s\n", money(l.Balance))
		fmt.Fprintf(&b, "   🍽️ VR: %s\n", money(l.MealVoucher))
		fmt.Fprintf(&b, "   🛒 VA: %s\n\n", money(l.FoodVoucher))
	}
	b.WriteString("💡 Para trocar: usuario [nome]")
	return b.String()
}

// History management

func (r *Renderer) HistoryCleared(l *ledger.Ledger) string {
	return "🗑️ Histórico de transações apagado!\n\n💡 Seus saldos foram mantidos:\n" + balancesBlock(l)
}

func (r *Renderer) UserReset(name string) string {
	return fmt.Sprintf("🗑️ *Dados limpos!*\n\n✅ Usuário *%s* resetado:\n💰 Saldos zerados\n📋 Histórico apagado\n💳 Contas fixas removidas\n\n💡 Outros usuários não foram afetados", name)
}

func (r *Renderer) Undone(tx models.Transaction, l *ledger.Ledger) string {
	return fmt.Sprintf("🔙 *Última transação desfeita!*\n\n❌ %s\n💰 %s\n⏰ %s\n\n💰 Saldo atual: %s",
		tx.Description, money(tx.Amount), tx.Timestamp, money(l.Balance))
}

func (r *Renderer) NothingToUndo() string {
	return "❌ Nenhuma transação para apagar!"
}

func (r *Renderer) Wiped() string {
	return "✅ Dados zerados com sucesso!\n\n⚠️ Todos os usuários e dados foram apagados!"
}

// Errors

// FormatError shows the usage hint of a malformed command.
func (r *Renderer) FormatError(usage string) string {
	return "❌ Formato inválido!\n" + usage
}

func (r *Renderer) InsufficientFunds(v models.Voucher, available decimal.Decimal) string {
	return fmt.Sprintf("⚠️ Saldo insuficiente no %s!\n💳 Disponível: %s", v.Label(), money(available))
}

func (r *Renderer) InvalidAmount() string {
	return "❌ Valor inválido! Use um valor positivo."
}

func (r *Renderer) Unrecognized() string {
	return "❓ Comando não reconhecido.\nEnvie *ajuda* para ver os comandos disponíveis."
}
