// Package intent turns a chat message into an Operation by running it
// through a fixed, priority-ordered list of rules. The first rule that
// matches wins.
//
// Rule groups, in order:
//  1. structured system commands (user, history and fixed-bill management)
//  2. free-text financial detection (expense, meal voucher, food voucher, income)
//  3. legacy shorthand ("gasto ", "vr ", "va ", "entrada ", "+vr ", "+va ")
//  4. bare keyword commands ("saldo", "extrato", "resumo", ...)
//
// A message carrying both a system keyword and an amount therefore resolves
// to the system command.
package intent

import (
	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/models"
)

// Classifier holds the rule list built from a keyword configuration.
type Classifier struct {
	rules  []Rule
	logger logging.Logger
}

// NewClassifier builds the rule list. Empty keyword lists fall back to
// DefaultKeywords.
func NewClassifier(kw models.KeywordConfig, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.Discard()
	}
	kw = MergeKeywords(DefaultKeywords(), kw)
	return &Classifier{rules: buildRules(kw), logger: logger}
}

func buildRules(kw models.KeywordConfig) []Rule {
	ft := newFreeText(kw)
	return []Rule{
		prefixed("switch_user", parseSwitchUser, "usuario ", "usuário ", "mudar para "),
		exact("show_current_user", ShowCurrentUser, "usuario", "usuário", "qual usuario", "quem sou"),
		exact("list_users", ListUsers, "usuarios", "usuários", "listar usuarios", "ver usuarios"),
		exact("clear_history", ClearHistory,
			"apagar historico", "apagar histórico", "limpar historico", "limpar histórico", "deletar historico"),
		prefixed("add_fixed_bill", parseAddFixedBill, "conta fixa ", "pagamento fixo "),
		exact("list_fixed_bills", ListFixedBills, "contas fixas", "pagamentos fixos", "ver contas", "contas"),
		prefixed("remove_fixed_bill", indexParser(RemoveFixedBill, UsageRemoveFixedBill), "remover conta ", "deletar conta "),
		prefixed("pay_fixed_bill", indexParser(PayFixedBill, UsagePayFixedBill), "pagar conta ", "paguei conta "),

		ft.expense(),
		ft.voucher(models.MealVoucher, kw.MealVoucher),
		ft.voucher(models.FoodVoucher, kw.FoodVoucher),
		ft.income(),

		prefixed("shorthand_expense", shorthandExpense, "gasto "),
		prefixed("shorthand_vr", shorthandVoucherDebit(models.MealVoucher, UsageMealVoucher), "vr "),
		prefixed("shorthand_va", shorthandVoucherDebit(models.FoodVoucher, UsageFoodVoucher), "va "),
		prefixed("shorthand_income", shorthandIncome, "entrada "),
		prefixed("shorthand_credit_vr", shorthandVoucherCredit(models.MealVoucher, UsageMealCredit), "+vr "),
		prefixed("shorthand_credit_va", shorthandVoucherCredit(models.FoodVoucher, UsageFoodCredit), "+va "),

		exact("welcome", ShowWelcome, "oi", "olá", "ola", "hey", "opa"),
		exact("help", ShowHelp, "ajuda", "help", "menu", "comandos"),
		exact("balances", ShowBalances, "saldo", "saldos", "extrato saldo"),
		exact("recent_history", ShowRecentHistory, "extrato", "historico", "transacoes"),
		exact("full_history", ShowFullHistory, "extrato completo", "historico completo", "ver tudo", "ver todas"),
		exact("reset_user", ResetCurrentUser, "limpar tudo", "resetar", "limpar dados"),
		exact("undo_last", UndoLast, "apagar ultima", "apagar última", "desfazer", "cancelar ultima"),
		exact("stats", ShowStats, "total", "contar", "quantas transacoes"),
		exact("month_summary", ShowMonthSummary, "resumo", "relatorio", "mes"),
		exact("wipe", WipeEverything, "zerar"),
	}
}

// Classify resolves raw to an Operation. It never fails: malformed commands
// come back as FormatError and unmatched text as Unrecognized.
func (c *Classifier) Classify(raw string) Operation {
	in := NewInput(raw)
	for _, rule := range c.rules {
		op, ok := rule.Match(in)
		if !ok {
			continue
		}
		op.Rule = rule.Name
		c.logger.WithFields(
			logging.F(logging.FieldRule, rule.Name),
			logging.F(logging.FieldOperation, string(op.Kind)),
		).Debug("Message classified")
		return op
	}
	c.logger.Debug("No rule matched message")
	return Operation{Kind: Unrecognized}
}

// RuleNames lists the rules in evaluation order.
func (c *Classifier) RuleNames() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}
