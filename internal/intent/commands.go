package intent

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/currencyutils"
	"fjacquet/financas/internal/models"
	"fjacquet/financas/internal/parsererror"
)

// Usage hints returned with a FormatError.
const (
	UsageAddFixedBill    = "Use: conta fixa [valor] [dia] [descrição]\nEx: conta fixa 150 10 aluguel"
	UsageRemoveFixedBill = "Use: remover conta [número]\nEx: remover conta 1"
	UsagePayFixedBill    = "Use: pagar conta [número]\nEx: pagar conta 1"
	UsageExpense         = "Use: gasto [valor] [descrição]\nEx: gasto 50 almoço"
	UsageMealVoucher     = "Use: vr [valor] [descrição]\nEx: vr 25 restaurante"
	UsageFoodVoucher     = "Use: va [valor] [descrição]\nEx: va 80 mercado"
	UsageIncome          = "Use: entrada [valor] [descrição]\nEx: entrada 3000 salário"
	UsageMealCredit      = "Use: +vr [valor]\nEx: +vr 500"
	UsageFoodCredit      = "Use: +va [valor]\nEx: +va 300"
)

var errMissingArguments = errors.New("missing arguments")

func formatError(in Input, usage string, err error) Operation {
	return Operation{Kind: FormatError, Err: parsererror.New(in.Text, usage, err)}
}

func parseSwitchUser(_ Input, _ string, args string) Operation {
	// an empty name is reported by the directory, not here
	return Operation{Kind: SwitchUser, UserName: args}
}

// parseAddFixedBill reads "[valor] [dia] [descrição...]".
func parseAddFixedBill(in Input, _ string, args string) Operation {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		return formatError(in, UsageAddFixedBill, errMissingArguments)
	}
	amount, err := currencyutils.ParseAmount(parts[0])
	if err != nil {
		return formatError(in, UsageAddFixedBill, err)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return formatError(in, UsageAddFixedBill, err)
	}
	description := strings.Join(parts[2:], " ")
	if description == "" {
		description = models.DescriptionFixedBill
	}
	return Operation{Kind: AddFixedBill, Amount: amount, Day: day, Description: description}
}

// indexParser reads the trailing bill number of "remover conta N" / "pagar conta N".
func indexParser(kind Kind, usage string) func(Input, string, string) Operation {
	return func(in Input, _ string, args string) Operation {
		parts := strings.Fields(args)
		if len(parts) == 0 {
			return formatError(in, usage, errMissingArguments)
		}
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return formatError(in, usage, err)
		}
		return Operation{Kind: kind, Index: n}
	}
}

// amountAndDescription reads "[valor] [descrição...]" for the shorthand
// commands, using fallback when no description is given.
func amountAndDescription(args string) (decimal.Decimal, string, error) {
	value, rest, _ := strings.Cut(strings.TrimSpace(args), " ")
	if value == "" {
		return decimal.Zero, "", errMissingArguments
	}
	amount, err := currencyutils.ParseAmount(value)
	if err != nil {
		return decimal.Zero, "", err
	}
	return amount, strings.TrimSpace(rest), nil
}

func shorthandExpense(in Input, _ string, args string) Operation {
	amount, description, err := amountAndDescription(args)
	if err != nil {
		return formatError(in, UsageExpense, err)
	}
	if description == "" {
		description = models.DescriptionNone
	}
	return Operation{Kind: RecordExpense, Amount: amount, Description: description}
}

func shorthandIncome(in Input, _ string, args string) Operation {
	amount, description, err := amountAndDescription(args)
	if err != nil {
		return formatError(in, UsageIncome, err)
	}
	if description == "" {
		description = models.DescriptionIncome
	}
	return Operation{Kind: RecordIncome, Amount: amount, Description: description}
}

// shorthandVoucherDebit reads "vr valor [descrição]". Well-formed messages
// are normally claimed by the free-text voucher rule first; this rule is
// what turns "vr padaria" into a usage hint.
func shorthandVoucherDebit(v models.Voucher, usage string) func(Input, string, string) Operation {
	return func(in Input, _ string, args string) Operation {
		amount, description, err := amountAndDescription(args)
		if err != nil {
			return formatError(in, usage, err)
		}
		if description == "" {
			description = v.DefaultDescription()
		}
		return Operation{Kind: RecordVoucherDebit, Voucher: v, Amount: amount, Description: description}
	}
}

// shorthandVoucherCredit reads "+vr [valor]": the whole remainder is the amount.
func shorthandVoucherCredit(v models.Voucher, usage string) func(Input, string, string) Operation {
	return func(in Input, _ string, args string) Operation {
		amount, err := currencyutils.ParseAmount(args)
		if err != nil {
			return formatError(in, usage, err)
		}
		return Operation{Kind: RecordVoucherCredit, Voucher: v, Amount: amount}
	}
}
