package intent

import (
	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/models"
	"fjacquet/financas/internal/parsererror"
)

// Kind names the operation a message resolved to.
type Kind string

// System commands.
const (
	SwitchUser        Kind = "switch_user"
	ListUsers         Kind = "list_users"
	ShowCurrentUser   Kind = "show_current_user"
	ClearHistory      Kind = "clear_history"
	AddFixedBill      Kind = "add_fixed_bill"
	ListFixedBills    Kind = "list_fixed_bills"
	RemoveFixedBill   Kind = "remove_fixed_bill"
	PayFixedBill      Kind = "pay_fixed_bill"
	ShowBalances      Kind = "show_balances"
	ShowRecentHistory Kind = "show_recent_history"
	ShowFullHistory   Kind = "show_full_history"
	ResetCurrentUser  Kind = "reset_current_user"
	UndoLast          Kind = "undo_last"
	ShowStats         Kind = "show_stats"
	ShowMonthSummary  Kind = "show_month_summary"
	WipeEverything    Kind = "wipe_everything"
	ShowHelp          Kind = "show_help"
	ShowWelcome       Kind = "show_welcome"
	Unrecognized      Kind = "unrecognized"
	FormatError       Kind = "format_error"
)

// Ledger mutations.
const (
	RecordExpense       Kind = "record_expense"
	RecordIncome        Kind = "record_income"
	RecordVoucherDebit  Kind = "record_voucher_debit"
	RecordVoucherCredit Kind = "record_voucher_credit"
)

// Operation is the resolved meaning of a message. Which fields are set
// depends on Kind:
//
//	SwitchUser                       UserName
//	AddFixedBill                     Amount, Day, Description
//	RemoveFixedBill, PayFixedBill    Index (1-based)
//	RecordExpense, RecordIncome      Amount, Description
//	RecordVoucherDebit               Voucher, Amount, Description
//	RecordVoucherCredit              Voucher, Amount
//	FormatError                      Err
type Operation struct {
	Kind        Kind
	Rule        string
	Amount      decimal.Decimal
	Description string
	Voucher     models.Voucher
	Day         int
	Index       int
	UserName    string
	Err         *parsererror.FormatError
}

// Mutates reports whether applying the operation can change stored state.
func (o Operation) Mutates() bool {
	switch o.Kind {
	case SwitchUser, ClearHistory, AddFixedBill, RemoveFixedBill, PayFixedBill,
		ResetCurrentUser, UndoLast, WipeEverything,
		RecordExpense, RecordIncome, RecordVoucherDebit, RecordVoucherCredit:
		return true
	default:
		return false
	}
}
