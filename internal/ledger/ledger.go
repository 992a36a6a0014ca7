// Package ledger holds one user's balances, transaction log and fixed bills,
// and the operations that change them. Every operation either applies fully
// or returns an error and leaves the ledger untouched.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/currencyutils"
	"fjacquet/financas/internal/models"
)

// Ledger is the per-user aggregate. Field names follow the persisted layout.
//
// The general balance has no floor; voucher balances never go below zero
// through a debit. The transaction log can be cleared independently of the
// balances.
type Ledger struct {
	Balance      decimal.Decimal      `json:"saldo" yaml:"saldo"`
	MealVoucher  decimal.Decimal      `json:"vr" yaml:"vr"`
	FoodVoucher  decimal.Decimal      `json:"va" yaml:"va"`
	Transactions []models.Transaction `json:"transacoes" yaml:"transacoes"`
	Bills        []models.FixedBill   `json:"contas_fixas" yaml:"contas_fixas"`
}

// New returns a ledger with zero balances and empty lists.
func New() *Ledger {
	return &Ledger{
		Transactions: []models.Transaction{},
		Bills:        []models.FixedBill{},
	}
}

// Normalize repairs a ledger decoded from storage: nil lists become empty
// and fixed bills are put in display order.
func (l *Ledger) Normalize() {
	if l.Transactions == nil {
		l.Transactions = []models.Transaction{}
	}
	if l.Bills == nil {
		l.Bills = []models.FixedBill{}
	}
	sort.SliceStable(l.Bills, func(i, j int) bool {
		return l.Bills[i].Day < l.Bills[j].Day
	})
}

// VoucherBalance returns the balance of v.
func (l *Ledger) VoucherBalance(v models.Voucher) decimal.Decimal {
	if v == models.FoodVoucher {
		return l.FoodVoucher
	}
	return l.MealVoucher
}

func (l *Ledger) setVoucherBalance(v models.Voucher, amount decimal.Decimal) {
	if v == models.FoodVoucher {
		l.FoodVoucher = amount
		return
	}
	l.MealVoucher = amount
}

// Total is the sum of all three balances.
func (l *Ledger) Total() decimal.Decimal {
	return currencyutils.Sum(l.Balance, l.MealVoucher, l.FoodVoucher)
}

func (l *Ledger) record(kind models.TransactionKind, category models.Category, amount decimal.Decimal, description string, at time.Time) models.Transaction {
	tx := models.Transaction{
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Timestamp:   models.NewTimestamp(at),
		Category:    category,
	}
	l.Transactions = append(l.Transactions, tx)
	return tx
}

// DebitGeneral records an expense against the general balance. The balance
// may go negative.
func (l *Ledger) DebitGeneral(amount decimal.Decimal, description string, at time.Time) (models.Transaction, error) {
	return l.debitGeneral(amount, description, models.CategoryGeneral, at)
}

func (l *Ledger) debitGeneral(amount decimal.Decimal, description string, category models.Category, at time.Time) (models.Transaction, error) {
	if amount.IsNegative() {
		return models.Transaction{}, ErrNegativeAmount
	}
	l.Balance = l.Balance.Sub(amount)
	return l.record(models.KindExpense, category, amount, description, at), nil
}

// CreditGeneral records income on the general balance.
func (l *Ledger) CreditGeneral(amount decimal.Decimal, description string, at time.Time) (models.Transaction, error) {
	if amount.IsNegative() {
		return models.Transaction{}, ErrNegativeAmount
	}
	l.Balance = l.Balance.Add(amount)
	return l.record(models.KindIncome, models.CategoryGeneral, amount, description, at), nil
}

// DebitVoucher spends from a voucher balance. It fails with an
// *InsufficientFundsError when amount exceeds the balance.
func (l *Ledger) DebitVoucher(v models.Voucher, amount decimal.Decimal, description string, at time.Time) (models.Transaction, error) {
	if !v.Valid() {
		return models.Transaction{}, ErrInvalidVoucher
	}
	if amount.IsNegative() {
		return models.Transaction{}, ErrNegativeAmount
	}
	available := l.VoucherBalance(v)
	if amount.GreaterThan(available) {
		return models.Transaction{}, &InsufficientFundsError{Voucher: v, Requested: amount, Available: available}
	}
	l.setVoucherBalance(v, available.Sub(amount))
	return l.record(v.ExpenseKind(), v.Category(), amount, description, at), nil
}

// CreditVoucher tops up a voucher balance.
func (l *Ledger) CreditVoucher(v models.Voucher, amount decimal.Decimal, at time.Time) (models.Transaction, error) {
	if !v.Valid() {
		return models.Transaction{}, ErrInvalidVoucher
	}
	if amount.IsNegative() {
		return models.Transaction{}, ErrNegativeAmount
	}
	l.setVoucherBalance(v, l.VoucherBalance(v).Add(amount))
	return l.record(v.CreditKind(), v.Category(), amount, v.CreditDescription(), at), nil
}

// reversals maps each kind to the balance change that cancels it.
var reversals = map[models.TransactionKind]func(l *Ledger, amount decimal.Decimal){
	models.KindExpense: func(l *Ledger, a decimal.Decimal) { l.Balance = l.Balance.Add(a) },
	models.KindIncome:  func(l *Ledger, a decimal.Decimal) { l.Balance = l.Balance.Sub(a) },
	models.KindMealVoucherExpense: func(l *Ledger, a decimal.Decimal) {
		l.MealVoucher = l.MealVoucher.Add(a)
	},
	models.KindMealVoucherCredit: func(l *Ledger, a decimal.Decimal) {
		l.MealVoucher = l.MealVoucher.Sub(a)
	},
	models.KindFoodVoucherExpense: func(l *Ledger, a decimal.Decimal) {
		l.FoodVoucher = l.FoodVoucher.Add(a)
	},
	models.KindFoodVoucherCredit: func(l *Ledger, a decimal.Decimal) {
		l.FoodVoucher = l.FoodVoucher.Sub(a)
	},
}

// UndoLast removes the most recent transaction and reverses its effect on
// the balances. Unknown kinds are removed without a balance change.
func (l *Ledger) UndoLast() (models.Transaction, error) {
	n := len(l.Transactions)
	if n == 0 {
		return models.Transaction{}, ErrEmptyHistory
	}
	last := l.Transactions[n-1]
	l.Transactions = l.Transactions[:n-1]
	if reverse, ok := reversals[last.Kind]; ok {
		reverse(l, last.Amount)
	}
	return last, nil
}

// ClearHistory empties the transaction log. Balances and fixed bills stay.
func (l *Ledger) ClearHistory() {
	l.Transactions = []models.Transaction{}
}

// Reset zeroes every balance and empties both lists.
func (l *Ledger) Reset() {
	*l = *New()
}

// Recent returns up to n most recent transactions, newest first.
func (l *Ledger) Recent(n int) []models.Transaction {
	if n <= 0 || n > len(l.Transactions) {
		n = len(l.Transactions)
	}
	out := make([]models.Transaction, 0, n)
	for i := len(l.Transactions) - 1; i >= len(l.Transactions)-n; i-- {
		out = append(out, l.Transactions[i])
	}
	return out
}
