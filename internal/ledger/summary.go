package ledger

import (
	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/models"
)

// Stats counts the transactions in the log.
type Stats struct {
	Total    int
	Expenses int
	Credits  int
}

// Stats returns transaction counts by direction.
func (l *Ledger) Stats() Stats {
	s := Stats{Total: len(l.Transactions)}
	for _, tx := range l.Transactions {
		switch {
		case tx.IsExpense():
			s.Expenses++
		case tx.IsCredit():
			s.Credits++
		}
	}
	return s
}

// MonthSummary aggregates the current log for the month report.
type MonthSummary struct {
	Balance          decimal.Decimal
	MealVoucher      decimal.Decimal
	FoodVoucher      decimal.Decimal
	TotalIn          decimal.Decimal
	TotalOut         decimal.Decimal
	GeneralOut       decimal.Decimal
	MealVoucherOut   decimal.Decimal
	FoodVoucherOut   decimal.Decimal
	TransactionCount int
}

// Summary builds the month report from the log. Since the log is cleared at
// every month change it only covers the current month.
func (l *Ledger) Summary() MonthSummary {
	s := MonthSummary{
		Balance:          l.Balance,
		MealVoucher:      l.MealVoucher,
		FoodVoucher:      l.FoodVoucher,
		TransactionCount: len(l.Transactions),
	}
	for _, tx := range l.Transactions {
		if tx.IsCredit() {
			s.TotalIn = s.TotalIn.Add(tx.Amount)
			continue
		}
		s.TotalOut = s.TotalOut.Add(tx.Amount)
		switch tx.Kind {
		case models.KindExpense:
			s.GeneralOut = s.GeneralOut.Add(tx.Amount)
		case models.KindMealVoucherExpense:
			s.MealVoucherOut = s.MealVoucherOut.Add(tx.Amount)
		case models.KindFoodVoucherExpense:
			s.FoodVoucherOut = s.FoodVoucherOut.Add(tx.Amount)
		}
	}
	return s
}
