package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/currencyutils"
	"fjacquet/financas/internal/models"
)

// Fixed bills are kept sorted by day (stable, so bills sharing a day keep
// their insertion order). The stored order is therefore the display order
// and the 1-based indexes used by pay/remove refer to the same list the
// user was shown.

// AddFixedBill registers a recurring bill. day must be within 1..31.
func (l *Ledger) AddFixedBill(amount decimal.Decimal, day int, description string) (models.FixedBill, error) {
	if day < 1 || day > 31 {
		return models.FixedBill{}, ErrInvalidDay
	}
	if amount.IsNegative() {
		return models.FixedBill{}, ErrNegativeAmount
	}
	if strings.TrimSpace(description) == "" {
		description = models.DescriptionFixedBill
	}
	bill := models.FixedBill{Amount: amount, Day: day, Description: description}

	pos := sort.Search(len(l.Bills), func(i int) bool { return l.Bills[i].Day > day })
	l.Bills = append(l.Bills, models.FixedBill{})
	copy(l.Bills[pos+1:], l.Bills[pos:])
	l.Bills[pos] = bill
	return bill, nil
}

// FixedBills returns the bills in display order (day ascending).
func (l *Ledger) FixedBills() []models.FixedBill {
	out := make([]models.FixedBill, len(l.Bills))
	copy(out, l.Bills)
	return out
}

// FixedBillsTotal is the monthly sum of all fixed bills.
func (l *Ledger) FixedBillsTotal() decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(l.Bills))
	for _, b := range l.Bills {
		amounts = append(amounts, b.Amount)
	}
	return currencyutils.Sum(amounts...)
}

func (l *Ledger) billIndex(index int) (int, error) {
	if index < 1 || index > len(l.Bills) {
		return 0, &NotFoundError{Index: index, Count: len(l.Bills)}
	}
	return index - 1, nil
}

// PayFixedBill records the payment of the bill at 1-based index as a general
// expense tagged models.CategoryFixedBill.
func (l *Ledger) PayFixedBill(index int, at time.Time) (models.FixedBill, models.Transaction, error) {
	i, err := l.billIndex(index)
	if err != nil {
		return models.FixedBill{}, models.Transaction{}, err
	}
	bill := l.Bills[i]
	tx, err := l.debitGeneral(bill.Amount, models.FixedBillPaymentPrefix+bill.Description, models.CategoryFixedBill, at)
	if err != nil {
		return models.FixedBill{}, models.Transaction{}, err
	}
	return bill, tx, nil
}

// RemoveFixedBill deletes and returns the bill at 1-based index.
func (l *Ledger) RemoveFixedBill(index int) (models.FixedBill, error) {
	i, err := l.billIndex(index)
	if err != nil {
		return models.FixedBill{}, err
	}
	bill := l.Bills[i]
	l.Bills = append(l.Bills[:i], l.Bills[i+1:]...)
	return bill, nil
}
