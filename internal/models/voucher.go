package models

import "fmt"

// Valid reports whether v names a known voucher.
func (v Voucher) Valid() bool {
	return v == MealVoucher || v == FoodVoucher
}

// Label is the short upper-case tag shown to users ("VR" / "VA").
func (v Voucher) Label() string {
	switch v {
	case MealVoucher:
		return "VR"
	case FoodVoucher:
		return "VA"
	default:
		return string(v)
	}
}

// Category returns the ledger category of the voucher.
func (v Voucher) Category() Category {
	if v == FoodVoucher {
		return CategoryFoodVoucher
	}
	return CategoryMealVoucher
}

// ExpenseKind is the transaction kind recorded when the voucher is spent.
func (v Voucher) ExpenseKind() TransactionKind {
	if v == FoodVoucher {
		return KindFoodVoucherExpense
	}
	return KindMealVoucherExpense
}

// CreditKind is the transaction kind recorded when the voucher is topped up.
func (v Voucher) CreditKind() TransactionKind {
	if v == FoodVoucher {
		return KindFoodVoucherCredit
	}
	return KindMealVoucherCredit
}

// CreditDescription is the fixed description of a voucher credit.
func (v Voucher) CreditDescription() string {
	return fmt.Sprintf("Crédito %s", v.Label())
}

// DefaultDescription is used for a debit that names no place or item.
func (v Voucher) DefaultDescription() string {
	if v == FoodVoucher {
		return DescriptionFood
	}
	return DescriptionMeal
}
