package models

import "github.com/shopspring/decimal"

// FixedBill is a recurring monthly obligation. Paying it records an ordinary
// expense; the bill itself stays until removed.
type FixedBill struct {
	Amount      decimal.Decimal `json:"valor" yaml:"valor"`
	Day         int             `json:"dia" yaml:"dia"`
	Description string          `json:"descricao" yaml:"descricao"`
}
