package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/currencyutils"
	"fjacquet/financas/internal/models"
)

var (
	ErrInsufficientFunds = errors.New("insufficient voucher balance")
	ErrEmptyHistory      = errors.New("no transactions to undo")
	ErrNotFound          = errors.New("fixed bill not found")
	ErrInvalidDay        = errors.New("day must be between 1 and 31")
	ErrInvalidVoucher    = errors.New("unknown voucher")
	ErrNegativeAmount    = currencyutils.ErrNegativeAmount
)

// InsufficientFundsError reports a voucher debit larger than the balance.
type InsufficientFundsError struct {
	Voucher   models.Voucher
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: requested %s, available %s",
		ErrInsufficientFunds, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

// Is lets errors.Is match ErrInsufficientFunds.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// NotFoundError reports a fixed-bill index outside the list.
type NotFoundError struct {
	Index int
	Count int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: #%d (have %d)", ErrNotFound, e.Index, e.Count)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
