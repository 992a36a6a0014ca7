package assistant

import (
	"errors"
	"time"

	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/intent"
	"fjacquet/financas/internal/ledger"
)

// result is the outcome of applying one operation. dirty is set only when
// state actually changed; err carries the domain failure, if any, for logging.
type result struct {
	reply string
	dirty bool
	err   error
}

func changed(reply string) result   { return result{reply: reply, dirty: true} }
func unchanged(reply string) result { return result{reply: reply} }

func (s *Service) apply(dir *directory.Directory, op intent.Operation, now time.Time) result {
	r := s.renderer
	l := dir.ResolveCurrent()

	switch op.Kind {
	case intent.SwitchUser:
		switched, created, err := dir.SwitchUser(op.UserName)
		if err != nil {
			return s.failure(err, op)
		}
		if created {
			return changed(r.UserCreated(dir.CurrentUser))
		}
		return changed(r.UserSwitched(dir.CurrentUser, switched))

	case intent.ShowCurrentUser:
		return unchanged(r.CurrentUser(dir.CurrentUser))
	case intent.ListUsers:
		return unchanged(r.UserList(dir))

	case intent.ClearHistory:
		l.ClearHistory()
		return changed(r.HistoryCleared(l))

	case intent.AddFixedBill:
		bill, err := l.AddFixedBill(op.Amount, op.Day, op.Description)
		if err != nil {
			return s.failure(err, op)
		}
		return changed(r.FixedBillAdded(bill))
	case intent.ListFixedBills:
		return unchanged(r.FixedBills(l))
	case intent.RemoveFixedBill:
		bill, err := l.RemoveFixedBill(op.Index)
		if err != nil {
			return s.failure(err, op)
		}
		return changed(r.FixedBillRemoved(bill))
	case intent.PayFixedBill:
		bill, _, err := l.PayFixedBill(op.Index, now)
		if err != nil {
			return s.failure(err, op)
		}
		return changed(r.FixedBillPaid(bill, l))

	case intent.RecordExpense:
		tx, err := l.DebitGeneral(op.Amount, op.Description, now)
		if err != nil {
			return s.failure(err, op)
		}
		return changed(r.ExpenseRecorded(tx, l))
	case intent.RecordIncome:
		tx, err := l.CreditGeneral(op.Amount, op.Description, now)
		if err != nil {
			return s.failure(err, op)
		}
		return changed(r.IncomeRecorded(tx, l))
	case intent.RecordVoucherDebit:
		tx, err := l.DebitVoucher(op.Voucher, op.Amount, op.Description, now)
		if err != nil {
			return s.failure(err, op)
		}
		return changed(r.VoucherDebited(op.Voucher, tx, l))
	case intent.RecordVoucherCredit:
		tx, err := l.CreditVoucher(op.Voucher, op.Amount, now)
		if err != nil {
			return s.failure(err, op)
		}
		return changed(r.VoucherCredited(op.Voucher, tx, l))

	case intent.ShowBalances:
		return unchanged(r.Balances(l))
	case intent.ShowRecentHistory:
		return unchanged(r.RecentHistory(l))
	case intent.ShowFullHistory:
		return unchanged(r.FullHistory(l))
	case intent.ResetCurrentUser:
		l.Reset()
		return changed(r.UserReset(dir.CurrentUser))
	case intent.UndoLast:
		tx, err := l.UndoLast()
		if err != nil {
			return s.failure(err, op)
		}
		return changed(r.Undone(tx, l))
	case intent.ShowStats:
		return unchanged(r.Stats(l))
	case intent.ShowMonthSummary:
		return unchanged(r.MonthSummary(l))
	case intent.WipeEverything:
		dir.Wipe(s.defaultUser, dir.CurrentMonth)
		return changed(r.Wiped())
	case intent.ShowWelcome:
		return unchanged(r.Welcome(dir.CurrentUser))
	case intent.ShowHelp:
		return unchanged(r.Help())

	case intent.FormatError:
		usage := ""
		if op.Err != nil {
			usage = op.Err.Usage
		}
		return result{reply: r.FormatError(usage), err: op.Err}
	default:
		return unchanged(r.Unrecognized())
	}
}

// failure turns a domain error into its reply. Nothing was mutated.
func (s *Service) failure(err error, op intent.Operation) result {
	r := s.renderer
	res := result{err: err}

	var insufficient *ledger.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		res.reply = r.InsufficientFunds(insufficient.Voucher, insufficient.Available)
	case errors.Is(err, ledger.ErrNotFound):
		res.reply = r.FixedBillNotFound(op.Index, op.Kind == intent.RemoveFixedBill)
	case errors.Is(err, ledger.ErrInvalidDay):
		res.reply = r.InvalidDay()
	case errors.Is(err, ledger.ErrEmptyHistory):
		res.reply = r.NothingToUndo()
	case errors.Is(err, directory.ErrEmptyName):
		res.reply = r.EmptyUserName()
	case errors.Is(err, ledger.ErrNegativeAmount):
		res.reply = r.InvalidAmount()
	default:
		res.reply = r.Unrecognized()
	}
	return res
}
