package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is how transaction times are stored and displayed.
const TimestampLayout = "02/01/2006 15:04"

// Timestamp is a minute-resolution time that persists as "dd/mm/yyyy HH:MM".
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to the minute.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Minute)}
}

// String formats the timestamp with TimestampLayout.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input yields the zero time.
func (t *Timestamp) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(TimestampLayout, string(b), time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON keeps the text layout; the embedded time.Time would otherwise
// emit RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the text layout.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

// Transaction is one entry in a user's log. Transactions are never edited
// after creation; undo removes them.
type Transaction struct {
	Kind        TransactionKind `json:"tipo" yaml:"tipo"`
	Amount      decimal.Decimal `json:"valor" yaml:"valor"`
	Description string          `json:"descricao" yaml:"descricao"`
	Timestamp   Timestamp       `json:"data" yaml:"data"`
	Category    Category        `json:"categoria" yaml:"categoria"`
}

// IsCredit reports whether the transaction added money to a balance.
func (t Transaction) IsCredit() bool {
	switch t.Kind {
	case KindIncome, KindMealVoucherCredit, KindFoodVoucherCredit:
		return true
	default:
		return false
	}
}

// IsExpense reports whether the transaction took money from a balance.
func (t Transaction) IsExpense() bool {
	switch t.Kind {
	case KindExpense, KindMealVoucherExpense, KindFoodVoucherExpense:
		return true
	default:
		return false
	}
}

// Sign is "+" for credits and "-" for everything else.
func (t Transaction) Sign() string {
	if t.IsCredit() {
		return "+"
	}
	return "-"
}
