// Package directory maps user names to ledgers, tracks which user is
// selected and clears transaction logs when the calendar month changes.
//
// The selected user is plain data inside the Directory, which is loaded and
// saved with every message, so there is no process-wide state.
package directory

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fjacquet/financas/internal/ledger"
	"fjacquet/financas/internal/models"
)

// ErrEmptyName is returned when a user name is blank after trimming.
var ErrEmptyName = errors.New("user name must not be empty")

// Directory is the whole persisted state.
type Directory struct {
	CurrentUser  string                    `json:"usuario_atual" yaml:"usuario_atual"`
	Users        map[string]*ledger.Ledger `json:"usuarios" yaml:"usuarios"`
	CurrentMonth string                    `json:"mes_atual" yaml:"mes_atual"`
}

// New returns a directory with a single empty ledger for defaultUser.
func New(defaultUser, month string) *Directory {
	name := NormalizeName(defaultUser)
	if name == "" {
		name = models.DefaultUserName
	}
	return &Directory{
		CurrentUser:  name,
		Users:        map[string]*ledger.Ledger{name: ledger.New()},
		CurrentMonth: month,
	}
}

// NormalizeName trims a user name and title-cases it, so "maria" and
// "MARIA" refer to the same user.
func NormalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	// a Caser carries state, so each call gets its own
	return cases.Title(language.BrazilianPortuguese).String(name)
}

// Normalize repairs a decoded directory: missing fields are defaulted, every
// ledger is normalized and the current user is guaranteed to exist.
func (d *Directory) Normalize(defaultUser, month string) {
	if d.Users == nil {
		d.Users = map[string]*ledger.Ledger{}
	}
	if strings.TrimSpace(d.CurrentUser) == "" {
		d.CurrentUser = NormalizeName(defaultUser)
		if d.CurrentUser == "" {
			d.CurrentUser = models.DefaultUserName
		}
	}
	if d.CurrentMonth == "" {
		d.CurrentMonth = month
	}
	for name, l := range d.Users {
		if l == nil {
			l = ledger.New()
			d.Users[name] = l
		}
		l.Normalize()
	}
	d.ResolveCurrent()
}

// ResolveCurrent returns the selected user's ledger, creating an empty one
// if the name is not in the directory yet.
func (d *Directory) ResolveCurrent() *ledger.Ledger {
	if d.Users == nil {
		d.Users = map[string]*ledger.Ledger{}
	}
	l, ok := d.Users[d.CurrentUser]
	if !ok || l == nil {
		l = ledger.New()
		d.Users[d.CurrentUser] = l
	}
	return l
}

// SwitchUser selects name (after NormalizeName), creating the user when it
// does not exist. created reports whether a new ledger was made.
func (d *Directory) SwitchUser(name string) (l *ledger.Ledger, created bool, err error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, false, ErrEmptyName
	}
	if d.Users == nil {
		d.Users = map[string]*ledger.Ledger{}
	}
	l, ok := d.Users[normalized]
	if !ok || l == nil {
		l = ledger.New()
		d.Users[normalized] = l
		created = true
	}
	d.CurrentUser = normalized
	return l, created, nil
}

// Names returns every user name in alphabetical order.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.Users))
	for name := range d.Users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ledger returns the ledger of an existing user.
func (d *Directory) Ledger(name string) (*ledger.Ledger, bool) {
	l, ok := d.Users[NormalizeName(name)]
	return l, ok && l != nil
}

// RollOverIfNeeded clears every user's transaction log when month differs
// from the stored month, then records month. Balances and fixed bills are
// kept. It reports whether a rollover happened; a second call with the same
// month is a no-op.
func (d *Directory) RollOverIfNeeded(month string) bool {
	if d.CurrentMonth == month {
		return false
	}
	for _, l := range d.Users {
		if l != nil {
			l.ClearHistory()
		}
	}
	d.CurrentMonth = month
	return true
}

// Wipe drops every user and starts over with a single empty default user.
func (d *Directory) Wipe(defaultUser, month string) {
	*d = *New(defaultUser, month)
}
