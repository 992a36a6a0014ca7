// Package store persists the user directory between messages and loads the
// optional keyword overrides.
//
// Every backend stores the directory as one document using the key names of
// the original data file (usuario_atual, usuarios, mes_atual, ...), so a
// file written by one version keeps loading in the next.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/ledger"
	"fjacquet/financas/internal/models"
)

// StateStore loads and saves the whole directory. Load returns a fresh
// directory with a single empty default user when nothing is stored yet.
// Callers serialize Load/Save pairs; stores do no locking of their own
// beyond what their medium needs.
type StateStore interface {
	Load(ctx context.Context, month string) (*directory.Directory, error)
	Save(ctx context.Context, dir *directory.Directory) error
}

// ErrCorruptState is wrapped by Load when the stored document cannot be decoded.
var ErrCorruptState = errors.New("stored state is corrupt")

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// document is the decoded form of a stored directory. The embedded ledger
// catches the older single-user layout, where saldo/vr/va/transacoes sat at
// the top level.
type document struct {
	CurrentUser   string                    `json:"usuario_atual,omitempty" yaml:"usuario_atual,omitempty"`
	Users         map[string]*ledger.Ledger `json:"usuarios,omitempty" yaml:"usuarios,omitempty"`
	CurrentMonth  string                    `json:"mes_atual,omitempty" yaml:"mes_atual,omitempty"`
	ledger.Ledger `yaml:",inline"`
}

func (d *document) hasLegacyLedger() bool {
	l := d.Ledger
	return !l.Balance.IsZero() || !l.MealVoucher.IsZero() || !l.FoodVoucher.IsZero() ||
		len(l.Transactions) > 0 || len(l.Bills) > 0
}

// decode parses data and returns a normalized directory. Legacy single-user
// documents become a directory holding one user named defaultUser.
func decode(data []byte, format Format, defaultUser, month string) (*directory.Directory, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	dir := &directory.Directory{
		CurrentUser:  doc.CurrentUser,
		Users:        doc.Users,
		CurrentMonth: doc.CurrentMonth,
	}
	if len(dir.Users) == 0 && doc.hasLegacyLedger() {
		name := directory.NormalizeName(defaultUser)
		if name == "" {
			name = models.DefaultUserName
		}
		legacy := doc.Ledger
		dir.Users = map[string]*ledger.Ledger{name: &legacy}
		dir.CurrentUser = name
	}
	dir.Normalize(defaultUser, month)
	return dir, nil
}

func encode(dir *directory.Directory, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(dir)
	default:
		return json.MarshalIndent(dir, "", "  ")
	}
}
