package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/models"
)

const month = "2026-10"

var at = time.Date(2026, 10, 16, 12, 0, 0, 0, time.Local)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func sampleDirectory(t *testing.T) *directory.Directory {
	t.Helper()
	dir := directory.New("Principal", month)
	l := dir.ResolveCurrent()
	l.Balance = decimal.RequireFromString("100")
	_, err := l.DebitGeneral(decimal.RequireFromString("50"), "almoço", at)
	require.NoError(t, err)
	_, err = l.CreditVoucher(models.MealVoucher, decimal.RequireFromString("600"), at)
	require.NoError(t, err)
	_, err = l.AddFixedBill(decimal.RequireFromString("1200"), 5, "aluguel")
	require.NoError(t, err)

	_, _, err = dir.SwitchUser("maria")
	require.NoError(t, err)
	return dir
}

func assertSameDirectory(t *testing.T, want, got *directory.Directory) {
	t.Helper()
	assert.Equal(t, want.CurrentUser, got.CurrentUser)
	assert.Equal(t, want.CurrentMonth, got.CurrentMonth)
	assert.Equal(t, want.Names(), got.Names())

	w, _ := want.Ledger("Principal")
	g, ok := got.Ledger("Principal")
	require.True(t, ok)
	assert.True(t, w.Balance.Equal(g.Balance))
	assert.True(t, w.MealVoucher.Equal(g.MealVoucher))
	require.Len(t, g.Transactions, len(w.Transactions))
	assert.Equal(t, w.Transactions[0].Description, g.Transactions[0].Description)
	assert.Equal(t, w.Transactions[0].Timestamp.String(), g.Transactions[0].Timestamp.String())
	require.Len(t, g.Bills, 1)
	assert.Equal(t, 5, g.Bills[0].Day)
}

func TestFileStore_MissingFileStartsFresh(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "financas.json"), "Principal", logging.NewMockLogger())

	dir, err := s.Load(context.Background(), month)
	require.NoError(t, err)
	assert.Equal(t, "Principal", dir.CurrentUser)
	assert.Equal(t, month, dir.CurrentMonth)
	assert.Equal(t, []string{"Principal"}, dir.Names())
}

func TestFileStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"financas.json", "financas.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data", name)
			s := NewFileStore(path, "Principal", nil)
			want := sampleDirectory(t)

			require.NoError(t, s.Save(context.Background(), want))
			got, err := s.Load(context.Background(), month)
			require.NoError(t, err)
			assertSameDirectory(t, want, got)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestFileStore_KeepsOriginalKeyNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.json")
	s := NewFileStore(path, "Principal", nil)
	require.NoError(t, s.Save(context.Background(), sampleDirectory(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{`"usuario_atual"`, `"usuarios"`, `"mes_atual"`, `"saldo"`, `"contas_fixas"`, `"descricao"`} {
		assert.Contains(t, string(data), key)
	}
}

func TestFileStore_LoadDoesNotRollOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.json")
	s := NewFileStore(path, "Principal", nil)
	require.NoError(t, s.Save(context.Background(), sampleDirectory(t)))

	dir, err := s.Load(context.Background(), "2026-11")
	require.NoError(t, err)
	assert.Equal(t, month, dir.CurrentMonth)
}

func TestFileStore_MigratesLegacyLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.json")
	writeFile(t, path, `{
  "saldo": 250.5,
  "vr": 100,
  "va": 0,
  "transacoes": [
    {"tipo": "gasto", "valor": 49.5, "descricao": "mercado", "data": "02/10/2026 18:20", "categoria": "geral"}
  ]
}`)
	s := NewFileStore(path, "Principal", nil)

	dir, err := s.Load(context.Background(), month)
	require.NoError(t, err)
	assert.Equal(t, "Principal", dir.CurrentUser)
	assert.Equal(t, month, dir.CurrentMonth)

	l, ok := dir.Ledger("Principal")
	require.True(t, ok)
	assert.Equal(t, "250.5", l.Balance.String())
	assert.Equal(t, "100", l.MealVoucher.String())
	require.Len(t, l.Transactions, 1)
	assert.Equal(t, "mercado", l.Transactions[0].Description)
}

func TestFileStore_EmptyFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.json")
	writeFile(t, path, "  \n")

	dir, err := NewFileStore(path, "Principal", nil).Load(context.Background(), month)
	require.NoError(t, err)
	assert.Equal(t, []string{"Principal"}, dir.Names())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financas.json")
	writeFile(t, path, "{not json")

	_, err := NewFileStore(path, "Principal", nil).Load(context.Background(), month)
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestFileStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewFileStore(filepath.Join(t.TempDir(), "financas.json"), "Principal", nil)
	_, err := s.Load(ctx, month)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Save(ctx, directory.New("Principal", month)), context.Canceled)
}

func TestFileStore_WarnsOnPermissiveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))
	require.NoError(t, os.Chmod(path, 0644))

	logger := logging.NewMockLogger()
	NewFileStore(path, "Principal", logger)
	assert.True(t, logger.HasEntry("WARN", "State file is readable by other users"))

	require.NoError(t, os.Chmod(path, 0600))
	quiet := logging.NewMockLogger()
	NewFileStore(path, "Principal", quiet)
	assert.False(t, quiet.HasEntry("WARN", "State file is readable by other users"))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("Principal")

	dir, err := s.Load(context.Background(), month)
	require.NoError(t, err)
	assert.Equal(t, []string{"Principal"}, dir.Names())

	want := sampleDirectory(t)
	require.NoError(t, s.Save(context.Background(), want))
	assert.Equal(t, 1, s.Saves())

	got, err := s.Load(context.Background(), month)
	require.NoError(t, err)
	assertSameDirectory(t, want, got)

	// loaded copies are independent of the stored document
	got.Users["Principal"].Balance = decimal.Zero
	again, err := s.Load(context.Background(), month)
	require.NoError(t, err)
	assert.Equal(t, "50", again.Users["Principal"].Balance.String())
}

func TestMemoryStore_Errors(t *testing.T) {
	boom := errors.New("boom")
	s := NewMemoryStore("Principal")
	s.LoadError = boom
	s.SaveError = boom

	_, err := s.Load(context.Background(), month)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Save(context.Background(), directory.New("", month)), boom)
	assert.Equal(t, 0, s.Saves())
}
