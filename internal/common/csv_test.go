package common

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/models"
)

func readRows(t *testing.T, r io.Reader) []TransactionRow {
	t.Helper()
	var rows []TransactionRow
	require.NoError(t, gocsv.Unmarshal(r, &rows))
	return rows
}

func sampleTransactions() []models.Transaction {
	at := models.NewTimestamp(time.Date(2026, 10, 16, 12, 30, 0, 0, time.Local))
	return []models.Transaction{
		{Kind: models.KindIncome, Amount: decimal.RequireFromString("3000"), Description: "salário", Timestamp: at, Category: models.CategoryGeneral},
		{Kind: models.KindMealVoucherExpense, Amount: decimal.RequireFromString("35.5"), Description: "restaurante, centro", Timestamp: at, Category: models.CategoryMealVoucher},
	}
}

func TestNewTransactionRows_SignsExpenses(t *testing.T) {
	rows := NewTransactionRows("Maria", sampleTransactions())
	require.Len(t, rows, 2)
	assert.Equal(t, "3000.00", rows[0].Amount)
	assert.Equal(t, "-35.50", rows[1].Amount)
	assert.Equal(t, "gasto_vr", rows[1].Kind)
	assert.Equal(t, "16/10/2026 12:30", rows[1].Date)
	assert.Equal(t, "Maria", rows[1].User)
}

func TestWriteTransactionsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, NewTransactionRows("Maria", sampleTransactions()), ';'))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "usuario;data;tipo;categoria;descricao;valor", lines[0])
	assert.Contains(t, lines[2], "restaurante, centro")
	assert.Contains(t, lines[2], "-35.50")
}

func TestExportTransactionsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "maria.csv")
	logger := logging.NewMockLogger()

	require.NoError(t, ExportTransactionsToCSV("Maria", sampleTransactions(), path, 0, logger))
	assert.True(t, logger.HasEntry("INFO", "Exported transactions to CSV"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows := readRows(t, f)
	require.Len(t, rows, 2)
	assert.Equal(t, "restaurante, centro", rows[1].Description)
	assert.Equal(t, "salário", rows[0].Description)
}

func TestExportTransactionsToCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, ExportTransactionsToCSV("Principal", nil, path, 0, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "usuario,data,tipo,categoria,descricao,valor", strings.TrimSpace(string(data)))
}
