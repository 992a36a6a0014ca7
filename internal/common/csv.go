// Package common provides the CSV export of transaction logs.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"fjacquet/financas/internal/fileutils"
	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/models"
)

// DefaultDelimiter separates CSV fields unless the caller asks otherwise.
const DefaultDelimiter = ','

// TransactionRow is one exported line. Amounts are signed so a spreadsheet
// can sum the column directly.
type TransactionRow struct {
	User        string `csv:"usuario"`
	Date        string `csv:"data"`
	Kind        string `csv:"tipo"`
	Category    string `csv:"categoria"`
	Description string `csv:"descricao"`
	Amount      string `csv:"valor"`
}

// NewTransactionRows converts a user's log, oldest first.
func NewTransactionRows(user string, transactions []models.Transaction) []TransactionRow {
	rows := make([]TransactionRow, 0, len(transactions))
	for _, tx := range transactions {
		amount := tx.Amount
		if tx.IsExpense() {
			amount = amount.Neg()
		}
		rows = append(rows, TransactionRow{
			User:        user,
			Date:        tx.Timestamp.String(),
			Kind:        string(tx.Kind),
			Category:    string(tx.Category),
			Description: tx.Description,
			Amount:      amount.StringFixed(2),
		})
	}
	return rows
}

// WriteTransactionsCSV writes rows to w with a header line.
func WriteTransactionsCSV(w io.Writer, rows []TransactionRow, delimiter rune) error {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	// gocsv writes only the header for an empty slice
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ExportTransactionsToCSV writes a user's log to csvFile, creating parent
// directories as needed.
func ExportTransactionsToCSV(user string, transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.Discard()
	}

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := NewTransactionRows(user, transactions)
	if err := WriteTransactionsCSV(file, rows, delimiter); err != nil {
		return err
	}

	logger.Info("Exported transactions to CSV",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldUser, user),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}
