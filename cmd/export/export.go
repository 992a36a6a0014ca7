// Package export handles the CSV export command
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/financas/cmd/root"
	"fjacquet/financas/internal/common"
	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/validation"
)

// Flags for the export command
var (
	Output    string
	User      string
	Delimiter string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's transactions of the current month to CSV",
	Long: `Export the transaction log of one user to a CSV file. Without --user the
currently selected user is exported. Only the current month is available,
since logs are cleared when the month changes.`,
	Args: cobra.NoArgs,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Output, "output", "o", "", "Output CSV file")
	Cmd.Flags().StringVarP(&User, "user", "u", "", "User to export (default: current user)")
	Cmd.Flags().StringVar(&Delimiter, "delimiter", ",", "CSV field delimiter")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	app, err := root.App()
	if err != nil {
		return err
	}

	delimiter, err := validation.IsValidDelimiter(Delimiter)
	if err != nil {
		return err
	}
	if err := validation.IsValidOutputPath(Output); err != nil {
		return err
	}

	dir, err := app.GetService().Snapshot(cmd.Context())
	if err != nil {
		return err
	}

	name := dir.CurrentUser
	if User != "" {
		name = directory.NormalizeName(User)
	}
	ledger, ok := dir.Ledger(name)
	if !ok {
		return fmt.Errorf("user %q not found", name)
	}

	app.GetLogger().Info("Exporting transactions",
		logging.F(logging.FieldUser, name),
		logging.F(logging.FieldCount, len(ledger.Transactions)))
	return common.ExportTransactionsToCSV(name, ledger.Transactions, Output, delimiter, app.GetLogger())
}
