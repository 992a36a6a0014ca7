// Package send handles the one-shot message command
package send

import (
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/financas/cmd/common"
	"fjacquet/financas/cmd/root"
)

// Cmd represents the send command
var Cmd = &cobra.Command{
	Use:   "send <mensagem>",
	Short: "Send one message to the assistant",
	Long: `Send one message to the assistant and print its reply, exactly as if it
had arrived over WhatsApp. Quotes are optional: all arguments are joined.

Example:
  financas send gastei 50 no mercado`,
	Args: cobra.MinimumNArgs(1),
	RunE: sendFunc,
}

func sendFunc(cmd *cobra.Command, args []string) error {
	app, err := root.App()
	if err != nil {
		return err
	}
	message := strings.Join(args, " ")
	return common.ProcessMessage(cmd.Context(), app.GetService(), message, cmd.OutOrStdout())
}
