// Package chat handles the interactive conversation command
package chat

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/financas/cmd/common"
	"fjacquet/financas/cmd/root"
)

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant line by line",
	Long:  `Read messages from standard input, one per line, and print each reply. Type "sair" or send EOF to quit.`,
	Args:  cobra.NoArgs,
	RunE:  chatFunc,
}

func chatFunc(cmd *cobra.Command, args []string) error {
	app, err := root.App()
	if err != nil {
		return err
	}
	dir, err := app.GetService().Snapshot(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.GetRenderer().Welcome(dir.CurrentUser))
	return common.RunChat(cmd.Context(), app.GetService(), cmd.InOrStdin(), cmd.OutOrStdout(), app.GetLogger())
}
