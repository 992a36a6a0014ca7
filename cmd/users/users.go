// Package users handles the user listing command
package users

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/financas/cmd/root"
)

// Cmd represents the users command
var Cmd = &cobra.Command{
	Use:   "users",
	Short: "List stored users and their balances",
	Long:  `List every stored user with money, VR and VA balances. Nothing is modified.`,
	Args:  cobra.NoArgs,
	RunE:  usersFunc,
}

func usersFunc(cmd *cobra.Command, args []string) error {
	app, err := root.App()
	if err != nil {
		return err
	}
	dir, err := app.GetService().Snapshot(cmd.Context())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.GetRenderer().UserList(dir))
	return err
}
