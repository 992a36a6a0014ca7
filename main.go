package main

import (
	"fmt"
	"os"

	"fjacquet/financas/cmd/chat"
	"fjacquet/financas/cmd/export"
	"fjacquet/financas/cmd/root"
	"fjacquet/financas/cmd/send"
	"fjacquet/financas/cmd/serve"
	"fjacquet/financas/cmd/users"
)

func init() {
	// 1. Persistent flags first, subcommands inherit them
	root.Init()

	// 2. Add all subcommands
	root.Cmd.AddCommand(send.Cmd)
	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(users.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
