package main

import (
	"evcal/src-server/console"
	"os"

	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive menu over the calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		as, err := newLoadedAppState()
		if err != nil {
			return err
		}
		return console.New(as, os.Stdin, os.Stdout).Run()
	},
}
