package main

import (
	"evcal/src-server/console"
	"os"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every calendar operation once and print the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		as, err := newLoadedAppState()
		if err != nil {
			return err
		}
		console.Demo(as, os.Stdout)
		return nil
	},
}
