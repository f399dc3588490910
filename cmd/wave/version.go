package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wave/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wave version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		return err
	},
}
