package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratum"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stratum",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stratum version %s\n", stratum.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
