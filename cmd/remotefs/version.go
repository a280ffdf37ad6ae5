package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/remotefs"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of remotefs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("remotefs version %s\n", remotefs.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
