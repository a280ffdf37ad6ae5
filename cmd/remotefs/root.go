package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/remotefs/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "remotefs",
	Short: "Validate remote filesystem cluster configuration",
	Long:  `remotefs checks a remote_fs configuration document against the provisioning schema and reports every violation with its field path.`,
}

var logger = logging.NewNop()

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			logger = logging.New(slog.LevelDebug)
		}
	})
}
