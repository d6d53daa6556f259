package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DigiCloudTeam/digicloud/cmd/flags"
)

var RootCmd = &cobra.Command{
	Use:   "digicloud",
	Short: "A command line client for the Digi Storage cloud.",
	Long: `A command line client for the Digi Storage cloud:
browse mounts, list folders, copy, move, delete, share links and
receivers, bookmarks and search.`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flags.DataDir, "data", "data", "data directory")
	RootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "start with debug mode")
	RootCmd.PersistentFlags().BoolVar(&flags.NoPrefix, "no-prefix", false, "disable env prefix")
	RootCmd.PersistentFlags().BoolVar(&flags.LogStd, "log-std", false, "force to log to std")
}
