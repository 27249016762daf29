package cmd

import (
	"fmt"
	"os"

	"roster-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the roster-manager command. It does nothing on its own.
var RootCmd = &cobra.Command{
	Use:   "roster-manager",
	Short: "Import and reconcile course roster spreadsheets",
	Long: `roster-manager maps instructor, applicant and position spreadsheets onto
known schemas, validates them and reconciles them with the stored records.

Run "start" for the HTTP API, or use import and export from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command named on the command line and exits non-zero on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// Commands fail before their own logger exists, so report on the console
	l, logErr := logger.New(&logger.Config{Level: "info", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("Command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}
