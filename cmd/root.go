// Package cmd implements the xscore command-line tool, mirroring the
// teacher's single-root-plus-subcommands cobra layout.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "xscore",
	Short: "Neutron cross-section evaluation core",
}

// Execute runs the root command, matching the teacher's cmd/root.go entry
// point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	cobra.OnInitialize(func() {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	})

	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}
