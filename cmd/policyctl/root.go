package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"order-policy-service/internal/logx"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "policyctl",
		Short:        "Evaluate merchant schedules and fee configs offline",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level for diagnostics written to stderr")

	logger := func(cmd *cobra.Command) logx.Logger {
		return logx.NewJSON(cmd.ErrOrStderr(), logLevel)
	}

	root.AddCommand(
		newAvailabilityCmd(logger),
		newFeeCmd(logger),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
