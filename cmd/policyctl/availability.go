package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"order-policy-service/internal/logx"
	"order-policy-service/internal/policy/availability"
)

func newAvailabilityCmd(logger func(*cobra.Command) logx.Logger) *cobra.Command {
	var (
		at          string
		defaultOpen bool
	)

	cmd := &cobra.Command{
		Use:   "availability SCHEDULE_FILE",
		Short: "Report whether a weekly schedule is open at a moment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: %w", at, err)
				}
				now = t
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read schedule: %w", err)
			}

			res := availability.NewEvaluator(defaultOpen, logger(cmd)).EvaluateRaw(string(raw), now)
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "moment to evaluate, RFC3339 (default now)")
	cmd.Flags().BoolVar(&defaultOpen, "default-open", false, "answer used when the schedule cannot be parsed")
	return cmd
}
