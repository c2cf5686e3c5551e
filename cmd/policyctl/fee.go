package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"order-policy-service/internal/logx"
	"order-policy-service/internal/policy/fee"
)

type feeOutput struct {
	Fee      decimal.Decimal `json:"fee"`
	Source   fee.Source      `json:"source"`
	Fallback bool            `json:"fallback,omitempty"`
}

func newFeeCmd(logger func(*cobra.Command) logx.Logger) *cobra.Command {
	var (
		distance float64
		amount   string
	)

	cmd := &cobra.Command{
		Use:   "fee [CONFIG_FILE]",
		Short: "Resolve the delivery fee for a distance and order amount",
		Long:  "Resolve the delivery fee. Without CONFIG_FILE the default distance schedule is used. Files ending in .json are read as JSON, anything else as YAML.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *fee.Config
			if len(args) == 1 {
				loaded, err := loadFeeConfig(args[0])
				if err != nil {
					return err
				}
				cfg = loaded
			}

			var orderAmount *decimal.Decimal
			if amount != "" {
				d, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("invalid --amount %q: %w", amount, err)
				}
				orderAmount = &d
			}

			q := fee.Resolve(cfg, distance, orderAmount)
			if q.Fallback {
				logger(cmd).Warn("distance outside every fee band, nearest tier used",
					logx.Float64("distance_km", distance),
					logx.String("fee", q.Fee.String()),
				)
			}
			return printJSON(cmd.OutOrStdout(), feeOutput{Fee: q.Fee, Source: q.Source, Fallback: q.Fallback})
		},
	}
	cmd.Flags().Float64Var(&distance, "distance", 0, "trip distance in km")
	cmd.Flags().StringVar(&amount, "amount", "", "order amount, decimal")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}

func loadFeeConfig(path string) (*fee.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fee config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return fee.ParseJSON(data)
	}
	return fee.ParseYAML(data)
}
