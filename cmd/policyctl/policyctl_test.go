package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const mondaySchedule = `{"Mon": {"isOpen": true, "open": "09:00", "close": "22:00"}}`

func TestAvailabilityCmd(t *testing.T) {
	t.Parallel()

	schedule := writeFile(t, "schedule.json", mondaySchedule)

	tests := []struct {
		name     string
		at       string
		wantOpen bool
		wantHint string
	}{
		{name: "open mid window", at: "2024-01-01T10:00:00Z", wantOpen: true},
		{name: "opens later today", at: "2024-01-01T08:00:00Z", wantHint: "Opens today 09:00"},
		{name: "closed at close time", at: "2024-01-01T22:00:00Z", wantHint: "Mon 09:00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, "availability", schedule, "--at", tt.at)
			require.NoError(t, err)

			var res struct {
				IsOpen       bool   `json:"isOpen"`
				NextOpenHint string `json:"nextOpenHint"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			require.Equal(t, tt.wantOpen, res.IsOpen)
			require.Equal(t, tt.wantHint, res.NextOpenHint)
		})
	}
}

func TestAvailabilityCmd_MalformedScheduleUsesDefault(t *testing.T) {
	t.Parallel()

	schedule := writeFile(t, "schedule.json", `{"Mon": {"isOpen": true, "open": "25:00", "close": "22:00"}}`)

	out, stderr, err := execute(t, "availability", schedule, "--at", "2024-01-01T10:00:00Z", "--default-open")
	require.NoError(t, err)
	require.JSONEq(t, `{"isOpen": true}`, out)
	require.Contains(t, stderr, "schedule unusable")
}

func TestAvailabilityCmd_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "availability")
	require.Error(t, err)

	_, _, err = execute(t, "availability", "/does/not/exist.json")
	require.ErrorContains(t, err, "read schedule")

	schedule := writeFile(t, "schedule.json", mondaySchedule)
	_, _, err = execute(t, "availability", schedule, "--at", "monday")
	require.ErrorContains(t, err, "invalid --at")
}

type feeResult struct {
	Fee      decimal.Decimal `json:"fee"`
	Source   string          `json:"source"`
	Fallback bool            `json:"fallback"`
}

func runFee(t *testing.T, args ...string) (feeResult, string) {
	t.Helper()

	out, stderr, err := execute(t, append([]string{"fee"}, args...)...)
	require.NoError(t, err)

	var res feeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	return res, stderr
}

func TestFeeCmd_DefaultSchedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		distance     string
		wantFee      int64
		wantFallback bool
	}{
		{name: "first band upper edge", distance: "9.99", wantFee: 50},
		{name: "second band lower edge", distance: "10", wantFee: 80},
		{name: "beyond last band", distance: "1000", wantFee: 200, wantFallback: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, stderr := runFee(t, "--distance", tt.distance)
			require.True(t, res.Fee.Equal(decimal.NewFromInt(tt.wantFee)), res.Fee.String())
			require.Equal(t, "distance", res.Source)
			require.Equal(t, tt.wantFallback, res.Fallback)
			if tt.wantFallback {
				require.Contains(t, stderr, "nearest tier used")
			} else {
				require.Empty(t, stderr)
			}
		})
	}
}

func TestFeeCmd_OrderAmountOverride(t *testing.T) {
	t.Parallel()

	cfg := writeFile(t, "fee.yaml", `
distance_tiers:
  - {min_distance: 0, max_distance: 10, fee: 50}
  - {min_distance: 10, max_distance: 100, fee: 90}
order_amount_tiers:
  - {min_order_amount: 100, fee: 0}
`)

	res, _ := runFee(t, cfg, "--distance", "15", "--amount", "150.00")
	require.True(t, res.Fee.IsZero(), res.Fee.String())
	require.Equal(t, "order_amount", res.Source)

	res, _ = runFee(t, cfg, "--distance", "15", "--amount", "20")
	require.True(t, res.Fee.Equal(decimal.NewFromInt(90)), res.Fee.String())
	require.Equal(t, "distance", res.Source)
}

func TestFeeCmd_JSONAdditive(t *testing.T) {
	t.Parallel()

	cfg := writeFile(t, "fee.json", `{
  "distance_tiers": [{"min_distance": 0, "max_distance": 50, "fee": 40}],
  "order_amount_tiers": [{"min_order_amount": 0, "max_order_amount": 30, "fee": 15}],
  "policy": "additive"
}`)

	res, _ := runFee(t, cfg, "--distance", "3", "--amount", "10")
	require.True(t, res.Fee.Equal(decimal.NewFromInt(55)), res.Fee.String())
	require.Equal(t, "order_amount", res.Source)
}

func TestFeeCmd_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "fee")
	require.Error(t, err)

	_, _, err = execute(t, "fee", "--distance", "5", "--amount", "lots")
	require.ErrorContains(t, err, "invalid --amount")

	bad := writeFile(t, "fee.yaml", "distance_tiers:\n  - {min_distance: 5, max_distance: 10, fee: 50}\n")
	_, _, err = execute(t, "fee", bad, "--distance", "6")
	require.Error(t, err)
}
