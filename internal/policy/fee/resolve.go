package fee

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Source tells which rule produced a fee.
type Source string

// Fee sources.
const (
	SourceDistance    Source = "distance"
	SourceBaseFee     Source = "base_fee"
	SourceOrderAmount Source = "order_amount"
)

// Policy decides how a matched order-amount tier combines with the rest of
// the configuration.
type Policy string

const (
	// PolicyOverride uses the matched order-amount tier's fee as the whole
	// fee. Without a match the base fee applies when set, else the distance fee.
	PolicyOverride Policy = "override"
	// PolicyAdditive adds the matched tier's fee to a base, which is the base
	// fee when set and the distance fee otherwise.
	PolicyAdditive Policy = "additive"
)

// ErrInvalidConfig wraps every fee config validation failure.
var ErrInvalidConfig = errors.New("invalid fee config")

// ParsePolicy parses a policy name; an empty name means PolicyOverride.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyOverride:
		return PolicyOverride, nil
	case PolicyAdditive:
		return PolicyAdditive, nil
	default:
		return "", fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, s)
	}
}

// AmountTier prices orders whose amount falls in [Min, Max). A nil Max is
// unbounded above.
type AmountTier struct {
	Min decimal.Decimal
	Max *decimal.Decimal
	Fee decimal.Decimal
}

// Matches reports whether amount falls inside the tier.
func (t AmountTier) Matches(amount decimal.Decimal) bool {
	if amount.LessThan(t.Min) {
		return false
	}
	return t.Max == nil || amount.LessThan(*t.Max)
}

// Config is a merchant's fee configuration.
type Config struct {
	Schedule    Schedule
	BaseFee     *decimal.Decimal
	AmountTiers []AmountTier
	Policy      Policy
}

// Validate checks the parts of c that NewSchedule does not.
func (c Config) Validate() error {
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	if c.BaseFee != nil && c.BaseFee.IsNegative() {
		return fmt.Errorf("%w: negative base fee %s", ErrInvalidConfig, c.BaseFee)
	}
	for i, t := range c.AmountTiers {
		if t.Min.IsNegative() {
			return fmt.Errorf("%w: amount tier %d has negative minimum", ErrInvalidConfig, i)
		}
		if t.Max != nil && !t.Max.GreaterThan(t.Min) {
			return fmt.Errorf("%w: amount tier %d max %s <= min %s", ErrInvalidConfig, i, t.Max, t.Min)
		}
		if t.Fee.IsNegative() {
			return fmt.Errorf("%w: amount tier %d has negative fee", ErrInvalidConfig, i)
		}
	}
	return nil
}

// DefaultConfig wraps DefaultSchedule with the override policy.
func DefaultConfig() Config {
	return Config{Schedule: DefaultSchedule(), Policy: PolicyOverride}
}

// Quote is a resolved fee. Fallback is set when the distance was outside
// every configured band and the nearest boundary tier was used.
type Quote struct {
	Fee      decimal.Decimal
	Source   Source
	Fallback bool
	Tier     DistanceTier
}

// Resolve computes the fee for a trip of distanceKm. orderAmount may be nil.
// A nil config or an empty schedule resolves against DefaultSchedule.
func Resolve(cfg *Config, distanceKm float64, orderAmount *decimal.Decimal) Quote {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	schedule := cfg.Schedule
	if schedule.Empty() {
		schedule = DefaultSchedule()
	}

	band, exact := schedule.Lookup(distanceKm)
	q := Quote{Fee: band.Fee, Source: SourceDistance, Fallback: !exact, Tier: band}

	matched, ok := matchAmount(cfg.AmountTiers, orderAmount)

	if cfg.Policy == PolicyAdditive {
		if cfg.BaseFee != nil {
			q.Fee, q.Source = *cfg.BaseFee, SourceBaseFee
		}
		if ok {
			q.Fee, q.Source = q.Fee.Add(matched.Fee), SourceOrderAmount
		}
		return q
	}

	switch {
	case ok:
		q.Fee, q.Source = matched.Fee, SourceOrderAmount
	case cfg.BaseFee != nil:
		q.Fee, q.Source = *cfg.BaseFee, SourceBaseFee
	}
	return q
}

func matchAmount(tiers []AmountTier, amount *decimal.Decimal) (AmountTier, bool) {
	if amount == nil {
		return AmountTier{}, false
	}
	for _, t := range tiers {
		if t.Matches(*amount) {
			return t, true
		}
	}
	return AmountTier{}, false
}
