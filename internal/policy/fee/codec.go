package fee

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by the parsers for empty or null input.
var ErrNoConfig = errors.New("fee config is empty")

// Document is the serialized fee configuration shared by the JSON column,
// the YAML defaults file and the HTTP API.
type Document struct {
	DistanceTiers    []DistanceTierDoc `json:"distance_tiers" yaml:"distance_tiers"`
	BaseFee          *float64          `json:"base_fee,omitempty" yaml:"base_fee,omitempty"`
	OrderAmountTiers []AmountTierDoc   `json:"order_amount_tiers,omitempty" yaml:"order_amount_tiers,omitempty"`
	Policy           string            `json:"policy,omitempty" yaml:"policy,omitempty"`
}

// DistanceTierDoc is the serialized DistanceTier.
type DistanceTierDoc struct {
	MinDistance float64 `json:"min_distance" yaml:"min_distance"`
	MaxDistance float64 `json:"max_distance" yaml:"max_distance"`
	Fee         float64 `json:"fee" yaml:"fee"`
}

// AmountTierDoc is the serialized AmountTier.
type AmountTierDoc struct {
	MinOrderAmount float64  `json:"min_order_amount" yaml:"min_order_amount"`
	MaxOrderAmount *float64 `json:"max_order_amount,omitempty" yaml:"max_order_amount,omitempty"`
	Fee            float64  `json:"fee" yaml:"fee"`
}

// ParseJSON decodes and validates a JSON fee config.
func ParseJSON(data []byte) (*Config, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrNoConfig
	}
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fee config: %w", err)
	}
	return doc.Config()
}

// ParseYAML decodes and validates a YAML fee config.
func ParseYAML(data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoConfig
	}
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fee config: %w", err)
	}
	return doc.Config()
}

// Config converts the document into a validated Config. An empty tier list
// leaves the schedule empty so that Resolve falls back to DefaultSchedule.
func (d Document) Config() (*Config, error) {
	policy, err := ParsePolicy(d.Policy)
	if err != nil {
		return nil, err
	}
	cfg := &Config{Policy: policy}

	if len(d.DistanceTiers) > 0 {
		tiers := make([]DistanceTier, 0, len(d.DistanceTiers))
		for _, t := range d.DistanceTiers {
			tiers = append(tiers, DistanceTier{
				MinKm: t.MinDistance,
				MaxKm: t.MaxDistance,
				Fee:   decimal.NewFromFloat(t.Fee),
			})
		}
		if cfg.Schedule, err = NewSchedule(tiers); err != nil {
			return nil, err
		}
	}

	if d.BaseFee != nil {
		base := decimal.NewFromFloat(*d.BaseFee)
		cfg.BaseFee = &base
	}
	for _, t := range d.OrderAmountTiers {
		tier := AmountTier{
			Min: decimal.NewFromFloat(t.MinOrderAmount),
			Fee: decimal.NewFromFloat(t.Fee),
		}
		if t.MaxOrderAmount != nil {
			upper := decimal.NewFromFloat(*t.MaxOrderAmount)
			tier.Max = &upper
		}
		cfg.AmountTiers = append(cfg.AmountTiers, tier)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewDocument serializes cfg.
func NewDocument(cfg Config) Document {
	doc := Document{Policy: string(cfg.Policy)}
	for _, t := range cfg.Schedule.Tiers() {
		doc.DistanceTiers = append(doc.DistanceTiers, DistanceTierDoc{
			MinDistance: t.MinKm,
			MaxDistance: t.MaxKm,
			Fee:         t.Fee.InexactFloat64(),
		})
	}
	if cfg.BaseFee != nil {
		base := cfg.BaseFee.InexactFloat64()
		doc.BaseFee = &base
	}
	for _, t := range cfg.AmountTiers {
		tier := AmountTierDoc{
			MinOrderAmount: t.Min.InexactFloat64(),
			Fee:            t.Fee.InexactFloat64(),
		}
		if t.Max != nil {
			upper := t.Max.InexactFloat64()
			tier.MaxOrderAmount = &upper
		}
		doc.OrderAmountTiers = append(doc.OrderAmountTiers, tier)
	}
	return doc
}
