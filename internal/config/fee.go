package config

import (
	"fmt"
	"os"

	"order-policy-service/internal/policy/fee"
)

// LoadFeeDefaults reads the YAML fee config at path. An empty path yields
// fee.DefaultConfig.
func LoadFeeDefaults(path string) (*fee.Config, error) {
	if path == "" {
		def := fee.DefaultConfig()
		return &def, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fee schedule %s: %w", path, err)
	}
	cfg, err := fee.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("fee schedule %s: %w", path, err)
	}
	return cfg, nil
}
