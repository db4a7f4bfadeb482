package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the configuration file at path and decodes it into a
// StructuredConfig using the json tags declared on the config types.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json config %s: %w", path, err)
	}

	cfg := &StructuredConfig{}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", path, err)
	}

	return cfg, nil
}
