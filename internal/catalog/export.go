// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// Export holds the catalog and history snapshot written by the export
// commands.
type Export struct {
	Devices []types.Device `json:"devices" yaml:"devices"`
	Choices []types.Choice `json:"choices" yaml:"choices"`
}

// ExportYAML writes the full catalog and choice history to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	ex, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(ex)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the full catalog and choice history to path as JSON.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	ex, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(ex, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) snapshot(ctx context.Context) (Export, error) {
	devices, err := s.Devices(ctx)
	if err != nil {
		return Export{}, err
	}
	choices, err := s.Choices(ctx)
	if err != nil {
		return Export{}, err
	}
	return Export{Devices: devices, Choices: choices}, nil
}
