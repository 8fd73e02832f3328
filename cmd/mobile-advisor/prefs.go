// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mobile-advisor/internal/catalog"
	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// addPrefFlags registers the nine preference attribute flags plus --prefs
// for loading them from a YAML file. File values are the base; explicit
// flags override individual fields.
func addPrefFlags(cmd *cobra.Command) {
	cmd.Flags().String("prefs", "", "YAML file with preference attributes")
	cmd.Flags().String("price", "Medium", "preferred price tier: Low, Low-Medium, Medium, Medium-High, High")
	cmd.Flags().Int("ram", 8, "minimum RAM in GB")
	cmd.Flags().Int("storage", 128, "minimum storage in GB")
	cmd.Flags().Int("camera", 50, "preferred camera resolution in MP")
	cmd.Flags().Int("battery", 4500, "preferred battery capacity in mAh")
	cmd.Flags().Float64("screen", 6.2, "preferred screen size in inches")
	cmd.Flags().String("os", "Android", "preferred operating system")
	cmd.Flags().String("processor", "Snapdragon 8 Gen 3", "preferred processor family")
	cmd.Flags().String("network", "5G", "preferred network generation")
}

// prefsFromFlags assembles the preference attribute set from --prefs and
// the individual flags.
func prefsFromFlags(cmd *cobra.Command) (types.AttributeSet, error) {
	var prefs types.AttributeSet

	if path, _ := cmd.Flags().GetString("prefs"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return prefs, fmt.Errorf("reading preferences file: %w", err)
		}
		if err := yaml.Unmarshal(data, &prefs); err != nil {
			return prefs, fmt.Errorf("parsing preferences file %s: %w", path, err)
		}
	}

	flagString := func(name string, dst *string) {
		if cmd.Flags().Changed(name) || *dst == "" {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	flagInt := func(name string, dst *int) {
		if cmd.Flags().Changed(name) || *dst == 0 {
			*dst, _ = cmd.Flags().GetInt(name)
		}
	}

	if cmd.Flags().Changed("price") || prefs.PriceTier == "" {
		price, _ := cmd.Flags().GetString("price")
		prefs.PriceTier = types.PriceTier(price)
	}
	flagInt("ram", &prefs.RAM)
	flagInt("storage", &prefs.Storage)
	flagInt("camera", &prefs.CameraMP)
	flagInt("battery", &prefs.BatteryMAh)
	if cmd.Flags().Changed("screen") || prefs.ScreenSize == 0 {
		prefs.ScreenSize, _ = cmd.Flags().GetFloat64("screen")
	}
	flagString("os", &prefs.OS)
	flagString("processor", &prefs.Processor)
	flagString("network", &prefs.Network)

	return prefs, nil
}

// openStore opens the catalog store using --db, the config file, or the
// default path, in that order.
func openStore(cmd *cobra.Command) (*catalog.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("catalog.db_path")
	}
	return catalog.NewStore(types.CatalogConfig{DBPath: path})
}
