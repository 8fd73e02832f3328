// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the device catalog (init, list, export)",
	Long: `Catalog manages the local SQLite device catalog both recommendation
paths read from. Use init to create and seed it, list to inspect it, and
export to dump catalog plus choice history to YAML or JSON.`,
}

var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the catalog database and seed the reference devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Seed(context.Background())
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("Catalog already populated; nothing to do.")
			return nil
		}
		fmt.Printf("Seeded catalog with %d devices.\n", n)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		devices, err := store.Devices(context.Background())
		if err != nil {
			return err
		}
		if len(devices) == 0 {
			fmt.Println("Catalog is empty.")
			return nil
		}

		fmt.Printf("%-4s  %-34s  %-12s  %-4s  %-7s  %-6s  %-7s  %-6s  %-8s  %s\n",
			"ID", "Device", "Price", "RAM", "Storage", "Cam", "Battery", "Screen", "OS", "Network")
		fmt.Println(strings.Repeat("-", 112))
		for _, d := range devices {
			name := truncateName(d.Brand+" "+d.Model, 34)
			fmt.Printf("%-4d  %-34s  %-12s  %-4d  %-7d  %-6d  %-7d  %-6.2f  %-8s  %s\n",
				d.ID, name, d.PriceTier, d.RAM, d.Storage, d.CameraMP,
				d.BatteryMAh, d.ScreenSize, d.OS, d.Network)
		}
		fmt.Printf("\n%d devices\n", len(devices))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog and choice history to YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		switch format {
		case "yaml", "":
			if out == "" {
				out = "catalog-export.yaml"
			}
			if err := store.ExportYAML(context.Background(), out); err != nil {
				return err
			}
		case "json":
			if out == "" {
				out = "catalog-export.json"
			}
			if err := store.ExportJSON(context.Background(), out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}

		fmt.Fprintf(os.Stdout, "Exported to %s\n", out)
		return nil
	},
}

func init() {
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("out", "", "output file path")

	catalogCmd.AddCommand(catalogInitCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
