// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and append the choice history",
	Long: `History manages the append-only log of accepted recommendations. The
popularity signal of the expert path is computed from this log, so record
choices faithfully; past entries are never updated or deleted.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded choices",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		choices, err := store.Choices(context.Background())
		if err != nil {
			return err
		}
		if len(choices) == 0 {
			fmt.Println("No choices recorded.")
			return nil
		}

		fmt.Printf("%-4s  %-30s  %-12s  %-8s  %s\n",
			"ID", "Chosen device", "Price pref", "OS pref", "Source")
		fmt.Println(strings.Repeat("-", 70))
		for _, c := range choices {
			name := truncateName(c.ChosenBrand+" "+c.ChosenModel, 30)
			fmt.Printf("%-4d  %-30s  %-12s  %-8s  %s\n",
				c.ID, name, c.Preferences.PriceTier, c.Preferences.OS, c.Source)
		}
		fmt.Printf("\n%d choices\n", len(choices))
		return nil
	},
}

var historyRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an accepted recommendation",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := prefsFromFlags(cmd)
		if err != nil {
			return err
		}
		brand, _ := cmd.Flags().GetString("brand")
		model, _ := cmd.Flags().GetString("model")
		source, _ := cmd.Flags().GetString("source")
		if brand == "" || model == "" {
			return fmt.Errorf("--brand and --model are required")
		}
		switch types.RecommendationSource(source) {
		case types.SourceExpert, types.SourceLLM, types.SourceFallback:
		default:
			return fmt.Errorf("invalid source %q: use expert, llm, or fallback", source)
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		err = store.AppendChoice(context.Background(), types.Choice{
			Preferences: prefs,
			ChosenBrand: brand,
			ChosenModel: model,
			Source:      types.RecommendationSource(source),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded choice: %s %s\n", brand, model)
		return nil
	},
}

func init() {
	addPrefFlags(historyRecordCmd)
	historyRecordCmd.Flags().String("brand", "", "chosen device brand")
	historyRecordCmd.Flags().String("model", "", "chosen device model")
	historyRecordCmd.Flags().String("source", string(types.SourceExpert), "recommendation source: expert, llm, or fallback")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyRecordCmd)

	rootCmd.AddCommand(historyCmd)
}
