// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mobile-advisor/internal/scoring"
	"github.com/pdiddy/mobile-advisor/pkg/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog devices against your preferences (expert path)",
	Long: `Recommend scores every catalog device against your stated preferences and
prints the top matches. The final score per device blends cosine similarity
over normalized attributes, a deterministic expert-rule bonus, and a bonus
for brands popular among past users with similar wishes.

Use --choose to record which recommendation you accepted; recorded choices
feed the popularity signal of future rankings.`,
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	prefs, err := prefsFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	devices, err := store.Devices(ctx)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return fmt.Errorf("catalog is empty: run 'mobile-advisor catalog init' first")
	}
	history, err := store.Choices(ctx)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	results := scoring.Rank(prefs, devices, history, limit)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := scoring.FormatJSON(results, os.Stdout); err != nil {
			return err
		}
	} else {
		scoring.FormatTable(results, os.Stdout)
	}

	choose, _ := cmd.Flags().GetInt("choose")
	if choose > 0 {
		if choose > len(results) {
			return fmt.Errorf("cannot choose rank %d: only %d recommendations", choose, len(results))
		}
		chosen := results[choose-1].Device
		err := store.AppendChoice(ctx, types.Choice{
			Preferences: prefs,
			ChosenBrand: chosen.Brand,
			ChosenModel: chosen.Model,
			Source:      types.SourceExpert,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Recorded choice: %s %s\n", chosen.Brand, chosen.Model)
	}

	return nil
}

func init() {
	addPrefFlags(recommendCmd)
	recommendCmd.Flags().Int("limit", 0, "maximum recommendations (0 = default 8)")
	recommendCmd.Flags().Bool("json", false, "output results as JSON")
	recommendCmd.Flags().Int("choose", 0, "record the recommendation at this rank as your choice")

	rootCmd.AddCommand(recommendCmd)
}
