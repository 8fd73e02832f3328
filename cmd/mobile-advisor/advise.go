// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mobile-advisor/internal/advise"
	"github.com/pdiddy/mobile-advisor/internal/secrets"
	"github.com/pdiddy/mobile-advisor/pkg/types"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Get recommendations from the remote text-generation service",
	Long: `Advise sends your preferences and the catalog listing to the remote
recommender service and matches its free-text answers back onto catalog
devices. When the service is unreachable, times out, or reports failure,
advise falls back to a deterministic preference-filtered slice of the
catalog; the provenance column records which path produced each item.`,
	RunE: runAdvise,
}

func runAdvise(cmd *cobra.Command, args []string) error {
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

	backend := advise.NewHTTPBackend(advisorConfig(cmd))
	count, _ := cmd.Flags().GetInt("count")

	result := advise.Reconcile(ctx, backend, prefs, devices, count, os.Stderr)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		formatAdvice(result)
	}

	choose, _ := cmd.Flags().GetInt("choose")
	if choose > 0 {
		if choose > len(result.Recommendations) {
			return fmt.Errorf("cannot choose rank %d: only %d recommendations", choose, len(result.Recommendations))
		}
		rec := result.Recommendations[choose-1]
		err := store.AppendChoice(ctx, types.Choice{
			Preferences: prefs,
			ChosenBrand: rec.Device.Brand,
			ChosenModel: rec.Device.Model,
			Source:      rec.Source,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Recorded choice: %s %s\n", rec.Device.Brand, rec.Device.Model)
	}

	return nil
}

func formatAdvice(result advise.Result) {
	if len(result.Recommendations) == 0 {
		fmt.Println("No recommendations.")
		return
	}

	fmt.Printf("%-4s  %-34s  %-12s  %s\n", "Rank", "Device", "Price", "Source")
	fmt.Println(strings.Repeat("-", 64))
	for i, r := range result.Recommendations {
		name := truncateName(r.Device.Brand+" "+r.Device.Model, 34)
		fmt.Printf("%-4d  %-34s  %-12s  %s\n", i+1, name, r.Device.PriceTier, r.Source)
	}

	if reasoning := adviceReasoning(result); reasoning != "" {
		fmt.Printf("\nReasoning: %s\n", reasoning)
	}
	if result.FellBack {
		fmt.Printf("\nFallback list (service unusable: %s)\n", result.FailureReason)
	}
}

// adviceReasoning returns the shared reasoning string, which is the same on
// every matched item.
func adviceReasoning(result advise.Result) string {
	for _, r := range result.Recommendations {
		if r.Reasoning != "" {
			return r.Reasoning
		}
	}
	return ""
}

// --- ping subcommand ---

var advisePingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity to the remote recommender service",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := advise.NewHTTPBackend(advisorConfig(cmd))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := backend.Ping(ctx); err != nil {
			return err
		}
		fmt.Println("Recommender service is reachable.")
		return nil
	},
}

// advisorConfig assembles the remote recommender config from flags, the
// config file, and loaded secrets.
func advisorConfig(cmd *cobra.Command) types.AdvisorConfig {
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = viper.GetString("advisor.service_url")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout <= 0 {
		timeout = viper.GetDuration("advisor.timeout")
	}

	return types.AdvisorConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "mobile-advisor/" + version,
		},
		ServiceURL: url,
		AuthToken:  secretDefault(secrets.AuthTokenKey, viper.GetString("advisor.auth_token")),
		MaxRetries: viper.GetInt("advisor.max_retries"),
	}
}

func init() {
	addPrefFlags(adviseCmd)
	adviseCmd.Flags().Int("count", 0, "number of recommendations to request (0 = default 2)")
	adviseCmd.Flags().Bool("json", false, "output results as JSON")
	adviseCmd.Flags().Int("choose", 0, "record the recommendation at this rank as your choice")

	adviseCmd.PersistentFlags().String("url", "", "remote recommender service base URL")
	adviseCmd.PersistentFlags().Duration("timeout", 0, "request timeout (default 60s)")

	adviseCmd.AddCommand(advisePingCmd)
	rootCmd.AddCommand(adviseCmd)
}
