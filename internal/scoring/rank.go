// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scoring ranks catalog devices against a user preference by
// blending three independent signals: normalized attribute similarity,
// a deterministic expert-rule bonus, and a historical popularity bonus.
package scoring

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// DefaultMaxResults is the recommendation list length when the caller does
// not request one.
const DefaultMaxResults = 8

// ScoreBreakdown carries one candidate's three signal values and their sum.
// Breakdowns are produced fresh for every request and never persisted.
type ScoreBreakdown struct {
	Device types.Device `json:"device" yaml:"device"`

	Similarity      float64 `json:"similarity" yaml:"similarity"`
	RuleBonus       float64 `json:"rule_bonus" yaml:"rule_bonus"`
	HistoricalBonus float64 `json:"historical_bonus" yaml:"historical_bonus"`
	FinalScore      float64 `json:"final_score" yaml:"final_score"`
}

// Rank scores every catalog device against the preference and returns the
// top candidates by final score, at most limit (DefaultMaxResults when
// limit <= 0). The encoding context is fitted once over the catalog plus
// all historical preference sets and reused for every comparison. The sort
// is stable: equal final scores keep catalog order, so identical inputs
// always produce identical output.
func Rank(pref types.AttributeSet, devices []types.Device, history []types.Choice, limit int) []ScoreBreakdown {
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	sets := make([]types.AttributeSet, 0, len(devices)+len(history))
	for _, d := range devices {
		sets = append(sets, d.AttributeSet)
	}
	for _, ch := range history {
		sets = append(sets, ch.Preferences)
	}
	enc := Fit(sets)

	scored := make([]ScoreBreakdown, 0, len(devices))
	for _, d := range devices {
		b := ScoreBreakdown{
			Device:          d,
			Similarity:      Similarity(enc, pref, d.AttributeSet),
			RuleBonus:       RuleBonus(pref, d.AttributeSet),
			HistoricalBonus: HistoricalBonus(pref, d.Brand, history),
		}
		b.FinalScore = b.Similarity + b.RuleBonus + b.HistoricalBonus
		scored = append(scored, b)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// FormatTable writes ranked breakdowns as a human-readable table to w.
func FormatTable(results []ScoreBreakdown, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-34s  %-12s  %-6s  %-6s  %-6s  %s\n",
		"Rank", "Device", "Price", "Sim", "Rules", "Hist", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 86))

	for i, r := range results {
		name := truncateName(r.Device.Brand+" "+r.Device.Model, 34)
		fmt.Fprintf(w, "%-4d  %-34s  %-12s  %-6.2f  %-6.2f  %-6.2f  %.2f\n",
			i+1, name, r.Device.PriceTier,
			r.Similarity, r.RuleBonus, r.HistoricalBonus, r.FinalScore)
	}

	fmt.Fprintf(w, "\n%d recommendations\n", len(results))
}

// truncateName shortens a display name to at most max runes, marking the
// cut with "...". Slicing by byte could split a multi-byte rune.
func truncateName(name string, max int) string {
	if utf8.RuneCountInString(name) <= max {
		return name
	}
	return string([]rune(name)[:max-3]) + "..."
}

// FormatJSON writes ranked breakdowns as indented JSON to w.
func FormatJSON(results []ScoreBreakdown, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
