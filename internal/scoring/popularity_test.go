// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"testing"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

func choice(tier types.PriceTier, os, brand string) types.Choice {
	return types.Choice{
		Preferences: types.AttributeSet{PriceTier: tier, OS: os},
		ChosenBrand: brand,
	}
}

func TestHistoricalBonus_EmptyHistory(t *testing.T) {
	pref := attrs(types.TierMedium, 8, 128, 50, 4500, 6.2, "Android", "X", "5G")
	if got := HistoricalBonus(pref, "Samsung", nil); got != 0 {
		t.Errorf("HistoricalBonus = %v, want 0 for empty history", got)
	}
}

func TestHistoricalBonus_FilterIsInclusiveOr(t *testing.T) {
	pref := attrs(types.TierMedium, 8, 128, 50, 4500, 6.2, "Android", "X", "5G")

	history := []types.Choice{
		choice(types.TierMedium, "iOS", "Samsung"),  // tier matches
		choice(types.TierHigh, "Android", "Samsung"), // OS matches
		choice(types.TierHigh, "iOS", "Samsung"),    // neither: excluded
		choice(types.TierMedium, "Android", "Apple"), // both match, other brand
	}

	// Three similar choices, two for Samsung.
	got := HistoricalBonus(pref, "Samsung", history)
	want := 2.0 / 3.0 * 0.1
	if !almostEqual(got, want) {
		t.Errorf("HistoricalBonus = %v, want %v", got, want)
	}
}

func TestHistoricalBonus_BrandAbsentFromFiltered(t *testing.T) {
	pref := attrs(types.TierMedium, 8, 128, 50, 4500, 6.2, "Android", "X", "5G")
	history := []types.Choice{
		choice(types.TierMedium, "Android", "Apple"),
	}
	if got := HistoricalBonus(pref, "Samsung", history); got != 0 {
		t.Errorf("HistoricalBonus = %v, want 0 for absent brand", got)
	}
}

func TestHistoricalBonus_NoSimilarChoices(t *testing.T) {
	pref := attrs(types.TierMedium, 8, 128, 50, 4500, 6.2, "Android", "X", "5G")
	history := []types.Choice{
		choice(types.TierHigh, "iOS", "Apple"),
		choice(types.TierLow, "iOS", "Samsung"),
	}
	if got := HistoricalBonus(pref, "Apple", history); got != 0 {
		t.Errorf("HistoricalBonus = %v, want 0 for empty filtered set", got)
	}
}

func TestHistoricalBonus_Bounded(t *testing.T) {
	pref := attrs(types.TierMedium, 8, 128, 50, 4500, 6.2, "Android", "X", "5G")

	// Unanimous history for one brand reaches the cap exactly.
	var history []types.Choice
	for i := 0; i < 50; i++ {
		history = append(history, choice(types.TierMedium, "Android", "Samsung"))
	}
	got := HistoricalBonus(pref, "Samsung", history)
	if !almostEqual(got, 0.1) {
		t.Errorf("HistoricalBonus = %v, want cap 0.1 for unanimous history", got)
	}
	if got < 0 || got > 0.1 {
		t.Errorf("HistoricalBonus = %v, out of [0, 0.1]", got)
	}
}
