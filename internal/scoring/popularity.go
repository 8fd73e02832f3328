// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import "github.com/pdiddy/mobile-advisor/pkg/types"

// historicalBonusCap bounds the popularity signal so it can nudge but never
// dominate the similarity or rule scores.
const historicalBonusCap = 0.1

// HistoricalBonus rewards brands popular among past users with similar
// wishes. History is filtered to choices whose price tier or operating
// system matches the preference (inclusive or); the bonus is the brand's
// share of that filtered set scaled by the cap. An empty history or empty
// filtered set yields exactly 0, and the result is always in [0, 0.1].
func HistoricalBonus(pref types.AttributeSet, brand string, history []types.Choice) float64 {
	similar := 0
	chose := 0
	for _, ch := range history {
		if ch.Preferences.PriceTier != pref.PriceTier && ch.Preferences.OS != pref.OS {
			continue
		}
		similar++
		if ch.ChosenBrand == brand {
			chose++
		}
	}
	if similar == 0 {
		return 0
	}
	return float64(chose) / float64(similar) * historicalBonusCap
}
