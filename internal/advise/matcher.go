// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advise

import (
	"strings"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// Match scores for the token heuristics. A model-word hit outweighs a
// brand hit so "the iPhone 15 is a solid pick" beats a bare "Apple".
const (
	brandMatchScore = 2
	modelMatchScore = 3
)

// Match resolves a free-text device mention to an index in devices, in
// catalog order. It returns false when nothing in the catalog is
// recognizable in the text; that is a normal outcome, not an error.
//
// Resolution order: an exact case-insensitive "brand model" substring wins
// immediately. Otherwise every device is scored — brand present as a
// substring scores +2, any model word longer than two characters present
// scores +3 — and the best score above zero wins. Ties keep the first
// device encountered, so a brand-only mention can attribute to the wrong
// model of that brand; the text rarely carries enough signal to do better.
func Match(freeText string, devices []types.Device) (int, bool) {
	text := strings.ToLower(freeText)

	bestIdx := -1
	bestScore := 0

	for i, d := range devices {
		brand := strings.ToLower(d.Brand)
		model := strings.ToLower(d.Model)

		if strings.Contains(text, brand+" "+model) {
			return i, true
		}

		score := 0
		if strings.Contains(text, brand) {
			score += brandMatchScore
		}
		for _, word := range strings.Fields(model) {
			if len(word) > 2 && strings.Contains(text, word) {
				score += modelMatchScore
				break
			}
		}

		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestScore > 0 {
		return bestIdx, true
	}
	return -1, false
}
