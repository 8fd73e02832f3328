// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"math"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// Similarity computes the cosine similarity between a preference and a
// candidate under the shared fitted context, in [-1, 1]. Both sides are
// encoded through the same EncodingContext; re-fitting between candidates
// would make the scores incomparable.
func Similarity(e *EncodingContext, pref, candidate types.AttributeSet) float64 {
	u, v := e.EncodePair(pref, candidate)
	return cosine(u, v)
}

// cosine returns the cosine of the angle between u and v, or 0 when either
// vector has zero magnitude.
func cosine(u, v Vector) float64 {
	var dot, normU, normV float64
	for i := range u {
		dot += u[i] * v[i]
		normU += u[i] * u[i]
		normV += v[i] * v[i]
	}
	if normU == 0 || normV == 0 {
		return 0
	}
	return dot / (math.Sqrt(normU) * math.Sqrt(normV))
}
