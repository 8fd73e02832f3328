// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"math"
	"sort"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// NumDims is the length of an encoded attribute vector: the nine device
// attributes in fixed order (price tier, ram, storage, camera, battery,
// screen, OS, processor, network).
const NumDims = 9

// Indices of the categorical dimensions within a Vector.
const (
	dimTier      = 0
	dimOS        = 6
	dimProcessor = 7
	dimNetwork   = 8
)

// Vector is an encoded, normalized attribute set.
type Vector [NumDims]float64

// EncodingContext holds the fitted categorical ordinal maps and the
// per-dimension normalization parameters. It is built once per ranking
// request with Fit and must be shared by every encode call within that
// request; vectors encoded under different contexts are not comparable.
type EncodingContext struct {
	tiers      map[string]int
	systems    map[string]int
	processors map[string]int
	networks   map[string]int

	mean [NumDims]float64
	std  [NumDims]float64
}

// Fit builds an EncodingContext from every attribute set that will be
// compared during one request: the full catalog plus all historical
// preference sets. Categorical values are mapped to ordinals in
// lexicographic order so the mapping is reproducible across runs, and each
// dimension's mean and standard deviation are computed over the raw vectors.
func Fit(sets []types.AttributeSet) *EncodingContext {
	tierSet := make(map[string]bool)
	osSet := make(map[string]bool)
	procSet := make(map[string]bool)
	netSet := make(map[string]bool)
	for _, a := range sets {
		tierSet[string(a.PriceTier)] = true
		osSet[a.OS] = true
		procSet[a.Processor] = true
		netSet[a.Network] = true
	}

	e := &EncodingContext{
		tiers:      ordinals(tierSet),
		systems:    ordinals(osSet),
		processors: ordinals(procSet),
		networks:   ordinals(netSet),
	}

	n := float64(len(sets))
	if n == 0 {
		for i := range e.std {
			e.std[i] = 1
		}
		return e
	}

	var sum, sumSq [NumDims]float64
	for _, a := range sets {
		raw, _ := e.rawVector(a)
		for i, x := range raw {
			sum[i] += x
			sumSq[i] += x * x
		}
	}
	for i := range e.mean {
		e.mean[i] = sum[i] / n
		variance := sumSq[i]/n - e.mean[i]*e.mean[i]
		if variance < 0 {
			variance = 0
		}
		e.std[i] = math.Sqrt(variance)
		// A constant dimension carries no signal; neutralize it instead
		// of dividing by zero.
		if e.std[i] == 0 {
			e.std[i] = 1
		}
	}
	return e
}

// ordinals assigns lexicographically ordered ordinals to a set of values.
func ordinals(values map[string]bool) map[string]int {
	sorted := make([]string, 0, len(values))
	for v := range values {
		sorted = append(sorted, v)
	}
	sort.Strings(sorted)

	m := make(map[string]int, len(sorted))
	for i, v := range sorted {
		m[v] = i
	}
	return m
}

// Encode maps an attribute set to its normalized vector under this context.
// A categorical value that was not seen during Fit encodes to ordinal 0
// rather than failing; one unknown value must not abort a ranking pass.
func (e *EncodingContext) Encode(a types.AttributeSet) Vector {
	raw, _ := e.rawVector(a)
	return e.normalize(raw)
}

// EncodePair encodes two attribute sets that will be compared against each
// other. When a categorical value on either side was not seen during Fit,
// that dimension is zeroed on both sides so the pair stays comparable
// instead of one side carrying a fabricated distance.
func (e *EncodingContext) EncodePair(a, b types.AttributeSet) (Vector, Vector) {
	rawA, seenA := e.rawVector(a)
	rawB, seenB := e.rawVector(b)
	for _, dim := range []int{dimTier, dimOS, dimProcessor, dimNetwork} {
		if !seenA[dim] || !seenB[dim] {
			rawA[dim] = 0
			rawB[dim] = 0
		}
	}
	return e.normalize(rawA), e.normalize(rawB)
}

func (e *EncodingContext) normalize(raw Vector) Vector {
	for i := range raw {
		raw[i] = (raw[i] - e.mean[i]) / e.std[i]
	}
	return raw
}

// rawVector applies the ordinal maps and numeric passthrough without
// normalization. The seen array marks categorical dimensions whose value
// was present during Fit; unseen values map to ordinal 0.
func (e *EncodingContext) rawVector(a types.AttributeSet) (Vector, [NumDims]bool) {
	var seen [NumDims]bool
	for i := range seen {
		seen[i] = true
	}

	tier, ok := e.tiers[string(a.PriceTier)]
	seen[dimTier] = ok
	os, ok := e.systems[a.OS]
	seen[dimOS] = ok
	proc, ok := e.processors[a.Processor]
	seen[dimProcessor] = ok
	net, ok := e.networks[a.Network]
	seen[dimNetwork] = ok

	return Vector{
		float64(tier),
		float64(a.RAM),
		float64(a.Storage),
		float64(a.CameraMP),
		float64(a.BatteryMAh),
		a.ScreenSize,
		float64(os),
		float64(proc),
		float64(net),
	}, seen
}
