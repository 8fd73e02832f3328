// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package advise reconciles free-text recommendations from a remote
// text-generation service back onto catalog identity, with a deterministic
// fallback when the service is unusable.
package advise

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// DefaultCount is the number of device mentions requested from the remote
// service when the caller does not specify one.
const DefaultCount = 2

// Recommendation is one reconciled result: a catalog device plus the
// provenance of how it was selected.
type Recommendation struct {
	Device types.Device `json:"device" yaml:"device"`

	// Source is SourceLLM for a matched mention, SourceFallback otherwise.
	Source types.RecommendationSource `json:"source" yaml:"source"`

	// Mention is the free-text the service produced, when matched.
	Mention string `json:"mention,omitempty" yaml:"mention,omitempty"`

	// Reasoning is the service's shared reasoning string, when matched.
	Reasoning string `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// Result is the outcome of one reconciliation pass.
type Result struct {
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`

	// FellBack reports whether the fallback path produced the list.
	FellBack bool `json:"fell_back" yaml:"fell_back"`

	// FailureReason describes why the service response was unusable, when
	// FellBack is true.
	FailureReason string `json:"failure_reason,omitempty" yaml:"failure_reason,omitempty"`
}

// reconcileState tracks the reconciler through its request lifecycle:
// idle → requesting → matching or falling back → done.
type reconcileState int

const (
	stateIdle reconcileState = iota
	stateRequesting
	stateMatching
	stateFallingBack
	stateDone
)

// Reconcile asks the remote service for device mentions and resolves each
// onto the catalog. It never returns an error: any service failure
// (transport, timeout, HTTP error, malformed or unsuccessful reply) routes
// to the fallback path, and the result's provenance records which path ran.
// Progress and dropped mentions are reported on w.
func Reconcile(ctx context.Context, backend Backend, pref types.AttributeSet, devices []types.Device, count int, w io.Writer) Result {
	if count <= 0 {
		count = DefaultCount
	}

	var (
		result Result
		resp   Response
		err    error
	)

	for state := stateIdle; state != stateDone; {
		switch state {
		case stateIdle:
			state = stateRequesting

		case stateRequesting:
			resp, err = backend.Recommend(ctx, Request{
				Preferences: pref,
				Catalog:     CatalogListing(devices),
				Count:       count,
			})
			switch {
			case err != nil:
				result.FailureReason = err.Error()
				state = stateFallingBack
			case !resp.Success:
				result.FailureReason = fmt.Sprintf("service reported failure: %s", resp.Error)
				state = stateFallingBack
			default:
				state = stateMatching
			}

		case stateMatching:
			result.Recommendations = matchMentions(resp, devices, w)
			state = stateDone

		case stateFallingBack:
			fmt.Fprintf(w, "warning: falling back to preference filter: %s\n", result.FailureReason)
			result.FellBack = true
			result.Recommendations = fallback(pref, devices, count)
			state = stateDone
		}
	}

	return result
}

// matchMentions resolves each free-text mention onto the catalog. Mentions
// that match nothing are dropped with a warning; one unrecognizable line
// must not sink the batch.
func matchMentions(resp Response, devices []types.Device, w io.Writer) []Recommendation {
	var recs []Recommendation
	for _, mention := range resp.Recommendations {
		idx, ok := Match(mention, devices)
		if !ok {
			fmt.Fprintf(w, "warning: could not match recommendation: %s\n", mention)
			continue
		}
		recs = append(recs, Recommendation{
			Device:    devices[idx],
			Source:    types.SourceLLM,
			Mention:   mention,
			Reasoning: resp.Reasoning,
		})
	}
	return recs
}

// fallbackStrategies is the ordered list of candidate filters the fallback
// path tries. The first strategy that yields any device wins; the last is
// the unfiltered catalog, so the reconciler always returns something.
var fallbackStrategies = []func(pref types.AttributeSet, devices []types.Device) []types.Device{
	filterByTierOrOS,
	func(_ types.AttributeSet, devices []types.Device) []types.Device { return devices },
}

// fallback substitutes a deterministic list for the unusable service
// response: the first count devices from the first non-empty strategy.
func fallback(pref types.AttributeSet, devices []types.Device, count int) []Recommendation {
	var pool []types.Device
	for _, strategy := range fallbackStrategies {
		if pool = strategy(pref, devices); len(pool) > 0 {
			break
		}
	}
	if len(pool) > count {
		pool = pool[:count]
	}

	recs := make([]Recommendation, 0, len(pool))
	for _, d := range pool {
		recs = append(recs, Recommendation{
			Device:  d,
			Source:  types.SourceFallback,
			Mention: d.Brand + " " + d.Model,
		})
	}
	return recs
}

// filterByTierOrOS keeps devices sharing the preference's price tier or
// operating system, the same inclusive-or filter the popularity bonus uses.
func filterByTierOrOS(pref types.AttributeSet, devices []types.Device) []types.Device {
	var out []types.Device
	for _, d := range devices {
		if d.PriceTier == pref.PriceTier || d.OS == pref.OS {
			out = append(out, d)
		}
	}
	return out
}
