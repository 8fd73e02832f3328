// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advise

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// mockBackend returns a canned response or error.
type mockBackend struct {
	resp Response
	err  error

	gotReq Request
	calls  int
}

func (m *mockBackend) Recommend(_ context.Context, req Request) (Response, error) {
	m.calls++
	m.gotReq = req
	if m.err != nil {
		return Response{}, m.err
	}
	return m.resp, nil
}

func adviseCatalog() []types.Device {
	return []types.Device{
		{ID: 1, Brand: "Apple", Model: "iPhone 15 Pro Max",
			AttributeSet: types.AttributeSet{PriceTier: types.TierHigh, OS: "iOS"}},
		{ID: 2, Brand: "Samsung", Model: "Galaxy A54",
			AttributeSet: types.AttributeSet{PriceTier: types.TierMedium, OS: "Android"}},
		{ID: 3, Brand: "Google", Model: "Pixel 7a",
			AttributeSet: types.AttributeSet{PriceTier: types.TierMedium, OS: "Android"}},
		{ID: 4, Brand: "OnePlus", Model: "OnePlus Nord 3",
			AttributeSet: types.AttributeSet{PriceTier: types.TierMedium, OS: "Android"}},
	}
}

func androidPrefs() types.AttributeSet {
	return types.AttributeSet{PriceTier: types.TierMedium, OS: "Android"}
}

func TestReconcile_MatchesMentions(t *testing.T) {
	backend := &mockBackend{resp: Response{
		Success: true,
		Recommendations: []string{
			"The Samsung Galaxy A54 offers the best value.",
			"Also consider the Google Pixel 7a.",
		},
		Reasoning: "Both fit a mid-range Android budget.",
	}}

	var w bytes.Buffer
	result := Reconcile(context.Background(), backend, androidPrefs(), adviseCatalog(), 2, &w)

	if result.FellBack {
		t.Fatalf("unexpected fallback: %s", result.FailureReason)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(result.Recommendations))
	}
	if got := result.Recommendations[0].Device.Model; got != "Galaxy A54" {
		t.Errorf("first match = %s, want Galaxy A54", got)
	}
	for _, r := range result.Recommendations {
		if r.Source != types.SourceLLM {
			t.Errorf("source = %s, want %s", r.Source, types.SourceLLM)
		}
		if r.Reasoning == "" {
			t.Error("matched recommendation lost the reasoning string")
		}
	}
	if backend.gotReq.Catalog == "" || backend.gotReq.Count != 2 {
		t.Errorf("request missing catalog listing or count: %+v", backend.gotReq)
	}
}

func TestReconcile_DropsUnmatchedMentions(t *testing.T) {
	backend := &mockBackend{resp: Response{
		Success: true,
		Recommendations: []string{
			"The Samsung Galaxy A54 offers the best value.",
			"The Nokia 3310 is indestructible.", // not in the catalog
		},
	}}

	var w bytes.Buffer
	result := Reconcile(context.Background(), backend, androidPrefs(), adviseCatalog(), 2, &w)

	if result.FellBack {
		t.Fatal("dropping one mention must not trigger fallback")
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(result.Recommendations))
	}
	if !strings.Contains(w.String(), "could not match") {
		t.Errorf("dropped mention not reported: %q", w.String())
	}
}

func TestReconcile_ServiceFailureFallsBack(t *testing.T) {
	backend := &mockBackend{resp: Response{Success: false, Error: "model overloaded"}}

	var w bytes.Buffer
	result := Reconcile(context.Background(), backend, androidPrefs(), adviseCatalog(), 2, &w)

	if !result.FellBack {
		t.Fatal("expected fallback for success=false response")
	}
	if !strings.Contains(result.FailureReason, "model overloaded") {
		t.Errorf("failure reason = %q, want service error included", result.FailureReason)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(result.Recommendations))
	}
	// The preference filter keeps Medium/Android devices, in catalog order.
	if got := result.Recommendations[0].Device.Model; got != "Galaxy A54" {
		t.Errorf("first fallback = %s, want Galaxy A54", got)
	}
	for _, r := range result.Recommendations {
		if r.Source != types.SourceFallback {
			t.Errorf("source = %s, want %s", r.Source, types.SourceFallback)
		}
	}
}

func TestReconcile_TransportErrorFallsBack(t *testing.T) {
	backend := &mockBackend{err: fmt.Errorf("dial tcp: connection refused")}

	var w bytes.Buffer
	result := Reconcile(context.Background(), backend, androidPrefs(), adviseCatalog(), 3, &w)

	if !result.FellBack {
		t.Fatal("expected fallback for transport error")
	}
	if len(result.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(result.Recommendations))
	}
}

func TestReconcile_FallbackFiltersThenUnfiltered(t *testing.T) {
	backend := &mockBackend{err: fmt.Errorf("timeout")}

	// No device shares this preference's tier or OS, so the second
	// strategy (unfiltered catalog) must produce the list.
	prefs := types.AttributeSet{PriceTier: types.TierLow, OS: "HarmonyOS"}

	var w bytes.Buffer
	result := Reconcile(context.Background(), backend, prefs, adviseCatalog(), 2, &w)

	if !result.FellBack {
		t.Fatal("expected fallback")
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(result.Recommendations))
	}
	if got := result.Recommendations[0].Device.Model; got != "iPhone 15 Pro Max" {
		t.Errorf("first unfiltered fallback = %s, want catalog head", got)
	}
}

func TestReconcile_FallbackShorterThanCountedCatalog(t *testing.T) {
	backend := &mockBackend{err: fmt.Errorf("timeout")}

	var w bytes.Buffer
	result := Reconcile(context.Background(), backend, androidPrefs(), adviseCatalog(), 10, &w)

	// Only three devices pass the preference filter.
	if len(result.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(result.Recommendations))
	}
}

func TestReconcile_DefaultCount(t *testing.T) {
	backend := &mockBackend{resp: Response{Success: true}}

	var w bytes.Buffer
	Reconcile(context.Background(), backend, androidPrefs(), adviseCatalog(), 0, &w)

	if backend.gotReq.Count != DefaultCount {
		t.Errorf("requested count = %d, want default %d", backend.gotReq.Count, DefaultCount)
	}
}

func TestCatalogListing(t *testing.T) {
	devices := []types.Device{
		{ID: 1, Brand: "Samsung", Model: "Galaxy A54", AttributeSet: types.AttributeSet{
			PriceTier: types.TierMedium, RAM: 8, Storage: 128, CameraMP: 50,
			BatteryMAh: 5000, ScreenSize: 6.4, OS: "Android", Processor: "Exynos 1380", Network: "5G",
		}},
	}

	got := CatalogListing(devices)
	want := "1. Samsung Galaxy A54 - Price: Medium, RAM: 8GB, Storage: 128GB, " +
		"Camera: 50MP, Battery: 5000mAh, Screen: 6.40\", OS: Android, Processor: Exynos 1380, Network: 5G\n"
	if got != want {
		t.Errorf("CatalogListing =\n%q\nwant\n%q", got, want)
	}
}
