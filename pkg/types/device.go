// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the mobile-advisor engine:
// the device attribute model, catalog records, choice history, and the
// per-stage configuration structs.
package types

import "time"

// PriceTier is the ordered price category of a device or a preference.
type PriceTier string

const (
	TierLow        PriceTier = "Low"
	TierLowMedium  PriceTier = "Low-Medium"
	TierMedium     PriceTier = "Medium"
	TierMediumHigh PriceTier = "Medium-High"
	TierHigh       PriceTier = "High"
)

// AttributeSet is the nine-field structured description shared by catalog
// devices and user preferences. Every record carries all nine attributes;
// there are no partial sets.
type AttributeSet struct {
	// PriceTier is the ordered price category (Low through High).
	PriceTier PriceTier `json:"price_range" yaml:"price_range"`

	// RAM is the memory capacity in GB.
	RAM int `json:"ram" yaml:"ram"`

	// Storage is the storage capacity in GB.
	Storage int `json:"storage" yaml:"storage"`

	// CameraMP is the main camera resolution in megapixels.
	CameraMP int `json:"camera_mp" yaml:"camera_mp"`

	// BatteryMAh is the battery capacity in mAh.
	BatteryMAh int `json:"battery_mah" yaml:"battery_mah"`

	// ScreenSize is the display diagonal in inches.
	ScreenSize float64 `json:"screen_size" yaml:"screen_size"`

	// OS is the operating system (e.g. "iOS", "Android").
	OS string `json:"operating_system" yaml:"operating_system"`

	// Processor is the chip family (e.g. "A17 Pro", "Snapdragon 8 Gen 3").
	Processor string `json:"processor_type" yaml:"processor_type"`

	// Network is the network generation (e.g. "4G", "5G").
	Network string `json:"network_type" yaml:"network_type"`
}

// Device is an immutable catalog record: one phone the engine can recommend.
// Loaded from the catalog store once per request and never mutated.
type Device struct {
	// ID is the catalog row identifier. Catalog order (ascending ID) is the
	// tie-break order for ranking and matching.
	ID int64 `json:"id" yaml:"id"`

	// Brand is the manufacturer name (e.g. "Samsung").
	Brand string `json:"brand" yaml:"brand"`

	// Model is the model name (e.g. "Galaxy S24 Ultra").
	Model string `json:"model" yaml:"model"`

	AttributeSet `yaml:",inline"`
}

// Choice is one persisted history entry: the preferences a user stated and
// the device they accepted. Append-only; the scoring core only ever reads
// these in aggregate.
type Choice struct {
	ID int64 `json:"id" yaml:"id"`

	// Preferences is the attribute set the user stated for that request.
	Preferences AttributeSet `yaml:",inline"`

	// ChosenBrand and ChosenModel identify the accepted device.
	ChosenBrand string `json:"chosen_brand" yaml:"chosen_brand"`
	ChosenModel string `json:"chosen_model" yaml:"chosen_model"`

	// Source records which engine produced the accepted recommendation.
	Source RecommendationSource `json:"recommendation_source" yaml:"recommendation_source"`

	// CreatedAt is the insertion timestamp assigned by the store.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// RecommendationSource tags the provenance of a recommendation: which engine
// produced it, or that it came from the degraded fallback path.
type RecommendationSource string

const (
	SourceExpert   RecommendationSource = "expert"
	SourceLLM      RecommendationSource = "llm"
	SourceFallback RecommendationSource = "fallback"
)
