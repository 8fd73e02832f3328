package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "mobile-advisor/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the catalog store.
type CatalogConfig struct {
	// DBPath is the SQLite database file path (default "advisor.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ScoringConfig holds settings for the expert scoring path.
type ScoringConfig struct {
	// MaxResults is the maximum number of ranked recommendations returned
	// (default 8).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// AdvisorConfig holds settings for the remote recommender stage.
type AdvisorConfig struct {
	HTTPConfig `yaml:",inline"`

	// ServiceURL is the base URL of the remote recommender service
	// (e.g. an ngrok tunnel to a notebook-hosted model).
	ServiceURL string `json:"service_url" yaml:"service_url"`

	// AuthToken is an optional bearer token sent with requests.
	AuthToken string `json:"auth_token,omitempty" yaml:"auth_token,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited calls
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// NumRecommendations is the number of device mentions to request
	// (default 2).
	NumRecommendations int `json:"num_recommendations" yaml:"num_recommendations"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Scoring ScoringConfig `json:"scoring" yaml:"scoring"`
	Advisor AdvisorConfig `json:"advisor" yaml:"advisor"`
}
