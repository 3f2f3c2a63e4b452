// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CorrectionConfig holds settings for the external text-correction service.
// Per prd007-correction R2.
type CorrectionConfig struct {
	// Model is the generative model identifier (e.g. "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the correction service. Empty disables
	// correction; the pipeline then passes text through unchanged.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout bounds each correction call. On expiry the original text is
	// kept for that call only.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Workers bounds the correction fan-out (default 4).
	Workers int `json:"workers" yaml:"workers"`
}

// StoreConfig holds settings for the processed-paper store.
type StoreConfig struct {
	// Dir is the directory holding the SQLite database (default "papers").
	Dir string `json:"dir" yaml:"dir"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// MaxUploadBytes caps accepted manuscript size (default 10 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`
}

// FormatterConfig is the root configuration.
type FormatterConfig struct {
	Correction CorrectionConfig `json:"correction" yaml:"correction"`
	Store      StoreConfig      `json:"store" yaml:"store"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}

// DefaultConfig returns the configuration used when no config file or
// environment overrides are present.
func DefaultConfig() FormatterConfig {
	return FormatterConfig{
		Correction: CorrectionConfig{
			Model:   "gemini-2.5-flash",
			Timeout: 30 * time.Second,
			Workers: 4,
		},
		Store: StoreConfig{
			Dir: "papers",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			MaxUploadBytes: 10 << 20,
		},
	}
}
