// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "macs-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ArchiveConfig holds settings for the EXFOR archive client.
type ArchiveConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the root of the EXFOR web service
	// (default "https://www-nds.iaea.org/exfor").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Quantity is the physical quantity requested from the listing
	// endpoint. Cross-section lookups use "SIG".
	Quantity string `json:"quantity" yaml:"quantity"`
}

// HistoryConfig holds settings for the computation history store.
type HistoryConfig struct {
	// DataDir is the directory holding the history database (contains macs.db).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of history rows returned (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
	History HistoryConfig `json:"history" yaml:"history"`
}
