// Package config defines the JSON-serializable profile used by the fetch
// CLI. It is intentionally small, explicit, and dependency-free so profiles
// can be loaded from disk and passed through the program without glue code.
//
// Design goals:
//
//  1. Stability: changes should be additive and backwards-compatible.
//  2. Clarity: Go field names mirror the JSON structure of profile files.
//  3. Minimalism: no third-party config libraries; decoding is performed by
//     the standard library.
//
// Example:
//
//	{
//	  "api":     { "host": "api.eveonline.com", "timeout_seconds": 30 },
//	  "params":  { "keyID": "12345", "vCode": "67890" },
//	  "storage": { "kind": "sqlite", "dsn": "eve.db" },
//	  "metrics": { "backend": "none" }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Profile is the top-level object decoded from a profile file.
type Profile struct {
	// API configures the transport client.
	API API `json:"api"`

	// Params are query parameters sent with every request (typically the
	// keyID/vCode credential pair). CLI flags override individual keys.
	Params map[string]string `json:"params,omitempty"`

	// Storage configures the optional rowset sink.
	Storage Storage `json:"storage"`

	// Metrics selects the metrics backend.
	Metrics Metrics `json:"metrics"`
}

// API holds transport settings.
type API struct {
	// Host is the API server host. Empty selects the public server.
	Host string `json:"host"`

	// PlainHTTP switches requests to http://; the default is HTTPS.
	PlainHTTP bool `json:"plain_http,omitempty"`

	// TimeoutSeconds is the per-request timeout. Zero selects the client
	// default (30s).
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// Storage selects the sink used to persist extracted rowsets.
type Storage struct {
	// Kind selects the storage backend: "sqlite", "postgres", or empty to
	// disable persistence.
	Kind string `json:"kind"`

	// DSN is the backend connection string.
	DSN string `json:"dsn"`

	// Table optionally overrides the destination table name; the rowset's
	// own name is used when empty.
	Table string `json:"table,omitempty"`
}

// Metrics selects and configures the metrics backend.
type Metrics struct {
	// Backend is "none" (or empty), "pushgateway", or "datadog".
	Backend string `json:"backend"`

	// PushgatewayURL is the Pushgateway base URL for the "pushgateway"
	// backend, e.g. "http://localhost:9091".
	PushgatewayURL string `json:"pushgateway_url,omitempty"`

	// StatsdAddr is the DogStatsD address for the "datadog" backend,
	// e.g. "127.0.0.1:8125".
	StatsdAddr string `json:"statsd_addr,omitempty"`
}

// Load reads and decodes a profile file.
func Load(path string) (Profile, error) {
	var p Profile
	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("config: open profile: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("config: decode profile %s: %w", path, err)
	}
	if p.Params == nil {
		p.Params = map[string]string{}
	}
	return p, nil
}
