package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadFullProfile(t *testing.T) {
	t.Parallel()

	path := writeProfile(t, `{
	  "api":     { "host": "api.eveonline.com", "timeout_seconds": 10 },
	  "params":  { "keyID": "12345", "vCode": "abcdef" },
	  "storage": { "kind": "sqlite", "dsn": "eve.db", "table": "characters" },
	  "metrics": { "backend": "pushgateway", "pushgateway_url": "http://gw:9091" }
	}`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.API.Host != "api.eveonline.com" || p.API.TimeoutSeconds != 10 {
		t.Fatalf("api = %+v", p.API)
	}
	if p.Params["keyID"] != "12345" || p.Params["vCode"] != "abcdef" {
		t.Fatalf("params = %v", p.Params)
	}
	if p.Storage.Kind != "sqlite" || p.Storage.DSN != "eve.db" || p.Storage.Table != "characters" {
		t.Fatalf("storage = %+v", p.Storage)
	}
	if p.Metrics.Backend != "pushgateway" || p.Metrics.PushgatewayURL != "http://gw:9091" {
		t.Fatalf("metrics = %+v", p.Metrics)
	}
}

func TestLoadMinimalProfileDefaults(t *testing.T) {
	t.Parallel()

	p, err := Load(writeProfile(t, `{}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Params == nil {
		t.Fatalf("Params not initialized")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Load(writeProfile(t, `{"api": {}, "surprise": true}`))
	if err == nil || !strings.Contains(err.Error(), "surprise") {
		t.Fatalf("err = %v, want unknown field error", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("Load of missing file succeeded")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		profile  Profile
		wantPath string
		severity IssueSeverity
	}{
		{
			name:     "negative timeout",
			profile:  Profile{API: API{TimeoutSeconds: -1}},
			wantPath: "api.timeout_seconds",
			severity: SeverityError,
		},
		{
			name:     "host is a URL",
			profile:  Profile{API: API{Host: "https://api.eveonline.com/"}},
			wantPath: "api.host",
			severity: SeverityError,
		},
		{
			name:     "storage kind without dsn",
			profile:  Profile{Storage: Storage{Kind: "sqlite"}},
			wantPath: "storage.dsn",
			severity: SeverityError,
		},
		{
			name:     "unknown storage kind",
			profile:  Profile{Storage: Storage{Kind: "oracle", DSN: "x"}},
			wantPath: "storage.kind",
			severity: SeverityError,
		},
		{
			name:     "pushgateway without url",
			profile:  Profile{Metrics: Metrics{Backend: "pushgateway"}},
			wantPath: "metrics.pushgateway_url",
			severity: SeverityWarning,
		},
		{
			name:     "datadog without statsd addr",
			profile:  Profile{Metrics: Metrics{Backend: "datadog"}},
			wantPath: "metrics.statsd_addr",
			severity: SeverityError,
		},
		{
			name:     "unknown metrics backend",
			profile:  Profile{Metrics: Metrics{Backend: "graphite"}},
			wantPath: "metrics.backend",
			severity: SeverityWarning,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			issues := Validate(tc.profile)
			for _, iss := range issues {
				if iss.Path == tc.wantPath && iss.Severity == tc.severity {
					return
				}
			}
			t.Fatalf("no %s issue at %s; got %v", tc.severity, tc.wantPath, issues)
		})
	}
}

func TestValidateCleanProfile(t *testing.T) {
	t.Parallel()

	p := Profile{
		API:     API{Host: "api.eveonline.com", TimeoutSeconds: 30},
		Storage: Storage{Kind: "postgres", DSN: "postgresql://localhost/eve"},
		Metrics: Metrics{Backend: "none"},
	}
	if issues := Validate(p); len(issues) != 0 {
		t.Fatalf("clean profile produced issues: %v", issues)
	}
}
