// This file adds a lightweight linter/validator for Profile values. It
// performs static checks over a decoded Profile and returns a list of issues
// (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be
	// surfaced to users but does not block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding for a Profile.
//
// Path is a dotted path into the profile (e.g. "storage.kind"). Message is
// human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error in contexts that expect one.
func (i Issue) Error() string {
	return string(i.Severity) + " at " + i.Path + ": " + i.Message
}

// Validate performs static validation of a Profile. It does not mutate the
// profile; callers decide whether to treat warnings as fatal.
func Validate(p Profile) []Issue {
	var issues []Issue

	if p.API.TimeoutSeconds < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "api.timeout_seconds",
			Message:  "must not be negative",
		})
	}
	if strings.Contains(p.API.Host, "/") {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "api.host",
			Message:  "must be a bare host, not a URL",
		})
	}

	switch p.Storage.Kind {
	case "", "sqlite", "postgres":
		if p.Storage.Kind != "" && strings.TrimSpace(p.Storage.DSN) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.dsn",
				Message:  "required when storage.kind is set",
			})
		}
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.kind",
			Message:  `must be "sqlite", "postgres", or empty`,
		})
	}

	switch p.Metrics.Backend {
	case "", "none":
	case "pushgateway":
		if p.Metrics.PushgatewayURL == "" {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Path:     "metrics.pushgateway_url",
				Message:  "empty; the default http://localhost:9091 will be used",
			})
		}
	case "datadog":
		if p.Metrics.StatsdAddr == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "metrics.statsd_addr",
				Message:  `required for the "datadog" backend`,
			})
		}
	default:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "metrics.backend",
			Message:  "unknown backend; metrics will be disabled",
		})
	}

	return issues
}
