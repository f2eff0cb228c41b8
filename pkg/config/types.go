// Package config provides configuration loading and validation for minigrep.
package config

import (
	"time"

	"github.com/ccollicutt/minigrep/pkg/flags"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Defaults are the options command-line flags are applied on top of.
	Defaults flags.Options `yaml:"defaults"`

	// Output selects the result format: "text" or "json".
	Output string `yaml:"output"`

	// LogLevel is one of debug, info, warn, error. Logs go to stderr.
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`

	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnMatches fires only when at least one line matched (default).
	WebhookTriggerOnMatches WebhookTrigger = "on_matches"
	// WebhookTriggerAlways fires after every search.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending search results.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	// "${VAR}" and "$VAR" are expanded from the environment.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_matches" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
