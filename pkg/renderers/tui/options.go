package tui

import (
	"fmt"
	"time"

	theme "github.com/goliatone/go-theme"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme token names read from a go-theme manifest.
const (
	TokenPromptPrefix = "tui.prompt-prefix"
	TokenInfoPrefix   = "tui.info-prefix"
	TokenErrorPrefix  = "tui.error-prefix"
)

// Theme captures optional formatting hints the driver can apply when printing
// messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{ErrorPrefix: "! "}

// ThemeFromSelection reads prefixes from the selected manifest. Variant tokens
// win over manifest tokens; missing tokens keep the DefaultTheme value.
func ThemeFromSelection(selection *theme.Selection) Theme {
	out := DefaultTheme
	if selection == nil || selection.Manifest == nil {
		return out
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for k, v := range selection.Manifest.Tokens {
		tokens[k] = v
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
	}
	if v, ok := tokens[TokenPromptPrefix]; ok {
		out.PromptPrefix = v
	}
	if v, ok := tokens[TokenInfoPrefix]; ok {
		out.InfoPrefix = v
	}
	if v, ok := tokens[TokenErrorPrefix]; ok {
		out.ErrorPrefix = v
	}
	return out
}

// Option configures the TUI session.
type Option func(*Session) error

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) error {
		if driver != nil {
			s.driver = driver
		}
		return nil
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(t Theme) Option {
	return func(s *Session) error {
		s.theme = t
		return nil
	}
}

// WithThemeSelector resolves name and variant through a go-theme selector and
// applies the resulting prefixes.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(s *Session) error {
		if selector == nil {
			return nil
		}
		selection, err := selector.Select(name, variant)
		if err != nil {
			return fmt.Errorf("tui: select theme %q: %w", name, err)
		}
		s.theme = ThemeFromSelection(selection)
		return nil
	}
}

// WithClock sets the clock date pickers open on when empty.
func WithClock(now func() time.Time) Option {
	return func(s *Session) error {
		if now != nil {
			s.now = now
		}
		return nil
	}
}

// WithMaxAttempts bounds how often invalid input is asked again. Zero means
// no bound.
func WithMaxAttempts(n int) Option {
	return func(s *Session) error {
		if n >= 0 {
			s.maxAttempts = n
		}
		return nil
	}
}
