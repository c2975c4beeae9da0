package wordpiece

import (
	"log/slog"

	"github.com/lukaschmidt/go-wordpiece/internal/normalize"
)

// Option configures a Tokenizer.
type Option func(*config)

// UnknownHook is invoked whenever a word resolves to [UNK], after the full
// fallback cascade has been exhausted. raw is the pre-tokenized span text
// that failed to match. Intended for OOV-rate telemetry; it must not panic
// and should return quickly since it runs inline with Encode.
type UnknownHook func(raw string)

type config struct {
	lowercase bool
	form      normalize.Form
	maxTokens int
	padTo     int
	logger    *slog.Logger
	onUnknown UnknownHook
}

func defaultConfig() config {
	return config{
		lowercase: true,
		form:      normalize.NFC,
		maxTokens: 512,
		padTo:     0,
		logger:    slog.Default(),
	}
}

// WithLowercase sets whether input is lowercased and case-folded during
// pre-tokenization (default: true, matching uncased BERT vocabularies).
func WithLowercase(lowercase bool) Option {
	return func(c *config) {
		c.lowercase = lowercase
	}
}

// WithNormalizationForm sets the Unicode normalization form that the
// unknown-word fallback normalizes a word into before retrying a failed
// match, also used as the target form of the diacritic-stripping fallback
// rung (default: normalize.NFC). Words that match on the first attempt are
// not normalized.
func WithNormalizationForm(form normalize.Form) Option {
	return func(c *config) {
		c.form = form
	}
}

// WithMaxTokens sets the default sink size EncodeNew allocates when called
// with maxTokens <= 0 (default: 512). Has no effect on Encode, whose
// capacity always comes from the caller-supplied inputIDs sink. Truncation
// never splits a word's WordPiece units across the boundary.
func WithMaxTokens(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithPadTo sets the default padTo used by Encode and EncodeNew when
// called with padTo <= 0 (default: 0, meaning no padding — output is
// exactly as many tokens as were produced).
func WithPadTo(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.padTo = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUnknownHook registers a callback invoked for every word that falls
// through to [UNK] (default: nil, disabled).
func WithUnknownHook(hook UnknownHook) Option {
	return func(c *config) {
		c.onUnknown = hook
	}
}
