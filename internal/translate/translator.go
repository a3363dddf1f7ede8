// Package translate is the gateway over the static mapping tables and the
// external machine-translation backends. Both entry points are total: any
// backend failure degrades to a fallback and, in the worst case, to
// returning the input unchanged.
package translate

import (
	"context"

	"github.com/rikdas/dobhashi/internal/domain"
)

// Translator is what the message router consumes.
type Translator interface {
	// Transliterate normalizes Benglish (Latin-script Bengali) into Bengali
	// script. Text that is not plausibly Latin-script comes back unchanged.
	Transliterate(text string) string

	// Translate converts text between the supported languages. Never fails;
	// on backend exhaustion it returns text unchanged.
	Translate(ctx context.Context, text string, from, to domain.Language) string
}

// Backend is one machine-translation strategy in the fallback chain.
type Backend interface {
	Name() string
	Translate(ctx context.Context, text string, from, to domain.Language) (string, error)
}
