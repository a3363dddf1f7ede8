package translate

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rikdas/dobhashi/internal/domain"
)

// DefaultBackendTimeout bounds one backend attempt so a slow backend
// degrades to the next fallback instead of stalling message delivery.
const DefaultBackendTimeout = 5 * time.Second

// Gateway implements Translator on top of the static mapping tables and an
// ordered backend chain. It owns no participant state.
type Gateway struct {
	mappings *Mappings
	chain    []Backend
	timeout  time.Duration
}

func NewGateway(mappings *Mappings, chain ...Backend) *Gateway {
	if mappings == nil {
		mappings = emptyMappings()
	}
	return &Gateway{mappings: mappings, chain: chain, timeout: DefaultBackendTimeout}
}

func (g *Gateway) WithTimeout(d time.Duration) *Gateway {
	if d > 0 {
		g.timeout = d
	}
	return g
}

// Translate tries the mapping table first, then each backend in order.
// Exhaustion is silent: the caller gets the input back unchanged.
func (g *Gateway) Translate(ctx context.Context, text string, from, to domain.Language) string {
	if mapped, ok := g.mappings.Translation(text, from, to); ok {
		log.Debug().Str("module", "translate").Str("text", text).Str("mapped", mapped).Msg("translated from mappings")
		return mapped
	}

	for _, backend := range g.chain {
		attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
		result, err := backend.Translate(attemptCtx, text, from, to)
		cancel()
		if err != nil {
			log.Warn().Err(err).Str("module", "translate").Str("backend", backend.Name()).Msg("backend failed, trying next")
			continue
		}
		result = strings.TrimSpace(result)
		if result == "" {
			log.Warn().Str("module", "translate").Str("backend", backend.Name()).Msg("backend returned empty result")
			continue
		}
		return result
	}

	log.Warn().Str("module", "translate").Str("from", string(from)).Str("to", string(to)).Msg("all backends failed, passing text through")
	return text
}

// Transliterate normalizes a Benglish phrase into Bengali script. Non-Latin
// input (already Bengali, or some third script) comes back unchanged.
func (g *Gateway) Transliterate(text string) string {
	if !IsBenglish(text) {
		return text
	}
	if mapped, ok := g.mappings.Phrase(text); ok {
		return mapped
	}
	words := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if mapped, ok := g.mappings.Word(word); ok {
			out = append(out, mapped)
			continue
		}
		out = append(out, phoneticWord(word))
	}
	return strings.Join(out, " ")
}
