package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rikdas/dobhashi/internal/domain"
)

type scriptedBackend struct {
	name   string
	result string
	err    error
	calls  int
}

func (b *scriptedBackend) Name() string { return b.name }

func (b *scriptedBackend) Translate(_ context.Context, _ string, _, _ domain.Language) (string, error) {
	b.calls++
	return b.result, b.err
}

func TestGateway_Translate_MappingPrecedence(t *testing.T) {
	req := require.New(t)
	mappings := &Mappings{
		BenglishToBengali: map[string]string{},
		EnglishToBengali:  map[string]string{"good morning": "শুভ সকাল"},
	}
	backend := &scriptedBackend{name: "primary", result: "should not be used"}
	g := NewGateway(mappings, backend)

	got := g.Translate(context.Background(), "Good Morning", domain.English, domain.Bengali)
	req.Equal("শুভ সকাল", got)
	req.Zero(backend.calls, "mapping hit must not invoke any backend")
}

func TestGateway_Translate_FirstBackendWins(t *testing.T) {
	req := require.New(t)
	primary := &scriptedBackend{name: "primary", result: "  হ্যালো  "}
	secondary := &scriptedBackend{name: "secondary", result: "unused"}
	g := NewGateway(emptyMappings(), primary, secondary)

	got := g.Translate(context.Background(), "hello", domain.English, domain.Bengali)
	req.Equal("হ্যালো", got, "result is trimmed of surrounding whitespace")
	req.Equal(1, primary.calls)
	req.Zero(secondary.calls)
}

func TestGateway_Translate_FallsBackOnErrorAndEmpty(t *testing.T) {
	req := require.New(t)
	failing := &scriptedBackend{name: "primary", err: errors.New("timeout")}
	empty := &scriptedBackend{name: "middle", result: "   "}
	working := &scriptedBackend{name: "secondary", result: "ঠিক আছে"}
	g := NewGateway(emptyMappings(), failing, empty, working)

	got := g.Translate(context.Background(), "okay", domain.English, domain.Bengali)
	req.Equal("ঠিক আছে", got)
	req.Equal(1, failing.calls)
	req.Equal(1, empty.calls)
	req.Equal(1, working.calls)
}

func TestGateway_Translate_AllBackendsFail_Passthrough(t *testing.T) {
	req := require.New(t)
	g := NewGateway(emptyMappings(),
		&scriptedBackend{name: "primary", err: errors.New("down")},
		&scriptedBackend{name: "secondary", err: errors.New("down too")},
	)

	got := g.Translate(context.Background(), "hello", domain.English, domain.Bengali)
	req.Equal("hello", got, "translation failure is silent passthrough")
}

func TestGateway_Translate_NoBackends_Passthrough(t *testing.T) {
	g := NewGateway(emptyMappings())
	require.Equal(t, "hello", g.Translate(context.Background(), "hello", domain.English, domain.Bengali))
}

func TestGateway_Translate_ReverseDirectionSkipsTable(t *testing.T) {
	req := require.New(t)
	mappings := &Mappings{
		BenglishToBengali: map[string]string{},
		EnglishToBengali:  map[string]string{"hello": "হ্যালো"},
	}
	backend := &scriptedBackend{name: "primary", result: "hello"}
	g := NewGateway(mappings, backend)

	got := g.Translate(context.Background(), "হ্যালো", domain.Bengali, domain.English)
	req.Equal("hello", got)
	req.Equal(1, backend.calls, "bn→en has no table, goes straight to the chain")
}

func TestGateway_Transliterate_PhraseMapping(t *testing.T) {
	mappings := &Mappings{
		BenglishToBengali: map[string]string{"kemon acho": "কেমন আছো"},
		EnglishToBengali:  map[string]string{},
	}
	g := NewGateway(mappings)
	require.Equal(t, "কেমন আছো", g.Transliterate("Kemon Acho"))
}

func TestGateway_Transliterate_WordMappingWithPhoneticFallback(t *testing.T) {
	mappings := &Mappings{
		BenglishToBengali: map[string]string{"ami": "আমি"},
		EnglishToBengali:  map[string]string{},
	}
	g := NewGateway(mappings)
	// "ami" comes from the table, "tumi" from the phonetic scheme.
	require.Equal(t, "আমি তুমি", g.Transliterate("ami tumi"))
}

func TestGateway_Transliterate_NonLatinPassthrough(t *testing.T) {
	g := NewGateway(emptyMappings())
	require.Equal(t, "কেমন আছো", g.Transliterate("কেমন আছো"))
}
