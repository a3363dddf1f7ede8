package translate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rikdas/dobhashi/internal/domain"
)

// Mappings holds the two static translation tables. Loaded once at startup,
// read-only afterwards.
type Mappings struct {
	BenglishToBengali map[string]string `json:"benglish_to_bengali"`
	EnglishToBengali  map[string]string `json:"english_to_bengali"`
}

func emptyMappings() *Mappings {
	return &Mappings{
		BenglishToBengali: map[string]string{},
		EnglishToBengali:  map[string]string{},
	}
}

// LoadMappings reads the mapping document from path. A missing file is not
// an error: an empty default document is written in its place.
func LoadMappings(path string) (*Mappings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		m := emptyMappings()
		seed, _ := json.MarshalIndent(m, "", "  ")
		if werr := os.WriteFile(path, seed, 0o644); werr != nil {
			log.Warn().Err(werr).Str("module", "translate").Str("path", path).Msg("could not seed default mappings file")
		}
		log.Info().Str("module", "translate").Str("path", path).Msg("mappings file absent, using empty defaults")
		return m, nil
	}
	if err != nil {
		return emptyMappings(), fmt.Errorf("read mappings: %w", err)
	}

	m := emptyMappings()
	if err := json.Unmarshal(data, m); err != nil {
		return emptyMappings(), fmt.Errorf("parse mappings: %w", err)
	}
	if m.BenglishToBengali == nil {
		m.BenglishToBengali = map[string]string{}
	}
	if m.EnglishToBengali == nil {
		m.EnglishToBengali = map[string]string{}
	}
	log.Info().Str("module", "translate").Str("path", path).
		Int("benglish", len(m.BenglishToBengali)).Int("english", len(m.EnglishToBengali)).Msg("loaded mappings")
	return m, nil
}

// Translation looks the whole phrase up for the requested direction.
// Exact, case-insensitive, whole-string match only.
func (m *Mappings) Translation(text string, from, to domain.Language) (string, bool) {
	if from == domain.English && to == domain.Bengali {
		v, ok := m.EnglishToBengali[strings.ToLower(text)]
		return v, ok
	}
	// No table for the other direction; the backend chain handles it.
	return "", false
}

// Phrase looks the whole Benglish phrase up.
func (m *Mappings) Phrase(text string) (string, bool) {
	v, ok := m.BenglishToBengali[strings.ToLower(text)]
	return v, ok
}

// Word looks a single Benglish word up.
func (m *Mappings) Word(word string) (string, bool) {
	v, ok := m.BenglishToBengali[word]
	return v, ok
}
