package utils

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed shorteners.json
var shortenersJSON []byte

// shortenerDefinitions is the on-disk layout of shorteners.json.
type shortenerDefinitions struct {
	General    []string          `json:"general"`
	Vanity     map[string]string `json:"vanity"`
	Historical map[string]string `json:"historical"`
}

// ShortenerTable holds the known link-shortener domains. Generic shorteners
// (bit.ly) redirect anywhere; vanity shorteners (nyti.ms) always belong to one
// owning domain. Historical vanity entries no longer resolve live but are
// still used to map domains to their owners.
//
// A table is never mutated after construction and is safe for concurrent use.
type ShortenerTable struct {
	general    map[string]struct{}
	vanity     map[string]string
	historical map[string]string
}

// NewShortenerTable builds a table from explicit lists. Historical entries are
// merged into the vanity lookup; domains are matched case-insensitively.
func NewShortenerTable(general []string, vanity, historical map[string]string) *ShortenerTable {
	t := &ShortenerTable{
		general:    make(map[string]struct{}, len(general)),
		vanity:     make(map[string]string, len(vanity)+len(historical)),
		historical: make(map[string]string, len(historical)),
	}
	for _, d := range general {
		t.general[strings.ToLower(d)] = struct{}{}
	}
	for short, owner := range vanity {
		t.vanity[strings.ToLower(short)] = owner
	}
	for short, owner := range historical {
		t.historical[strings.ToLower(short)] = owner
		t.vanity[strings.ToLower(short)] = owner
	}
	return t
}

// ParseShortenerTable decodes a table in the shorteners.json layout.
func ParseShortenerTable(data []byte) (*ShortenerTable, error) {
	var defs shortenerDefinitions
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decoding shortener definitions: %w", err)
	}
	return NewShortenerTable(defs.General, defs.Vanity, defs.Historical), nil
}

var defaultShorteners = sync.OnceValues(func() (*ShortenerTable, error) {
	t, err := ParseShortenerTable(shortenersJSON)
	if err != nil {
		log.Error().Err(err).Msg("embedded shortener definitions are unreadable")
		return nil, err
	}
	log.Debug().
		Int("general", len(t.general)).
		Int("vanity", len(t.vanity)).
		Int("historical", len(t.historical)).
		Msg("loaded shortener definitions")
	return t, nil
})

// DefaultShortenerTable returns the table embedded in the library. It is
// decoded once per process.
func DefaultShortenerTable() (*ShortenerTable, error) {
	return defaultShorteners()
}

// IsShortener reports whether host is a generic or vanity shortener.
func (t *ShortenerTable) IsShortener(host string) bool {
	host = strings.ToLower(host)
	if _, ok := t.general[host]; ok {
		return true
	}
	_, ok := t.vanity[host]
	return ok
}

// Expand returns the owning domain of a vanity shortener.
func (t *ShortenerTable) Expand(domain string) (string, bool) {
	owner, ok := t.vanity[strings.ToLower(domain)]
	return owner, ok
}

// IsHistorical reports whether domain is a vanity shortener kept only for
// domain mapping.
func (t *ShortenerTable) IsHistorical(domain string) bool {
	_, ok := t.historical[strings.ToLower(domain)]
	return ok
}

// General returns the generic shortener domains, sorted.
func (t *ShortenerTable) General() []string {
	return slices.Sorted(maps.Keys(t.general))
}

// Vanity returns a copy of the vanity mapping, historical entries included.
func (t *ShortenerTable) Vanity() map[string]string {
	return maps.Clone(t.vanity)
}

// Historical returns a copy of the historical subset of the vanity mapping.
func (t *ShortenerTable) Historical() map[string]string {
	return maps.Clone(t.historical)
}
