package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// Bracket bounds and rates are written as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// ProfileStore reads and writes the named-profile collection: a single JSON
// file mapping profile name to record. The file is read wholesale at startup
// and rewritten wholesale on save; there are no concurrent writers.
type ProfileStore struct {
	Path string
}

// NewProfileStore creates a store backed by the given file path
func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{Path: path}
}

// DefaultProfiles returns the two illustrative profiles seeded on first run:
// a flat 10% policy and a four-tier progressive policy
func DefaultProfiles() map[string]domain.Profile {
	return map[string]domain.Profile{
		"Flat 10%": {
			Name:     "Flat 10%",
			Mode:     domain.ModeFlat,
			FlatRate: decimal.NewFromFloat(10.0),
			Brackets: []domain.Bracket{},
		},
		"Sample Progressive": {
			Name:     "Sample Progressive",
			Mode:     domain.ModeProgressive,
			FlatRate: domain.DefaultFlatRate,
			Brackets: []domain.Bracket{
				domain.BoundedBracket(decimal.NewFromInt(10000), decimal.NewFromFloat(5.0)),
				domain.BoundedBracket(decimal.NewFromInt(30000), decimal.NewFromFloat(10.0)),
				domain.BoundedBracket(decimal.NewFromInt(80000), decimal.NewFromFloat(20.0)),
				domain.UnboundedBracket(decimal.NewFromFloat(30.0)),
			},
		},
	}
}

// Load reads all profiles. A missing store file is not an error: the default
// profiles are seeded, persisted, and returned. The returned mapping is
// always keyed by each profile's own Name field, so hand-edited keys that
// drifted from the records they point at are healed here.
func (s *ProfileStore) Load() (map[string]domain.Profile, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := DefaultProfiles()
			if err := s.Save(defaults); err != nil {
				return nil, fmt.Errorf("seeding default profiles: %w", err)
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading profile store: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing profile store %s: %w", s.Path, err)
	}

	profiles := make(map[string]domain.Profile, len(raw))
	for _, rec := range raw {
		p := decodeProfileRecord(rec)
		profiles[p.Name] = p
	}
	return profiles, nil
}

// Save serializes the full mapping, replacing the backing file. The write
// goes to a temp file first and is renamed into place so a failed write
// leaves the previous store intact.
func (s *ProfileStore) Save(profiles map[string]domain.Profile) error {
	// A nil bracket list would serialize as JSON null; keep the wire format
	// stable with an empty array instead
	out := make(map[string]domain.Profile, len(profiles))
	for name, p := range profiles {
		if p.Brackets == nil {
			p.Brackets = []domain.Bracket{}
		}
		out[name] = p
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing profiles: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating profile store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tax_profiles-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing profiles: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing profile store: %w", err)
	}
	return nil
}

// decodeProfileRecord deserializes one persisted record, substituting
// documented defaults for missing or malformed fields instead of failing the
// whole load
func decodeProfileRecord(raw json.RawMessage) domain.Profile {
	p := domain.Profile{
		Name:     domain.DefaultProfileName,
		Mode:     domain.ModeFlat,
		FlatRate: domain.DefaultFlatRate,
		Brackets: []domain.Bracket{},
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return p
	}

	var name string
	if err := json.Unmarshal(fields["name"], &name); err == nil && name != "" {
		p.Name = name
	}

	var mode string
	if err := json.Unmarshal(fields["mode"], &mode); err == nil {
		if m := domain.TaxMode(mode); m == domain.ModeFlat || m == domain.ModeProgressive {
			p.Mode = m
		}
	}

	var flatRate decimal.Decimal
	if err := json.Unmarshal(fields["flat_rate"], &flatRate); err == nil {
		p.FlatRate = flatRate
	}

	var rawBrackets []json.RawMessage
	if err := json.Unmarshal(fields["brackets"], &rawBrackets); err == nil {
		for _, rb := range rawBrackets {
			if b, ok := decodeBracketRecord(rb); ok {
				p.Brackets = append(p.Brackets, b)
			}
		}
	}

	return p
}

// decodeBracketRecord deserializes one bracket, dropping records whose rate
// is unreadable. A null or absent up_to means unbounded.
func decodeBracketRecord(raw json.RawMessage) (domain.Bracket, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.Bracket{}, false
	}

	b := domain.Bracket{Rate: decimal.Zero}
	if rateRaw, ok := fields["rate"]; ok {
		var rate decimal.Decimal
		if err := json.Unmarshal(rateRaw, &rate); err == nil {
			b.Rate = rate
		}
	}

	if upToRaw, ok := fields["up_to"]; ok && string(upToRaw) != "null" {
		var upTo decimal.Decimal
		if err := json.Unmarshal(upToRaw, &upTo); err == nil {
			b.UpTo = &upTo
		}
	}
	return b, true
}
