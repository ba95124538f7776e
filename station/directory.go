package station

import (
	"context"
	"fmt"
	"strings"

	"github.com/transitkit/rail12306/internal/memo"
)

// Source delivers the raw station_name.js snippet.
type Source interface {
	StationNameJS(ctx context.Context) (string, error)
}

// Directory resolves cities, station names, and telecodes against the
// lazily loaded station table.
type Directory struct {
	source Source
	cell   memo.Cell[*tables]
}

type tables struct {
	byTelecode map[string]Station
	byCity     map[string][]CodeName
	cityCode   map[string]CodeName
	byName     map[string]CodeName
}

// NewDirectory returns a directory backed by source. Nothing is
// fetched until the first lookup.
func NewDirectory(source Source) *Directory {
	return &Directory{source: source}
}

// Ready reports whether the station table has been loaded.
func (d *Directory) Ready() bool {
	return d.cell.Ready()
}

// Load forces initialization. Lookup operations call it implicitly.
func (d *Directory) Load(ctx context.Context) error {
	_, err := d.load(ctx)
	return err
}

func (d *Directory) load(ctx context.Context) (*tables, error) {
	return d.cell.Get(func() (*tables, error) {
		js, err := d.source.StationNameJS(ctx)
		if err != nil {
			return nil, fmt.Errorf("station table: %w", err)
		}
		blob, err := ExtractBlob(js)
		if err != nil {
			return nil, err
		}
		return buildTables(ParseBlob(blob)), nil
	})
}

func buildTables(stations []Station) *tables {
	t := &tables{
		byTelecode: make(map[string]Station, len(stations)),
		byCity:     make(map[string][]CodeName),
		cityCode:   make(map[string]CodeName),
		byName:     make(map[string]CodeName),
	}

	// Later duplicates overwrite earlier ones; first-insertion order
	// is what the secondary indices iterate.
	order := make([]string, 0, len(stations))
	for _, s := range stations {
		if _, seen := t.byTelecode[s.Telecode]; !seen {
			order = append(order, s.Telecode)
		}
		t.byTelecode[s.Telecode] = s
	}
	for _, patch := range missingStations {
		if _, seen := t.byTelecode[patch.Telecode]; !seen {
			order = append(order, patch.Telecode)
			t.byTelecode[patch.Telecode] = patch
		}
	}

	for _, code := range order {
		s := t.byTelecode[code]
		entry := CodeName{StationCode: s.Telecode, StationName: s.Name}
		t.byCity[s.City] = append(t.byCity[s.City], entry)
		// Exact-name index is last-write-wins on collision.
		t.byName[s.Name] = entry
	}

	// A city's representative station is the first one whose own name
	// equals the city name.
	for city, entries := range t.byCity {
		for _, entry := range entries {
			if entry.StationName == city {
				t.cityCode[city] = entry
				break
			}
		}
	}
	return t
}

// StationsInCity lists every station of a city, exact match only.
func (d *Directory) StationsInCity(ctx context.Context, city string) ([]CodeName, error) {
	t, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	entries, ok := t.byCity[city]
	if !ok {
		return nil, fmt.Errorf("city %q: %w", city, ErrNotFound)
	}
	return entries, nil
}

// CityCodes resolves a pipe-separated list of city names to their
// representative stations. Unmatched names yield per-entry errors.
func (d *Directory) CityCodes(ctx context.Context, cities string) (map[string]LookupResult, error) {
	t, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]LookupResult)
	for _, city := range strings.Split(cities, "|") {
		if entry, ok := t.cityCode[city]; ok {
			result[city] = LookupResult{StationCode: entry.StationCode, StationName: entry.StationName}
		} else {
			result[city] = LookupResult{Error: "City not found."}
		}
	}
	return result, nil
}

// StationCodes resolves a pipe-separated list of station names. One
// trailing "站" suffix is stripped from each name before lookup.
func (d *Directory) StationCodes(ctx context.Context, names string) (map[string]LookupResult, error) {
	t, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]LookupResult)
	for _, name := range strings.Split(names, "|") {
		name = strings.TrimSuffix(name, "站")
		if entry, ok := t.byName[name]; ok {
			result[name] = LookupResult{StationCode: entry.StationCode, StationName: entry.StationName}
		} else {
			result[name] = LookupResult{Error: "Station not found."}
		}
	}
	return result, nil
}

// ByTelecode returns the full record for a telecode.
func (d *Directory) ByTelecode(ctx context.Context, code string) (Station, error) {
	t, err := d.load(ctx)
	if err != nil {
		return Station{}, err
	}
	s, ok := t.byTelecode[code]
	if !ok {
		return Station{}, fmt.Errorf("telecode %q: %w", code, ErrNotFound)
	}
	return s, nil
}

// Has reports whether a telecode exists, without failing the caller.
func (d *Directory) Has(ctx context.Context, code string) (bool, error) {
	t, err := d.load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := t.byTelecode[code]
	return ok, nil
}
