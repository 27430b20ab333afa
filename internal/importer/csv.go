// Package importer turns a delimited text payload into a batch of new client
// records and submits them as one bulk-create call.
//
// The format is deliberately simple: comma-separated, header row required,
// no quoted-field escaping — a value containing a literal comma will
// mis-parse. Lists inside a cell (types, country strengths) use semicolons.
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

var ErrMissingHeader = errors.New("missing required header columns")
var ErrNoValidClients = errors.New("no valid clients in import")

// requiredColumns must all be present in the header row (case- and
// order-independent) before any record is built.
var requiredColumns = []string{"name_en", "name_ja", "type"}

// SampleCSV is the downloadable template documenting required and optional
// columns.
const SampleCSV = `name_en,name_ja,type,countryStrengths,contactName,contactEmail,contactPhone,website
Grand Palace Hotel,グランドパレスホテル,hotel,"South Korea;USA;Taiwan",Mr. Kim,kim@grandpalace.com,123-456-7890,https://www.grandpalace-hotel.com
Sunrise Tours,サンライズツアー,tourGuide;hotel,"Singapore;Malaysia",Mr. Tanaka,tanaka@sunrise.jp,234-567-8901,
Adventure Guides Inc.,アドベンチャーガイズ社,tourGuide,"USA;Canada;Australia",,,,
`

type Importer struct {
	clients ports.ClientService
	logger  zerolog.Logger
}

func New(clients ports.ClientService, logger zerolog.Logger) *Importer {
	return &Importer{clients: clients, logger: logger}
}

// Result reports a completed import.
type Result struct {
	Imported int
	Skipped  int
	Clients  []domain.Client
}

// Import decodes, parses, and submits the payload as one bulk insert. When
// parsing yields zero valid candidates no backend call is made and
// ErrNoValidClients is returned; a failed bulk call leaves no new records
// persisted (the repository batch is atomic).
func (im *Importer) Import(ctx context.Context, raw []byte) (*Result, error) {
	candidates, skipped, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		im.logger.Debug().Int("skipped", skipped).Msg("import rows dropped")
	}
	if len(candidates) == 0 {
		return nil, ErrNoValidClients
	}

	created, err := im.clients.BulkAdd(ctx, candidates)
	if err != nil {
		im.logger.Error().Err(err).Int("count", len(candidates)).Msg("import bulk add failed")
		return nil, fmt.Errorf("import: %w", err)
	}

	im.logger.Info().Int("imported", len(created)).Int("skipped", skipped).Msg("clients imported")
	return &Result{Imported: len(created), Skipped: skipped, Clients: created}, nil
}

// Parse builds candidate client inputs from the payload. Rows missing either
// name or carrying no recognized type token are silently dropped, counted in
// skipped. A payload without the required header columns (or without any
// data row) is rejected wholesale.
func Parse(raw []byte) (candidates []ports.ClientInput, skipped int, err error) {
	text := decodePayload(raw)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, 0, fmt.Errorf("%w: header row plus at least one data row required", ErrMissingHeader)
	}

	columns := map[string]int{}
	for i, name := range strings.Split(lines[0], ",") {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, 0, fmt.Errorf("%w: required columns are %s", ErrMissingHeader, strings.Join(requiredColumns, ", "))
		}
	}

	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		cell := func(column string) string {
			idx, ok := columns[strings.ToLower(column)]
			if !ok || idx >= len(values) {
				return ""
			}
			return strings.Trim(strings.TrimSpace(values[idx]), `"`)
		}

		nameEN := cell("name_en")
		nameJA := cell("name_ja")
		types := splitTokens(cell("type"), domain.ValidMode)
		if nameEN == "" || nameJA == "" || len(types) == 0 {
			skipped++
			continue
		}

		candidates = append(candidates, ports.ClientInput{
			NameEN:           nameEN,
			NameJA:           nameJA,
			Types:            types,
			CountryStrengths: splitTokens(cell("countryStrengths"), func(string) bool { return true }),
			ContactName:      cell("contactName"),
			ContactEmail:     cell("contactEmail"),
			ContactPhone:     cell("contactPhone"),
			Website:          cell("website"),
		})
	}
	return candidates, skipped, nil
}

// splitTokens splits a semicolon-separated cell, trims each token, and keeps
// the ones the filter accepts.
func splitTokens(cell string, keep func(string) bool) []string {
	if cell == "" {
		return nil
	}
	var out []string
	for _, token := range strings.Split(cell, ";") {
		if token = strings.TrimSpace(token); token != "" && keep(token) {
			out = append(out, token)
		}
	}
	return out
}
