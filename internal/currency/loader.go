package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading country table JSON files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based country table loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "currency-loader").Logger(),
	}
}

// Load reads a JSON country table file. The file is expected to contain a
// JSON array of country records.
func (l *fileLoader) Load(ctx context.Context, filePath string) (Table, error) {
	l.logger.Info().Str("file", filePath).Msg("loading country table")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read country table file")
		return nil, fmt.Errorf("failed to read country table file %s: %w", filePath, err)
	}

	table, err := parseTable(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse country table")
		return nil, fmt.Errorf("failed to parse country table file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("countries_loaded", table.Size()).
		Msg("country table loaded successfully")

	return table, nil
}

// parseTable decodes a JSON array of countries and validates each entry.
func parseTable(data []byte) (Table, error) {
	var countries []Country
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("invalid country table JSON: %w", err)
	}

	if len(countries) == 0 {
		return nil, fmt.Errorf("country table is empty")
	}

	for _, c := range countries {
		if c.Code == "" {
			return nil, fmt.Errorf("country entry missing code")
		}
		if c.Rate <= 0 {
			return nil, fmt.Errorf("country %s has non-positive rate %v", c.Code, c.Rate)
		}
		if c.Symbol == "" {
			return nil, fmt.Errorf("country %s missing currency symbol", c.Code)
		}
	}

	return NewTable(countries), nil
}
