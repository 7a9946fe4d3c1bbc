// Package overrides reads authoritative mass and density corrections.
//
// The file is CSV with the columns identifier, name, mass, density:
//
//	MB:399,Earth,5.9722e24,5513
//	SB:1,Ceres,9.3835e20,2162
//
// Rows with an empty identifier, missing columns or unparsable numbers are
// skipped, which also takes care of an optional header row. Mass and density
// must be finite and either >= 0 or exactly models.Unknown (-1).
package overrides

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dtnitsch/horizons-parser/models"
)

const columns = 4

// Read parses corrections from r.
func Read(r io.Reader) (models.Overrides, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	data := make(models.Overrides)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read overrides: %w", err)
		}
		id, o, ok := parseRow(record)
		if !ok {
			continue
		}
		data[id] = o
	}
	return data, nil
}

// Load reads corrections from the file at path.
func Load(path string) (models.Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open overrides file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func parseRow(record []string) (string, models.Override, bool) {
	if len(record) < columns {
		return "", models.Override{}, false
	}
	id := strings.TrimSpace(record[0])
	if id == "" {
		return "", models.Override{}, false
	}
	mass, ok := parseQuantity(record[2])
	if !ok {
		return "", models.Override{}, false
	}
	density, ok := parseQuantity(record[3])
	if !ok {
		return "", models.Override{}, false
	}
	return id, models.Override{
		Name:    strings.TrimSpace(record[1]),
		Mass:    mass,
		Density: density,
	}, true
}

// parseQuantity reads a mass or density cell. NaN, infinities and negative
// values other than models.Unknown are rejected.
func parseQuantity(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < 0 && v != models.Unknown {
		return 0, false
	}
	return v, true
}
