package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dtnitsch/horizons-parser/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: -1, want: "-1"},
		{in: 1000, want: "1000"},
		{in: 1234.5, want: "1234.5"},
		{in: 5.97237e24, want: "5972370000000000000000000"},
		{in: 0.5, want: "0.5"},
		{in: 1e-7, want: "0.0000001"},
		{in: -2.5e-20, want: "-0.000000000000000000025"},
		{in: 10.0 / 3, want: "3.333333333333333"},
		{in: 1.0 / 3, want: "0.3333333333333333"},
		{in: 1e-60, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func sampleBodies() []*models.Body {
	return []*models.Body{
		{
			ID:       "MB:399",
			Name:     "Earth (399)",
			Type:     models.TypePlanet,
			Mass:     5.97237e24,
			Density:  5514,
			Position: models.Vector{X: -7.8e10, Y: 1.2e11, Z: -3e6},
			Velocity: models.Vector{X: -25000, Y: -16000, Z: 1},
		},
		{
			ID:      "MB:-31",
			Name:    "Voyager 1, (spacecraft)",
			Type:    models.TypeSpacecraft,
			Mass:    826,
			Density: models.Unknown,
		},
	}
}

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	date := time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)

	w := &Writer{}
	require.NoError(t, w.Write(&buf, sampleBodies(), date, "From JPL horizon data"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)

	assert.Equal(t, []string{"TimeStamp"}, records[0])
	assert.Equal(t, []string{"1167609600000"}, records[1])
	assert.Equal(t, []string{"Comment"}, records[2])
	assert.Equal(t, []string{"From JPL horizon data"}, records[3])
	assert.Equal(t, Header, records[4])
	assert.Equal(t, []string{
		"Earth (399)", "PLANET", "5972370000000000000000000", "5514",
		"-78000000000", "120000000000", "-3000000", "-25000", "-16000", "1",
	}, records[5])
	assert.Equal(t, []string{
		"Voyager 1, (spacecraft)", "SPACECRAFT", "826", "-1",
		"0", "0", "0", "0", "0", "0",
	}, records[6])
}

func TestWriter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solarSystem.csv")

	w := &Writer{}
	require.NoError(t, w.WriteFile(path, sampleBodies()[:1], time.Unix(0, 0), "test"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Earth (399),PLANET,")

	err = w.WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), nil, time.Unix(0, 0), "")
	assert.Error(t, err)
}
