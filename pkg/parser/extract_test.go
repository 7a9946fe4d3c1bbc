package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

func TestExtract_NoData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: " \n\t\n"},
		{name: "error banner", raw: lines("Horizons ERROR: No matches found.", "Target body name: Earth (399)")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := Extract(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNoData)
			assert.Nil(t, ex)
		})
	}
}

func TestExtract_SingleAndSharedPairs(t *testing.T) {
	raw := lines(
		"*******************************************************************************",
		" GEOPHYSICAL PROPERTIES:",
		"  Mean daily motion     = 0.0831294 deg/d Mean orbit velocity    = 13.0697 km/s",
		"  Density (g/cm^3)      = 5.514",
		"  Radius =",
		"  no separator on this line",
	)

	ex, err := Extract(raw)
	require.NoError(t, err)

	assert.Equal(t, []Property{
		{Key: "mean daily motion", Value: "0.0831294 deg/d"},
		{Key: "mean orbit velocity", Value: "13.0697 km/s"},
		{Key: "density (g/cm^3)", Value: "5.514"},
	}, ex.Properties.All())
	assert.Empty(t, ex.Coordinates)
}

func TestExtract_SharedLineWithEmptyMiddle(t *testing.T) {
	ex, err := Extract("Mean radius =    = 6371")
	require.NoError(t, err)
	assert.Zero(t, ex.Properties.Len())
}

func TestExtract_TrailingSeparatorKeepsTwoSegments(t *testing.T) {
	ex, err := Extract("A = 1 B =")
	require.NoError(t, err)

	v, ok := ex.Properties.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1 B", v)
	assert.Equal(t, 1, ex.Properties.Len())
}

func TestExtract_TargetName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "Target body name: Earth (399)                     {source: DE405}", want: "Earth (399)"},
		{line: "Target body name: Sun (10) {source: DE405}", want: "Sun (10)"},
		{line: "Target body name: 433 Eros (A898 PA)", want: "433 Eros (A898 PA)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ex, err := Extract(tt.line)
			require.NoError(t, err)
			name, ok := ex.Properties.Get(KeyName)
			require.True(t, ok)
			assert.Equal(t, tt.want, name)
			assert.Equal(t, 1, ex.Properties.Len())
		})
	}
}

func TestExtract_SpacecraftMarker(t *testing.T) {
	ex, err := Extract(lines(" Voyager 1 SPACECRAFT TRAJECTORY:", " SPACECRAFT TRAJECTORY without separator"))
	require.NoError(t, err)

	assert.Equal(t, []Property{{Key: KeyObjectType, Value: ObjectTypeSpacecraft}}, ex.Properties.All())
}

func TestExtract_Coordinates(t *testing.T) {
	row := "2455946.0, A.D. 2012-Jan-19, 1.0E+05, 2.0E+05, 3.0E+05, 1.0, 2.0, 3.0"

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "first row only", raw: lines("GM = 1", "$$SOE", row, "2455947.0, later, 9, 9, 9, 9, 9, 9", "$$EOE"), want: row},
		{name: "blank lines skipped", raw: lines("$$SOE", "", "  ", row), want: row},
		{name: "empty table", raw: lines("GM = 1", "$$SOE", "$$EOE"), want: ""},
		{name: "no table", raw: "GM = 1", want: ""},
		{name: "crlf", raw: "GM = 1\r\n$$SOE\r\n" + row + "\r\n$$EOE\r\n", want: row},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := Extract(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ex.Coordinates)
		})
	}
}

func TestExtract_HeaderAfterTableIgnored(t *testing.T) {
	ex, err := Extract(lines("$$SOE", "$$EOE", "GM = 1"))
	require.NoError(t, err)
	assert.Zero(t, ex.Properties.Len())
}

func TestLooksLikeValue(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{token: "", want: false},
		{token: "13.0697", want: true},
		{token: "-31", want: true},
		{token: "(+COVERAGE)", want: true},
		{token: "deg/d", want: true},
		{token: "km/s", want: true},
		{token: "Mean", want: false},
		{token: "Volume", want: false},
		{token: "Émile", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeValue(tt.token))
		})
	}
}
