package parser

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dtnitsch/horizons-parser/models"
)

const kilometersToMeters = 1000

// vectorFields is the column count of a VECTORS table row:
// JDTDB, calendar date, X, Y, Z, VX, VY, VZ.
const vectorFields = 8

// ParseStateVector reads one CSV row of a HORIZONS VECTORS table, e.g.
//
//	2455946.091666667, A.D. 2012-Jan-19 14:12:00.0000, 5.47E+08, 5.03E+08, -1.43E+07, -9.00E+00, 1.02E+01, 1.58E-01,
//
// and converts km and km/s to m and m/s.
func ParseStateVector(line string) (position, velocity models.Vector, err error) {
	fields := strings.Split(line, ",")
	if len(fields) < vectorFields {
		return position, velocity, errors.Wrapf(ErrMalformedVector, "expected %d fields, got %d", vectorFields, len(fields))
	}

	var values [6]float64
	for i := range values {
		raw := strings.TrimSpace(fields[i+2])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return position, velocity, errors.Wrapf(ErrMalformedVector, "field %d %q", i+2, raw)
		}
		values[i] = v * kilometersToMeters
	}

	position = models.Vector{X: values[0], Y: values[1], Z: values[2]}
	velocity = models.Vector{X: values[3], Y: values[4], Z: values[5]}
	return position, velocity, nil
}
