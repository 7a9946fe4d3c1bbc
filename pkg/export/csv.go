// Package export writes parsed bodies as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dtnitsch/horizons-parser/models"
)

// Header is the column row of the bodies section.
var Header = []string{
	"Name", "Type", "Mass", "Density",
	"PositionX", "PositionY", "PositionZ",
	"VelocityX", "VelocityY", "VelocityZ",
}

const (
	fractionDigits      = 15
	smallFractionDigits = 50 // for values strictly between -1 and 1
)

// Writer writes the CSV layout consumed by the simulation:
//
//	TimeStamp
//	<orbit date, ms since epoch>
//	Comment
//	<comment>
//	Name,Type,Mass,...
//	<one row per body>
type Writer struct{}

// Write writes bodies in the given order.
func (wr *Writer) Write(w io.Writer, bodies []*models.Body, orbitDate time.Time, comment string) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"TimeStamp"},
		{FormatNumber(float64(orbitDate.UnixMilli()))},
		{"Comment"},
		{comment},
		Header,
	}
	for _, b := range bodies {
		rows = append(rows, Row(b))
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// WriteFile creates (or truncates) path and writes bodies to it.
func (wr *Writer) WriteFile(path string, bodies []*models.Body, orbitDate time.Time, comment string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := wr.Write(f, bodies, orbitDate, comment); err != nil {
		_ = f.Close() // write error takes precedence
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// Row formats one body in Header order.
func Row(b *models.Body) []string {
	return []string{
		b.Name,
		b.Type.String(),
		FormatNumber(b.Mass),
		FormatNumber(b.Density),
		FormatNumber(b.Position.X),
		FormatNumber(b.Position.Y),
		FormatNumber(b.Position.Z),
		FormatNumber(b.Velocity.X),
		FormatNumber(b.Velocity.Y),
		FormatNumber(b.Velocity.Z),
	}
}

// FormatNumber prints v as a plain decimal with '.' as separator, no
// exponent and no grouping. Values strictly between -1 and 1 keep up to 50
// fraction digits, others up to 15.
func FormatNumber(v float64) string {
	digits := fractionDigits
	if v < 1 && v > -1 {
		digits = smallFractionDigits
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= digits {
		return s
	}
	s = strconv.FormatFloat(v, 'f', digits, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
