package process

import (
	"github.com/dtnitsch/horizons-parser/models"
	"github.com/dtnitsch/horizons-parser/pkg/parser"
)

// Job is one raw report waiting to be parsed.
type Job struct {
	Report models.Report
}

// Result holds the outcome of a processed job. Exactly one of Body and
// Failure is set.
type Result struct {
	ID          string
	Body        *models.Body
	Failure     *parser.Failure
	ContentHash string
}

// Summary is the structured output for the entire run.
type Summary struct {
	Status      string         `json:"status" yaml:"status"` // success, partial, failed
	RunID       int64          `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	OutputFile  string         `json:"output_file" yaml:"output_file"`
	OrbitDate   string         `json:"orbit_date" yaml:"orbit_date"`
	Stats       Stats          `json:"stats" yaml:"stats"`
	BodyTypes   map[string]int `json:"body_types,omitempty" yaml:"body_types,omitempty"`
	FailedItems []FailedReport `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalReports     int     `json:"total_reports" yaml:"total_reports"`
	Parsed           int     `json:"parsed" yaml:"parsed"`
	Failed           int     `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// FailedReport represents a report that produced no body.
type FailedReport struct {
	ID           string `json:"id" yaml:"id"`
	ErrorType    string `json:"error_type" yaml:"error_type"` // no_data, parse_error
	ErrorMessage string `json:"error_message" yaml:"error_message"`
}
