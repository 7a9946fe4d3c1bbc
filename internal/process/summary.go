package process

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/horizons-parser/models"
	"github.com/dtnitsch/horizons-parser/pkg/parser"
	"gopkg.in/yaml.v3"
)

// Run status values.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

// BuildSummary condenses a run into its printable summary.
func BuildSummary(bodies []*models.Body, failures []parser.Failure) *Summary {
	summary := &Summary{
		Stats: Stats{
			TotalReports: len(bodies) + len(failures),
			Parsed:       len(bodies),
			Failed:       len(failures),
		},
	}

	if len(bodies) > 0 {
		summary.BodyTypes = make(map[string]int)
		for _, b := range bodies {
			summary.BodyTypes[b.Type.String()]++
		}
	}

	for _, f := range failures {
		summary.FailedItems = append(summary.FailedItems, FailedReport{
			ID:           f.ID,
			ErrorType:    f.Kind,
			ErrorMessage: f.Err.Error(),
		})
	}

	switch {
	case len(failures) == 0:
		summary.Status = StatusSuccess
	case len(bodies) == 0:
		summary.Status = StatusFailed
	default:
		summary.Status = StatusPartial
	}
	return summary
}

// ExitCode maps a summary to the process exit status: 0 when every report
// parsed, 1 when some failed and 2 when all of them did.
func ExitCode(s *Summary) int {
	switch s.Status {
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 0
	}
}

// WriteSummary prints the summary as YAML (default) or JSON.
func WriteSummary(w io.Writer, s *Summary, format string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "", "yaml":
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown summary format %q (want yaml or json)", format)
	}
}
