// Package parser turns raw JPL HORIZONS reports into normalized bodies.
//
// The physical data section of a report is maintained by hand and has no fixed
// grammar, so extraction is heuristic: Extract builds an ordered key/value list,
// field rules read mass, density and name from it, and a Classifier fills in
// the body type when the report does not state it. Values that cannot be read
// keep the models.Unknown sentinel; only an empty report or a malformed
// coordinates row fails the whole body.
package parser

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/dtnitsch/horizons-parser/models"
)

var (
	// ErrNoData is returned for empty reports and upstream error pages.
	ErrNoData = errors.New("no data")
	// ErrMalformedVector is returned when the coordinates row cannot be read.
	ErrMalformedVector = errors.New("malformed state vector")
)

// Failure kinds reported per identifier.
const (
	FailureNoData = "no_data"
	FailureParse  = "parse_error"
)

// Failure records why one report produced no body.
type Failure struct {
	ID   string
	Kind string
	Err  error
}

// FailureKind maps a Parse error to FailureNoData or FailureParse.
func FailureKind(err error) string {
	if errors.Is(err, ErrNoData) {
		return FailureNoData
	}
	return FailureParse
}

// Parser converts reports to bodies. It holds no per-report state and is safe
// for concurrent use.
type Parser struct {
	overrides  models.Overrides
	classifier *Classifier
	logger     *slog.Logger
}

// NewParser returns a parser using the default catalog. overrides may be nil.
func NewParser(overrides models.Overrides, logger *slog.Logger) *Parser {
	return NewParserWithCatalog(overrides, DefaultCatalog(), logger)
}

// NewParserWithCatalog returns a parser classifying against catalog.
func NewParserWithCatalog(overrides models.Overrides, catalog Catalog, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{
		overrides:  overrides,
		classifier: NewClassifier(catalog),
		logger:     logger,
	}
}

// Parse builds the body for one report.
func (p *Parser) Parse(id, raw string) (body *models.Body, err error) {
	defer func() {
		if r := recover(); r != nil {
			body = nil
			err = errors.Newf("panic while parsing %s: %v", id, r)
		}
	}()

	ex, err := Extract(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", id)
	}

	body = models.NewBody(id)
	for _, fieldErr := range applyFields(body, ex.Properties) {
		p.logger.Debug("Ignored unreadable field", "object_id", id, "error", fieldErr)
	}

	if ex.Coordinates != "" {
		body.Position, body.Velocity, err = ParseStateVector(ex.Coordinates)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", id)
		}
	}

	// overrides go in before classification so the mass rule sees them
	if o, ok := p.overrides[id]; ok {
		if validQuantity(o.Mass) && validQuantity(o.Density) {
			body.Mass = o.Mass
			body.Density = o.Density
		} else {
			p.logger.Warn("Ignored non-physical override", "object_id", id, "mass", o.Mass, "density", o.Density)
		}
	}

	if body.Type == models.TypePending {
		body.Type = p.classifier.Classify(body, id)
	}
	return body, nil
}

// ParseAll parses reports in order. A report that fails is logged, reported
// in the returned failures and skipped; it never stops the batch.
func (p *Parser) ParseAll(reports []models.Report) ([]*models.Body, []Failure) {
	bodies := make([]*models.Body, 0, len(reports))
	var failures []Failure
	for _, r := range reports {
		body, err := p.Parse(r.ID, r.Raw)
		if err != nil {
			failure := Failure{ID: r.ID, Kind: FailureKind(err), Err: err}
			p.logger.Warn("Failed to parse body", "object_id", r.ID, "error_type", failure.Kind, "error", err)
			failures = append(failures, failure)
			continue
		}
		p.logger.Info("Parsed body", "object_id", r.ID, "name", body.Name, "type", body.Type.String())
		bodies = append(bodies, body)
	}
	return bodies, failures
}
