package parser

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// Markers found in HORIZONS output.
const (
	startOfEphemeris = "$$SOE"
	endOfEphemeris   = "$$EOE"
	errorBanner      = "Horizons ERROR"
	spacecraftMarker = "SPACECRAFT TRAJECTORY"
	targetNameMarker = "Target body name"
)

// Keys synthesized by the extractor rather than read from the report.
const (
	KeyName              = "name"
	KeyObjectType        = "objecttype"
	ObjectTypeSpacecraft = "spacecraft"
)

var segmentSeparator = regexp.MustCompile(`[=:]`)

// Extraction is what Extract pulls out of a report: the header properties and
// the first line of the coordinates table (empty when there is none).
type Extraction struct {
	Properties  *Properties
	Coordinates string
}

// Extract scans a raw report. Lines before $$SOE are read as key/value pairs,
// the first non-blank line after it is kept verbatim as the coordinates line.
// Empty reports and reports whose first line is an upstream error banner
// return ErrNoData.
func Extract(raw string) (*Extraction, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.Wrap(ErrNoData, "empty report")
	}
	lines := strings.Split(raw, "\n")
	if strings.Contains(lines[0], errorBanner) {
		return nil, errors.Wrapf(ErrNoData, "upstream error %q", strings.TrimSpace(lines[0]))
	}

	ex := &Extraction{Properties: NewProperties()}
	inCoordinates := false
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if !inCoordinates {
			if line == startOfEphemeris {
				inCoordinates = true
				continue
			}
			extractHeaderLine(ex.Properties, line)
			continue
		}

		// only one sample is needed
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed != endOfEphemeris {
			ex.Coordinates = line
		}
		break
	}
	return ex, nil
}

func extractHeaderLine(props *Properties, line string) {
	if !strings.ContainsAny(line, "=:") {
		return
	}
	if strings.Contains(line, spacecraftMarker) {
		props.Set(KeyObjectType, ObjectTypeSpacecraft)
		return
	}
	if strings.Contains(line, targetNameMarker) {
		if name := targetName(line); name != "" {
			props.Set(KeyName, name)
		}
		return
	}

	segments := splitSegments(line)
	switch {
	case len(segments) < 2:
		return
	case len(segments) == 2:
		props.SetClean(segments[0], segments[1])
	default:
		splitSharedLine(props, segments)
	}
}

// targetName reads "Target body name: Earth (399)    {source: DE431}" as
// "Earth (399)".
func targetName(line string) string {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return ""
	}
	name := strings.TrimSpace(parts[1])
	name, _, _ = strings.Cut(name, "  ")
	name = strings.TrimSpace(name)
	name, _, _ = strings.Cut(name, " {")
	return name
}

// splitSegments splits on '=' and ':' and drops trailing empty segments, so
// "Radius =" yields a single segment.
func splitSegments(line string) []string {
	segments := segmentSeparator.Split(line, -1)
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return segments
}

// splitSharedLine handles two pairs written on one line:
//
//	Mean daily motion = 0.0831294 deg/d Mean orbit velocity = 13.0697 km/s
//
// The middle segment holds the first value followed by the second key. Leading
// tokens that look like a value belong to the first pair, the rest name the
// second key. Segments past the third are ignored.
func splitSharedLine(props *Properties, segments []string) {
	tokens := strings.Fields(segments[1])
	if len(tokens) == 0 {
		return
	}
	split := 0
	for split < len(tokens) && looksLikeValue(tokens[split]) {
		split++
	}
	props.SetClean(segments[0], strings.Join(tokens[:split], " "))
	props.SetClean(strings.Join(tokens[split:], " "), segments[2])
}

type leadClass int

const (
	leadNone leadClass = iota
	leadDigit
	leadLower
	leadUpper
	leadOther
)

// valueLeads says which leading character classes mark a token as part of a
// value. Units are written in lowercase ("deg/d", "km/s") while keys start
// uppercase ("Mean", "Volume").
var valueLeads = map[leadClass]bool{
	leadNone:  false,
	leadDigit: true,
	leadLower: true,
	leadUpper: false,
	leadOther: true,
}

func classifyLead(token string) leadClass {
	if token == "" {
		return leadNone
	}
	switch c := token[0]; {
	case c >= '0' && c <= '9':
		return leadDigit
	case c >= 'a' && c <= 'z':
		return leadLower
	case c >= 'A' && c <= 'Z':
		return leadUpper
	default:
		return leadOther
	}
}

func looksLikeValue(token string) bool {
	return valueLeads[classifyLead(token)]
}
