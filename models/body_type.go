package models

import (
	"fmt"
	"strings"
)

// BodyType is the category assigned to a body.
type BodyType int

const (
	// TypePending means no classification has been made yet.
	TypePending BodyType = iota
	TypeStar
	TypePlanet
	TypeDwarfPlanet
	TypeMoon
	TypeAsteroid
	TypeSpacecraft
)

var bodyTypeLabels = map[BodyType]string{
	TypePending:     "UNKNOWN",
	TypeStar:        "STAR",
	TypePlanet:      "PLANET",
	TypeDwarfPlanet: "DWARF_PLANET",
	TypeMoon:        "MOON",
	TypeAsteroid:    "ASTEROID",
	TypeSpacecraft:  "SPACECRAFT",
}

// String returns the label written to CSV output (e.g. "DWARF_PLANET").
func (t BodyType) String() string {
	if label, ok := bodyTypeLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("BodyType(%d)", int(t))
}

// ParseBodyType is the inverse of String. Matching is case-insensitive.
func ParseBodyType(s string) (BodyType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, label := range bodyTypeLabels {
		if label == s {
			return t, nil
		}
	}
	return TypePending, fmt.Errorf("unknown body type %q", s)
}

// MarshalText lets the type appear as its label in JSON and YAML output.
func (t BodyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
