package parser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dtnitsch/horizons-parser/models"
)

// Catalog holds the reference lists used to classify bodies by name and id.
// Names and markers are lowercase.
//
// PlanetNames extends the eight canonical planet names with the designated
// forms HORIZONS prints as the target name ("earth (399)"), so a report whose
// name carries the designation still classifies as a planet.
type Catalog struct {
	SpacecraftMassLimit float64 // kg; anything lighter is artificial
	SunDesignation      string
	PlanetNames         []string
	SpacecraftMarkers   []string
	AsteroidMarkers     []string
	DwarfPlanetMarkers  []string
	SmallBodyGroup      string
	DwarfPlanetCodes    []string // Ceres, Sedna, Eris, Haumea, Makemake, Orcus, Quaoar, Gonggong
}

// DefaultCatalog returns the solar system reference data.
func DefaultCatalog() Catalog {
	return Catalog{
		SpacecraftMassLimit: 1000000,
		SunDesignation:      "sun (10)",
		PlanetNames: []string{
			"mercury", "venus", "earth", "mars", "jupiter", "saturn", "uranus", "neptune",
			"mercury (199)", "venus (299)", "earth (399)", "mars (499)",
			"jupiter (599)", "saturn (699)", "uranus (799)", "neptune (899)",
		},
		SpacecraftMarkers:  []string{"spacecraft", "telescope", "observatory", "6q0b44e"},
		AsteroidMarkers:    []string{"neocp", "lovejoy"},
		DwarfPlanetMarkers: []string{"pluto"},
		SmallBodyGroup:     "SB",
		DwarfPlanetCodes:   []string{"1", "90377", "136199", "136108", "136472", "90482", "50000", "225088"},
	}
}

// Classifier assigns a BodyType to bodies that carry no explicit marker.
type Classifier struct {
	catalog Catalog
}

// NewClassifier copies the catalog so later changes by the caller have no effect.
func NewClassifier(catalog Catalog) *Classifier {
	catalog.PlanetNames = slices.Clone(catalog.PlanetNames)
	catalog.SpacecraftMarkers = slices.Clone(catalog.SpacecraftMarkers)
	catalog.AsteroidMarkers = slices.Clone(catalog.AsteroidMarkers)
	catalog.DwarfPlanetMarkers = slices.Clone(catalog.DwarfPlanetMarkers)
	catalog.DwarfPlanetCodes = slices.Clone(catalog.DwarfPlanetCodes)
	return &Classifier{catalog: catalog}
}

// Classify applies the rules in order; the first match wins. The mass rule
// comes first because some spacecraft share names with catalog bodies.
func (c *Classifier) Classify(b *models.Body, id string) models.BodyType {
	if b.HasMass() && b.Mass < c.catalog.SpacecraftMassLimit {
		return models.TypeSpacecraft
	}

	name := strings.ToLower(b.Name)
	switch {
	case name == c.catalog.SunDesignation:
		return models.TypeStar
	case slices.Contains(c.catalog.PlanetNames, name):
		return models.TypePlanet
	case containsAny(name, c.catalog.SpacecraftMarkers):
		return models.TypeSpacecraft
	case containsAny(name, c.catalog.AsteroidMarkers):
		return models.TypeAsteroid
	case c.isDwarfPlanetID(id) || containsAny(name, c.catalog.DwarfPlanetMarkers):
		return models.TypeDwarfPlanet
	case hasNumberPrefix(name):
		// numbered minor planets, e.g. "433 Eros"
		return models.TypeAsteroid
	}
	return models.TypeMoon
}

// isDwarfPlanetID matches identifiers like "SB:136199".
func (c *Classifier) isDwarfPlanetID(id string) bool {
	group, code, ok := strings.Cut(id, ":")
	if !ok || strings.Contains(code, ":") {
		return false
	}
	return group == c.catalog.SmallBodyGroup && slices.Contains(c.catalog.DwarfPlanetCodes, code)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func hasNumberPrefix(name string) bool {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.Atoi(fields[0])
	return err == nil
}
