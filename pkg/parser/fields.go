package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dtnitsch/horizons-parser/models"
)

// GravitationalConstant is G in units of 1e-11 m^3 kg^-1 s^-2, the value the
// HORIZONS physical data pages were built against.
// TODO: switch to CODATA 2018 (6.67430) once outputs no longer need to match
// previously published tables.
const GravitationalConstant = 6.6725985

const (
	gramsToKilograms  = 0.001
	poundsToKilograms = 0.45359237
	tonsToKilograms   = 1000
	gramsPerCCToSI    = 1000 // g/cm^3 -> kg/m^3
)

var (
	keySeparators = regexp.MustCompile(`[, ()]`)
	// "mass10^24kg" -> 10, 24
	keyMultiplier = regexp.MustCompile(`^[a-z]+([0-9]+)\^([0-9]+)`)
	// "5.97+-0.0006", "1.08-+0.1"
	imprecision = regexp.MustCompile(`(\+-|-\+)[0-9.|]+`)
	// "1.08 (10^-4)" -> 1.08, 10, -4
	massValue = regexp.MustCompile(`^([0-9]*\.?[0-9]+)(?: *\(?([0-9]+)\^(-?[0-9]+))?`)
)

// fieldRule reads one physical quantity from a matching property.
type fieldRule struct {
	name  string
	match func(key, value string) bool
	apply func(b *models.Body, key, value string) error
}

var fieldRules = []fieldRule{
	{name: "mass", match: isUnitMass, apply: applyUnitMass},
	{name: "launch mass", match: isLaunchMass, apply: applyLaunchMass},
	{name: "gm", match: isGM, apply: applyGM},
	{name: "density", match: isDensity, apply: applyDensity},
	{name: "name", match: isName, apply: applyName},
	{name: "object type", match: isObjectType, apply: applyObjectType},
}

// applyFields runs every rule against every property in order, so a later
// property overwrites what an earlier one set. Rule failures leave the field
// untouched and are returned for logging.
func applyFields(b *models.Body, props *Properties) []error {
	var failures []error
	for _, prop := range props.All() {
		if prop.Value == "" {
			continue
		}
		for _, rule := range fieldRules {
			if !rule.match(prop.Key, prop.Value) {
				continue
			}
			if err := rule.apply(b, prop.Key, prop.Value); err != nil {
				failures = append(failures, errors.Wrapf(err, "%s from %q = %q", rule.name, prop.Key, prop.Value))
			}
		}
	}
	return failures
}

func isUnitMass(key, value string) bool {
	if strings.Contains(value, " kg") {
		return true
	}
	return strings.Contains(key, "mass ") && (strings.Contains(key, " g") || strings.Contains(key, " kg"))
}

// applyUnitMass handles "Mass, 10^24 kg = 5.97237", "Mass (g) = 1.08+-0.1 (10^-4)"
// and friends: a multiplier may sit in the key, in the value, or both.
func applyUnitMass(b *models.Body, key, value string) error {
	compact := keySeparators.ReplaceAllString(key, "")

	multiplier := 1.0
	if m := keyMultiplier.FindStringSubmatch(compact); m != nil {
		p, err := power(m[1], m[2])
		if err != nil {
			return err
		}
		multiplier = p
	}
	if strings.Contains(compact, "g") && !strings.Contains(compact, "kg") && !strings.Contains(compact, "weight") {
		multiplier *= gramsToKilograms
	}
	if strings.Contains(value, "lb") {
		multiplier *= poundsToKilograms
	}

	value = imprecision.ReplaceAllString(value, "")
	m := massValue.FindStringSubmatch(value)
	if m == nil {
		return errors.Newf("no leading number in %q", value)
	}
	mass, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return err
	}
	mass *= multiplier
	if m[2] != "" && m[3] != "" {
		p, err := power(m[2], m[3])
		if err != nil {
			return err
		}
		mass *= p
	}
	return setMass(b, mass)
}

func isLaunchMass(key, _ string) bool {
	return strings.Contains(key, "launch mass")
}

// applyLaunchMass handles spacecraft entries such as "1223 kg" or "4 tonnes".
func applyLaunchMass(b *models.Body, _, value string) error {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return errors.New("empty value")
	}
	mass, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return err
	}
	if strings.Contains(strings.ToLower(value), "ton") {
		mass *= tonsToKilograms
	}
	return setMass(b, mass)
}

func isGM(key, _ string) bool {
	return key == "gm"
}

// applyGM converts a standard gravitational parameter in km^3/s^2.
func applyGM(b *models.Body, _, value string) error {
	gm, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	return setMass(b, gm*math.Pow(10, 20)/GravitationalConstant)
}

func isDensity(key, _ string) bool {
	return strings.Contains(key, "density")
}

// applyDensity reads the first token of values like "5.515 (g/cm^3)" or
// "2.0+-0.5".
func applyDensity(b *models.Body, _, value string) error {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return errors.New("empty value")
	}
	raw, _, _ := strings.Cut(fields[0], "(")
	raw = stripImprecision(raw)
	density, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	density *= gramsPerCCToSI
	if !isPhysical(density) {
		return errors.Newf("density %v out of range", density)
	}
	b.Density = density
	return nil
}

func isName(key, _ string) bool {
	return key == KeyName
}

func applyName(b *models.Body, _, value string) error {
	b.Name = value
	return nil
}

func isObjectType(key, _ string) bool {
	return key == KeyObjectType
}

func applyObjectType(b *models.Body, _, value string) error {
	if strings.EqualFold(value, ObjectTypeSpacecraft) {
		b.Type = models.TypeSpacecraft
	}
	return nil
}

func setMass(b *models.Body, mass float64) error {
	if !isPhysical(mass) {
		return errors.Newf("mass %v out of range", mass)
	}
	b.Mass = round(mass)
	return nil
}

// power parses "<base>^<exponent>" parts.
func power(base, exponent string) (float64, error) {
	b, err := strconv.Atoi(base)
	if err != nil {
		return 0, err
	}
	e, err := strconv.Atoi(exponent)
	if err != nil {
		return 0, err
	}
	return math.Pow(float64(b), float64(e)), nil
}

func stripImprecision(s string) string {
	s, _, _ = strings.Cut(s, "+-")
	s, _, _ = strings.Cut(s, "-+")
	return s
}

func isPhysical(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// validQuantity accepts a physical value or the Unknown sentinel.
func validQuantity(v float64) bool {
	return v == models.Unknown || isPhysical(v)
}

func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
