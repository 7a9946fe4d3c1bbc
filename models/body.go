package models

// Unknown marks a mass or density that could not be determined.
const Unknown = -1.0

// Vector is a cartesian triple in SI units.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Body is the normalized record produced for one report.
type Body struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Type     BodyType `json:"type" yaml:"type"`
	Mass     float64  `json:"mass" yaml:"mass"`         // kg, Unknown when not found
	Density  float64  `json:"density" yaml:"density"`   // kg/m3, Unknown when not found
	Position Vector   `json:"position" yaml:"position"` // m
	Velocity Vector   `json:"velocity" yaml:"velocity"` // m/s
}

// NewBody returns a body with unknown mass/density and no type yet.
func NewBody(id string) *Body {
	return &Body{
		ID:      id,
		Type:    TypePending,
		Mass:    Unknown,
		Density: Unknown,
	}
}

// HasMass reports whether the mass was determined.
func (b *Body) HasMass() bool {
	return b.Mass != Unknown
}

// HasDensity reports whether the density was determined.
func (b *Body) HasDensity() bool {
	return b.Density != Unknown
}
