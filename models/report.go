package models

// Report is one raw text blob keyed by the object identifier it was retrieved for
// (e.g. "MB:399" or "SB:1").
type Report struct {
	ID  string
	Raw string
}

// Override carries authoritative physical data for one identifier.
type Override struct {
	Name    string
	Mass    float64
	Density float64
}

// Overrides maps an object identifier to its corrections.
type Overrides map[string]Override
