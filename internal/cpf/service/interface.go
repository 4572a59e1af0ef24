// Package service provides CPF generation and presentation helpers built on
// top of the domain check digit rules.
package service

// Generator produces random CPFs that pass validation.
type Generator interface {
	Generate() (string, error)
}

// Formatter renders CPFs for display and for logs.
type Formatter interface {
	// Format renders a valid CPF as 000.000.000-00.
	Format(raw string) (string, error)
	// Mask hides the first six digits of a CPF: ***.***.247-25.
	Mask(raw string) string
	// Fingerprint returns a short keyed hash of the normalized digits, or ""
	// when the formatter has no key.
	Fingerprint(raw string) string
}
