// Package errs names the core error kinds and classifies an arbitrary
// core error into one of them at the tool-orchestration boundary. Every
// concrete error type across the core packages already implements error;
// this package adds the one thing they have in common, a Kind() accessor,
// recovered via errors.As so the transport boundary never has to know
// about any individual package's concrete error type.
package errs

import "errors"

const (
	InputValidation      = "InputValidation"
	OutOfValidatedRegion = "OutOfValidatedRegion"
	SolverNonConvergence = "SolverNonConvergence"
	Tier2Unavailable     = "Tier2Unavailable"
	CatalogLoad          = "CatalogLoad"
	Unknown              = "Unknown"
)

// Kinded is implemented by every typed core error.
type Kinded interface {
	error
	Kind() string
}

// Classify recovers the Kind of err, defaulting to Unknown for an error
// that carries no typed kind (a bug in the originating package: every
// core error kind should be typed).
func Classify(err error) string {
	if err == nil {
		return ""
	}
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}
