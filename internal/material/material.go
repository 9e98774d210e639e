// Package material resolves material identifiers (including their
// aliases) to catalog records and builds the per-reaction kinetic
// parameters (z, alpha/beta, attempt frequency, film resistance) that the
// kinetics package needs but the CSV catalogs do not carry.
//
// A Material is a record of (id, composition, reactions), where each
// reaction is a ReactionSpec variant rather than a class hierarchy.
package material

import (
	"fmt"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/kinetics"
)

// ReactionSpec is the per-reaction kinetic parameter block for one
// material. The Kind discriminates cathodic vs anodic and, within
// anodic, the oxidation/passivation/pitting sub-kind.
type ReactionSpec struct {
	Reaction       string // "ORR", "HER", "Oxidation", "Passivation", "Pitting"
	Cathodic       bool
	AlphaOrBeta    float64
	Z              float64
	FilmResistance float64 // ohm*cm^2; only meaningful for Passivation
	ThresholdICm2  float64 // A/cm^2; only meaningful for Pitting (E_pit threshold current)
}

// kineticsKindOf maps a reaction name to the kinetics.Kind used for
// anodic evaluation.
func kineticsKindOf(reaction string) kinetics.Kind {
	switch reaction {
	case "Passivation":
		return kinetics.Passivation
	case "Pitting":
		return kinetics.Pitting
	default:
		return kinetics.Oxidation
	}
}

// Material is the fully resolved engine-internal representation of one
// alloy: its composition (for PREN and density) and the set of reactions
// it supports.
type Material struct {
	ID          string
	Composition catalog.MaterialComposition
	Reactions   map[string]ReactionSpec // keyed by reaction name
	IsNRL       bool                    // true for the six canonical NRL alloys with full kinetic coverage
}

// aliasTable resolves common names and UNS designations to the canonical
// catalog key.
var aliasTable = map[string]string{
	"316":          "SS316",
	"316l":         "SS316",
	"unss31600":    "SS316",
	"unss31603":    "SS316",
	"hy80":         "HY80",
	"hy-80":        "HY80",
	"hy100":        "HY100",
	"hy-100":       "HY100",
	"cu-ni":        "CuNi",
	"cu10ni":       "CuNi",
	"9010cuni":     "CuNi",
	"inconel625":   "I625",
	"inconel 625":  "I625",
	"titanium":     "Ti",
	"grade2titanium": "Ti",
}

// ResolveAlias maps a user-supplied material identifier to the canonical
// catalog key, falling back to the identifier itself (normalized) when no
// alias is registered.
func ResolveAlias(id string) string {
	norm := catalog.NormalizeKey(id)
	if canonical, ok := aliasTable[norm]; ok {
		return canonical
	}
	return id
}

// nrlKineticParams holds the hand-specified (not CSV-loaded) kinetic
// parameters for the six canonical NRL alloys: alpha/beta, z, film
// resistance, pitting threshold current, per reaction. These parameters,
// unlike the response-surface coefficients, are part of material
// construction rather than a tabulated file; the response-surface
// numbers are data, these are code.
var nrlKineticParams = map[string]map[string]ReactionSpec{
	"HY80": {
		"ORR":       {Reaction: "ORR", Cathodic: true, AlphaOrBeta: 0.5, Z: 4},
		"HER":       {Reaction: "HER", Cathodic: true, AlphaOrBeta: 0.5, Z: 2},
		"Oxidation": {Reaction: "Oxidation", Cathodic: false, AlphaOrBeta: 0.5, Z: 2},
	},
	"HY100": {
		"ORR":       {Reaction: "ORR", Cathodic: true, AlphaOrBeta: 0.5, Z: 4},
		"HER":       {Reaction: "HER", Cathodic: true, AlphaOrBeta: 0.5, Z: 2},
		"Oxidation": {Reaction: "Oxidation", Cathodic: false, AlphaOrBeta: 0.5, Z: 2},
	},
	"SS316": {
		"ORR":         {Reaction: "ORR", Cathodic: true, AlphaOrBeta: 0.5, Z: 4},
		"HER":         {Reaction: "HER", Cathodic: true, AlphaOrBeta: 0.5, Z: 2},
		"Passivation": {Reaction: "Passivation", Cathodic: false, AlphaOrBeta: 0.3, Z: 2, FilmResistance: 8000},
		"Pitting":     {Reaction: "Pitting", Cathodic: false, AlphaOrBeta: 0.6, Z: 2, ThresholdICm2: 1e-6},
	},
	"Ti": {
		"ORR":         {Reaction: "ORR", Cathodic: true, AlphaOrBeta: 0.5, Z: 4},
		"HER":         {Reaction: "HER", Cathodic: true, AlphaOrBeta: 0.5, Z: 2},
		"Passivation": {Reaction: "Passivation", Cathodic: false, AlphaOrBeta: 0.3, Z: 4, FilmResistance: 50000},
	},
	"I625": {
		"ORR":         {Reaction: "ORR", Cathodic: true, AlphaOrBeta: 0.5, Z: 4},
		"HER":         {Reaction: "HER", Cathodic: true, AlphaOrBeta: 0.5, Z: 2},
		"Passivation": {Reaction: "Passivation", Cathodic: false, AlphaOrBeta: 0.3, Z: 2, FilmResistance: 20000},
	},
	"CuNi": {
		"ORR":       {Reaction: "ORR", Cathodic: true, AlphaOrBeta: 0.5, Z: 4},
		"HER":       {Reaction: "HER", Cathodic: true, AlphaOrBeta: 0.5, Z: 2},
		"Oxidation": {Reaction: "Oxidation", Cathodic: false, AlphaOrBeta: 0.5, Z: 1},
	},
}

// MaterialNotFoundError reports that a material id (after alias
// resolution) has no composition record in the catalog.
type MaterialNotFoundError struct {
	ID string
}

func (e *MaterialNotFoundError) Error() string {
	return fmt.Sprintf("InputValidation: unknown material %q after alias resolution", e.ID)
}

// Kind identifies this error's kind.
func (e *MaterialNotFoundError) Kind() string { return "InputValidation" }

// Resolve looks up id (applying alias resolution) against the catalog and
// returns a fully built Material. Materials outside the six-alloy NRL set
// are still returned (with IsNRL=false and no Reactions) so Tier-1
// pitting and PREN, which only need composition, keep working; such
// materials are refused for Tier-2 and galvanic evaluation.
func Resolve(cat *catalog.Catalog, id string) (Material, error) {
	canonical := ResolveAlias(id)
	comp, ok := cat.LookupComposition(canonical)
	if !ok {
		return Material{}, &MaterialNotFoundError{ID: id}
	}
	m := Material{ID: canonical, Composition: comp}
	if specs, ok := nrlKineticParams[canonical]; ok {
		m.IsNRL = true
		m.Reactions = specs
	}
	return m, nil
}

// NotAvailableForTier2Error reports that a material cannot be used in
// Tier-2 pitting or galvanic solving because it is not one of the six NRL
// alloys with full Butler-Volmer coefficient coverage.
type NotAvailableForTier2Error struct {
	ID string
}

func (e *NotAvailableForTier2Error) Error() string {
	return fmt.Sprintf("InputValidation: material %q has no NRL kinetic coefficients; refused for Tier-2/galvanic evaluation", e.ID)
}

// Kind identifies this error's kind.
func (e *NotAvailableForTier2Error) Kind() string { return "InputValidation" }

// RequireNRL returns an error unless m is one of the six canonical NRL
// alloys with full reaction coverage.
func (m Material) RequireNRL() error {
	if !m.IsNRL {
		return &NotAvailableForTier2Error{ID: m.ID}
	}
	return nil
}

// KineticsKind exposes the kinetics.Kind for a ReactionSpec's reaction
// name, for use by packages building kinetics.Anodic values.
func (r ReactionSpec) KineticsKind() kinetics.Kind {
	return kineticsKindOf(r.Reaction)
}
