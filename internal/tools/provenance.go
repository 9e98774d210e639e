// Package tools is the dispatch layer over the engine's named operations:
// one file per operation, each a thin Handle that validates its typed
// input, calls exactly one core package, and wraps the result with the
// provenance envelope every tool result carries. This package owns no
// numerical code.
package tools

// EngineVersion is reported in every tool result's provenance envelope.
const EngineVersion = "1.0.0"

// Envelope is the provenance record every tool result carries: model
// name, version, confidence band, source citations, assumptions, and
// warnings.
type Envelope struct {
	ModelName      string
	Version        string
	ConfidenceBand string
	Sources        []string
	Assumptions    []string
	Warnings       []string
}

// newEnvelope builds an Envelope, dropping empty source strings so every
// citation that survives is non-empty.
func newEnvelope(modelName, confidence string, sources, assumptions, warnings []string) Envelope {
	var cleanSources []string
	for _, s := range sources {
		if s != "" {
			cleanSources = append(cleanSources, s)
		}
	}
	return Envelope{
		ModelName:      modelName,
		Version:        EngineVersion,
		ConfidenceBand: confidence,
		Sources:        cleanSources,
		Assumptions:    assumptions,
		Warnings:       warnings,
	}
}
