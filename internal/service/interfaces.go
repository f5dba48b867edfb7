package service

import "context"

// Generator is the single upstream call the pipeline depends on. Handlers
// and tests substitute mocks through this interface.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Extractor locates the structured block inside free-form model output.
// Alternate heuristics (or a structured-output model API) slot in here
// without touching the route handlers.
type Extractor interface {
	Extract(raw string) (string, bool)
}
