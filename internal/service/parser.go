package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fenceExtractor pulls the contents of a markdown code fence, preferring a
// ```json fence over a bare ``` one. Models frequently wrap their JSON in
// fences despite being told not to.
type fenceExtractor struct{}

func (fenceExtractor) Extract(raw string) (string, bool) {
	for _, marker := range []string{"```json", "```"} {
		start := strings.Index(raw, marker)
		if start == -1 {
			continue
		}
		start += len(marker)
		end := strings.Index(raw[start:], "```")
		if end == -1 {
			continue
		}
		return strings.TrimSpace(raw[start : start+end]), true
	}
	return "", false
}

// braceExtractor takes the span from the first '{' to the last '}', which
// tolerates prose before and after the structured block.
type braceExtractor struct{}

func (braceExtractor) Extract(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// ResponseParser decodes the structured block embedded in free-form model
// output into a target value.
type ResponseParser struct {
	extractors []Extractor
}

// NewResponseParser returns a parser with the default extraction heuristics:
// code fences first, then the first-to-last brace span.
func NewResponseParser() *ResponseParser {
	return &ResponseParser{
		extractors: []Extractor{fenceExtractor{}, braceExtractor{}},
	}
}

// Parse locates the structured block in raw and unmarshals it into v.
// Returns a ParseError when no extractor finds a decodable block.
func (p *ResponseParser) Parse(raw string, v any) error {
	for _, ex := range p.extractors {
		block, ok := ex.Extract(raw)
		if !ok {
			continue
		}
		if err := json.Unmarshal([]byte(block), v); err == nil {
			return nil
		}
	}

	// Last resort: the whole response may already be bare JSON.
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), v); err != nil {
		return &ParseError{Err: fmt.Errorf("no decodable JSON block in response: %w", err)}
	}
	return nil
}
