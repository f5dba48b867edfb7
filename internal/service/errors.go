package service

import "fmt"

// UpstreamError indicates the generative AI service was unreachable or
// returned an error status.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream AI service error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError indicates the AI service replied, but its output could not be
// decoded into the expected shape. Kept distinct from UpstreamError so
// callers can tell "model unreachable" from "model replied unusably".
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
