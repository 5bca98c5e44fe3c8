// Package qparse turns a natural-language math question into a template
// id plus extracted parameters. Two interchangeable strategies implement
// the same contract: a deterministic regex parser for common question
// shapes, and an LLM classifier for everything else. Callers compose
// them with FirstMatch, deterministic first.
package qparse

import (
	"context"
	"fmt"
)

// ParseResult is the outcome of one parse attempt. It is produced fresh
// per call and never mutated after return.
type ParseResult struct {
	Success    bool
	TemplateID string

	// Parameters holds the extracted values plus any eagerly derived
	// ones, so callers can inspect solved values without rendering.
	Parameters map[string]any

	// Confidence is meaningful for the LLM strategy; regex matches
	// report a fixed high value.
	Confidence float64

	ErrorMessage string

	// AlternativeTemplates suggests registry ids when classification
	// named a template that does not exist.
	AlternativeTemplates []string
}

// Parser is the shared contract for both strategies.
type Parser interface {
	Parse(ctx context.Context, question string) (*ParseResult, error)
}

// FirstMatch composes parsers into an ordered fallback: each is tried
// in turn and the first successful result wins. A parser returning an
// error (transport failure, not a parse miss) aborts the chain. When
// every parser misses, the last miss is returned so its message and
// suggestions reach the caller.
func FirstMatch(parsers ...Parser) Parser {
	return firstMatch(parsers)
}

type firstMatch []Parser

func (f firstMatch) Parse(ctx context.Context, question string) (*ParseResult, error) {
	if len(f) == 0 {
		return nil, fmt.Errorf("no parsers configured")
	}

	var last *ParseResult
	for _, p := range f {
		res, err := p.Parse(ctx, question)
		if err != nil {
			return nil, err
		}
		if res.Success {
			return res, nil
		}
		last = res
	}
	return last, nil
}
