package qparse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nkurella/manimate/internal/llm"
	"github.com/nkurella/manimate/internal/templates"
)

const classifySystemPrompt = `You classify math questions against a catalog of animation templates.
Pick the single best template and extract its parameters from the question.
Respond with a JSON object only: {"template_id": string, "parameters": object, "confidence": number 0-1, "reasoning": string}.
Parameter values must be plain numbers or strings, never expressions.
If no template fits, use an empty template_id and confidence 0.`

var classifySchema = &llm.Schema{
	Name:        "question-parse",
	Description: "Classification of a math question against the animation template catalog.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"template_id": map[string]any{"type": "string"},
			"parameters":  map[string]any{"type": "object"},
			"confidence":  map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"reasoning":   map[string]any{"type": "string"},
		},
		"required":             []string{"template_id", "parameters", "confidence"},
		"additionalProperties": false,
	},
}

// LLMParser classifies questions the regex strategy cannot, by showing
// the model the full template catalog and asking for a structured pick.
type LLMParser struct {
	provider llm.Provider
	registry *templates.Registry
}

// NewLLMParser creates an LLMParser.
func NewLLMParser(provider llm.Provider, reg *templates.Registry) *LLMParser {
	return &LLMParser{provider: provider, registry: reg}
}

type classification struct {
	TemplateID string         `json:"template_id"`
	Parameters map[string]any `json:"parameters"`
	Confidence float64        `json:"confidence"`
	Reasoning  string         `json:"reasoning"`
}

// Parse sends the catalog and the question to the model. Transport
// errors are returned as errors; everything else, including a response
// the parser cannot use, comes back as a failed ParseResult with a
// message naming what went wrong.
func (p *LLMParser) Parse(ctx context.Context, question string) (*ParseResult, error) {
	ctx = llm.WithPurpose(ctx, "question-parse")

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: p.buildPrompt(question)},
		},
		Schema:    classifySchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("question classification failed: %w", err)
	}

	text := resp.Text()
	// Providers without native structured output return the reply as a
	// JSON string; unwrap it before scanning for the object.
	var unwrapped string
	if json.Unmarshal(resp.Content, &unwrapped) == nil {
		text = unwrapped
	}

	raw := extractJSONObject(text)
	if raw == "" {
		return &ParseResult{
			ErrorMessage: "no JSON object in model response",
		}, nil
	}

	var c classification
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return &ParseResult{
			ErrorMessage: fmt.Sprintf("could not decode model response JSON: %v", err),
		}, nil
	}

	if c.TemplateID == "" {
		return &ParseResult{
			Confidence:   c.Confidence,
			ErrorMessage: "model found no matching template",
		}, nil
	}

	if _, ok := p.registry.Get(c.TemplateID); !ok {
		return &ParseResult{
			Confidence:           c.Confidence,
			ErrorMessage:         fmt.Sprintf("model chose unknown template %q", c.TemplateID),
			AlternativeTemplates: relatedIDs(p.registry, c.TemplateID),
		}, nil
	}

	params := c.Parameters
	if params == nil {
		params = make(map[string]any)
	}
	if err := deriveInto(p.registry, c.TemplateID, params); err != nil {
		return &ParseResult{
			TemplateID:   c.TemplateID,
			Parameters:   params,
			Confidence:   c.Confidence,
			ErrorMessage: err.Error(),
		}, nil
	}

	return &ParseResult{
		Success:    true,
		TemplateID: c.TemplateID,
		Parameters: params,
		Confidence: c.Confidence,
	}, nil
}

// buildPrompt lists every catalog entry with its required parameters
// and example questions, then the question to classify.
func (p *LLMParser) buildPrompt(question string) string {
	var b strings.Builder
	b.WriteString("Template catalog:\n\n")
	for _, id := range p.registry.IDs() {
		t, _ := p.registry.Get(id)
		fmt.Fprintf(&b, "- id: %s\n  description: %s\n", t.ID, t.Description)
		if req := t.RequiredParams(); len(req) > 0 {
			fmt.Fprintf(&b, "  required parameters: %s\n", strings.Join(req, ", "))
		}
		for _, ex := range t.Examples {
			fmt.Fprintf(&b, "  example: %s\n", ex)
		}
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String()
}

// extractJSONObject returns the first balanced {...} span in s, so a
// model that wraps its JSON in prose still parses.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// relatedIDs suggests registry ids sharing at least one word with the
// unknown id the model produced.
func relatedIDs(reg *templates.Registry, unknown string) []string {
	words := splitWords(unknown)
	var out []string
	for _, id := range reg.IDs() {
		for w := range splitWords(id) {
			if _, ok := words[w]; ok {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

func splitWords(id string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(id), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}
