package templates

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is the template catalog, keyed by id. It is populated once at
// startup and read-only afterward, so concurrent reads need no locking.
type Registry struct {
	byID  map[string]*AnimationTemplate
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*AnimationTemplate)}
}

// Register adds a template. Re-registering an id is an error so
// configuration bugs surface at startup instead of silently shadowing
// an earlier template.
func (r *Registry) Register(t *AnimationTemplate) error {
	if t.ID == "" {
		return fmt.Errorf("register template: empty id")
	}
	if _, exists := r.byID[t.ID]; exists {
		return fmt.Errorf("register template %q: %w", t.ID, ErrDuplicateTemplate)
	}
	r.byID[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

// mustRegister is for the built-in catalog, where a duplicate is a
// programming error.
func (r *Registry) mustRegister(t *AnimationTemplate) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns the template with the given id.
func (r *Registry) Get(id string) (*AnimationTemplate, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// IDs returns all template ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.byID) }

// ByCategory returns templates in the given category, in registration order.
func (r *Registry) ByCategory(c Category) []*AnimationTemplate {
	var out []*AnimationTemplate
	for _, id := range r.order {
		if t := r.byID[id]; t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Search returns templates matching the query, best first. Id/name hits
// score highest, then description, then example questions, then tags.
// Ties keep registration order.
func (r *Registry) Search(query string) []*AnimationTemplate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type scored struct {
		t     *AnimationTemplate
		score int
		pos   int
	}
	var hits []scored

	for pos, id := range r.order {
		t := r.byID[id]
		score := 0
		if strings.Contains(strings.ToLower(t.ID), q) {
			score += 10
		}
		if strings.Contains(strings.ToLower(t.Description), q) {
			score += 5
		}
		for _, ex := range t.Examples {
			if strings.Contains(strings.ToLower(ex), q) {
				score += 3
				break
			}
		}
		for _, tag := range t.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				score += 2
				break
			}
		}
		if score > 0 {
			hits = append(hits, scored{t: t, score: score, pos: pos})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].pos < hits[j].pos
	})

	out := make([]*AnimationTemplate, len(hits))
	for i, h := range hits {
		out[i] = h.t
	}
	return out
}
