package templates

import (
	"errors"
	"fmt"
	"strings"
)

// Registry integrity failures are configuration bugs: they should fail
// loudly at startup or at the call site, never be absorbed.
var (
	ErrDuplicateTemplate = errors.New("template id already registered")
	ErrTemplateNotFound  = errors.New("template not found")
)

// ParamError reports caller-supplied or derived parameters that violate
// the template's ParamSpecs. It is returned before any substitution
// happens, so a failed render never produces partial output.
type ParamError struct {
	TemplateID string
	Violations []string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("template %q: invalid parameters: %s",
		e.TemplateID, strings.Join(e.Violations, "; "))
}
