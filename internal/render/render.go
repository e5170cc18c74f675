package render

import (
	"regexp"

	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

var (
	// placeholderPattern matches a literal {{name}} placeholder, with optional
	// padding inside the braces. Anything else containing braces is payload
	// text and passes through untouched.
	placeholderPattern = regexp.MustCompile(`\{\{\s*([a-z][a-z0-9_]*)\s*\}\}`)
	varNamePattern     = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// Context maps variable names to their substitution values. It is read-only
// for the duration of a scaffold run.
type Context map[string]string

// Render substitutes every {{variable}} placeholder in body from ctx. The
// first placeholder without a context value fails the render; path is carried
// into the error for reporting only.
func Render(body, path string, ctx Context) (string, error) {
	var missing string

	rendered := placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		if missing != "" {
			return match
		}
		name := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := ctx[name]
		if !ok {
			missing = name
			return match
		}
		return value
	})

	if missing != "" {
		return "", stencilerrors.NewUndefinedVariableError(missing, path)
	}
	return rendered, nil
}

// Variables lists the distinct placeholder names referenced by body, in order
// of first appearance.
func Variables(body string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ValidName reports whether name is usable as a context variable name.
func ValidName(name string) bool {
	return varNamePattern.MatchString(name)
}
