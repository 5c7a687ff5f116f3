// Package analyzer implements the explain pipeline: read a source file,
// build an analysis prompt, and parse the structured JSON the model returns.
package analyzer

import "strings"

// Complexity is the model's rating of a file.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
	ComplexityUnknown Complexity = "unknown"
)

// NormalizeComplexity maps free-form model output onto the known ratings.
func NormalizeComplexity(s string) Complexity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return ComplexitySimple
	case "medium":
		return ComplexityMedium
	case "complex":
		return ComplexityComplex
	default:
		return ComplexityUnknown
	}
}

// Title returns the rating capitalized for display.
func (c Complexity) Title() string {
	if c == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// AnalysisResult is the structured output of one file analysis. It is built
// once from the parsed model response and only read afterwards.
type AnalysisResult struct {
	Summary      string       `json:"summary"`
	Functions    []Function   `json:"functions"`
	Classes      []Class      `json:"classes"`
	Dependencies []Dependency `json:"dependencies"`
	Complexity   Complexity   `json:"complexity"`
}

// Function documents a single function or method.
type Function struct {
	Name        string   `json:"name"`
	Signature   string   `json:"signature"`
	Description string   `json:"description"`
	KeyPoints   []string `json:"key_points,omitempty"`
}

// Class documents a class or type.
type Class struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Methods     []string `json:"methods,omitempty"`
}

// Dependency documents an imported module.
type Dependency struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}
