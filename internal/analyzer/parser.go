package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports a model response that could not be parsed as an
// AnalysisResult, carrying the offending text for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("response is not valid analysis JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseResponse parses raw model output into an AnalysisResult.
//
// Strategy, in order:
//  1. strict parse of the whole response
//  2. strict parse after stripping markdown code fences
//  3. strict parse of each balanced top-level {...} span found in the text
//
// Missing keys default to zero values; the complexity rating is normalized
// case-insensitively.
func ParseResponse(raw string) (*AnalysisResult, error) {
	trimmed := strings.TrimSpace(raw)

	result, firstErr := parseStrict(trimmed)
	if firstErr == nil {
		return result, nil
	}

	if unfenced := stripFences(trimmed); unfenced != trimmed {
		if result, err := parseStrict(unfenced); err == nil {
			return result, nil
		}
	}

	for _, span := range scanObjects(trimmed) {
		if result, err := parseStrict(span); err == nil {
			return result, nil
		}
	}

	return nil, &ParseError{Raw: raw, Err: firstErr}
}

// parseStrict requires s to be a single JSON object.
func parseStrict(s string) (*AnalysisResult, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, fmt.Errorf("expected JSON object")
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		return nil, err
	}
	result.Complexity = NormalizeComplexity(string(result.Complexity))
	return &result, nil
}

// stripFences removes a surrounding markdown code block, if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"```json", "```JSON", "```"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
			break
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
