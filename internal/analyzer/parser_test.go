package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalResponse = `{"summary":"x","functions":[],"classes":[],"dependencies":[],"complexity":"Simple"}`

func TestParseResponse_Strict(t *testing.T) {
	result, err := ParseResponse(minimalResponse)
	require.NoError(t, err)
	assert.Equal(t, "x", result.Summary)
	assert.Empty(t, result.Functions)
	assert.Empty(t, result.Classes)
	assert.Empty(t, result.Dependencies)
	assert.Equal(t, ComplexitySimple, result.Complexity)
}

func TestParseResponse_WrappedInProse(t *testing.T) {
	wrapped := "Here is the JSON you asked for: " + minimalResponse + " Let me know if you need more."
	fromProse, err := ParseResponse(wrapped)
	require.NoError(t, err)

	fromBare, err := ParseResponse(minimalResponse)
	require.NoError(t, err)

	if diff := cmp.Diff(fromBare, fromProse); diff != "" {
		t.Errorf("prose-wrapped parse differs from bare parse (-bare +wrapped):\n%s", diff)
	}
}

func TestParseResponse_MarkdownFenced(t *testing.T) {
	fenced := "```json\n" + minimalResponse + "\n```"
	result, err := ParseResponse(fenced)
	require.NoError(t, err)
	assert.Equal(t, "x", result.Summary)
}

func TestParseResponse_FullResult(t *testing.T) {
	raw := `{
		"summary": "HTTP helper utilities",
		"functions": [
			{"name": "fetch", "signature": "fetch(url: str) -> bytes", "description": "Downloads a URL", "key_points": ["retries twice", "10s timeout"]}
		],
		"classes": [
			{"name": "Session", "description": "Reusable connection pool", "methods": ["get", "close"]}
		],
		"dependencies": [
			{"name": "requests", "purpose": "HTTP transport"}
		],
		"complexity": "MEDIUM"
	}`
	result, err := ParseResponse(raw)
	require.NoError(t, err)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, "fetch", result.Functions[0].Name)
	assert.Equal(t, []string{"retries twice", "10s timeout"}, result.Functions[0].KeyPoints)
	require.Len(t, result.Classes, 1)
	assert.Equal(t, []string{"get", "close"}, result.Classes[0].Methods)
	require.Len(t, result.Dependencies, 1)
	assert.Equal(t, ComplexityMedium, result.Complexity)
}

func TestParseResponse_MissingKeysDefaultEmpty(t *testing.T) {
	result, err := ParseResponse(`{"summary":"only a summary"}`)
	require.NoError(t, err)
	assert.Equal(t, "only a summary", result.Summary)
	assert.Empty(t, result.Functions)
	assert.Equal(t, ComplexityUnknown, result.Complexity)
}

func TestParseResponse_Malformed(t *testing.T) {
	_, err := ParseResponse(`{"summary": "unbalanced`)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Raw, "unbalanced")
}

func TestParseResponse_NoObjectAtAll(t *testing.T) {
	_, err := ParseResponse("I could not analyze this file, sorry.")
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParseResponse_DecoyThenValid(t *testing.T) {
	raw := "{this span is not JSON}\n" + minimalResponse
	result, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "x", result.Summary)
}

func TestNormalizeComplexity(t *testing.T) {
	assert.Equal(t, ComplexitySimple, NormalizeComplexity("Simple"))
	assert.Equal(t, ComplexityComplex, NormalizeComplexity(" COMPLEX "))
	assert.Equal(t, ComplexityUnknown, NormalizeComplexity("moderate"))
	assert.Equal(t, ComplexityUnknown, NormalizeComplexity(""))
}

func TestComplexityTitle(t *testing.T) {
	assert.Equal(t, "Simple", ComplexitySimple.Title())
	assert.Equal(t, "Unknown", Complexity("").Title())
}
