package analyzer

import (
	"fmt"
	"strings"
)

// Depth controls how much detail the analysis prompt asks for.
type Depth string

const (
	DepthShallow Depth = "shallow"
	DepthDeep    Depth = "deep"
)

// ParseDepth validates a depth flag value.
func ParseDepth(s string) (Depth, error) {
	switch Depth(s) {
	case DepthShallow, DepthDeep:
		return Depth(s), nil
	default:
		return "", fmt.Errorf("invalid depth %q (want shallow or deep)", s)
	}
}

const schemaBlock = `{
  "summary": "1-2 sentence overview of what this code does",
  "functions": [
    {
      "name": "function_name",
      "signature": "function_name(arg1: type, arg2: type) -> return_type",
      "description": "What the function does",
      "key_points": ["point 1", "point 2"]
    }
  ],
  "classes": [
    {
      "name": "TypeName",
      "description": "What the type represents",
      "methods": ["method1", "method2"]
    }
  ],
  "dependencies": [
    {
      "name": "module_name",
      "purpose": "What it's used for in this code"
    }
  ],
  "complexity": "simple | medium | complex"
}`

// BuildPrompt embeds the source into the fixed analysis instruction.
// Pure function of its inputs.
func BuildPrompt(src *Source, depth Depth) string {
	var b strings.Builder
	b.WriteString("Analyze this code file and respond with ONLY valid JSON (no other text).\n\n")
	b.WriteString("Use exactly this structure:\n")
	b.WriteString(schemaBlock)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- If there are no functions, use empty array: \"functions\": []\n")
	b.WriteString("- If there are no classes or types, use empty array: \"classes\": []\n")
	b.WriteString("- Only include actual imports in dependencies\n")
	b.WriteString("- Complexity: simple (<50 lines, straightforward), medium (50-200 lines or some complexity), complex (>200 lines or advanced patterns)\n")
	switch depth {
	case DepthShallow:
		b.WriteString("- Keep descriptions to one sentence and omit key_points\n")
	default:
		b.WriteString("- Include 2-4 key_points per function covering notable behavior and edge cases\n")
	}
	fmt.Fprintf(&b, "\nFilename: %s\n\nCode:\n```\n%s\n```\n\n", src.Name, src.Text)
	b.WriteString("Respond with ONLY the JSON object. No markdown, no explanation.")
	return b.String()
}
