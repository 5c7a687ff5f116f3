package analyzer

// scanObjects returns every balanced top-level {...} span in s, in order.
// A small byte-level state machine tracks brace depth and skips over JSON
// string literals (including escapes) so braces inside strings don't count.
// Iterating bytes is safe for the ASCII delimiters involved: UTF-8 never
// encodes them inside a multi-byte sequence.
func scanObjects(s string) []string {
	var (
		spans    []string
		depth    int
		start    = -1
		inString bool
		escaped  bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue // stray closer before any opener
			}
			depth--
			if depth == 0 && start >= 0 {
				spans = append(spans, s[start:i+1])
				start = -1
			}
		}
	}

	return spans
}
