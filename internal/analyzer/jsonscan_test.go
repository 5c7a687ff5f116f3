package analyzer

import "testing"

func TestScanObjects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "bare object",
			input: `{"key": "value"}`,
			want:  []string{`{"key": "value"}`},
		},
		{
			name:  "surrounded by prose",
			input: `Here is the JSON: {"key": "value"} hope that helps`,
			want:  []string{`{"key": "value"}`},
		},
		{
			name:  "nested objects",
			input: `start {"a": {"b": "c"}} end`,
			want:  []string{`{"a": {"b": "c"}}`},
		},
		{
			name:  "two top-level objects",
			input: `{"id": 1} and {"id": 2}`,
			want:  []string{`{"id": 1}`, `{"id": 2}`},
		},
		{
			name:  "brace inside string",
			input: `{"key": "value with } inside"}`,
			want:  []string{`{"key": "value with } inside"}`},
		},
		{
			name:  "escaped quote inside string",
			input: `{"key": "value with \" inside"}`,
			want:  []string{`{"key": "value with \" inside"}`},
		},
		{
			name:  "escaped backslash before closing quote",
			input: `{"key": "value with \\ inside"}`,
			want:  []string{`{"key": "value with \\ inside"}`},
		},
		{
			name:  "unbalanced open",
			input: `prefix { never closed`,
			want:  nil,
		},
		{
			name:  "stray closer ignored",
			input: `} {"ok": true} {`,
			want:  []string{`{"ok": true}`},
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  []string{`{}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanObjects(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d spans, want %d", len(got), len(tt.want))
			}
			for i, span := range got {
				if span != tt.want[i] {
					t.Errorf("span[%d] = %q, want %q", i, span, tt.want[i])
				}
			}
		})
	}
}
