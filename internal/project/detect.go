package project

// Marker config files checked in order; the first hit decides the type.
var typeMarkers = []struct {
	filename string
	projType string
}{
	{"go.mod", "Go"},
	{"Cargo.toml", "Rust"},
	{"pyproject.toml", "Python"},
	{"setup.py", "Python"},
	{"requirements.txt", "Python"},
	{"pom.xml", "Java"},
	{"build.gradle", "Java"},
	{"package.json", "JavaScript/Node.js"},
}

var extToLang = map[string]string{
	".py": "Python", ".js": "JavaScript", ".ts": "TypeScript", ".tsx": "TypeScript",
	".go": "Go", ".rs": "Rust", ".java": "Java", ".rb": "Ruby", ".php": "PHP",
	".c": "C", ".cpp": "C++", ".cs": "C#", ".swift": "Swift", ".kt": "Kotlin",
}

// DetectType guesses the project's primary language. Config-file markers are
// checked first (most reliable), then the dominant code extension.
func DetectType(files []File) string {
	names := make(map[string]bool, len(files))
	hasTypeScript := false
	for _, f := range files {
		names[f.Name] = true
		if f.Ext == ".ts" || f.Ext == ".tsx" {
			hasTypeScript = true
		}
	}

	for _, m := range typeMarkers {
		if !names[m.filename] {
			continue
		}
		if m.filename == "package.json" && hasTypeScript {
			return "TypeScript/Node.js"
		}
		return m.projType
	}

	counts := make(map[string]int)
	for _, f := range files {
		if codeExtensions[f.Ext] {
			counts[f.Ext]++
		}
	}
	dominant, best := "", 0
	for ext, n := range counts {
		if n > best {
			dominant, best = ext, n
		}
	}
	if lang, ok := extToLang[dominant]; ok {
		return lang
	}
	return "Unknown"
}
