package project

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultContentBudget caps the characters of file content embedded in the
// README prompt, to stay well inside the model context window.
const DefaultContentBudget = 80_000

// priorityFiles are read first: manifests and entry points say the most
// about a project.
var priorityFiles = []string{
	"README.md", "pyproject.toml", "package.json", "Cargo.toml", "go.mod",
	"setup.py", "requirements.txt", "main.py", "app.py", "index.js",
	"index.ts", "main.go", "lib.rs", "main.rs", "Dockerfile",
}

func priorityRank(name string) int {
	for i, p := range priorityFiles {
		if name == p {
			return i
		}
	}
	return len(priorityFiles) + 1000
}

// CollectContent reads files into fenced per-file sections under a character
// budget. Binary and unreadable files are skipped. If even the first file
// overflows the budget it is truncated rather than dropped, so the prompt is
// never empty.
func CollectContent(files []File, budget int) string {
	if budget <= 0 {
		budget = DefaultContentBudget
	}

	sorted := make([]File, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityRank(sorted[i].Name) < priorityRank(sorted[j].Name)
	})

	var sections []string
	total := 0
	included := 0

	for _, f := range sorted {
		data, err := os.ReadFile(f.Path)
		if err != nil || !utf8.Valid(data) {
			continue
		}

		section := fmt.Sprintf("### %s\n```\n%s\n```", f.Rel, string(data))
		if total+len(section) > budget {
			if included == 0 {
				remaining := budget - total - 100
				if remaining < 0 {
					remaining = 0
				}
				text := string(data)
				if len(text) > remaining {
					text = text[:remaining]
				}
				sections = append(sections, fmt.Sprintf("### %s\n```\n%s\n[TRUNCATED]\n```", f.Rel, text))
				included++
			}
			break
		}

		sections = append(sections, section)
		total += len(section)
		included++
	}

	return strings.Join(sections, "\n\n")
}
