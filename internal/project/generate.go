package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"codelens/internal/llm"

	"go.uber.org/zap"
)

// maxListedFiles caps the file listing in the prompt; the rest is elided.
const maxListedFiles = 30

// Generator produces a README.md for a scanned project.
type Generator struct {
	client llm.Client
	logger *zap.Logger
}

// NewGenerator creates a Generator. A nil logger is replaced by a no-op.
func NewGenerator(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, logger: logger}
}

// Generate asks the model for a README based on the scan results.
func (g *Generator) Generate(ctx context.Context, root, projType string, files []File, content string) (string, error) {
	prompt := buildReadmePrompt(root, projType, files, content)
	g.logger.Debug("generating README",
		zap.String("root", root),
		zap.String("type", projType),
		zap.Int("files", len(files)),
		zap.Int("prompt_len", len(prompt)))

	reply, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	readme := stripOuterFence(reply)
	if strings.TrimSpace(readme) == "" {
		return "", fmt.Errorf("model returned an empty README")
	}
	return readme, nil
}

func buildReadmePrompt(root, projType string, files []File, content string) string {
	projectName := filepath.Base(root)

	var list strings.Builder
	for i, f := range files {
		if i == maxListedFiles {
			fmt.Fprintf(&list, "- ... and %d more files\n", len(files)-maxListedFiles)
			break
		}
		fmt.Fprintf(&list, "- %s\n", f.Rel)
	}

	var b strings.Builder
	b.WriteString("Analyze this project and generate a professional README.md file.\n\n")
	fmt.Fprintf(&b, "Project name: %s\n", projectName)
	fmt.Fprintf(&b, "Project type: %s\n", projType)
	fmt.Fprintf(&b, "Total files: %d\n\n", len(files))
	b.WriteString("Key files:\n")
	b.WriteString(list.String())
	b.WriteString("\nFile contents:\n")
	b.WriteString(content)
	b.WriteString("\n\nGenerate a README.md with these sections (skip any that don't apply):\n\n")
	b.WriteString("1. Title and Description - project name as H1, one-paragraph description\n")
	b.WriteString("2. Features - bullet list of main capabilities\n")
	b.WriteString("3. Installation - how to install/set up, based on project type\n")
	b.WriteString("4. Usage - basic examples with code blocks\n")
	b.WriteString("5. Configuration - environment variables or config options if any\n")
	b.WriteString("6. API Reference - main functions, if it's a library\n")
	b.WriteString("7. Contributing - brief guidelines\n")
	b.WriteString("8. License - if detectable from files\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Be accurate: only include what's evident from the code\n")
	b.WriteString("- Include realistic examples based on actual code\n")
	b.WriteString("- Don't invent features that aren't in the code\n")
	b.WriteString("- Keep it concise but complete\n\n")
	b.WriteString("Output ONLY the README content in markdown format. No commentary.")
	return b.String()
}

// stripOuterFence removes a ```markdown fence wrapping the whole reply.
// Fences inside the README (usage examples) are left alone.
func stripOuterFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return trimmed
	}

	body := strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		tag := strings.TrimSpace(body[:idx])
		if tag == "" || tag == "md" || tag == "markdown" {
			body = body[idx+1:]
			body = strings.TrimSuffix(strings.TrimSpace(body), "```")
			return strings.TrimSpace(body)
		}
	}
	return trimmed
}
