package commitmsg

import (
	"context"
	"fmt"
	"strings"

	"codelens/internal/llm"

	"go.uber.org/zap"
)

// maxDiffBytes caps how much diff is sent to the model. Diffs beyond the
// budget are cut at a line boundary with a marker.
const maxDiffBytes = 64 * 1024

// Generator produces a commit message for a staged diff.
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

const commitSystemPrompt = "You are a tool that writes git commit messages. " +
	"Reply with the commit message only: no preamble, no markdown, no quotes."

// Generate asks the model for a commit message describing diff.
func (g *Generator) Generate(ctx context.Context, diff string) (string, error) {
	trimmed := truncateDiff(diff)
	if trimmed != diff {
		g.logger.Debug("diff truncated for prompt",
			zap.Int("original_bytes", len(diff)),
			zap.Int("sent_bytes", len(trimmed)))
	}

	prompt := buildCommitPrompt(trimmed)
	reply, err := g.client.CompleteWithSystem(ctx, commitSystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	message := CleanMessage(reply)
	if message == "" {
		return "", fmt.Errorf("model returned an empty commit message")
	}
	return message, nil
}

func buildCommitPrompt(diff string) string {
	var b strings.Builder
	b.WriteString("Write a commit message for the following staged changes.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- First line: imperative mood, at most 72 characters\n")
	b.WriteString("- Optional body after a blank line explaining what and why\n")
	b.WriteString("- Describe the change, not the process of making it\n\n")
	b.WriteString("Diff:\n```\n")
	b.WriteString(diff)
	b.WriteString("\n```")
	return b.String()
}

// CleanMessage strips markdown fences and surrounding quotes from a model
// reply, leaving only the message text.
func CleanMessage(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// Drop a language tag on the opening fence.
		if idx := strings.IndexByte(s, '\n'); idx >= 0 && !strings.ContainsAny(s[:idx], " ") {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

func truncateDiff(diff string) string {
	if len(diff) <= maxDiffBytes {
		return diff
	}
	cut := diff[:maxDiffBytes]
	if idx := strings.LastIndexByte(cut, '\n'); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "\n[diff truncated]"
}
