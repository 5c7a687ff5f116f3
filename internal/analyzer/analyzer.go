package analyzer

import (
	"context"
	"time"

	"codelens/internal/llm"

	"go.uber.org/zap"
)

// Analysis pairs the input source with the parsed model output.
type Analysis struct {
	Source *Source
	Result *AnalysisResult
}

// Analyzer runs the explain pipeline for one file at a time:
// read, prompt, complete, parse. Strictly sequential, no state carried
// between invocations.
type Analyzer struct {
	client llm.Client
	depth  Depth
	logger *zap.Logger
}

// New creates an Analyzer. A nil logger is replaced by a no-op logger.
func New(client llm.Client, depth Depth, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if depth == "" {
		depth = DepthDeep
	}
	return &Analyzer{client: client, depth: depth, logger: logger}
}

// Analyze reads path, asks the model for a structured analysis, and parses
// the reply. The only retry is the parser's JSON re-extraction fallback.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*Analysis, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeSource(ctx, src)
}

// AnalyzeSource runs the pipeline on an already validated source.
func (a *Analyzer) AnalyzeSource(ctx context.Context, src *Source) (*Analysis, error) {
	prompt := BuildPrompt(src, a.depth)
	a.logger.Debug("analyzing file",
		zap.String("path", src.Path),
		zap.Int("lines", src.Lines),
		zap.Int("prompt_len", len(prompt)))

	start := time.Now()
	reply, err := a.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("model replied",
		zap.String("path", src.Path),
		zap.Int("reply_len", len(reply)),
		zap.Duration("elapsed", time.Since(start)))

	result, err := ParseResponse(reply)
	if err != nil {
		return nil, err
	}

	return &Analysis{Source: src, Result: result}, nil
}
