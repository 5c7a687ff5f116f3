package analyzer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned reply, recording the prompt it was given.
type stubClient struct {
	reply  string
	err    error
	prompt string
}

func (s *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func (s *stubClient) CompleteWithSystem(ctx context.Context, _, userPrompt string) (string, error) {
	return s.Complete(ctx, userPrompt)
}

func TestAnalyzer_Analyze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.py")
	require.NoError(t, os.WriteFile(path, []byte("print('hi')\n"), 0644))

	stub := &stubClient{reply: minimalResponse}
	a := New(stub, DepthDeep, nil)

	analysis, err := a.Analyze(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hello.py", analysis.Source.Name)
	assert.Equal(t, 1, analysis.Source.Lines)
	assert.Equal(t, "x", analysis.Result.Summary)
	assert.Contains(t, stub.prompt, "print('hi')")
}

func TestAnalyzer_FileErrorSkipsModelCall(t *testing.T) {
	stub := &stubClient{reply: minimalResponse}
	a := New(stub, DepthDeep, nil)

	_, err := a.Analyze(context.Background(), filepath.Join(t.TempDir(), "nope.py"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, stub.prompt)
}

func TestAnalyzer_ClientError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))

	wantErr := errors.New("connection refused")
	a := New(&stubClient{err: wantErr}, DepthDeep, nil)

	_, err := a.Analyze(context.Background(), path)
	assert.ErrorIs(t, err, wantErr)
}

func TestAnalyzer_UnparsableReply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))

	a := New(&stubClient{reply: "I have no JSON for you"}, DepthDeep, nil)

	_, err := a.Analyze(context.Background(), path)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}
