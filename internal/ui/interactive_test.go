package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
)

func init() {
	pterm.DisableStyling()
}

const scenarioJSON = `[{"Title":"A","Posted":"1 hour ago","Level":"Junior"},{"Title":"B","Posted":"10 minutes ago","Level":"Senior"}]`

// scriptedPrompter answers prompts from a fixed script and records what was offered
type scriptedPrompter struct {
	answers []string
	offered [][]string
}

func (s *scriptedPrompter) next() (string, error) {
	if len(s.answers) == 0 {
		return "", errors.New("script exhausted")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Select(_ string, options []string) (string, error) {
	s.offered = append(s.offered, options)
	return s.next()
}

func (s *scriptedPrompter) Text(_ string) (string, error) {
	return s.next()
}

func newTestBoard(t *testing.T) *board.Board {
	t.Helper()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	return board.New(board.WithClock(func() time.Time { return now }))
}

func writeJobs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func titles(b *board.Board) []string {
	var out []string
	for _, job := range b.Visible() {
		out = append(out, job.Title)
	}
	return out
}

func TestInteractiveLoadFilterSort(t *testing.T) {
	b := newTestBoard(t)
	path := writeJobs(t, scenarioJSON)
	prompt := &scriptedPrompter{answers: []string{
		actionLoad, path,
		actionSort, board.SortTimeNewest.Label(),
		actionLevel, "Junior",
		actionQuit,
	}}

	var out bytes.Buffer
	require.NoError(t, NewInteractive(b, prompt, &out, nil).Run(context.Background()))

	assert.Equal(t, []string{"A"}, titles(b))
	snap := b.Snapshot()
	assert.Equal(t, board.SortTimeNewest, snap.Selection.Sort)
	assert.Equal(t, "Junior", snap.Selection.Level)
	assert.Contains(t, out.String(), "A")

	// before loading there is nothing to open
	assert.NotContains(t, prompt.offered[0], actionOpen)
	// after loading the level filter offers the derived options
	assert.Equal(t, []string{"All", "Junior", "Senior"}, prompt.offered[len(prompt.offered)-2])
}

func TestInteractiveOpenAndBack(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Ingest(context.Background(), board.BytesSource("jobs.json", []byte(scenarioJSON))))

	prompt := &scriptedPrompter{answers: []string{
		actionOpen, "2. B",
		actionQuit,
	}}
	var out bytes.Buffer
	require.NoError(t, NewInteractive(b, prompt, &out, nil).Run(context.Background()))

	snap := b.Snapshot()
	assert.Equal(t, board.ViewDetail, snap.View)
	assert.Equal(t, "B", snap.Detail.Title)
	assert.Contains(t, prompt.offered[2], "Back to Job List")

	prompt.answers = []string{"Back to Job List", actionQuit}
	require.NoError(t, NewInteractive(b, prompt, &out, nil).Run(context.Background()))
	assert.Equal(t, board.ViewList, b.Snapshot().View)
}

func TestInteractiveLoadErrorIsShownAndDismissed(t *testing.T) {
	b := newTestBoard(t)
	path := writeJobs(t, `{}`)
	prompt := &scriptedPrompter{answers: []string{
		actionLoad, path,
		actionDismiss,
		actionQuit,
	}}

	var out bytes.Buffer
	require.NoError(t, NewInteractive(b, prompt, &out, nil).Run(context.Background()))

	assert.Contains(t, out.String(), "Failed to process the JSON file. Ensure it contains valid job data.")
	assert.Equal(t, actionDismiss, prompt.offered[1][0])
	assert.Nil(t, b.Snapshot().Err)
}

func TestInteractiveEmptyPathIsNoFileSelected(t *testing.T) {
	b := newTestBoard(t)
	prompt := &scriptedPrompter{answers: []string{actionLoad, "  ", actionQuit}}

	var out bytes.Buffer
	require.NoError(t, NewInteractive(b, prompt, &out, nil).Run(context.Background()))

	err := b.Snapshot().Err
	require.NotNil(t, err)
	assert.ErrorIs(t, err, board.ErrNoFileSelected)
}

func TestInteractivePromptFailure(t *testing.T) {
	b := newTestBoard(t)
	err := NewInteractive(b, &scriptedPrompter{}, &bytes.Buffer{}, nil).Run(context.Background())
	assert.ErrorContains(t, err, "script exhausted")
}

func TestInteractiveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewInteractive(newTestBoard(t), &scriptedPrompter{}, &bytes.Buffer{}, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
