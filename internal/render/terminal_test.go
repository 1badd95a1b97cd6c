package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
)

func init() {
	pterm.DisableStyling()
}

func TestTerminalList(t *testing.T) {
	b := loadedBoard(t)
	require.NoError(t, b.SetFilter(board.AxisLevel, "Senior"))

	var buf bytes.Buffer
	require.NoError(t, NewTerminal(&buf).Render(Project(b.Snapshot())))

	out := buf.String()
	assert.Contains(t, out, "Showing 1 of 2 jobs (level=Senior)")
	assert.Contains(t, out, "B")
	assert.NotContains(t, out, "Contract")
}

func TestTerminalEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTerminal(&buf).Render(Project(board.New().Snapshot())))
	assert.Contains(t, buf.String(), "Showing 0 of 0 jobs")
	assert.NotContains(t, buf.String(), NoMatchesMessage)

	b := loadedBoard(t)
	require.NoError(t, b.SetFilter(board.AxisLevel, "Junior"))
	require.NoError(t, b.SetFilter(board.AxisSkill, "Rust"))
	buf.Reset()
	require.NoError(t, NewTerminal(&buf).Render(Project(b.Snapshot())))
	assert.Contains(t, buf.String(), NoMatchesMessage)
}

func TestTerminalDetail(t *testing.T) {
	b := loadedBoard(t)
	require.NoError(t, b.SelectJob(0))

	var buf bytes.Buffer
	require.NoError(t, NewTerminal(&buf).Render(Project(b.Snapshot())))

	out := buf.String()
	for _, want := range []string{"Posted Time: 1 hour ago", "Type: Contract", "Level: Junior", "Skill: Go", "Details: First"} {
		assert.Contains(t, out, want)
	}
}

func TestTerminalError(t *testing.T) {
	b := board.New()
	require.Error(t, b.Ingest(context.Background(), nil))

	var buf bytes.Buffer
	require.NoError(t, NewTerminal(&buf).Render(Project(b.Snapshot())))
	assert.Contains(t, buf.String(), "No file selected. Please upload a valid JSON file.")
}
