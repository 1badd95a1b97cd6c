package ui

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
)

type unsizedSource struct{}

func (unsizedSource) Name() string { return "stdin" }

func (unsizedSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader([]byte(scenarioJSON))), nil
}

func TestWithProgressReadsThrough(t *testing.T) {
	var out bytes.Buffer
	src := WithProgress(board.BytesSource("jobs.json", []byte(scenarioJSON)), &out)
	assert.Equal(t, "jobs.json", src.Name())

	rc, err := src.Open()
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, scenarioJSON, string(data))

	b := newTestBoard(t)
	require.NoError(t, b.Ingest(context.Background(), WithProgress(board.BytesSource("jobs.json", []byte(scenarioJSON)), &out)))
	assert.Equal(t, 2, b.Snapshot().Total)
}

func TestWithProgressPassThrough(t *testing.T) {
	assert.Nil(t, WithProgress(nil, &bytes.Buffer{}))

	src := unsizedSource{}
	assert.Equal(t, src, WithProgress(src, &bytes.Buffer{}))

	empty := board.BytesSource("empty.json", nil)
	assert.Equal(t, empty, WithProgress(empty, &bytes.Buffer{}))
}

func TestFormatURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", FormatURL("http://localhost:8080", false))
	assert.Equal(t, "\033]8;;http://localhost:8080\ahttp://localhost:8080\033]8;;\a", FormatURL("http://localhost:8080", true))
}
