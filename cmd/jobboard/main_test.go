package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
)

func TestParseSortFlag(t *testing.T) {
	tests := []struct {
		value   string
		want    board.SortMode
		wantErr bool
	}{
		{"", board.SortNone, false},
		{"title-az", board.SortTitleAZ, false},
		{"time-oldest", board.SortTimeOldest, false},
		{"newest", board.SortNone, true},
		{"TITLE-AZ", board.SortNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseSortFlag(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, board.ErrUnknownOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplySelection(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	data := []byte(`[{"Title":"A","Level":"Junior"},{"Title":"B","Level":"Senior"}]`)

	b := board.New(board.WithClock(func() time.Time { return now }))
	require.NoError(t, b.Ingest(context.Background(), board.BytesSource("jobs.json", data)))

	require.NoError(t, applySelection(b, "Senior", board.All, "", 1))
	snap := b.Snapshot()
	assert.Equal(t, board.ViewDetail, snap.View)
	assert.Equal(t, "B", snap.Detail.Title)

	assert.ErrorIs(t, applySelection(b, "Staff", board.All, board.All, 0), board.ErrUnknownOption)
	assert.ErrorIs(t, applySelection(b, board.All, board.All, board.All, 3), board.ErrNoSuchJob)
}
