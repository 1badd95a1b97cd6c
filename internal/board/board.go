// Package board holds the job board state machine: loading a job file, deriving the
// filter controls, and producing the filtered and sorted list or a single job's detail.
package board

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ternarybob/arbor"

	"github.com/fr4nk3nst1ner/jobboard/internal/models"
)

// View is the screen currently shown
type View int

const (
	ViewList View = iota
	ViewDetail
)

func (v View) String() string {
	if v == ViewDetail {
		return "detail"
	}
	return "list"
}

// Board owns the loaded jobs and the state of every control.
// All transitions are serialized; file reads happen outside the lock.
type Board struct {
	mu sync.Mutex

	logger    arbor.ILogger
	now       func() time.Time
	maxBytes  int64
	collation string

	source    string
	jobs      []models.JobRecord
	options   Options
	selection Selection
	view      View
	detail    models.JobRecord
	loadErr   *LoadError
}

// Option configures a Board
type Option func(*Board)

// WithLogger sets the logger used for load events
func WithLogger(logger arbor.ILogger) Option {
	return func(b *Board) { b.logger = logger }
}

// WithClock overrides time.Now for relative time sorting
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithMaxBytes caps the size of a loaded file. Zero means no cap.
func WithMaxBytes(n int64) Option {
	return func(b *Board) { b.maxBytes = n }
}

// WithCollation sets the BCP 47 tag used to compare titles
func WithCollation(tag string) Option {
	return func(b *Board) { b.collation = tag }
}

// New creates an empty board in list view
func New(opts ...Option) *Board {
	b := &Board{
		logger:    arbor.NewNoOpLogger(),
		now:       time.Now,
		collation: "en",
		selection: DefaultSelection(),
		options:   DeriveOptions(nil),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ingest reads src and replaces the job list. On failure the board is left empty with
// the error shown inline, and the same *LoadError is returned.
func (b *Board) Ingest(ctx context.Context, src FileSource) error {
	if src == nil {
		return b.fail("", newLoadError(NoFileSelected, nil))
	}

	data, err := readSource(ctx, src, b.maxBytes)
	if err != nil {
		return b.fail(src.Name(), newLoadError(FileReadError, err))
	}

	jobs, err := DecodeJobs(data)
	if err != nil {
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			loadErr = newLoadError(MalformedJSON, err)
		}
		return b.fail(src.Name(), loadErr)
	}
	if len(jobs) == 0 {
		return b.fail(src.Name(), newLoadError(EmptyJobList, nil))
	}

	b.mu.Lock()
	b.source = src.Name()
	b.jobs = jobs
	b.options = DeriveOptions(jobs)
	b.selection = Selection{Level: All, Type: All, Skill: All, Sort: b.selection.Sort}
	b.view = ViewList
	b.loadErr = nil
	b.mu.Unlock()

	b.logger.Info().
		Str("source", src.Name()).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Int("jobs", len(jobs)).
		Msg("Job file loaded")
	return nil
}

func (b *Board) fail(source string, loadErr *LoadError) error {
	b.mu.Lock()
	b.source = source
	b.jobs = nil
	b.options = DeriveOptions(nil)
	b.selection = Selection{Level: All, Type: All, Skill: All, Sort: b.selection.Sort}
	b.view = ViewList
	b.loadErr = loadErr
	b.mu.Unlock()

	b.logger.Warn().
		Err(loadErr).
		Str("source", source).
		Str("kind", loadErr.Kind.String()).
		Msg("Job file rejected")
	return loadErr
}

// SetFilter changes one filter control. Empty means All.
func (b *Board) SetFilter(axis Axis, value string) error {
	if value == "" {
		value = All
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if value != All && !b.options.has(axis, value) {
		return fmt.Errorf("%s %q: %w", axis, value, ErrUnknownOption)
	}
	b.selection.set(axis, value)
	return nil
}

// SetSort changes the sort control
func (b *Board) SetSort(mode SortMode) {
	b.mu.Lock()
	b.selection.Sort = mode
	b.mu.Unlock()
}

// SelectJob opens the detail view for row i of the visible list
func (b *Board) SelectJob(i int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	visible := b.visibleLocked()
	if i < 0 || i >= len(visible) {
		return fmt.Errorf("row %d of %d: %w", i, len(visible), ErrNoSuchJob)
	}
	b.detail = visible[i]
	b.view = ViewDetail
	return nil
}

// Back returns to the list view
func (b *Board) Back() {
	b.mu.Lock()
	b.view = ViewList
	b.mu.Unlock()
}

// DismissError hides the inline load error
func (b *Board) DismissError() {
	b.mu.Lock()
	b.loadErr = nil
	b.mu.Unlock()
}

// Visible returns the current filtered and sorted list
func (b *Board) Visible() []models.JobRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visibleLocked()
}

func (b *Board) visibleLocked() []models.JobRecord {
	filtered := FilterJobs(b.jobs, b.selection)
	return SortJobs(filtered, b.selection.Sort, b.now(), NewCollator(b.collation))
}

// Snapshot is an immutable copy of the board for rendering
type Snapshot struct {
	Source    string
	View      View
	Options   Options
	Selection Selection
	Total     int
	Visible   []models.JobRecord
	Detail    models.JobRecord
	Err       *LoadError
}

// Snapshot captures the board. The visible list is recomputed from the full job list.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Snapshot{
		Source:    b.source,
		View:      b.view,
		Options:   b.options,
		Selection: b.selection,
		Total:     len(b.jobs),
		Visible:   b.visibleLocked(),
		Detail:    b.detail,
		Err:       b.loadErr,
	}
}
