package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
	"github.com/fr4nk3nst1ner/jobboard/internal/render"
)

// Prompter asks the user for input
type Prompter interface {
	Select(title string, options []string) (string, error)
	Text(title string) (string, error)
}

// PtermPrompter prompts with pterm's interactive printers
type PtermPrompter struct{}

func (PtermPrompter) Select(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(title).
		WithOptions(options).
		WithMaxHeight(15).
		Show()
}

func (PtermPrompter) Text(title string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(title).Show()
}

const (
	actionOpen    = "Open job"
	actionLevel   = "Filter by level"
	actionType    = "Filter by type"
	actionSkill   = "Filter by skill"
	actionSort    = "Sort"
	actionLoad    = "Load file"
	actionDismiss = "Dismiss error"
	actionQuit    = "Quit"
)

var axisActions = map[string]board.Axis{
	actionLevel: board.AxisLevel,
	actionType:  board.AxisType,
	actionSkill: board.AxisSkill,
}

// Interactive drives a board from terminal prompts, rendering after every transition
type Interactive struct {
	board    *board.Board
	prompt   Prompter
	terminal *render.Terminal
	progress io.Writer
}

// NewInteractive renders to out and shows load progress on progress (nil disables it)
func NewInteractive(b *board.Board, prompt Prompter, out, progress io.Writer) *Interactive {
	return &Interactive{
		board:    b,
		prompt:   prompt,
		terminal: render.NewTerminal(out),
		progress: progress,
	}
}

// Run loops until the user quits or ctx is done
func (i *Interactive) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		view := render.Project(i.board.Snapshot())
		if err := i.terminal.Render(view); err != nil {
			return err
		}

		action, err := i.prompt.Select("Action", actions(view))
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}

		quit, err := i.apply(ctx, action, view)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func actions(v render.View) []string {
	var list []string
	switch v.Mode {
	case render.ModeError:
		list = append(list, actionDismiss)
	case render.ModeDetail:
		list = append(list, render.BackLabel)
	default:
		if len(v.Rows) > 0 {
			list = append(list, actionOpen)
		}
	}
	return append(list, actionLevel, actionType, actionSkill, actionSort, actionLoad, actionQuit)
}

func (i *Interactive) apply(ctx context.Context, action string, v render.View) (bool, error) {
	switch action {
	case actionQuit:
		return true, nil
	case actionDismiss:
		i.board.DismissError()
	case render.BackLabel:
		i.board.Back()
	case actionOpen:
		return false, i.open(v.Rows)
	case actionLevel, actionType, actionSkill:
		return false, i.filter(axisActions[action], v)
	case actionSort:
		return false, i.sort(v.Sort)
	case actionLoad:
		return false, i.load(ctx)
	}
	return false, nil
}

func (i *Interactive) open(rows []render.Row) error {
	labels := make([]string, len(rows))
	for n, row := range rows {
		labels[n] = fmt.Sprintf("%d. %s", row.Index+1, row.Title)
	}
	choice, err := i.prompt.Select("Job", labels)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	for n, label := range labels {
		if label == choice {
			return i.board.SelectJob(rows[n].Index)
		}
	}
	return nil
}

func (i *Interactive) filter(axis board.Axis, v render.View) error {
	var control render.Control
	for _, c := range v.Filters {
		if c.Name == string(axis) {
			control = c
		}
	}

	values := make([]string, len(control.Choices))
	for n, c := range control.Choices {
		values[n] = c.Value
	}
	choice, err := i.prompt.Select(control.Label, values)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	return i.board.SetFilter(axis, choice)
}

func (i *Interactive) sort(control render.Control) error {
	labels := make([]string, len(control.Choices))
	for n, c := range control.Choices {
		labels[n] = c.Label
	}
	choice, err := i.prompt.Select(control.Label, labels)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	for n, label := range labels {
		if label == choice {
			i.board.SetSort(board.ParseSortMode(control.Choices[n].Value))
		}
	}
	return nil
}

func (i *Interactive) load(ctx context.Context) error {
	path, err := i.prompt.Text("Path to job file")
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	var src board.FileSource
	if path = strings.TrimSpace(path); path != "" {
		src = board.OSFile(path)
		if i.progress != nil {
			src = WithProgress(src, i.progress)
		}
	}

	// Load errors are rendered on the next pass
	var loadErr *board.LoadError
	if err := i.board.Ingest(ctx, src); err != nil && !errors.As(err, &loadErr) {
		return err
	}
	return nil
}
