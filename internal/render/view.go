// Package render projects a board snapshot into what the user sees. Project is pure;
// HTML and Terminal turn its result into markup or terminal output.
package render

import (
	"github.com/dustin/go-humanize"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
	"github.com/fr4nk3nst1ner/jobboard/internal/models"
)

// Screen modes of a View
const (
	ModeList   = "list"
	ModeDetail = "detail"
	ModeError  = "error"
)

const (
	NoMatchesMessage = "No jobs match the selected criteria."
	BackLabel        = "Back to Job List"
)

// Choice is one option of a select control
type Choice struct {
	Value    string
	Label    string
	Selected bool
}

// Control is a select control
type Control struct {
	Name    string
	Label   string
	Choices []Choice
}

// Row is one clickable entry of the list view. Index is its position in the visible list.
type Row struct {
	Index int
	Title string
}

// Field is a labelled value of the detail view
type Field struct {
	Label string
	Value string
}

// Detail is the single-job block
type Detail struct {
	Title  string
	Fields []Field
}

// View is everything a host needs to draw one screen
type View struct {
	Mode     string
	Source   string
	Showing  string
	Total    string
	Filters  []Control
	Sort     Control
	Rows     []Row
	Empty    string
	Detail   *Detail
	Error    string
	HasError bool
}

var axisLabels = map[board.Axis]string{
	board.AxisLevel: "Level",
	board.AxisType:  "Type",
	board.AxisSkill: "Skill",
}

// Project builds the view for a snapshot
func Project(snap board.Snapshot) View {
	v := View{
		Source:  snap.Source,
		Showing: humanize.Comma(int64(len(snap.Visible))),
		Total:   humanize.Comma(int64(snap.Total)),
		Sort:    sortControl(snap.Selection.Sort),
	}

	for _, a := range board.Axes {
		v.Filters = append(v.Filters, filterControl(a, snap.Options.For(a), snap.Selection.For(a)))
	}

	switch {
	case snap.Err != nil:
		v.Mode = ModeError
		v.HasError = true
		v.Error = snap.Err.Message()
	case snap.View == board.ViewDetail:
		v.Mode = ModeDetail
		v.Detail = DetailOf(snap.Detail)
	default:
		v.Mode = ModeList
		for i, job := range snap.Visible {
			v.Rows = append(v.Rows, Row{Index: i, Title: job.Title})
		}
		// nothing is shown until the first load
		if len(v.Rows) == 0 && (snap.Total > 0 || snap.Source != "") {
			v.Empty = NoMatchesMessage
		}
	}
	return v
}

// DetailOf lays out the labelled fields of a job
func DetailOf(job models.JobRecord) *Detail {
	return &Detail{
		Title: job.Title,
		Fields: []Field{
			{Label: "Posted Time", Value: job.PostedTime},
			{Label: "Type", Value: job.Type},
			{Label: "Level", Value: job.Level},
			{Label: "Skill", Value: job.Skill},
			{Label: "Details", Value: job.Detail},
		},
	}
}

func filterControl(a board.Axis, options []string, selected string) Control {
	c := Control{Name: string(a), Label: axisLabels[a]}
	for _, opt := range options {
		c.Choices = append(c.Choices, Choice{Value: opt, Label: opt, Selected: opt == selected})
	}
	return c
}

func sortControl(selected board.SortMode) Control {
	c := Control{Name: "sort", Label: "Sort"}
	for _, m := range board.SortModes {
		c.Choices = append(c.Choices, Choice{Value: string(m), Label: m.Label(), Selected: m == selected})
	}
	return c
}
