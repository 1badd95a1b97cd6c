package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Terminal renders views as pterm output
type Terminal struct {
	w io.Writer
}

// NewTerminal writes to w
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Render prints the screen for v
func (t *Terminal) Render(v View) error {
	switch v.Mode {
	case ModeError:
		_, err := fmt.Fprint(t.w, pterm.Error.Sprintln(v.Error))
		return err
	case ModeDetail:
		return t.renderDetail(v.Detail)
	default:
		return t.renderList(v)
	}
}

func (t *Terminal) renderList(v View) error {
	fmt.Fprintf(t.w, "\nShowing %s of %s jobs%s\n\n", v.Showing, v.Total, selectionSummary(v))

	if v.Empty != "" {
		_, err := fmt.Fprint(t.w, pterm.Warning.Sprintln(v.Empty))
		return err
	}
	if len(v.Rows) == 0 {
		return nil
	}

	data := pterm.TableData{{"#", "Title"}}
	for _, row := range v.Rows {
		data = append(data, []string{strconv.Itoa(row.Index + 1), row.Title})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err = fmt.Fprintln(t.w, table)
	return err
}

func (t *Terminal) renderDetail(d *Detail) error {
	if d == nil {
		return nil
	}
	var body strings.Builder
	for i, f := range d.Fields {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(pterm.Bold.Sprint(f.Label+":") + " " + f.Value)
	}
	box := pterm.DefaultBox.WithTitle(pterm.LightGreen(d.Title)).Sprint(body.String())
	_, err := fmt.Fprintln(t.w, box)
	return err
}

// selectionSummary lists the non-default controls, e.g. " (level=Senior, sort=title-az)"
func selectionSummary(v View) string {
	var parts []string
	for _, c := range append(append([]Control{}, v.Filters...), v.Sort) {
		for _, choice := range c.Choices {
			if choice.Selected && choice.Value != "" && choice.Value != "All" {
				parts = append(parts, c.Name+"="+choice.Value)
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
