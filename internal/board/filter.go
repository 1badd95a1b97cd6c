package board

import "github.com/fr4nk3nst1ner/jobboard/internal/models"

// All is the synthetic option meaning "no constraint on this axis"
const All = "All"

// Axis names one of the three filter dimensions
type Axis string

const (
	AxisLevel Axis = "level"
	AxisType  Axis = "type"
	AxisSkill Axis = "skill"
)

// Axes lists the filter axes in display order
var Axes = []Axis{AxisLevel, AxisType, AxisSkill}

func (a Axis) value(job models.JobRecord) string {
	switch a {
	case AxisLevel:
		return job.Level
	case AxisType:
		return job.Type
	case AxisSkill:
		return job.Skill
	}
	return ""
}

// Options holds the choices offered by each filter control. Each list starts with All.
type Options struct {
	Levels []string `json:"levels"`
	Types  []string `json:"types"`
	Skills []string `json:"skills"`
}

// For returns the options of one axis
func (o Options) For(a Axis) []string {
	switch a {
	case AxisLevel:
		return o.Levels
	case AxisType:
		return o.Types
	case AxisSkill:
		return o.Skills
	}
	return nil
}

func (o Options) has(a Axis, value string) bool {
	for _, opt := range o.For(a) {
		if opt == value {
			return true
		}
	}
	return false
}

// DeriveOptions collects the distinct values of each axis in first-seen order
func DeriveOptions(jobs []models.JobRecord) Options {
	return Options{
		Levels: distinct(jobs, AxisLevel),
		Types:  distinct(jobs, AxisType),
		Skills: distinct(jobs, AxisSkill),
	}
}

func distinct(jobs []models.JobRecord, a Axis) []string {
	seen := make(map[string]bool)
	values := []string{All}
	for _, job := range jobs {
		v := a.value(job)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// Selection is the current value of every control
type Selection struct {
	Level string   `json:"level"`
	Type  string   `json:"type"`
	Skill string   `json:"skill"`
	Sort  SortMode `json:"sort"`
}

// DefaultSelection selects All on every axis with no sort
func DefaultSelection() Selection {
	return Selection{Level: All, Type: All, Skill: All}
}

// For returns the selected value of one axis
func (s Selection) For(a Axis) string {
	switch a {
	case AxisLevel:
		return s.Level
	case AxisType:
		return s.Type
	case AxisSkill:
		return s.Skill
	}
	return All
}

func (s *Selection) set(a Axis, value string) {
	switch a {
	case AxisLevel:
		s.Level = value
	case AxisType:
		s.Type = value
	case AxisSkill:
		s.Skill = value
	}
}

// FilterJobs keeps the jobs matching every axis exactly, or any value where All is selected
func FilterJobs(jobs []models.JobRecord, sel Selection) []models.JobRecord {
	filtered := make([]models.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, sel) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func matches(job models.JobRecord, sel Selection) bool {
	for _, a := range Axes {
		want := sel.For(a)
		if want != All && want != a.value(job) {
			return false
		}
	}
	return true
}
