package models

// Defaults applied when a posting omits a field
const (
	DefaultTitle      = "No Title Provided"
	DefaultPostedTime = "Unknown Time"
	DefaultType       = "Unknown Type"
	DefaultLevel      = "Unknown Level"
	DefaultSkill      = "Unknown Skill"
	DefaultDetail     = "No Details Available"

	// InvalidTitle marks a posting that could not be read at all
	InvalidTitle = "Invalid Job Data"
)

// JobRecord represents one normalized job posting. Every field is non-empty.
type JobRecord struct {
	Title      string `json:"title"`
	PostedTime string `json:"posted_time"`
	Type       string `json:"type"`
	Level      string `json:"level"`
	Skill      string `json:"skill"`
	Detail     string `json:"detail"`
}

// RawJob is a posting as found in the uploaded file, before defaults are applied.
// A nil field means the key was missing or carried no usable value.
type RawJob struct {
	Title  *string
	Posted *string
	Type   *string
	Level  *string
	Skill  *string
	Detail *string
}

// Normalize maps the partial record to a fully populated JobRecord
func (r RawJob) Normalize() JobRecord {
	return JobRecord{
		Title:      orDefault(r.Title, DefaultTitle),
		PostedTime: orDefault(r.Posted, DefaultPostedTime),
		Type:       orDefault(r.Type, DefaultType),
		Level:      orDefault(r.Level, DefaultLevel),
		Skill:      orDefault(r.Skill, DefaultSkill),
		Detail:     orDefault(r.Detail, DefaultDetail),
	}
}

// InvalidJobRecord returns the record used for postings that could not be read
func InvalidJobRecord() JobRecord {
	rec := RawJob{}.Normalize()
	rec.Title = InvalidTitle
	return rec
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
