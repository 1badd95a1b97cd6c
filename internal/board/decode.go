package board

import (
	"bytes"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/fr4nk3nst1ner/jobboard/internal/models"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// DecodeJobs parses an uploaded file into normalized records.
// Individual elements never fail; only the file as a whole can.
func DecodeJobs(data []byte) ([]models.JobRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !gjson.ValidBytes(data) {
		return nil, newLoadError(MalformedJSON, nil)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, newLoadError(InvalidShape, nil)
	}

	jobs := []models.JobRecord{}
	root.ForEach(func(_, element gjson.Result) bool {
		jobs = append(jobs, decodeJob(element))
		return true
	})
	return jobs, nil
}

func decodeJob(element gjson.Result) models.JobRecord {
	switch {
	case element.Type == gjson.Null:
		return models.InvalidJobRecord()
	case !element.IsObject():
		return models.RawJob{}.Normalize()
	}

	return models.RawJob{
		Title:  field(element, "Title"),
		Posted: field(element, "Posted"),
		Type:   field(element, "Type"),
		Level:  field(element, "Level"),
		Skill:  field(element, "Skill"),
		Detail: field(element, "Detail"),
	}.Normalize()
}

// field reads one key, keeping only values that carry something displayable.
// A key repeated within an object resolves to its last occurrence.
func field(obj gjson.Result, key string) *string {
	var v gjson.Result
	obj.ForEach(func(k, value gjson.Result) bool {
		if k.Str == key {
			v = value
		}
		return true
	})

	var s string
	switch v.Type {
	case gjson.String:
		s = v.Str
	case gjson.Number:
		if v.Num != 0 {
			s = strconv.FormatFloat(v.Num, 'f', -1, 64)
		}
	case gjson.True:
		s = "true"
	}
	if s == "" {
		return nil
	}
	return &s
}
