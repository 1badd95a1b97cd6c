package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/jobboard/internal/models"
)

func TestDecodeJobs(t *testing.T) {
	data := []byte(`[
		{"Title":"Go Engineer","Posted":"2 hours ago","Type":"Full-time","Level":"Senior","Skill":"Go","Detail":"Backend work"},
		{"Title":"","Level":"Junior"},
		{"title":"lowercase keys are ignored"},
		{"Title":42,"Level":0,"Type":true,"Skill":false,"Detail":{"nested":1}},
		null,
		"just a string",
		7
	]`)

	jobs, err := DecodeJobs(data)
	require.NoError(t, err)
	require.Len(t, jobs, 7)

	assert.Equal(t, models.JobRecord{
		Title:      "Go Engineer",
		PostedTime: "2 hours ago",
		Type:       "Full-time",
		Level:      "Senior",
		Skill:      "Go",
		Detail:     "Backend work",
	}, jobs[0])

	assert.Equal(t, models.DefaultTitle, jobs[1].Title)
	assert.Equal(t, "Junior", jobs[1].Level)

	assert.Equal(t, models.DefaultTitle, jobs[2].Title)

	assert.Equal(t, "42", jobs[3].Title)
	assert.Equal(t, models.DefaultLevel, jobs[3].Level)
	assert.Equal(t, "true", jobs[3].Type)
	assert.Equal(t, models.DefaultSkill, jobs[3].Skill)
	assert.Equal(t, models.DefaultDetail, jobs[3].Detail)

	assert.Equal(t, models.InvalidJobRecord(), jobs[4])
	assert.Equal(t, models.RawJob{}.Normalize(), jobs[5])
	assert.Equal(t, models.RawJob{}.Normalize(), jobs[6])
}

func TestDecodeJobsFieldValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"repeated key keeps last", `[{"Title":"first","Title":"last"}]`, "last"},
		{"repeated key last empty", `[{"Title":"first","Title":""}]`, models.DefaultTitle},
		{"trailing zeros dropped", `[{"Title":1.50}]`, "1.5"},
		{"exponent expanded", `[{"Title":1e2}]`, "100"},
		{"negative number", `[{"Title":-3}]`, "-3"},
		{"escaped key", `[{"Tit\u006ce":"escaped"}]`, "escaped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := DecodeJobs([]byte(tt.data))
			require.NoError(t, err)
			require.Len(t, jobs, 1)
			assert.Equal(t, tt.want, jobs[0].Title)
		})
	}
}

func TestDecodeJobsFileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"object", `{}`, ErrInvalidShape},
		{"number", `12`, ErrInvalidShape},
		{"string", `"jobs"`, ErrInvalidShape},
		{"truncated", `[{"Title":"A"`, ErrMalformedJSON},
		{"empty file", ``, ErrMalformedJSON},
		{"not json", `Title: A`, ErrMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := DecodeJobs([]byte(tt.data))
			assert.Nil(t, jobs)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDecodeJobsEmptyArray(t *testing.T) {
	jobs, err := DecodeJobs([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestDecodeJobsByteOrderMark(t *testing.T) {
	jobs, err := DecodeJobs([]byte("\xef\xbb\xbf[{\"Title\":\"A\"}]"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "A", jobs[0].Title)
}
