package board

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fr4nk3nst1ner/jobboard/internal/models"
)

// SortMode selects the ordering of the list view
type SortMode string

const (
	SortNone       SortMode = ""
	SortTitleAZ    SortMode = "title-az"
	SortTitleZA    SortMode = "title-za"
	SortTimeNewest SortMode = "time-newest"
	SortTimeOldest SortMode = "time-oldest"
)

// SortModes lists the selectable modes in display order
var SortModes = []SortMode{SortNone, SortTitleAZ, SortTitleZA, SortTimeNewest, SortTimeOldest}

// ParseSortMode maps unknown values to SortNone
func ParseSortMode(s string) SortMode {
	for _, m := range SortModes {
		if string(m) == s {
			return m
		}
	}
	return SortNone
}

// Label is the text shown in sort controls
func (m SortMode) Label() string {
	switch m {
	case SortTitleAZ:
		return "Title (A-Z)"
	case SortTitleZA:
		return "Title (Z-A)"
	case SortTimeNewest:
		return "Newest First"
	case SortTimeOldest:
		return "Oldest First"
	default:
		return "Sort By"
	}
}

// NewCollator builds a title collator for the given BCP 47 tag, falling back to English
func NewCollator(tag string) *collate.Collator {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return collate.New(t)
}

// SortJobs returns a sorted copy of jobs. Relative times are resolved once against now.
// A Collator is not safe for concurrent use; pass nil to get a fresh English one.
func SortJobs(jobs []models.JobRecord, mode SortMode, now time.Time, c *collate.Collator) []models.JobRecord {
	sorted := make([]models.JobRecord, len(jobs))
	copy(sorted, jobs)

	switch mode {
	case SortTitleAZ, SortTitleZA:
		if c == nil {
			c = collate.New(language.English)
		}
		desc := mode == SortTitleZA
		sort.SliceStable(sorted, func(i, j int) bool {
			cmp := c.CompareString(sorted[i].Title, sorted[j].Title)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortTimeNewest, SortTimeOldest:
		stamps := make([]time.Time, len(sorted))
		for i, job := range sorted {
			stamps[i] = ParseRelativeTimeAt(job.PostedTime, now)
		}
		newest := mode == SortTimeNewest
		sort.Stable(byTime{jobs: sorted, stamps: stamps, newest: newest})
	}
	return sorted
}

// byTime keeps the parsed stamps aligned with the jobs while sorting
type byTime struct {
	jobs   []models.JobRecord
	stamps []time.Time
	newest bool
}

func (b byTime) Len() int { return len(b.jobs) }

func (b byTime) Less(i, j int) bool {
	if b.newest {
		return b.stamps[i].After(b.stamps[j])
	}
	return b.stamps[i].Before(b.stamps[j])
}

func (b byTime) Swap(i, j int) {
	b.jobs[i], b.jobs[j] = b.jobs[j], b.jobs[i]
	b.stamps[i], b.stamps[j] = b.stamps[j], b.stamps[i]
}
