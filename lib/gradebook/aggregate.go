// Package gradebook computes grade statistics over scraped entries.
// Every function here is pure: callers merge fetched pages first and
// hand over the combined slice.
package gradebook

import (
	"fmt"
	"slices"
	"time"

	"carnet-backend/lib/scrapers/semflo"
)

type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// Classify buckets a percentage for presentation: below 50 is low,
// 80 and up is high.
func Classify(percentage float64) Band {
	if percentage < 50 {
		return BandLow
	}
	if percentage >= 80 {
		return BandHigh
	}
	return BandMid
}

// Percentage converts an entry's score to a 0-100 percentage.
// Entries without a score, and entries graded out of zero points
// (they do occur, ungraded placeholders), have no percentage.
func Percentage(e semflo.GradeEntry) (float64, bool) {
	if !e.HasScore || e.MaxScore == 0 {
		return 0, false
	}
	return e.Score / e.MaxScore * 100, true
}

// ExamKey derives the identifier under which an entry's "ignored"
// flag persists across reloads. courseId is the gradebook link
// without its period segment. Two entries sharing title and date
// within one course collide; known limitation.
func ExamKey(courseId string, e semflo.GradeEntry) string {
	dateStr := ""
	if e.HasDate() {
		dateStr = e.Date.Format("02/01/2006")
	}
	return fmt.Sprintf("%s_%s_%s", courseId, dateStr, e.Title)
}

// IgnoreSet is the set of ExamKeys excluded from every statistic.
type IgnoreSet map[string]struct{}

func (s IgnoreSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Average returns the mean percentage over entries that have one and
// are not ignored. ok is false when no entry qualifies.
func Average(courseId string, entries []semflo.GradeEntry, ignored IgnoreSet) (float64, bool) {
	total := 0.0
	count := 0
	for _, e := range entries {
		if ignored.Has(ExamKey(courseId, e)) {
			continue
		}
		pct, ok := Percentage(e)
		if !ok {
			continue
		}
		total += pct
		count++
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

type CumulativePoint struct {
	Date       time.Time
	Percentage float64
	// running mean of Percentage over this point and all before it
	RunningAverage float64
}

// CumulativeAverage produces the dated percentage series with its
// running mean, sorted ascending by date. Entries without a date or
// percentage, and ignored entries, are excluded from the series
// entirely rather than plotted at zero.
func CumulativeAverage(courseId string, entries []semflo.GradeEntry, ignored IgnoreSet) []CumulativePoint {
	var dated []semflo.GradeEntry
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		if ignored.Has(ExamKey(courseId, e)) {
			continue
		}
		if _, ok := Percentage(e); !ok {
			continue
		}
		dated = append(dated, e)
	}

	slices.SortStableFunc(dated, func(a, b semflo.GradeEntry) int {
		return a.Date.Compare(b.Date)
	})

	points := make([]CumulativePoint, len(dated))
	running := 0.0
	for i, e := range dated {
		pct, _ := Percentage(e)
		running += pct
		points[i] = CumulativePoint{
			Date:           e.Date,
			Percentage:     pct,
			RunningAverage: running / float64(i+1),
		}
	}
	return points
}
