package gradebook

import (
	"carnet-backend/lib/scrapers/semflo"
)

// Entry is a grade entry decorated with everything the presentation
// layer renders: its persistence key, percentage, band and ignored
// state.
type Entry struct {
	semflo.GradeEntry

	Key           string
	Percentage    float64
	HasPercentage bool
	Band          Band
	Ignored       bool
}

type View struct {
	Course semflo.Course
	// 0 when Total is set
	Period  int
	Total   bool
	Entries []Entry

	Average    float64
	HasAverage bool
	Cumulative []CumulativePoint
}

// BuildView aggregates parsed entries into the fully decorated view.
// Pure: callers merge multi-period fetches before handing them over.
func BuildView(course semflo.Course, entries []semflo.GradeEntry, ignored IgnoreSet) View {
	courseId := course.Id()

	view := View{
		Course:  course,
		Entries: make([]Entry, len(entries)),
	}
	for i, e := range entries {
		entry := Entry{
			GradeEntry: e,
			Key:        ExamKey(courseId, e),
		}
		entry.Ignored = ignored.Has(entry.Key)
		if pct, ok := Percentage(e); ok {
			entry.Percentage = pct
			entry.HasPercentage = true
			entry.Band = Classify(pct)
		}
		view.Entries[i] = entry
	}

	view.Average, view.HasAverage = Average(courseId, entries, ignored)
	view.Cumulative = CumulativeAverage(courseId, entries, ignored)
	return view
}
