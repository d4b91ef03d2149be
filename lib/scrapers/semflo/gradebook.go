package semflo

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"carnet-backend/lib/htmlutil"
	"carnet-backend/lib/timezone"

	"github.com/PuerkitoBio/goquery"
)

const dateLayout = "02/01/2006"

type GradeEntry struct {
	Title string
	// zero when the source text did not parse as DD/MM/YYYY
	Date time.Time
	// Score and MaxScore are either both meaningful or both unset,
	// HasScore is the single source of truth for that
	Score    float64
	MaxScore float64
	HasScore bool
}

func (e GradeEntry) HasDate() bool {
	return !e.Date.IsZero()
}

// ParseDate parses the portal's DD/MM/YYYY date format, reporting
// false for anything else.
func ParseDate(s string) (time.Time, bool) {
	date, err := time.ParseInLocation(dateLayout, s, timezone.Location)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

var numberPattern = regexp.MustCompile(`[\d.]+`)

// scoresFromText pulls "8 / 10"-style cells apart. The cell is free
// text, so any substring of digits and dots counts: the first two
// parseable matches become score and max score. Fewer than two
// matches, or an unparsable match, leaves the pair unset.
func scoresFromText(text string) (score, maxScore float64, ok bool) {
	numbers := numberPattern.FindAllString(text, -1)
	if len(numbers) < 2 {
		return 0, 0, false
	}
	score, err := strconv.ParseFloat(numbers[0], 64)
	if err != nil {
		return 0, 0, false
	}
	maxScore, err = strconv.ParseFloat(numbers[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return score, maxScore, true
}

// ParseGradebook extracts grade entries from a gradebook page.
// Degradation is field-by-field: an unparsable date or score never
// drops the row, and a malformed row never aborts the rest.
func ParseGradebook(html string) []GradeEntry {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var entries []GradeEntry
	doc.Find(tableSelector).First().Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		entry := GradeEntry{
			Title: htmlutil.CellText(cells, 1),
		}
		if date, ok := ParseDate(htmlutil.CellText(cells, 2)); ok {
			entry.Date = date
		}
		if score, maxScore, ok := scoresFromText(htmlutil.CellText(cells, 3)); ok {
			entry.Score = score
			entry.MaxScore = maxScore
			entry.HasScore = true
		}

		entries = append(entries, entry)
	})

	return entries
}
