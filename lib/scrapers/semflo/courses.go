package semflo

import (
	"net/url"
	"strings"

	"carnet-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// the portal styles its one data table inline with tailwind classes,
// this signature is the only reliable way to locate it
const tableSelector = "table.w-full.text-md.bg-white.shadow-md.rounded.mb-4"

type Course struct {
	Name    string
	Teacher string
	// absolute gradebook link, usually ending in a /pN period segment.
	// rewritten in place by the caller when the viewed period changes.
	GradebookUrl string
}

// Id identifies a course across period changes.
func (c Course) Id() string {
	return StripPeriod(c.GradebookUrl)
}

// ParseCourses extracts the course table from the course-list page.
// A missing table or malformed rows degrade to fewer results, never
// to an error: the upstream markup is not contractually stable.
func ParseCourses(html string, base *url.URL) []Course {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var courses []Course
	doc.Find(tableSelector).First().Find("tr").Each(func(i int, row *goquery.Selection) {
		// first row is the header
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		href, ok := cells.Eq(2).Find("a").First().Attr("href")
		if !ok {
			return
		}
		link, err := url.Parse(href)
		if err != nil {
			return
		}

		courses = append(courses, Course{
			Name:         htmlutil.CellText(cells, 0),
			Teacher:      htmlutil.CellText(cells, 1),
			GradebookUrl: base.ResolveReference(link).String(),
		})
	})

	return courses
}
