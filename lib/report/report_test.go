package report

import (
	"strings"
	"testing"
	"time"

	"carnet-backend/lib/gradebook"
	"carnet-backend/lib/scrapers/semflo"
	"carnet-backend/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	course := semflo.Course{
		Name:         "Mathématiques",
		Teacher:      "M. Dupont",
		GradebookUrl: "https://appsemflo.be/carnet-de-notes/math-4a/p2",
	}
	entries := []semflo.GradeEntry{
		{
			Title:    "Interro chapitre 1",
			Date:     time.Date(2024, 9, 10, 0, 0, 0, 0, timezone.Location),
			Score:    8,
			MaxScore: 10,
			HasScore: true,
		},
		{
			Title:    "Devoir maison",
			Date:     time.Date(2024, 10, 1, 0, 0, 0, 0, timezone.Location),
			Score:    3,
			MaxScore: 10,
			HasScore: true,
		},
		{Title: "Examen de décembre"},
	}
	ignored := gradebook.IgnoreSet{
		gradebook.ExamKey(course.Id(), entries[1]): {},
	}
	view := gradebook.BuildView(course, entries, ignored)

	var buf strings.Builder
	err := Write(&buf, Options{
		Period:      "2",
		User:        "alice@example.com",
		GeneratedAt: time.Date(2024, 12, 20, 9, 30, 0, 0, timezone.Location),
	}, []gradebook.View{view})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Rapport de Notes")
	require.Contains(t, out, "Élève: alice@example.com")
	require.Contains(t, out, "Période: 2 - généré le 20/12/2024 09:30")
	require.Contains(t, out, "Cours: Mathématiques - M. Dupont")
	require.Contains(t, out, "Interro chapitre 1")
	require.Contains(t, out, "10/09/2024")
	require.Contains(t, out, "8/10")
	require.Contains(t, out, "80.0%")
	require.Contains(t, out, "Devoir maison (ignorée)")
	// the ignored entry drops out of the average
	require.Contains(t, out, "Moyenne: 80.0%")
	// cumulative table follows the entries
	require.Contains(t, out, "Moyenne cumulée")
}

func TestWriteEmptyCourse(t *testing.T) {
	view := gradebook.View{
		Course: semflo.Course{Name: "Latin", Teacher: "Mme Petit"},
	}

	var buf strings.Builder
	err := Write(&buf, Options{
		Period:      "Total",
		GeneratedAt: time.Date(2024, 12, 20, 9, 30, 0, 0, timezone.Location),
	}, []gradebook.View{view})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Cours: Latin - Mme Petit")
	require.Contains(t, out, "Aucune note disponible.")
	require.NotContains(t, out, "Élève:")
}

func TestWriteTruncatesLongTitles(t *testing.T) {
	course := semflo.Course{Name: "Histoire", Teacher: "M. Leroy"}
	long := strings.Repeat("chapitre ", 12)
	view := gradebook.BuildView(course, []semflo.GradeEntry{
		{Title: long, Score: 5, MaxScore: 10, HasScore: true},
	}, nil)

	var buf strings.Builder
	err := Write(&buf, Options{
		Period:      "1",
		GeneratedAt: time.Now(),
	}, []gradebook.View{view})
	require.NoError(t, err)

	require.NotContains(t, buf.String(), long)
	require.Contains(t, buf.String(), long[:maxTitleLength]+"...")
}
