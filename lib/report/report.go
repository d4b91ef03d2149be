// Package report lays out grade views as a text document. Page-level
// presentation (PDF drawing, charts) stays with the consumer; this
// produces the tabular content the document carries.
package report

import (
	"fmt"
	"io"
	"time"

	"carnet-backend/lib/gradebook"
	"carnet-backend/lib/textutil"

	"github.com/jedib0t/go-pretty/v6/table"
)

const maxTitleLength = 50

type Options struct {
	// "1", "2", "3" or "Total"
	Period      string
	User        string
	GeneratedAt time.Time
}

// Write renders one section per view to w.
func Write(w io.Writer, opts Options, views []gradebook.View) error {
	_, err := fmt.Fprintf(w, "Rapport de Notes\n")
	if err != nil {
		return err
	}
	if opts.User != "" {
		_, err = fmt.Fprintf(w, "Élève: %s\n", opts.User)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(
		w, "Période: %s - généré le %s\n",
		opts.Period,
		opts.GeneratedAt.Format("02/01/2006 15:04"),
	)
	if err != nil {
		return err
	}

	for _, view := range views {
		err = writeSection(w, view)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSection(w io.Writer, view gradebook.View) error {
	_, err := fmt.Fprintf(w, "\nCours: %s - %s\n", view.Course.Name, view.Course.Teacher)
	if err != nil {
		return err
	}

	if len(view.Entries) == 0 {
		_, err = fmt.Fprintln(w, "Aucune note disponible.")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Titre", "Note", "Pourcentage"})
	for _, entry := range view.Entries {
		t.AppendRow(entryRow(entry))
	}
	t.Render()

	if view.HasAverage {
		_, err = fmt.Fprintf(w, "Moyenne: %.1f%%\n", view.Average)
	} else {
		_, err = fmt.Fprintln(w, "Moyenne: -")
	}
	if err != nil {
		return err
	}

	if len(view.Cumulative) > 0 {
		err = writeCumulative(w, view.Cumulative)
	}
	return err
}

func entryRow(entry gradebook.Entry) table.Row {
	dateStr := ""
	if entry.HasDate() {
		dateStr = entry.Date.Format("02/01/2006")
	}

	noteStr := ""
	percentageStr := ""
	if entry.HasScore {
		noteStr = fmt.Sprintf("%v/%v", entry.Score, entry.MaxScore)
	}
	if entry.HasPercentage {
		percentageStr = fmt.Sprintf("%.1f%%", entry.Percentage)
	}

	title := textutil.Truncate(entry.Title, maxTitleLength)
	if entry.Ignored {
		title += " (ignorée)"
	}
	return table.Row{dateStr, title, noteStr, percentageStr}
}

func writeCumulative(w io.Writer, points []gradebook.CumulativePoint) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Note", "Moyenne cumulée"})
	for _, p := range points {
		t.AppendRow(table.Row{
			p.Date.Format("02/01/2006"),
			fmt.Sprintf("%.1f%%", p.Percentage),
			fmt.Sprintf("%.1f%%", p.RunningAverage),
		})
	}
	t.Render()
	return nil
}
