package cmd

import (
	"fmt"
	"log"
	"os"

	"carnet-backend/lib/gradebook"
	"carnet-backend/lib/scrapers/semflo"
	"carnet-backend/lib/textutil"
	"carnet-backend/services/carnet"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	flagPeriod int
	flagTotal  bool
)

func init() {
	gradesCmd.Flags().IntVarP(&flagPeriod, "period", "p", 0, "grading period to view (defaults to the course's current one)")
	gradesCmd.Flags().BoolVar(&flagTotal, "total", false, "merge periods 1-3 into one view")
	rootCmd.AddCommand(gradesCmd)
}

var gradesCmd = &cobra.Command{
	Use:   "grades <course>",
	Short: "Prints the gradebook of the course best matching the given name.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		view, err := fetchView(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		renderView(view)
	},
}

func fetchView(cmd *cobra.Command, query string) (gradebook.View, error) {
	courses, err := service.Courses(cmd.Context())
	if err != nil {
		return gradebook.View{}, err
	}
	course, ok := carnet.MatchCourse(courses, query)
	if !ok {
		return gradebook.View{}, fmt.Errorf("no course matching %q", query)
	}

	if flagTotal {
		return service.TotalGradebook(cmd.Context(), course)
	}
	period := flagPeriod
	if period == 0 {
		period = semflo.ExtractPeriod(course.GradebookUrl)
	}
	return service.Gradebook(cmd.Context(), course, period)
}

func renderView(view gradebook.View) {
	if view.Total {
		fmt.Printf("%s - %s (Total)\n", view.Course.Name, view.Course.Teacher)
	} else {
		fmt.Printf("%s - %s (Période %d)\n", view.Course.Name, view.Course.Teacher, view.Period)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Titre", "Date", "Note", "Pourcentage"})
	for _, entry := range view.Entries {
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

		title := textutil.Truncate(entry.Title, 30)
		row := table.Row{title, dateStr, noteStr, percentageStr}
		switch {
		case entry.Ignored:
			row[0] = text.FgHiBlack.Sprint(title) + " (ignorée)"
		case entry.HasPercentage && entry.Band == gradebook.BandLow:
			row[3] = text.FgRed.Sprint(percentageStr)
		case entry.HasPercentage && entry.Band == gradebook.BandHigh:
			row[3] = text.FgGreen.Sprint(percentageStr)
		}
		t.AppendRow(row)
	}
	t.Render()

	if view.HasAverage {
		fmt.Printf("Moyenne actuelle : %.1f%%\n", view.Average)
	} else {
		fmt.Println("Moyenne actuelle : -")
	}

	for _, p := range view.Cumulative {
		fmt.Printf(
			"%s  note %.1f%%  moyenne cumulée %.1f%%\n",
			p.Date.Format("02/01/2006"), p.Percentage, p.RunningAverage,
		)
	}
}
