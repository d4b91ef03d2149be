package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"carnet-backend/lib/gradebook"
	"carnet-backend/lib/report"
	"carnet-backend/lib/timezone"

	"github.com/spf13/cobra"
)

var (
	flagReportPeriod string
	flagReportOut    string
)

func init() {
	reportCmd.Flags().StringVar(&flagReportPeriod, "period", "Total", `grading period to report on: "1", "2", "3" or "Total"`)
	reportCmd.Flags().StringVarP(&flagReportOut, "out", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Assembles a grade report over every course.",
	Run: func(cmd *cobra.Command, args []string) {
		total := flagReportPeriod == "Total"
		var period int
		if !total {
			var err error
			period, err = strconv.Atoi(flagReportPeriod)
			if err != nil {
				log.Fatalf(`invalid period %q: want "1", "2", "3" or "Total"`, flagReportPeriod)
			}
		}

		courses, err := service.Courses(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		var views []gradebook.View
		for _, course := range courses {
			var view gradebook.View
			if total {
				view, err = service.TotalGradebook(cmd.Context(), course)
			} else {
				view, err = service.Gradebook(cmd.Context(), course, period)
			}
			if err != nil {
				log.Fatal(err)
			}
			views = append(views, view)
		}

		out := os.Stdout
		if flagReportOut != "" {
			out, err = os.Create(flagReportOut)
			if err != nil {
				log.Fatal(err)
			}
			defer out.Close()
		}

		err = report.Write(out, report.Options{
			Period:      flagReportPeriod,
			User:        flagEmail,
			GeneratedAt: timezone.Now(),
		}, views)
		if err != nil {
			log.Fatal(err)
		}
		if flagReportOut != "" {
			fmt.Printf("rapport écrit dans %s\n", flagReportOut)
		}
	},
}
