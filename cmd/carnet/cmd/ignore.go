package cmd

import (
	"fmt"
	"log"
	"strings"

	"carnet-backend/lib/scrapers/semflo"
	"carnet-backend/lib/textutil"
	"carnet-backend/services/carnet"

	"github.com/spf13/cobra"
)

var flagIgnoreDate string

func init() {
	ignoreCmd.Flags().StringVar(&flagIgnoreDate, "date", "", "date of the exam (DD/MM/YYYY), to disambiguate repeated titles")
	rootCmd.AddCommand(ignoreCmd)
}

var ignoreCmd = &cobra.Command{
	Use:   "ignore <course> <title>",
	Short: "Toggles whether an exam counts towards the course statistics.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		courses, err := service.Courses(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}
		course, ok := carnet.MatchCourse(courses, args[0])
		if !ok {
			log.Fatalf("no course matching %q", args[0])
		}

		view, err := service.Gradebook(
			cmd.Context(), course,
			semflo.ExtractPeriod(course.GradebookUrl),
		)
		if err != nil {
			log.Fatal(err)
		}

		query := textutil.NormalizeName(args[1])
		for _, entry := range view.Entries {
			if !strings.Contains(textutil.NormalizeName(entry.Title), query) {
				continue
			}
			if flagIgnoreDate != "" {
				date, ok := semflo.ParseDate(flagIgnoreDate)
				if !ok || !entry.Date.Equal(date) {
					continue
				}
			}

			ignored, err := service.ToggleIgnore(cmd.Context(), course, entry.GradeEntry)
			if err != nil {
				log.Fatal(err)
			}
			if ignored {
				fmt.Printf("ignorée: %s\n", entry.Title)
			} else {
				fmt.Printf("incluse: %s\n", entry.Title)
			}
			return
		}

		log.Fatalf("no exam matching %q in %s", args[1], course.Name)
	},
}
