package cmd

import (
	"log"
	"os"

	"carnet-backend/lib/scrapers/semflo"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(coursesCmd)
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Prints the course list with teachers and current periods.",
	Run: func(cmd *cobra.Command, args []string) {
		courses, err := service.Courses(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Cours", "Enseignant", "Période"})
		for _, course := range courses {
			t.AppendRow(table.Row{
				course.Name,
				course.Teacher,
				semflo.ExtractPeriod(course.GradebookUrl),
			})
		}
		t.Render()
	},
}
