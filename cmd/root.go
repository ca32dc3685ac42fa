package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roomctl",
	Short: "A CLI and TUI for finding free university classrooms",
	Long: `roomctl converts the classroom usage exports the campus portal hands out
(HTML pages mislabeled as .XLS) into real spreadsheets and answers
availability questions: is a room free right now, and which rooms on a
floor are free for the next couple of hours.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
