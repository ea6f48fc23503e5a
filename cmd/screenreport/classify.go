package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skinscreen/screenreport/internal/classify"
	"github.com/skinscreen/screenreport/internal/model"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [diagnosis]...",
	Short: "Classify diagnosis strings for triage spot checks",
	Long: "Prints the lesion category and report group for each diagnosis given as " +
		"an argument, or read line by line from stdin when no arguments are given.",
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	diagnoses := args
	if len(diagnoses) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			diagnoses = append(diagnoses, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	for _, d := range diagnoses {
		cat := classify.Categorize(d)
		fmt.Printf("%s\t%s\t%s\n", d, cat, model.GroupFor(cat))
	}
	return nil
}
