package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skinscreen/screenreport/internal/config"
	"github.com/skinscreen/screenreport/internal/exitcode"
)

var cfg config.Config

var keywordsFile string

var rootCmd = &cobra.Command{
	Use:   "screenreport",
	Short: "Mobile skin-screening program reporting tool",
	Long: "Joins mobile clinic EHR exports with county and medically-underserved-area " +
		"references, classifies diagnoses into the lesion taxonomy, and writes the " +
		"program report tables.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&keywordsFile, "keywords", "", "YAML file with the diagnosis keyword list (defaults to the built-in skin-lesion list)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
