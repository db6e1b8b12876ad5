package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/request"
	"github.com/jonathan/resume-scorer/internal/scoring"
)

var (
	scoreConfig  string
	scoreVerbose bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <payload>",
	Short: "Score a resume against a job description",
	Long: `Score a resume against a job description. The payload is a single JSON
argument of the form {"resume_text": "...", "job_description": "..."}; the
report is printed to standard output as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to a scoring config JSON file (defaults to built-in tables)")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print a human-readable report to stderr")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	req, err := request.Parse([]byte(args[0]))
	if err != nil {
		return err
	}

	cfg, err := loadScoringConfig(scoreConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobURL != "" {
		jobDescription, err = fetch.JobDescription(ctx, req.JobURL, nil)
		if err != nil {
			return err
		}
	}

	report, err := scoring.New(cfg).Score(ctx, req.ResumeText, jobDescription)
	if err != nil {
		return err
	}

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintScoreReport(report)
		printer.PrintContactSignals(report.SearchAbilityDetails)
	}

	out, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
