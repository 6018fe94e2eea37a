package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Computes the full relevance score for one resume/job pair, producing a RelevanceScore JSON with component breakdown, confidence, verdict, and narrative insights.",
	RunE:  runScore,
}

var (
	scoreResume string
	scoreJob    string
	scoreOutput string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to input ResumeData JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to input JobDescription JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output RelevanceScore JSON file (defaults to stdout)")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	components, err := buildComponents(cfg)
	if err != nil {
		return err
	}
	defer components.cleanup()

	resume, err := loadResume(scoreResume)
	if err != nil {
		return err
	}
	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}

	result := components.scorer.Evaluate(cmd.Context(), resume, job)

	if scoreOutput == "" {
		return printJSON(result)
	}
	if err := writeJSON(scoreOutput, result); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Scored %.1f/100 (%s) to %s\n", result.OverallScore, result.SuitabilityVerdict, scoreOutput)
	return nil
}
