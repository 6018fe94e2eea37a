package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-relevance/internal/normalizer"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend skills for a target role",
	Long:  "Compares a candidate's current skills against the requirements of a target role and suggests representative skills from the categories the candidate does not cover.",
	RunE:  runRecommend,
}

var (
	recommendRole   string
	recommendSkills []string
	recommendOutput string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendRole, "role", "t", "", fmt.Sprintf("Target role, one of: %s (required)", strings.Join(normalizer.KnownRoles(), ", ")))
	recommendCmd.Flags().StringSliceVarP(&recommendSkills, "skills", "s", nil, "Current skills, comma separated")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output recommendations JSON file (defaults to stdout)")

	if err := recommendCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	components, err := buildComponents(cfg)
	if err != nil {
		return err
	}
	defer components.cleanup()

	result := components.normalizer.SkillRecommendations(recommendSkills, recommendRole)

	if recommendOutput == "" {
		return printJSON(result)
	}
	if err := writeJSON(recommendOutput, result); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote recommendations to %s\n", recommendOutput)
	return nil
}
