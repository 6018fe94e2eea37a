package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize-skills [skills...]",
	Short: "Normalize skill names against the taxonomy",
	Long:  "Maps raw skill strings to canonical taxonomy names with categories and match confidence, using exact synonym lookup and fuzzy matching.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalize,
}

var (
	normalizeCerts  bool
	normalizeOutput string
)

func init() {
	normalizeCmd.Flags().BoolVar(&normalizeCerts, "certifications", false, "Treat inputs as certification names")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "out", "o", "", "Path to output analysis JSON file (defaults to stdout)")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	components, err := buildComponents(cfg)
	if err != nil {
		return err
	}
	defer components.cleanup()

	var result any
	if normalizeCerts {
		result = components.normalizer.NormalizeCertificationList(args)
	} else {
		result = components.normalizer.NormalizeSkillList(args)
	}

	if normalizeOutput == "" {
		return printJSON(result)
	}
	if err := writeJSON(normalizeOutput, result); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully normalized %d entries to %s\n", len(args), normalizeOutput)
	return nil
}
