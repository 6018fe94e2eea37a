package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-relevance/internal/scorer"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank multiple resumes against a job description",
	Long:  "Scores every resume in a directory against one job description and produces a ranking sorted by overall relevance score, best candidate first.",
	RunE:  runRank,
}

var (
	rankResumeDir string
	rankJob       string
	rankOutput    string
	rankWorkers   int
)

func init() {
	rankCmd.Flags().StringVarP(&rankResumeDir, "resumes", "r", "", "Directory of ResumeData JSON files (required)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to input JobDescription JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranking JSON file (defaults to stdout)")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "Concurrent scoring workers (0 = one per CPU)")

	if err := rankCmd.MarkFlagRequired("resumes"); err != nil {
		panic(fmt.Sprintf("failed to mark resumes flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	components, err := buildComponents(cfg)
	if err != nil {
		return err
	}
	defer components.cleanup()

	candidates, err := loadCandidates(rankResumeDir)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no resume JSON files found in %s", rankResumeDir)
	}

	job, err := loadJob(rankJob)
	if err != nil {
		return err
	}

	ranked, err := components.scorer.RankCandidates(cmd.Context(), candidates, job, rankWorkers)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	if rankOutput == "" {
		return printJSON(ranked)
	}
	if err := writeJSON(rankOutput, ranked); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d candidates to %s\n", len(ranked), rankOutput)
	return nil
}

// loadCandidates reads every .json file in dir as a ResumeData, named by its
// file basename. Files are loaded in sorted order for stable behavior.
func loadCandidates(dir string) ([]scorer.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	candidates := make([]scorer.Candidate, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
		}
		var resume scorer.Candidate
		resume.Name = strings.TrimSuffix(name, ".json")
		if err := json.Unmarshal(data, &resume.Resume); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume JSON %s: %w", path, err)
		}
		candidates = append(candidates, resume)
	}
	return candidates, nil
}
