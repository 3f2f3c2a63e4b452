// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-formatter/internal/pipeline"
	"github.com/pdiddy/paper-formatter/pkg/types"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Format a manuscript and write a compliance report",
	Long: `Format runs a manuscript (.docx, .md, or plain text) through the full
pipeline and writes a YAML report: detected issues, applied fixes, the
compliance score, and both document snapshots.

Grammar correction runs when a Gemini API key is configured via
.secrets/gemini-api-key or PAPER_FORMATTER_GEMINI_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manuscript: %w", err)
	}

	cfg := formatterConfig()
	applyCorrectionFlags(cmd, &cfg)

	edits, err := editsFromFlag(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	noCorrect, _ := cmd.Flags().GetBool("no-correct")
	corrector, closeCorrector, err := newCorrector(ctx, cfg, noCorrect)
	if err != nil {
		return err
	}
	defer closeCorrector()

	res, err := pipeline.New(cfg, corrector).Process(ctx, filepath.Base(path), data, edits)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	reportPath, _ := cmd.Flags().GetString("report")
	if reportPath == "" {
		base := strings.TrimSuffix(path, filepath.Ext(path))
		reportPath = base + "-report.yaml"
	}
	report, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(reportPath, report, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	printSummary(res, reportPath)
	return nil
}

func printSummary(res *types.Result, reportPath string) {
	fmt.Printf("Compliance score: %.2f\n", res.Compliance.Score)
	fmt.Printf("Sections: %d before, %d after\n",
		len(res.Before.Sections), len(res.After.Sections))
	fmt.Printf("Issues: %d\n", len(res.Issues))
	for _, issue := range res.Issues {
		fmt.Printf("  [%s] %s\n", issue.Severity, issue.Message)
	}
	fmt.Printf("Fixes applied: %d\n", len(res.Fixes))
	fmt.Printf("Report written to %s\n", reportPath)
}

func applyCorrectionFlags(cmd *cobra.Command, cfg *types.FormatterConfig) {
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Correction.Workers = workers
	}
	if timeout, _ := cmd.Flags().GetString("timeout"); timeout != "" {
		if d := durationOrZero(timeout); d > 0 {
			cfg.Correction.Timeout = d
		}
	}
}

// editsFromFlag loads author-provided corrections from --edits.
func editsFromFlag(cmd *cobra.Command) (*types.UserEdits, error) {
	editsPath, _ := cmd.Flags().GetString("edits")
	if editsPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(editsPath)
	if err != nil {
		return nil, fmt.Errorf("reading edits file: %w", err)
	}
	var edits types.UserEdits
	if err := json.Unmarshal(data, &edits); err != nil {
		return nil, fmt.Errorf("parsing edits file: %w", err)
	}
	return &edits, nil
}

func init() {
	formatCmd.Flags().String("report", "", "report output path (default: [file]-report.yaml)")
	formatCmd.Flags().String("edits", "", "JSON file with author corrections (keywords, affiliation, section types)")
	formatCmd.Flags().Bool("json", false, "print the full result as JSON instead of writing a report")
	formatCmd.Flags().Bool("no-correct", false, "skip grammar correction even when an API key is configured")
	formatCmd.Flags().Int("workers", 0, "concurrent correction calls (0 = default)")
	formatCmd.Flags().String("timeout", "", "per-call correction timeout, e.g. 30s")

	rootCmd.AddCommand(formatCmd)
}
