// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-formatter/internal/pipeline"
	"github.com/pdiddy/paper-formatter/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Format a manuscript and write docx/html artifacts",
	Long: `Render runs a manuscript through the pipeline and writes the formatted
document as artifacts. Use --kind to pick docx, html, or all.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
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

	kinds, err := kindsFromFlag(cmd)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, kind := range kinds {
		artifact, err := render.Render(res.After, kind)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outDir, base+"-formatted."+string(kind))
		if err := os.WriteFile(outPath, artifact, 0o644); err != nil {
			return fmt.Errorf("writing %s artifact: %w", kind, err)
		}
		fmt.Printf("Wrote %s\n", outPath)
	}

	fmt.Printf("Compliance score: %.2f\n", res.Compliance.Score)
	return nil
}

func kindsFromFlag(cmd *cobra.Command) ([]render.Kind, error) {
	kindFlag, _ := cmd.Flags().GetString("kind")
	if kindFlag == "all" {
		return render.Kinds(), nil
	}
	kind := render.Kind(kindFlag)
	for _, known := range render.Kinds() {
		if kind == known {
			return []render.Kind{kind}, nil
		}
	}
	return nil, fmt.Errorf("unsupported artifact kind %q: use docx, html, or all", kindFlag)
}

func init() {
	renderCmd.Flags().String("kind", "docx", "artifact kind: docx, html, or all")
	renderCmd.Flags().String("out", "", "output directory (default: alongside the input)")
	renderCmd.Flags().String("edits", "", "JSON file with author corrections (keywords, affiliation, section types)")
	renderCmd.Flags().Bool("no-correct", false, "skip grammar correction even when an API key is configured")
	renderCmd.Flags().Int("workers", 0, "concurrent correction calls (0 = default)")
	renderCmd.Flags().String("timeout", "", "per-call correction timeout, e.g. 30s")

	rootCmd.AddCommand(renderCmd)
}
