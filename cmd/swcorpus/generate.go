package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/export"
	"github.com/swsemantic/swcorpus/internal/gen"
	"github.com/swsemantic/swcorpus/internal/pipeline"
)

func newGenerateCmd() *cobra.Command {
	var (
		outputDir string
		format    string
		parallel  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run every generator and export the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "alpaca" && format != "jsonl" && format != "both" {
				return fmt.Errorf("invalid --format %q (valid: alpaca, jsonl, both)", format)
			}

			reg := pipeline.NewRegistry(gen.All(catalog.Default())...)
			res, err := reg.GenerateAll(cmd.Context(), pipeline.Options{
				Parallel: parallel,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			if format == "alpaca" || format == "both" {
				if err := writeFile(filepath.Join(outputDir, "corpus_alpaca.json"), res, export.WriteAlpaca); err != nil {
					return err
				}
			}
			if format == "jsonl" || format == "both" {
				if err := writeFile(filepath.Join(outputDir, "corpus.jsonl"), res, export.WriteJSONL); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), pipeline.SummaryMarkdown(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "out", "directory for exported corpus files")
	cmd.Flags().StringVarP(&format, "format", "f", "both", "export format: alpaca, jsonl, or both")
	cmd.Flags().BoolVarP(&parallel, "parallel", "p", false, "run generators concurrently")
	return cmd
}

func writeFile(path string, res *pipeline.Result, write func(w io.Writer, pairs []corpus.Pair) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f, res.Pairs); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	logger.Info("corpus written",
		zap.String("path", path),
		zap.Int("pairs", res.Total()))
	return nil
}
