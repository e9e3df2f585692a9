package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/gen"
	"github.com/swsemantic/swcorpus/internal/pipeline"
)

func newStatsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report per-generator pair counts and duplicate instructions",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := pipeline.NewRegistry(gen.All(catalog.Default())...)
			res, err := reg.GenerateAll(cmd.Context(), pipeline.Options{Logger: logger})
			if err != nil {
				return err
			}

			if asJSON {
				b, err := pipeline.SummaryJSON(res)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), pipeline.SummaryMarkdown(res))
			}

			// Cross-generator duplicates are legal; surface them as
			// warnings so corpus curators can review overlap.
			dups := pipeline.Duplicates(res.Pairs)
			for _, d := range dups {
				logger.Warn("duplicate instruction",
					zap.String("instruction", d.Instruction),
					zap.Int("count", d.Count))
			}
			if len(dups) == 0 {
				logger.Info("no duplicate instructions")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the summary as JSON")
	return cmd
}
