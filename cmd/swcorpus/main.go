package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

func main() {
	root := &cobra.Command{
		Use:   "swcorpus",
		Short: "Synthesize SolidWorks API instruction-tuning corpora",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; explicit environment wins anyway.
			_ = godotenv.Load()

			verbose, _ := cmd.Flags().GetBool("verbose")
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newCompleteCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
