package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swsemantic/swcorpus/internal/backend"
)

func newCompleteCmd() *cobra.Command {
	var opts backend.Options
	cmd := &cobra.Command{
		Use:   "complete <instruction>",
		Short: "Generate SolidWorks C# code for an instruction via an LLM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instruction := strings.Join(args, " ")
			code, err := backend.GenerateCode(cmd.Context(), instruction, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Provider, "provider", "local", "LLM provider: anthropic, openai, google, local")
	cmd.Flags().StringVar(&opts.Model, "model", "qwen2.5-coder:7b", "model name")
	cmd.Flags().StringVar(&opts.Domain, "domain", "api", "system prompt domain: api, feature, gdt, sketch")
	cmd.Flags().IntVar(&opts.MaxTokens, "max-tokens", 1024, "completion token limit")
	cmd.Flags().Float64Var(&opts.Temperature, "temperature", 0.2, "sampling temperature")
	return cmd
}
