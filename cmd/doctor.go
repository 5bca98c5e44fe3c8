package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkurella/manimate/internal/llm"
	"github.com/nkurella/manimate/internal/renderer"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that manim and an LLM provider are usable",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		failed := false

		rendCfg, err := renderer.ConfigFromEnv()
		if err != nil {
			fmt.Printf("✗ renderer config: %v\n", err)
			failed = true
		} else {
			version, err := renderer.New(rendCfg).CheckVersion(ctx)
			if err != nil {
				fmt.Printf("✗ manim: %v\n", err)
				failed = true
			} else {
				fmt.Printf("✓ manim %s (>= %s)\n", version, renderer.MinManimVersion)
			}
		}

		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			fmt.Printf("✗ LLM provider: %v\n", err)
			failed = true
		} else {
			fmt.Printf("✓ LLM provider configured (%s)\n", provider.ModelID())
		}

		if failed {
			return fmt.Errorf("environment not ready")
		}
		return nil
	},
}
