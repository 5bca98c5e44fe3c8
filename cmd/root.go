package cmd

import (
	"github.com/nkurella/manimate/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "manimate",
	Short: "Generate math explainer animations with an LLM and Manim",
	Long: "Manimate turns a math topic or question into a rendered Manim animation,\n" +
		"either through an LLM generate-validate-repair pipeline or through a\n" +
		"deterministic template catalog for common question shapes.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MANIMATE_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(questionCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MANIMATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
