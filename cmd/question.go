package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkurella/manimate/internal/engine"
	"github.com/nkurella/manimate/internal/llm"
	"github.com/nkurella/manimate/internal/qparse"
	"github.com/nkurella/manimate/internal/renderer"
	"github.com/nkurella/manimate/internal/store"
	"github.com/nkurella/manimate/internal/templates"
	"github.com/nkurella/manimate/internal/ui"
)

var questionCmd = &cobra.Command{
	Use:   "question <question>",
	Short: "Answer a math question through the deterministic template catalog",
	Long: `Parse a question (regex first, LLM classification as fallback), fill the
matching template, and render it. Templates are correct by construction,
so there is no repair loop.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuestion,
}

func init() {
	questionCmd.Flags().String("parser", "auto", "Parser strategy: auto, regex, llm")
	questionCmd.Flags().String("quality", "", "Render quality: l, m, h, p, k")
	questionCmd.Flags().StringP("output", "o", "", "Output file name (defaults to the scene name)")
	questionCmd.Flags().Bool("plain", false, "Disable the progress display")
}

func runQuestion(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	ctx := context.Background()

	rendCfg, err := renderer.ConfigFromEnv()
	if err != nil {
		return err
	}
	if q, _ := cmd.Flags().GetString("quality"); q != "" {
		quality, err := renderer.ParseQuality(q)
		if err != nil {
			return err
		}
		rendCfg.Quality = quality
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	registry := templates.NewDefaultRegistry()

	parserVal, _ := cmd.Flags().GetString("parser")
	parser, err := buildParser(ctx, parserVal, registry, st)
	if err != nil {
		return err
	}

	te := engine.NewTemplateEngine(parser, registry, renderer.New(rendCfg))

	outputName, _ := cmd.Flags().GetString("output")
	plain, _ := cmd.Flags().GetBool("plain")

	var res *engine.AnimationResult
	if plain {
		res, err = te.Animate(ctx, question, outputName)
	} else {
		res, err = ui.RunPipeline(func(onProgress engine.ProgressFunc) (*engine.AnimationResult, error) {
			te.OnProgress = onProgress
			return te.Animate(ctx, question, outputName)
		})
	}
	if err != nil {
		return err
	}

	recordAnimation(ctx, st, question, "template", res)
	return reportResult(res)
}

// buildParser assembles the parse strategy. "auto" tries the regex
// parser first and falls back to LLM classification; the single-name
// values pin one strategy.
func buildParser(ctx context.Context, strategy string, registry *templates.Registry, st *store.Store) (qparse.Parser, error) {
	switch strategy {
	case "regex":
		return qparse.NewRegexParser(registry), nil
	case "llm", "auto":
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			if strategy == "llm" {
				return nil, fmt.Errorf("LLM provider: %w", err)
			}
			// No provider configured: auto degrades to regex only.
			return qparse.NewRegexParser(registry), nil
		}
		llmParser := qparse.NewLLMParser(provider, registry)
		if strategy == "llm" {
			return llmParser, nil
		}
		return qparse.FirstMatch(qparse.NewRegexParser(registry), llmParser), nil
	default:
		return nil, fmt.Errorf("unknown parser strategy %q (expected auto, regex, or llm)", strategy)
	}
}
