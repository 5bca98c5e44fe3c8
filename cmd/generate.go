package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkurella/manimate/internal/codegen"
	"github.com/nkurella/manimate/internal/engine"
	"github.com/nkurella/manimate/internal/llm"
	"github.com/nkurella/manimate/internal/personalize"
	"github.com/nkurella/manimate/internal/renderer"
	"github.com/nkurella/manimate/internal/store"
	"github.com/nkurella/manimate/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate an animation for a math topic through the LLM pipeline",
	Long: `Generate Manim scene code for a topic, validate it, render it, and
repair render failures automatically up to the retry budget.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("audience", "middle", "Audience level: elementary, middle, high, college")
	generateCmd.Flags().String("style", "clean", "Visual style: clean, chalkboard, playful")
	generateCmd.Flags().String("requirements", "", "Extra free-text guidance for the animation")
	generateCmd.Flags().StringSlice("interests", nil, "Student interests for personalized framing")
	generateCmd.Flags().String("name", "", "Student name the animation may address")
	generateCmd.Flags().String("quality", "", "Render quality: l, m, h, p, k")
	generateCmd.Flags().StringP("output", "o", "", "Output file name (defaults to the scene name)")
	generateCmd.Flags().Bool("plain", false, "Disable the progress display")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")
	ctx := context.Background()

	audienceVal, _ := cmd.Flags().GetString("audience")
	audience, err := codegen.ParseAudience(audienceVal)
	if err != nil {
		return err
	}

	styleVal, _ := cmd.Flags().GetString("style")
	style, err := codegen.ParseStyle(styleVal)
	if err != nil {
		return err
	}

	interests, _ := cmd.Flags().GetStringSlice("interests")
	personalCtx, err := personalize.Context(interests)
	if err != nil {
		return err
	}

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

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	genCfg := codegen.DefaultConfig()
	genCfg.Style = style

	name, _ := cmd.Flags().GetString("name")
	requirements, _ := cmd.Flags().GetString("requirements")
	req := codegen.Request{
		Topic:           topic,
		Requirements:    requirements,
		Audience:        audience,
		PersonalContext: personalCtx,
		StudentName:     name,
	}

	eng := engine.New(
		codegen.New(provider, genCfg),
		renderer.New(rendCfg),
		engine.DefaultConfig(),
	)

	outputName, _ := cmd.Flags().GetString("output")
	plain, _ := cmd.Flags().GetBool("plain")

	var res *engine.AnimationResult
	if plain {
		eng.OnProgress = func(stage engine.Stage, attempt int) {
			fmt.Printf("%s (attempt %d)\n", stage, attempt)
		}
		res, err = eng.Animate(ctx, req, outputName)
	} else {
		res, err = ui.RunPipeline(func(onProgress engine.ProgressFunc) (*engine.AnimationResult, error) {
			eng.OnProgress = onProgress
			return eng.Animate(ctx, req, outputName)
		})
	}
	if err != nil {
		return err
	}

	recordAnimation(ctx, st, topic, "llm", res)
	return reportResult(res)
}

// openStore opens the event database for the current command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// recordAnimation appends the run to history. Recording failures are
// reported but never mask the pipeline outcome.
func recordAnimation(ctx context.Context, st *store.Store, topic, kind string, res *engine.AnimationResult) {
	err := st.AnimationRepo().AppendAnimation(ctx, store.AnimationEventData{
		Topic:              topic,
		Kind:               kind,
		Success:            res.Success,
		SceneName:          res.SceneName,
		OutputPath:         res.OutputPath,
		GenerationAttempts: res.GenerationAttempts,
		RenderAttempts:     res.RenderAttempts,
		TotalAttempts:      res.TotalAttempts,
		RenderSeconds:      res.RenderSeconds,
		ErrorMessage:       res.ErrorMessage,
		Code:               res.Code,
	})
	if err != nil {
		fmt.Printf("warning: failed to record run: %v\n", err)
	}
}

// reportResult prints the final outcome. Failures exit non-zero but
// still show the last known code location via history.
func reportResult(res *engine.AnimationResult) error {
	if res.Success {
		fmt.Printf("✓ %s (%d attempt(s), %.1fs render)\n",
			res.OutputPath, res.TotalAttempts, res.RenderSeconds)
		return nil
	}

	fmt.Printf("✗ failed after %d attempt(s): %s\n", res.TotalAttempts, res.ErrorMessage)
	if res.Code != "" {
		fmt.Println("The last generated code was kept; inspect it with `manimate history`.")
	}
	return fmt.Errorf("animation failed")
}
