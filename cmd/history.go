package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkurella/manimate/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past animation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		failedOnly, _ := cmd.Flags().GetBool("failed")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.AnimationRepo().QueryAnimations(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No animation runs recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-9s  %-3s  %-8s  %s\n",
			"ID", "Timestamp", "Kind", "OK", "Attempts", "Topic")
		fmt.Println(strings.Repeat("─", 90))

		for _, r := range runs {
			if failedOnly && r.Success {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			topic := r.Topic
			if len(topic) > 44 {
				topic = topic[:44]
			}
			fmt.Printf("%-5d  %-19s  %-9s  %-3s  %-8d  %s\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Kind,
				ok,
				r.TotalAttempts,
				topic,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one run, including its final scene code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		r, err := st.AnimationRepo().GetAnimation(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		if r == nil {
			return fmt.Errorf("run %d not found", id)
		}

		fmt.Printf("ID:        %d\n", r.ID)
		fmt.Printf("Time:      %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Kind:      %s\n", r.Kind)
		fmt.Printf("Topic:     %s\n", r.Topic)
		fmt.Printf("Success:   %v\n", r.Success)
		fmt.Printf("Scene:     %s\n", r.SceneName)
		if r.OutputPath != "" {
			fmt.Printf("Output:    %s\n", r.OutputPath)
		}
		fmt.Printf("Attempts:  %d generation + %d render = %d total\n",
			r.GenerationAttempts, r.RenderAttempts, r.TotalAttempts)
		if r.RenderSeconds > 0 {
			fmt.Printf("Render:    %.1fs\n", r.RenderSeconds)
		}
		if r.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", r.ErrorMessage)
		}

		if r.Code != "" {
			sep := strings.Repeat("─", 60)
			fmt.Println()
			fmt.Println(sep)
			fmt.Println("CODE")
			fmt.Println(sep)
			fmt.Println(r.Code)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().Bool("failed", false, "Show only failed runs")

	historyCmd.AddCommand(historyShowCmd)
}
