package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkurella/manimate/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Browse the animation template catalog",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates",
	Run: func(cmd *cobra.Command, args []string) {
		reg := templates.NewDefaultRegistry()

		fmt.Printf("%-24s  %-18s  %s\n", "ID", "Category", "Description")
		fmt.Println(strings.Repeat("─", 90))
		for _, id := range reg.IDs() {
			t, _ := reg.Get(id)
			fmt.Printf("%-24s  %-18s  %s\n", t.ID, t.Category, t.Description)
		}
	},
}

var templatesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search templates by id, description, examples, or tags",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg := templates.NewDefaultRegistry()
		query := strings.Join(args, " ")

		hits := reg.Search(query)
		if len(hits) == 0 {
			fmt.Printf("No templates match %q.\n", query)
			return
		}
		for _, t := range hits {
			fmt.Printf("%-24s  %s\n", t.ID, t.Description)
		}
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a template's parameters, examples, and source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := templates.NewDefaultRegistry()
		t, ok := reg.Get(args[0])
		if !ok {
			return fmt.Errorf("template %q not found; see `manimate templates list`", args[0])
		}

		fmt.Printf("ID:          %s\n", t.ID)
		fmt.Printf("Category:    %s\n", t.Category)
		fmt.Printf("Description: %s\n", t.Description)

		fmt.Println("\nParameters:")
		for _, p := range t.Params {
			var notes []string
			if p.Required && !p.Derived {
				notes = append(notes, "required")
			}
			if p.Derived {
				notes = append(notes, "derived")
			}
			if len(p.Choices) > 0 {
				notes = append(notes, "one of: "+strings.Join(p.Choices, ", "))
			}
			suffix := ""
			if len(notes) > 0 {
				suffix = " (" + strings.Join(notes, "; ") + ")"
			}
			fmt.Printf("  %-14s %-8s %s%s\n", p.Name, p.Type, p.Description, suffix)
		}

		if len(t.Examples) > 0 {
			fmt.Println("\nExamples:")
			for _, ex := range t.Examples {
				fmt.Printf("  %s\n", ex)
			}
		}

		fmt.Println("\nSource:")
		fmt.Println(t.Source)
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesSearchCmd)
	templatesCmd.AddCommand(templatesShowCmd)
}
