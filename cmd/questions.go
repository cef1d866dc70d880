package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/teamlens/internal/disc"
	"github.com/abhisek/teamlens/internal/questionnaire"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the assessment questionnaire",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := questionnaire.Default()

		if stats, _ := cmd.Flags().GetBool("stats"); stats {
			printStats(catalog)
			return nil
		}

		questions := catalog.Questions()
		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			questions = catalog.Shuffle().Questions
		}

		if cat, _ := cmd.Flags().GetString("category"); cat != "" {
			category := questionnaire.Category(cat)
			filtered := catalog.ByCategory(category)
			if len(filtered) == 0 {
				return fmt.Errorf("unknown category %q", cat)
			}
			questions = filtered
		}

		for _, q := range questions {
			fmt.Printf("%d. [%s] %s\n", q.ID, q.Category.DisplayName(), q.Text)
			for _, key := range disc.AllChoiceKeys() {
				fmt.Printf("   %s) %s\n", key, q.Options[key])
			}
			fmt.Println()
		}
		return nil
	},
}

func printStats(catalog *questionnaire.Catalog) {
	stats := catalog.Stats()
	fmt.Printf("Total questions: %d\n", stats.TotalQuestions)
	fmt.Printf("Average weight: %.2f (min %d, max %d)\n", stats.AverageWeight, stats.MinWeight, stats.MaxWeight)
	fmt.Println("By category:")
	for _, cat := range questionnaire.AllCategories() {
		fmt.Printf("  %-14s %d\n", cat.DisplayName()+":", stats.ByCategory[cat])
	}
}

func init() {
	questionsCmd.Flags().String("category", "", "Only show questions in this category (behavior, communication, work, leadership)")
	questionsCmd.Flags().Bool("shuffle", false, "Shuffle question order for presentation")
	questionsCmd.Flags().Bool("stats", false, "Show questionnaire statistics instead of questions")
}
