package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/teamlens/internal/assessment"
	"github.com/abhisek/teamlens/internal/report"
	"github.com/abhisek/teamlens/internal/team"
)

var teamCmd = &cobra.Command{
	Use:   "team [members.json]",
	Short: "Analyze a team from member answer sets",
	Long: `Team reads a JSON array of members, each with an id, a name and an
answer set, scores every member and prints the full team analysis:

  [{"id": "m1", "name": "Ana", "answers": {"1": "A", ...}}, ...]`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if size, _ := cmd.Flags().GetInt("suggest"); size > 0 {
			return printSuggestion(size)
		}
		if len(args) != 1 {
			return fmt.Errorf("a members file is required (or use --suggest)")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read members: %w", err)
		}
		var inputs []assessment.MemberAnswers
		if err := json.Unmarshal(data, &inputs); err != nil {
			return fmt.Errorf("parse members: %w", err)
		}

		analysis, err := assessment.QuickTeamAnalysis(inputs)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			st, err := openStore(cmd)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			if err := st.SaveTeamAnalysis(analysis); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved team analysis %s\n", analysis.TeamID)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(analysis, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(report.Team(analysis))
		return nil
	},
}

func printSuggestion(size int) error {
	s := team.SuggestIdealComposition(size)
	fmt.Printf("Suggested composition for %d members:\n", size)
	for _, c := range s.Composition {
		fmt.Printf("  - %s\n", c)
	}
	fmt.Printf("\nRationale: %s\n\nPriorities:\n", s.Rationale)
	for _, p := range s.Priorities {
		fmt.Printf("  - %s\n", p)
	}
	return nil
}

func init() {
	teamCmd.Flags().Bool("save", false, "Store the analysis in history")
	teamCmd.Flags().Bool("json", false, "Print the full analysis as JSON instead of a report")
	teamCmd.Flags().Int("suggest", 0, "Suggest an ideal composition for a team of this size instead of analyzing")
}
