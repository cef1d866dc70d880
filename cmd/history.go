package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/teamlens/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse stored assessments and team analyses",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")

		assessments, err := st.ListAssessments(limit)
		if err != nil {
			return err
		}
		fmt.Println("Assessments:")
		if len(assessments) == 0 {
			fmt.Println("  (none)")
		}
		for _, a := range assessments {
			fmt.Printf("  #%-4d %-20s %-4s %s\n", a.ID, a.Name, a.ProfileCode, a.CreatedAt)
		}

		teams, err := st.ListTeamAnalyses(limit)
		if err != nil {
			return err
		}
		fmt.Println("\nTeam analyses:")
		if len(teams) == 0 {
			fmt.Println("  (none)")
		}
		for _, t := range teams {
			fmt.Printf("  %s  %d members  avg %.1f  %s\n", t.TeamID, t.MemberCount, t.AverageScore, t.CreatedAt)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id|team-id>",
	Short: "Show one stored result as a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		// Numeric arguments are assessment ids; anything else is a team id.
		if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
			rec, err := st.GetAssessment(id)
			if err != nil {
				return fmt.Errorf("assessment %d: %w", id, err)
			}
			fmt.Printf("%s (assessment #%d, %s)\n\n", rec.Name, rec.ID, rec.CreatedAt)
			fmt.Println(report.Profile(rec.Result.Profile))
			return nil
		}

		rec, err := st.GetTeamAnalysis(args[0])
		if err != nil {
			return fmt.Errorf("team analysis %s: %w", args[0], err)
		}
		fmt.Println(report.Team(*rec.Analysis))
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id|team-id>",
	Short: "Delete one stored result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
			return st.DeleteAssessment(id)
		}
		return st.DeleteTeamAnalysis(args[0])
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Maximum results per section")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}
