package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/teamlens/internal/profiles"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles [code]",
	Short: "Show the profile archetype knowledge base",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			code := strings.ToUpper(args[0])
			p := profiles.ByCode(code)
			if p == nil {
				return fmt.Errorf("unknown profile code %q (known: %s)", code, strings.Join(profiles.AllCodes(), ", "))
			}
			printCharacteristics(p)
			return nil
		}

		entries := profiles.All()
		if focus, _ := cmd.Flags().GetString("focus"); focus != "" {
			entries = profiles.ByFocus(profiles.Focus(focus))
		}
		if pace, _ := cmd.Flags().GetString("pace"); pace != "" {
			entries = profiles.ByPace(profiles.Pace(pace))
		}

		for _, p := range entries {
			fmt.Printf("%-4s %-24s %s\n", p.Code, p.Name, p.Description)
		}
		return nil
	},
}

func printCharacteristics(p *profiles.Characteristics) {
	fmt.Printf("%s (%s)\n%s\n\n", p.Name, p.Code, p.Description)

	printList("Strengths", p.Strengths)
	printList("Challenges", p.Challenges)
	printList("Motivations", p.Motivations)
	printList("Fears", p.Fears)

	fmt.Println("Work style:")
	fmt.Printf("  pace=%s focus=%s approach=%s decisions=%s\n\n",
		p.WorkStyle.Pace, p.WorkStyle.Focus, p.WorkStyle.Approach, p.WorkStyle.DecisionMaking)

	fmt.Printf("Communication: %s\n", p.Communication.Style)
	printList("  Prefers", p.Communication.Preferences)
	printList("  Avoid", p.Communication.Avoid)

	fmt.Printf("Leadership: %s\n", p.Leadership.Style)
	printList("  Strengths", p.Leadership.Strengths)
	printList("  Development areas", p.Leadership.DevelopmentAreas)

	printList("Ideal environment", p.IdealEnvironment)
	printList("Growth tips", p.GrowthTips)
	printList("Typical roles", p.Examples)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

func init() {
	profilesCmd.Flags().String("focus", "", "Filter by focus (task, person, balanced)")
	profilesCmd.Flags().String("pace", "", "Filter by pace (fast, moderate, slow)")
}
