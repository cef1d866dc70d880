// Package report renders plain-text summaries of assessment results,
// suitable for terminals and text attachments.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/teamlens/internal/disc"
	"github.com/abhisek/teamlens/internal/scoring"
	"github.com/abhisek/teamlens/internal/team"
)

const header = `╔════════════════════════════════════════════════════════════╗
║           %-48s ║
╚════════════════════════════════════════════════════════════╝`

// Profile renders a one-person profile report.
func Profile(p disc.Profile) string {
	c := scoring.ResolveCharacteristics(p.Code)
	if c == nil {
		return "Profile not found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, header, "BEHAVIORAL PROFILE REPORT")
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "PROFILE: %s (%s)\n%s\n\n", c.Name, p.Code, c.Description)

	b.WriteString("SCORES:\n")
	for _, d := range disc.AllDimensions() {
		fmt.Fprintf(&b, "• %s (%s): %d%%\n", d.DisplayName(), string(d), p.Scores.Get(d))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "PRIMARY PROFILE: %s\nINTENSITY: %s\n\n", p.Primary, p.Intensity)

	b.WriteString("KEY STRENGTHS:\n")
	writeNumbered(&b, c.Strengths, 5)
	b.WriteString("\nCHALLENGES TO WORK ON:\n")
	writeNumbered(&b, c.Challenges, 3)

	b.WriteString("\nWORK STYLE:\n")
	fmt.Fprintf(&b, "• Pace: %s\n", c.WorkStyle.Pace)
	fmt.Fprintf(&b, "• Focus: %s\n", c.WorkStyle.Focus)
	fmt.Fprintf(&b, "• Approach: %s\n", c.WorkStyle.Approach)
	fmt.Fprintf(&b, "• Decisions: %s\n", c.WorkStyle.DecisionMaking)

	fmt.Fprintf(&b, "\nCOMMUNICATION:\n%s\n", c.Communication.Style)

	b.WriteString("\nGROWTH TIPS:\n")
	writeNumbered(&b, c.GrowthTips, 3)

	return strings.TrimRight(b.String(), "\n")
}

// Team renders a full team analysis report.
func Team(a team.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, header, "TEAM ANALYSIS REPORT")
	b.WriteString("\n\n")

	b.WriteString("COMPOSITION:\n")
	fmt.Fprintf(&b, "• Total members: %d\n", a.Composition.TotalMembers)
	fmt.Fprintf(&b, "• Dominant profile: %s\n", a.Composition.DominantProfile)
	fmt.Fprintf(&b, "• Distribution: %s\n\n", formatDistribution(a.Composition.ProfileDistribution))

	b.WriteString("COMPATIBILITY:\n")
	fmt.Fprintf(&b, "• Average score: %.1f/100\n", a.Compatibility.AverageScore)
	fmt.Fprintf(&b, "• Best pairs: %d\n", len(a.Compatibility.BestPairs))
	fmt.Fprintf(&b, "• Challenging pairs: %d\n\n", len(a.Compatibility.ChallengingPairs))

	fmt.Fprintf(&b, "BALANCE: %s\n", strings.ToUpper(string(a.Balance.Level)))
	fmt.Fprintf(&b, "• Task/people focus: %d%% task\n", a.Balance.TaskFocus)
	fmt.Fprintf(&b, "• Pace: %d%% fast\n", a.Balance.Pace)
	fmt.Fprintf(&b, "• Approach: %d%% active\n", a.Balance.Approach)
	fmt.Fprintf(&b, "• Overall score: %d/100\n\n", a.Balance.Score)

	b.WriteString("TEAM STRENGTHS:\n")
	writeNumbered(&b, a.TeamStrengths, len(a.TeamStrengths))
	b.WriteString("\nTEAM CHALLENGES:\n")
	writeNumbered(&b, a.TeamChallenges, len(a.TeamChallenges))

	b.WriteString("\nRECOMMENDATIONS:\n\nSuggested hires:\n")
	if len(a.Recommendations.Hiring) > 0 {
		writeNumbered(&b, a.Recommendations.Hiring, len(a.Recommendations.Hiring))
	} else {
		b.WriteString("• Team is complete\n")
	}

	b.WriteString("\nDevelopment:\n")
	if len(a.Recommendations.Development) > 0 {
		writeNumbered(&b, a.Recommendations.Development, len(a.Recommendations.Development))
	} else {
		b.WriteString("• Keep current practices\n")
	}

	fmt.Fprintf(&b, "\nRecommended lead:\n%s", a.Recommendations.Leadership)

	return b.String()
}

// writeNumbered writes up to limit items as a numbered list.
func writeNumbered(b *strings.Builder, items []string, limit int) {
	if limit > len(items) {
		limit = len(items)
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(b, "%d. %s\n", i+1, items[i])
	}
}

// formatDistribution renders code counts as "D=2, I=1" in sorted order
// so the output is stable across runs.
func formatDistribution(dist map[string]int) string {
	codes := make([]string, 0, len(dist))
	for code := range dist {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = fmt.Sprintf("%s=%d", code, dist[code])
	}
	return strings.Join(parts, ", ")
}
