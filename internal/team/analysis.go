package team

import (
	"sort"

	"github.com/google/uuid"

	"github.com/abhisek/teamlens/internal/compat"
	"github.com/abhisek/teamlens/internal/disc"
)

// Analysis is the full report for one team: who is on it, how its
// profiles distribute, how its pairs get along, and what to do next.
type Analysis struct {
	TeamID          string              `json:"teamId"`
	Members         []compat.TeamMember `json:"members"`
	Composition     Composition         `json:"composition"`
	Compatibility   Compatibility       `json:"compatibility"`
	Balance         Balance             `json:"balance"`
	TeamStrengths   []string            `json:"teamStrengths"`
	TeamChallenges  []string            `json:"teamChallenges"`
	Recommendations Recommendations     `json:"recommendations"`
}

// Composition summarizes how profile codes distribute across members.
type Composition struct {
	TotalMembers        int            `json:"totalMembers"`
	ProfileDistribution map[string]int `json:"profileDistribution"`
	DominantProfile     string         `json:"dominantProfile"`
	MissingProfiles     []string       `json:"missingProfiles"`
}

// Compatibility aggregates the pairwise scores of a team.
type Compatibility struct {
	AverageScore     float64            `json:"averageScore"`
	PairScores       []compat.PairScore `json:"pairScores"`
	BestPairs        []compat.PairScore `json:"bestPairs"`
	ChallengingPairs []compat.PairScore `json:"challengingPairs"`
}

// Recommendations carries the actionable output of an analysis.
type Recommendations struct {
	Hiring      []string          `json:"hiring"`
	Development []string          `json:"development"`
	Leadership  string            `json:"leadership"`
	Roles       map[string]string `json:"roles"`
}

// Analyze builds the full analysis for a set of members. It is a pure
// computation except for the generated team id.
func Analyze(members []compat.TeamMember) Analysis {
	composition := analyzeComposition(members)
	return Analysis{
		TeamID:          uuid.NewString(),
		Members:         members,
		Composition:     composition,
		Compatibility:   analyzeCompatibility(members),
		Balance:         analyzeBalance(members),
		TeamStrengths:   teamStrengths(members),
		TeamChallenges:  teamChallenges(members),
		Recommendations: recommendations(members, composition.MissingProfiles),
	}
}

// primaryCounts tallies members by primary dimension letter.
func primaryCounts(members []compat.TeamMember) map[disc.Dimension]int {
	counts := make(map[disc.Dimension]int)
	for _, m := range members {
		counts[m.Profile.Primary]++
	}
	return counts
}

// analyzeComposition tallies full profile codes and flags which pure
// dimensions no member leads with. The dominant profile is the most
// common code, ties broken by member order; an empty team defaults to
// Dominance.
func analyzeComposition(members []compat.TeamMember) Composition {
	distribution := make(map[string]int)
	dominant := string(disc.Dominance)
	for _, m := range members {
		code := m.Profile.Code
		distribution[code]++
		if distribution[code] > distribution[dominant] {
			dominant = code
		}
	}

	primaries := primaryCounts(members)
	missing := []string{}
	for _, d := range disc.AllDimensions() {
		if primaries[d] == 0 {
			missing = append(missing, string(d))
		}
	}

	return Composition{
		TotalMembers:        len(members),
		ProfileDistribution: distribution,
		DominantProfile:     dominant,
		MissingProfiles:     missing,
	}
}

// analyzeCompatibility scores every unordered member pair in member
// order, averages the scores (defaulting to the matrix default when no
// pairs exist), and extracts the top three pairs at or above the
// very-high threshold and the bottom three below 60.
func analyzeCompatibility(members []compat.TeamMember) Compatibility {
	pairs := []compat.PairScore{}
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			pairs = append(pairs, compat.PairCompatibility(members[i], members[j]))
		}
	}

	avg := float64(compat.DefaultScore)
	if len(pairs) > 0 {
		sum := 0
		for _, p := range pairs {
			sum += p.Score
		}
		avg = float64(sum) / float64(len(pairs))
	}

	best := []compat.PairScore{}
	challenging := []compat.PairScore{}
	for _, p := range pairs {
		if p.Score >= 85 {
			best = append(best, p)
		}
		if p.Score < 60 {
			challenging = append(challenging, p)
		}
	}
	sort.SliceStable(best, func(i, j int) bool { return best[i].Score > best[j].Score })
	sort.SliceStable(challenging, func(i, j int) bool { return challenging[i].Score < challenging[j].Score })
	if len(best) > 3 {
		best = best[:3]
	}
	if len(challenging) > 3 {
		challenging = challenging[:3]
	}

	return Compatibility{
		AverageScore:     avg,
		PairScores:       pairs,
		BestPairs:        best,
		ChallengingPairs: challenging,
	}
}

// teamStrengths lists what the team can lean on: one entry per pure
// dimension that at least one member leads with, plus a diversity entry
// for teams of four or more spanning at least three primaries.
func teamStrengths(members []compat.TeamMember) []string {
	counts := primaryCounts(members)
	strengths := []string{}

	if counts[disc.Dominance] >= 1 {
		strengths = append(strengths, "Capacity to make quick decisions and take on challenges")
	}
	if counts[disc.Influence] >= 1 {
		strengths = append(strengths, "Excellent communication and ability to motivate the team")
	}
	if counts[disc.Steadiness] >= 1 {
		strengths = append(strengths, "Harmonious environment and mutual support between members")
	}
	if counts[disc.Conformity] >= 1 {
		strengths = append(strengths, "Attention to detail and high-quality work")
	}
	if len(members) >= 4 && len(counts) >= 3 {
		strengths = append(strengths, "Diversity of perspectives and approaches")
	}

	return strengths
}

// teamChallenges lists structural risks: any primary held by more than
// half the team, a single-primary monoculture, and each absent primary.
func teamChallenges(members []compat.TeamMember) []string {
	counts := primaryCounts(members)
	challenges := []string{}
	total := len(members)

	over := func(d disc.Dimension) bool {
		return total > 0 && float64(counts[d])/float64(total) > 0.5
	}

	if over(disc.Dominance) {
		challenges = append(challenges, "Too many leaders can create conflicts over authority")
	}
	if over(disc.Influence) {
		challenges = append(challenges, "Risk of scattered effort and weak follow-through")
	}
	if over(disc.Steadiness) {
		challenges = append(challenges, "Necessary changes may meet resistance")
	}
	if over(disc.Conformity) {
		challenges = append(challenges, "Over-analysis can delay decisions")
	}

	if len(counts) == 1 {
		challenges = append(challenges, "Lack of diversity in perspectives and skills")
	}

	if counts[disc.Dominance] == 0 {
		challenges = append(challenges, "Lack of decisive leadership at critical moments")
	}
	if counts[disc.Influence] == 0 {
		challenges = append(challenges, "Communication and motivation may be difficult")
	}
	if counts[disc.Steadiness] == 0 {
		challenges = append(challenges, "The environment may grow tense without stabilizers")
	}
	if counts[disc.Conformity] == 0 {
		challenges = append(challenges, "Risk of neglecting quality and important details")
	}

	return challenges
}

// recommendations turns composition gaps into hiring advice, primary
// overconcentration into development advice, and picks a leadership
// candidate and a role per member.
func recommendations(members []compat.TeamMember, missing []string) Recommendations {
	hiring := []string{}
	for _, p := range missing {
		switch disc.Dimension(p) {
		case disc.Dominance:
			hiring = append(hiring, "Profile D (Dominance), for leadership and decision making")
		case disc.Influence:
			hiring = append(hiring, "Profile I (Influence), for communication and motivation")
		case disc.Steadiness:
			hiring = append(hiring, "Profile S (Steadiness), for harmony and support")
		case disc.Conformity:
			hiring = append(hiring, "Profile C (Conformity), for quality and precision")
		}
	}

	counts := primaryCounts(members)
	development := []string{}
	if counts[disc.Dominance] > 2 {
		development = append(development, "Develop empathy and active listening skills")
	}
	if counts[disc.Influence] > 2 {
		development = append(development, "Improve discipline and execution focus")
	}
	if counts[disc.Steadiness] > 2 {
		development = append(development, "Practice assertiveness and change management")
	}
	if counts[disc.Conformity] > 2 {
		development = append(development, "Develop flexibility and tolerance for ambiguity")
	}

	leadership := "Hire a leadership profile (D or D-I)"
	if len(members) > 0 {
		leadership = members[0].Name + ", develop leadership skills"
		for _, m := range members {
			if m.Profile.Primary == disc.Dominance {
				leadership = m.Name + " (profile " + m.Profile.Code + "), natural results-oriented leadership"
				break
			}
		}
	}

	roles := make(map[string]string, len(members))
	for _, m := range members {
		switch m.Profile.Primary {
		case disc.Dominance:
			roles[m.ID] = "Project lead or decision maker"
		case disc.Influence:
			roles[m.ID] = "External communication and team motivation"
		case disc.Steadiness:
			roles[m.ID] = "Team support and conflict mediation"
		case disc.Conformity:
			roles[m.ID] = "Quality control and technical analysis"
		default:
			roles[m.ID] = "Hybrid role based on competencies"
		}
	}

	return Recommendations{
		Hiring:      hiring,
		Development: development,
		Leadership:  leadership,
		Roles:       roles,
	}
}
