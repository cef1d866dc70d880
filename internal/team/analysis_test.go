package team

import (
	"strings"
	"testing"

	"github.com/abhisek/teamlens/internal/compat"
	"github.com/abhisek/teamlens/internal/disc"
)

func member(id, name, code string) compat.TeamMember {
	return compat.TeamMember{
		ID:   id,
		Name: name,
		Profile: disc.Profile{
			Primary: disc.PrimaryLetter(code),
			Code:    code,
		},
	}
}

func TestAnalyze_SingleMember(t *testing.T) {
	a := Analyze([]compat.TeamMember{member("m1", "Ana", "D")})

	if a.TeamID == "" {
		t.Error("expected a generated team id")
	}
	if len(a.Compatibility.PairScores) != 0 {
		t.Errorf("pair scores = %v, want none", a.Compatibility.PairScores)
	}
	if a.Compatibility.AverageScore != 70 {
		t.Errorf("average = %v, want the default 70", a.Compatibility.AverageScore)
	}
	if len(a.Compatibility.BestPairs) != 0 || len(a.Compatibility.ChallengingPairs) != 0 {
		t.Error("expected no best or challenging pairs")
	}
	want := []string{"I", "S", "C"}
	if len(a.Composition.MissingProfiles) != 3 {
		t.Fatalf("missing = %v, want %v", a.Composition.MissingProfiles, want)
	}
	for i, m := range a.Composition.MissingProfiles {
		if m != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, m, want[i])
		}
	}
}

func TestAnalyze_EmptyTeam(t *testing.T) {
	a := Analyze(nil)

	if a.Composition.DominantProfile != "D" {
		t.Errorf("dominant = %q, want the D default", a.Composition.DominantProfile)
	}
	if a.Composition.TotalMembers != 0 {
		t.Errorf("total = %d, want 0", a.Composition.TotalMembers)
	}
	if len(a.Composition.MissingProfiles) != 4 {
		t.Errorf("missing = %v, want all four", a.Composition.MissingProfiles)
	}
	if a.Balance != (Balance{TaskFocus: 50, Pace: 50, Approach: 50, Score: 50, Level: BalanceModerate}) {
		t.Errorf("balance = %+v, want all-50 moderate", a.Balance)
	}
	if a.Recommendations.Leadership != "Hire a leadership profile (D or D-I)" {
		t.Errorf("leadership = %q", a.Recommendations.Leadership)
	}
	if len(a.Recommendations.Hiring) != 4 {
		t.Errorf("hiring = %v, want one entry per missing profile", a.Recommendations.Hiring)
	}
}

func TestAnalyze_FullCoverage(t *testing.T) {
	members := []compat.TeamMember{
		member("m1", "Ana", "D"),
		member("m2", "Bruno", "I"),
		member("m3", "Carla", "S"),
		member("m4", "Davi", "C"),
	}
	a := Analyze(members)

	if len(a.Composition.MissingProfiles) != 0 {
		t.Errorf("missing = %v, want none", a.Composition.MissingProfiles)
	}
	if len(a.Compatibility.PairScores) != 6 {
		t.Errorf("pairs = %d, want C(4,2) = 6", len(a.Compatibility.PairScores))
	}
	// D/I 85, D/S 55, D/C 70, I/S 90, I/C 60, S/C 85 average 74.166...
	if got := a.Compatibility.AverageScore; got < 74.1 || got > 74.2 {
		t.Errorf("average = %v, want about 74.17", got)
	}

	foundDiversity := false
	for _, s := range a.TeamStrengths {
		if s == "Diversity of perspectives and approaches" {
			foundDiversity = true
		}
	}
	if !foundDiversity {
		t.Errorf("strengths = %v, want the diversity entry", a.TeamStrengths)
	}
	if len(a.TeamStrengths) != 5 {
		t.Errorf("strengths = %v, want one per dimension plus diversity", a.TeamStrengths)
	}
	if len(a.TeamChallenges) != 0 {
		t.Errorf("challenges = %v, want none for a fully covered team", a.TeamChallenges)
	}

	// D/I/S/C work styles average to 50 on every axis.
	if a.Balance.Score != 100 || a.Balance.Level != BalanceVeryBalanced {
		t.Errorf("balance = %+v, want perfect 100", a.Balance)
	}
}

func TestAnalyze_DominantProfileTieBreak(t *testing.T) {
	a := Analyze([]compat.TeamMember{
		member("m1", "Ana", "I"),
		member("m2", "Bruno", "S"),
		member("m3", "Carla", "S"),
		member("m4", "Davi", "I"),
	})

	// I reaches count 2 before S does, so the tie resolves to I.
	if a.Composition.DominantProfile != "I" {
		t.Errorf("dominant = %q, want I by member order", a.Composition.DominantProfile)
	}
	if a.Composition.ProfileDistribution["I"] != 2 || a.Composition.ProfileDistribution["S"] != 2 {
		t.Errorf("distribution = %v", a.Composition.ProfileDistribution)
	}
}

func TestAnalyze_BestAndChallengingPairs(t *testing.T) {
	members := []compat.TeamMember{
		member("m1", "Ana", "I"),
		member("m2", "Bruno", "S"),
		member("m3", "Carla", "I-S"),
		member("m4", "Davi", "D"),
	}
	a := Analyze(members)

	// I/S 90, I/I-S 92, I/D 85 reversed to D 85, S/I-S 95, S/D 55
	// reversed, I-S/D 70 reversed. Pair order uses the first member's
	// code as the row.
	if len(a.Compatibility.BestPairs) != 3 {
		t.Fatalf("best pairs = %v, want the three at 95, 92, 90", a.Compatibility.BestPairs)
	}
	if a.Compatibility.BestPairs[0].Score != 95 {
		t.Errorf("best[0] = %d, want 95", a.Compatibility.BestPairs[0].Score)
	}
	if a.Compatibility.BestPairs[2].Score != 90 {
		t.Errorf("best[2] = %d, want 90", a.Compatibility.BestPairs[2].Score)
	}
	if len(a.Compatibility.ChallengingPairs) != 1 {
		t.Fatalf("challenging = %v, want just S/D at 55", a.Compatibility.ChallengingPairs)
	}
	if a.Compatibility.ChallengingPairs[0].Score != 55 {
		t.Errorf("challenging[0] = %d, want 55", a.Compatibility.ChallengingPairs[0].Score)
	}
}

func TestTeamChallenges_Overconcentration(t *testing.T) {
	members := []compat.TeamMember{
		member("m1", "Ana", "D"),
		member("m2", "Bruno", "D"),
		member("m3", "Carla", "D-I"),
	}
	challenges := teamChallenges(members)

	joined := strings.Join(challenges, "\n")
	if !strings.Contains(joined, "Too many leaders") {
		t.Errorf("challenges = %v, want the authority conflict entry", challenges)
	}
	if !strings.Contains(joined, "Lack of diversity") {
		t.Errorf("challenges = %v, want the monoculture entry", challenges)
	}
	// I, S and C are all absent as primaries.
	if len(challenges) != 5 {
		t.Errorf("challenges = %v, want 5 entries", challenges)
	}
}

func TestTeamChallenges_MajorityRuleIsStrict(t *testing.T) {
	// Two of four is exactly half, not a majority.
	members := []compat.TeamMember{
		member("m1", "Ana", "D"),
		member("m2", "Bruno", "D"),
		member("m3", "Carla", "I"),
		member("m4", "Davi", "S"),
	}
	for _, c := range teamChallenges(members) {
		if strings.Contains(c, "Too many leaders") {
			t.Errorf("50%% D triggered the majority challenge: %v", c)
		}
	}
}

func TestRecommendations_DevelopmentThreshold(t *testing.T) {
	// Three S primaries cross the absolute count threshold even though
	// they are only half of this six-member team, which the majority
	// rule ignores.
	members := []compat.TeamMember{
		member("m1", "Ana", "S"),
		member("m2", "Bruno", "S"),
		member("m3", "Carla", "S-C"),
		member("m4", "Davi", "S"),
		member("m5", "Eva", "D"),
		member("m6", "Fabio", "I"),
	}
	r := recommendations(members, nil)

	if len(r.Development) != 1 {
		t.Fatalf("development = %v, want just the S entry", r.Development)
	}
	if !strings.Contains(r.Development[0], "assertiveness") {
		t.Errorf("development = %q", r.Development[0])
	}
}

func TestRecommendations_LeadershipPick(t *testing.T) {
	withD := recommendations([]compat.TeamMember{
		member("m1", "Ana", "I"),
		member("m2", "Bruno", "D-C"),
	}, nil)
	if !strings.Contains(withD.Leadership, "Bruno") || !strings.Contains(withD.Leadership, "D-C") {
		t.Errorf("leadership = %q, want the first D primary", withD.Leadership)
	}

	withoutD := recommendations([]compat.TeamMember{
		member("m1", "Ana", "I"),
		member("m2", "Bruno", "S"),
	}, nil)
	if !strings.Contains(withoutD.Leadership, "Ana") {
		t.Errorf("leadership = %q, want the first member", withoutD.Leadership)
	}
}

func TestRecommendations_Roles(t *testing.T) {
	members := []compat.TeamMember{
		member("m1", "Ana", "D-I"),
		member("m2", "Bruno", "S-C"),
	}
	r := recommendations(members, nil)

	if r.Roles["m1"] != "Project lead or decision maker" {
		t.Errorf("m1 role = %q", r.Roles["m1"])
	}
	if r.Roles["m2"] != "Team support and conflict mediation" {
		t.Errorf("m2 role = %q", r.Roles["m2"])
	}
}
