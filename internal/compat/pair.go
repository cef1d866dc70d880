package compat

import "github.com/abhisek/teamlens/internal/disc"

// TeamMember couples a person's identity with their derived profile.
type TeamMember struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Profile disc.Profile `json:"profile"`
}

// Level is the qualitative tier of a pairwise score.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very-high"
)

// Minimum scores for the medium, high and very-high tiers.
const (
	LevelMediumMin   = 55
	LevelHighMin     = 70
	LevelVeryHighMin = 85
)

// LevelFor classifies a pairwise score into its tier.
func LevelFor(score int) Level {
	switch {
	case score >= LevelVeryHighMin:
		return LevelVeryHigh
	case score >= LevelHighMin:
		return LevelHigh
	case score >= LevelMediumMin:
		return LevelMedium
	default:
		return LevelLow
	}
}

// PairScore is the full pairwise assessment of two members: the numeric
// score resolved at full code granularity, its tier, and narrative
// guidance resolved at primary-letter granularity.
type PairScore struct {
	MemberA    string   `json:"member1"`
	MemberB    string   `json:"member2"`
	Score      int      `json:"score"`
	Level      Level    `json:"level"`
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
	Tips       []string `json:"tips"`
}

// PairCompatibility assesses two members. The score lookup uses each
// member's full profile code in order; narratives use only the primary
// letters, so "D-I" and "D" read the same guidance.
func PairCompatibility(a, b TeamMember) PairScore {
	score := MatrixScore(a.Profile.Code, b.Profile.Code)
	return PairScore{
		MemberA:    a.ID,
		MemberB:    b.ID,
		Score:      score,
		Level:      LevelFor(score),
		Strengths:  PairStrengths(a.Profile.Code, b.Profile.Code),
		Challenges: PairChallenges(a.Profile.Code, b.Profile.Code),
		Tips:       PairTips(a.Profile.Code, b.Profile.Code),
	}
}
