package team

import (
	"math"

	"github.com/abhisek/teamlens/internal/compat"
	"github.com/abhisek/teamlens/internal/profiles"
)

// BalanceLevel is the qualitative tier of a team's balance score.
type BalanceLevel string

const (
	BalanceUnbalanced   BalanceLevel = "unbalanced"
	BalanceModerate     BalanceLevel = "moderate"
	BalanceBalanced     BalanceLevel = "balanced"
	BalanceVeryBalanced BalanceLevel = "very-balanced"
)

// BalanceLevelFor classifies a balance score into its tier.
func BalanceLevelFor(score int) BalanceLevel {
	switch {
	case score >= 80:
		return BalanceVeryBalanced
	case score >= 60:
		return BalanceBalanced
	case score >= 40:
		return BalanceModerate
	default:
		return BalanceUnbalanced
	}
}

// Balance places the team on three 0-100 work-style axes, where 50 is
// the even midpoint of each, and scores how close the team sits to the
// midpoints overall.
type Balance struct {
	TaskFocus int          `json:"taskFocus"`
	Pace      int          `json:"pace"`
	Approach  int          `json:"approach"`
	Score     int          `json:"score"`
	Level     BalanceLevel `json:"level"`
}

// analyzeBalance averages each member's knowledge-base work style onto
// numeric axes. Task focus maps task to 100, person to 0 and balanced
// to 50; pace maps fast to 100, slow to 0 and moderate to 50; approach
// maps active to 100 and reflective to 0. The score is 100 minus twice
// the mean deviation from 50, so a team sitting exactly on every
// midpoint scores 100. An empty team reads 50 on every axis.
func analyzeBalance(members []compat.TeamMember) Balance {
	if len(members) == 0 {
		return Balance{TaskFocus: 50, Pace: 50, Approach: 50, Score: 50, Level: BalanceModerate}
	}

	taskFocus, pace, approach := 0, 0, 0
	for _, m := range members {
		p := profiles.ByCode(m.Profile.Code)
		if p == nil {
			continue
		}

		switch p.WorkStyle.Focus {
		case profiles.FocusTask:
			taskFocus += 100
		case profiles.FocusBalanced:
			taskFocus += 50
		}

		switch p.WorkStyle.Pace {
		case profiles.PaceFast:
			pace += 100
		case profiles.PaceModerate:
			pace += 50
		}

		if p.WorkStyle.Approach == profiles.ApproachActive {
			approach += 100
		}
	}

	n := float64(len(members))
	taskFocus = int(math.Round(float64(taskFocus) / n))
	pace = int(math.Round(float64(pace) / n))
	approach = int(math.Round(float64(approach) / n))

	avgDeviation := (math.Abs(50-float64(taskFocus)) +
		math.Abs(50-float64(pace)) +
		math.Abs(50-float64(approach))) / 3
	score := int(math.Round(100 - avgDeviation*2))

	return Balance{
		TaskFocus: taskFocus,
		Pace:      pace,
		Approach:  approach,
		Score:     score,
		Level:     BalanceLevelFor(score),
	}
}
