// Package assessment is the high-level entry point tying the
// questionnaire, calculator, knowledge base and team analysis together.
// Lower-level packages validate without failing; this one turns an
// incomplete or malformed answer set into a hard error.
package assessment

import (
	"fmt"
	"strings"

	"github.com/abhisek/teamlens/internal/compat"
	"github.com/abhisek/teamlens/internal/disc"
	"github.com/abhisek/teamlens/internal/profiles"
	"github.com/abhisek/teamlens/internal/questionnaire"
	"github.com/abhisek/teamlens/internal/scoring"
	"github.com/abhisek/teamlens/internal/team"
)

// Result is the outcome of one completed assessment.
type Result struct {
	Profile         disc.Profile               `json:"profile"`
	Characteristics *profiles.Characteristics  `json:"characteristics"`
	Completeness    questionnaire.Completeness `json:"validation"`
}

// MemberAnswers couples a person's identity with their raw answers.
type MemberAnswers struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Answers disc.AnswerSet `json:"answers"`
}

// Complete runs the full flow for one respondent: completeness and
// choice validation, profile calculation, and characteristics lookup
// with the letter fallback.
func Complete(answers disc.AnswerSet) (*Result, error) {
	completeness := questionnaire.Default().ValidateCompleteness(answers)
	if !completeness.Valid {
		return nil, fmt.Errorf("incomplete answers, missing questions: %s", joinIDs(completeness.Missing))
	}

	if v := scoring.Default().ValidateAnswers(answers); !v.Valid {
		return nil, fmt.Errorf("invalid answers: %s", strings.Join(v.Errors, "; "))
	}

	profile := scoring.Default().Calculate(answers)
	return &Result{
		Profile:         profile,
		Characteristics: scoring.ResolveCharacteristics(profile.Code),
		Completeness:    completeness,
	}, nil
}

// NewMember builds a team member from raw answers.
func NewMember(id, name string, answers disc.AnswerSet) (compat.TeamMember, error) {
	res, err := Complete(answers)
	if err != nil {
		return compat.TeamMember{}, fmt.Errorf("member %s: %w", id, err)
	}
	return compat.TeamMember{ID: id, Name: name, Profile: res.Profile}, nil
}

// QuickTeamAnalysis assesses every member and analyzes the resulting
// team in one call. The first failing member aborts the analysis.
func QuickTeamAnalysis(inputs []MemberAnswers) (team.Analysis, error) {
	members := make([]compat.TeamMember, 0, len(inputs))
	for _, in := range inputs {
		m, err := NewMember(in.ID, in.Name, in.Answers)
		if err != nil {
			return team.Analysis{}, err
		}
		members = append(members, m)
	}
	return team.Analyze(members), nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
