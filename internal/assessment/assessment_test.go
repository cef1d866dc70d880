package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/teamlens/internal/disc"
)

func uniformAnswers(choice disc.ChoiceKey) disc.AnswerSet {
	answers := make(disc.AnswerSet, 24)
	for i := 1; i <= 24; i++ {
		answers[i] = choice
	}
	return answers
}

func TestComplete_FullFlow(t *testing.T) {
	res, err := Complete(uniformAnswers(disc.ChoiceC))
	require.NoError(t, err)

	assert.Equal(t, disc.Steadiness, res.Profile.Primary)
	assert.Equal(t, "S", res.Profile.Code)
	require.NotNil(t, res.Characteristics)
	assert.Equal(t, "S", res.Characteristics.Code)
	assert.True(t, res.Completeness.Valid)
	assert.Empty(t, res.Completeness.Missing)
}

func TestComplete_IncompleteAnswers(t *testing.T) {
	answers := disc.AnswerSet{1: disc.ChoiceA, 2: disc.ChoiceB}

	res, err := Complete(answers)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "missing questions")
	assert.Contains(t, err.Error(), "3, 4")
}

func TestComplete_InvalidChoice(t *testing.T) {
	answers := uniformAnswers(disc.ChoiceA)
	answers[7] = "Z"

	res, err := Complete(answers)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "question 7")
}

func TestNewMember(t *testing.T) {
	m, err := NewMember("m1", "Ana", uniformAnswers(disc.ChoiceA))
	require.NoError(t, err)

	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "Ana", m.Name)
	assert.Equal(t, "D", m.Profile.Code)
}

func TestNewMember_ErrorNamesMember(t *testing.T) {
	_, err := NewMember("m9", "Bruno", disc.AnswerSet{1: disc.ChoiceA})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member m9")
}

func TestQuickTeamAnalysis(t *testing.T) {
	analysis, err := QuickTeamAnalysis([]MemberAnswers{
		{ID: "m1", Name: "Ana", Answers: uniformAnswers(disc.ChoiceA)},
		{ID: "m2", Name: "Bruno", Answers: uniformAnswers(disc.ChoiceB)},
		{ID: "m3", Name: "Carla", Answers: uniformAnswers(disc.ChoiceC)},
		{ID: "m4", Name: "Davi", Answers: uniformAnswers(disc.ChoiceD)},
	})
	require.NoError(t, err)

	assert.Len(t, analysis.Members, 4)
	assert.Empty(t, analysis.Composition.MissingProfiles)
	assert.Len(t, analysis.Compatibility.PairScores, 6)
	assert.NotEmpty(t, analysis.TeamID)
}

func TestQuickTeamAnalysis_AbortsOnBadMember(t *testing.T) {
	_, err := QuickTeamAnalysis([]MemberAnswers{
		{ID: "m1", Name: "Ana", Answers: uniformAnswers(disc.ChoiceA)},
		{ID: "m2", Name: "Bruno", Answers: nil},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member m2")
}
