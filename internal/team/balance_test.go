package team

import (
	"testing"

	"github.com/abhisek/teamlens/internal/compat"
)

func TestBalanceLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  BalanceLevel
	}{
		{0, BalanceUnbalanced},
		{39, BalanceUnbalanced},
		{40, BalanceModerate},
		{59, BalanceModerate},
		{60, BalanceBalanced},
		{79, BalanceBalanced},
		{80, BalanceVeryBalanced},
		{100, BalanceVeryBalanced},
	}

	for _, tt := range tests {
		if got := BalanceLevelFor(tt.score); got != tt.want {
			t.Errorf("BalanceLevelFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAnalyzeBalance_AllDominance(t *testing.T) {
	// D is fast, task-focused and active: every axis pins at 100,
	// deviation 50 on each, score 0.
	members := []compat.TeamMember{
		member("m1", "Ana", "D"),
		member("m2", "Bruno", "D"),
	}
	b := analyzeBalance(members)

	if b.TaskFocus != 100 || b.Pace != 100 || b.Approach != 100 {
		t.Errorf("axes = %d/%d/%d, want 100 across", b.TaskFocus, b.Pace, b.Approach)
	}
	if b.Score != 0 {
		t.Errorf("score = %d, want 0", b.Score)
	}
	if b.Level != BalanceUnbalanced {
		t.Errorf("level = %q, want unbalanced", b.Level)
	}
}

func TestAnalyzeBalance_MixedAxes(t *testing.T) {
	// D contributes 100/100/100 and S contributes 0/0/0, averaging to
	// the midpoint on every axis.
	members := []compat.TeamMember{
		member("m1", "Ana", "D"),
		member("m2", "Bruno", "S"),
	}
	b := analyzeBalance(members)

	if b.TaskFocus != 50 || b.Pace != 50 || b.Approach != 50 {
		t.Errorf("axes = %d/%d/%d, want 50 across", b.TaskFocus, b.Pace, b.Approach)
	}
	if b.Score != 100 || b.Level != BalanceVeryBalanced {
		t.Errorf("score = %d level = %q, want 100 very-balanced", b.Score, b.Level)
	}
}

func TestAnalyzeBalance_CombinedCodesUseOwnWorkStyle(t *testing.T) {
	// D-C reads moderate pace and task focus from its own entry rather
	// than inheriting D's.
	b := analyzeBalance([]compat.TeamMember{member("m1", "Ana", "D-C")})

	if b.Pace != 50 {
		t.Errorf("pace = %d, want the moderate 50", b.Pace)
	}
	if b.TaskFocus != 100 {
		t.Errorf("task focus = %d, want 100", b.TaskFocus)
	}
	if b.Approach != 0 {
		t.Errorf("approach = %d, want the reflective 0", b.Approach)
	}
}

func TestAnalyzeBalance_UnknownCodeContributesZero(t *testing.T) {
	// A member whose code has no knowledge-base entry still counts in
	// the denominator.
	members := []compat.TeamMember{
		member("m1", "Ana", "D"),
		member("m2", "Bruno", "X-Y"),
	}
	b := analyzeBalance(members)

	if b.TaskFocus != 50 || b.Pace != 50 || b.Approach != 50 {
		t.Errorf("axes = %d/%d/%d, want 50 across", b.TaskFocus, b.Pace, b.Approach)
	}
}

func TestSuggestIdealComposition_SizeTiers(t *testing.T) {
	small := SuggestIdealComposition(4)
	if small.Composition[0] != "D or D-I" {
		t.Errorf("small composition = %v", small.Composition)
	}
	if len(small.Priorities) != 4 {
		t.Errorf("small priorities = %v, want 4 ranked entries", small.Priorities)
	}

	medium := SuggestIdealComposition(10)
	if medium.Composition[0] != "2 D/D-I" {
		t.Errorf("medium composition = %v", medium.Composition)
	}

	large := SuggestIdealComposition(11)
	if large.Composition[0] != "3+ D/D-I" {
		t.Errorf("large composition = %v", large.Composition)
	}

	if SuggestIdealComposition(5).Rationale != small.Rationale {
		t.Error("size 5 should read the small tier")
	}
	if SuggestIdealComposition(6).Rationale != medium.Rationale {
		t.Error("size 6 should read the medium tier")
	}
}
