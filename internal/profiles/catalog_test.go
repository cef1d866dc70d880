package profiles

import "testing"

func TestByCode(t *testing.T) {
	tests := []struct {
		code  string
		found bool
	}{
		{"D", true},
		{"I", true},
		{"S", true},
		{"C", true},
		{"D-I", true},
		{"D-C", true},
		{"I-S", true},
		{"S-C", true},
		{"I-D", false}, // only the four authored combined forms exist
		{"C-S", false},
		{"X", false},
		{"", false},
	}

	for _, tt := range tests {
		got := ByCode(tt.code)
		if (got != nil) != tt.found {
			t.Errorf("ByCode(%q) found = %v, want %v", tt.code, got != nil, tt.found)
		}
		if got != nil && got.Code != tt.code {
			t.Errorf("ByCode(%q).Code = %q", tt.code, got.Code)
		}
	}
}

func TestAllCodes(t *testing.T) {
	codes := AllCodes()
	want := []string{"D", "I", "S", "C", "D-I", "D-C", "I-S", "S-C"}
	if len(codes) != len(want) {
		t.Fatalf("AllCodes() has %d entries, want %d", len(codes), len(want))
	}
	for i, code := range codes {
		if code != want[i] {
			t.Errorf("AllCodes()[%d] = %q, want %q", i, code, want[i])
		}
	}
}

func TestEntriesComplete(t *testing.T) {
	for _, p := range All() {
		if p.Name == "" || p.Description == "" {
			t.Errorf("profile %q missing name or description", p.Code)
		}
		if len(p.Strengths) == 0 || len(p.Challenges) == 0 {
			t.Errorf("profile %q missing strengths or challenges", p.Code)
		}
		if len(p.Motivations) == 0 || len(p.Fears) == 0 {
			t.Errorf("profile %q missing motivations or fears", p.Code)
		}
		if len(p.IdealEnvironment) == 0 || len(p.GrowthTips) == 0 {
			t.Errorf("profile %q missing environment or growth tips", p.Code)
		}
	}
}

func TestWorkStyleEnums(t *testing.T) {
	paces := map[Pace]bool{PaceFast: true, PaceModerate: true, PaceSlow: true}
	focuses := map[Focus]bool{FocusTask: true, FocusPerson: true, FocusBalanced: true}
	approaches := map[Approach]bool{ApproachActive: true, ApproachReflective: true}
	decisions := map[DecisionMaking]bool{DecisionFast: true, DecisionDeliberate: true, DecisionConsultative: true}

	for _, p := range All() {
		ws := p.WorkStyle
		if !paces[ws.Pace] {
			t.Errorf("profile %q has invalid pace %q", p.Code, ws.Pace)
		}
		if !focuses[ws.Focus] {
			t.Errorf("profile %q has invalid focus %q", p.Code, ws.Focus)
		}
		if !approaches[ws.Approach] {
			t.Errorf("profile %q has invalid approach %q", p.Code, ws.Approach)
		}
		if !decisions[ws.DecisionMaking] {
			t.Errorf("profile %q has invalid decision-making %q", p.Code, ws.DecisionMaking)
		}
	}
}

func TestByFocusAndByPace(t *testing.T) {
	// D, C, D-C and S-C are the task-focused entries.
	task := ByFocus(FocusTask)
	if len(task) != 4 {
		t.Errorf("ByFocus(task) has %d entries, want 4", len(task))
	}
	for _, p := range task {
		if p.WorkStyle.Focus != FocusTask {
			t.Errorf("ByFocus(task) returned %q with focus %q", p.Code, p.WorkStyle.Focus)
		}
	}

	// D, I and D-I are the fast-paced entries.
	fast := ByPace(PaceFast)
	if len(fast) != 3 {
		t.Errorf("ByPace(fast) has %d entries, want 3", len(fast))
	}
	for _, p := range fast {
		if p.WorkStyle.Pace != PaceFast {
			t.Errorf("ByPace(fast) returned %q with pace %q", p.Code, p.WorkStyle.Pace)
		}
	}
}
