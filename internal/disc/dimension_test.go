package disc

import "testing"

func TestAllDimensions(t *testing.T) {
	dims := AllDimensions()
	if len(dims) != 4 {
		t.Fatalf("expected 4 dimensions, got %d", len(dims))
	}
	want := []Dimension{Dominance, Influence, Steadiness, Conformity}
	for i, d := range dims {
		if d != want[i] {
			t.Errorf("dimension %d = %q, want %q", i, d, want[i])
		}
	}
}

func TestDimension_DisplayName(t *testing.T) {
	tests := []struct {
		dim  Dimension
		want string
	}{
		{Dominance, "Dominance"},
		{Influence, "Influence"},
		{Steadiness, "Steadiness"},
		{Conformity, "Conformity"},
		{"X", "X"},
	}

	for _, tt := range tests {
		got := tt.dim.DisplayName()
		if got != tt.want {
			t.Errorf("Dimension(%q).DisplayName() = %q, want %q", tt.dim, got, tt.want)
		}
	}
}

func TestChoiceKey_Valid(t *testing.T) {
	for _, k := range AllChoiceKeys() {
		if !k.Valid() {
			t.Errorf("ChoiceKey(%q).Valid() = false, want true", k)
		}
	}
	for _, k := range []ChoiceKey{"E", "a", "", "AB"} {
		if k.Valid() {
			t.Errorf("ChoiceKey(%q).Valid() = true, want false", k)
		}
	}
}

func TestScores_GetAdd(t *testing.T) {
	var s Scores
	s.Add(Dominance, 4)
	s.Add(Dominance, 4)
	s.Add(Conformity, 4)

	if got := s.Get(Dominance); got != 8 {
		t.Errorf("Get(D) = %d, want 8", got)
	}
	if got := s.Get(Conformity); got != 4 {
		t.Errorf("Get(C) = %d, want 4", got)
	}
	if got := s.Get(Influence); got != 0 {
		t.Errorf("Get(I) = %d, want 0", got)
	}
}

func TestIntensityFor(t *testing.T) {
	tests := []struct {
		score int
		want  Intensity
	}{
		{0, IntensityLow},
		{39, IntensityLow},
		{40, IntensityMedium},
		{69, IntensityMedium},
		{70, IntensityHigh},
		{100, IntensityHigh},
	}

	for _, tt := range tests {
		got := IntensityFor(tt.score)
		if got != tt.want {
			t.Errorf("IntensityFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPrimaryLetter(t *testing.T) {
	tests := []struct {
		code string
		want Dimension
	}{
		{"D", Dominance},
		{"D-I", Dominance},
		{"S-C", Steadiness},
		{"I", Influence},
		{"", ""},
	}

	for _, tt := range tests {
		got := PrimaryLetter(tt.code)
		if got != tt.want {
			t.Errorf("PrimaryLetter(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestValidProfileCode(t *testing.T) {
	for _, code := range AllProfileCodes() {
		if !ValidProfileCode(code) {
			t.Errorf("ValidProfileCode(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"I-D", "C-S", "X", ""} {
		if ValidProfileCode(code) {
			t.Errorf("ValidProfileCode(%q) = true, want false", code)
		}
	}
}
