package disc

// Scores holds one numeric score per behavioral dimension.
// The same shape is used for raw accumulation and for the
// normalized 0-100 scale.
type Scores struct {
	D int `json:"d"`
	I int `json:"i"`
	S int `json:"s"`
	C int `json:"c"`
}

// Get returns the score for the given dimension.
func (s Scores) Get(d Dimension) int {
	switch d {
	case Dominance:
		return s.D
	case Influence:
		return s.I
	case Steadiness:
		return s.S
	case Conformity:
		return s.C
	default:
		return 0
	}
}

// Add adds n to the score for the given dimension.
func (s *Scores) Add(d Dimension, n int) {
	switch d {
	case Dominance:
		s.D += n
	case Influence:
		s.I += n
	case Steadiness:
		s.S += n
	case Conformity:
		s.C += n
	}
}

// Intensity is a coarse tier summarizing how strongly a respondent
// expresses their primary dimension.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Minimum normalized scores for the medium and high intensity tiers.
const (
	IntensityMediumMin = 40
	IntensityHighMin   = 70
)

// IntensityFor classifies a primary dimension's normalized score.
func IntensityFor(primaryScore int) Intensity {
	switch {
	case primaryScore >= IntensityHighMin:
		return IntensityHigh
	case primaryScore >= IntensityMediumMin:
		return IntensityMedium
	default:
		return IntensityLow
	}
}

// Graph is the display-ready 0-10 rendering of normalized scores,
// in D, I, S, C order.
type Graph [4]int

// AnswerSet maps question ids to the chosen option. It is complete
// when every catalog question has exactly one valid choice.
type AnswerSet map[int]ChoiceKey

// Profile is the derived behavioral profile for one respondent.
// It is a plain value with no identity or lifecycle.
type Profile struct {
	Scores    Scores    `json:"scores"`
	Primary   Dimension `json:"primaryProfile"`
	Secondary Dimension `json:"secondaryProfile,omitempty"`
	Code      string    `json:"profileCode"`
	Graph     Graph     `json:"graph"`
	Intensity Intensity `json:"intensity"`
}

// AllProfileCodes returns the eight archetype codes: the four pure
// letters plus the four tabulated combined forms.
func AllProfileCodes() []string {
	return []string{"D", "I", "S", "C", "D-I", "D-C", "I-S", "S-C"}
}

// ValidProfileCode reports whether code is one of the eight archetypes.
func ValidProfileCode(code string) bool {
	for _, c := range AllProfileCodes() {
		if c == code {
			return true
		}
	}
	return false
}

// PrimaryLetter returns the leading dimension letter of a profile code,
// e.g. "D" for both "D" and "D-I". Returns an empty dimension for an
// empty code.
func PrimaryLetter(code string) Dimension {
	if code == "" {
		return ""
	}
	return Dimension(code[:1])
}
