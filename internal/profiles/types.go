package profiles

// Pace describes a profile's preferred working speed.
type Pace string

const (
	PaceFast     Pace = "fast"
	PaceModerate Pace = "moderate"
	PaceSlow     Pace = "slow"
)

// Focus describes whether a profile orients toward tasks or people.
type Focus string

const (
	FocusTask     Focus = "task"
	FocusPerson   Focus = "person"
	FocusBalanced Focus = "balanced"
)

// Approach describes whether a profile acts first or reflects first.
type Approach string

const (
	ApproachActive     Approach = "active"
	ApproachReflective Approach = "reflective"
)

// DecisionMaking describes how a profile reaches decisions.
type DecisionMaking string

const (
	DecisionFast         DecisionMaking = "fast"
	DecisionDeliberate   DecisionMaking = "deliberate"
	DecisionConsultative DecisionMaking = "consultative"
)

// WorkStyle groups the four work-style axes of a profile.
type WorkStyle struct {
	Pace           Pace           `json:"pace"`
	Focus          Focus          `json:"focus"`
	Approach       Approach       `json:"approach"`
	DecisionMaking DecisionMaking `json:"decisionMaking"`
}

// Communication describes how a profile prefers to exchange information.
type Communication struct {
	Style       string   `json:"style"`
	Preferences []string `json:"preferences"`
	Avoid       []string `json:"avoid"`
}

// Leadership describes a profile's leadership style and gaps.
type Leadership struct {
	Style            string   `json:"style"`
	Strengths        []string `json:"strengths"`
	DevelopmentAreas []string `json:"developmentAreas"`
}

// Characteristics is the full knowledge-base entry for one archetype.
// Entries are read-only reference data, defined once at process start.
type Characteristics struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Strengths   []string `json:"strengths"`
	Challenges  []string `json:"challenges"`
	Motivations []string `json:"motivations"`
	Fears       []string `json:"fears"`

	WorkStyle     WorkStyle     `json:"workStyle"`
	Communication Communication `json:"communication"`
	Leadership    Leadership    `json:"leadership"`

	IdealEnvironment []string `json:"idealEnvironment"`
	GrowthTips       []string `json:"growthTips"`
	Examples         []string `json:"examples"`
}
