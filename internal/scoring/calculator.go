package scoring

import (
	"sort"

	"github.com/abhisek/teamlens/internal/disc"
	"github.com/abhisek/teamlens/internal/profiles"
)

// SecondaryThreshold is the minimum normalized score a second-highest
// dimension must strictly exceed to appear in the profile code.
const SecondaryThreshold = 20

// Calculator derives a behavioral profile from a complete answer set.
// It is a pure function of its inputs plus the injected table; a single
// Calculator may be shared by any number of goroutines.
type Calculator struct {
	table  Table
	maxRaw int
}

// calc is the package-level calculator over the default table.
var calc = NewCalculator(DefaultTable())

// NewCalculator builds a calculator for the given scoring table.
func NewCalculator(table Table) *Calculator {
	return &Calculator{table: table, maxRaw: table.MaxRaw()}
}

// Default returns the calculator for the built-in table.
func Default() *Calculator {
	return calc
}

// MaxRaw returns the normalization denominator derived from the table.
func (c *Calculator) MaxRaw() int {
	return c.maxRaw
}

// Calculate derives the profile for a complete answer set.
//
// The answers are assumed to have passed ValidateAnswers: ids outside
// the table and unknown choice keys are skipped during accumulation,
// which on incomplete input yields a misleadingly low profile rather
// than an error. Callers must validate first.
func (c *Calculator) Calculate(answers disc.AnswerSet) disc.Profile {
	raw := c.rawScores(answers)
	scores := c.normalize(raw)
	primary, secondary := determineProfiles(scores)

	code := string(primary)
	if secondary != "" {
		code += "-" + string(secondary)
	}

	return disc.Profile{
		Scores:    scores,
		Primary:   primary,
		Secondary: secondary,
		Code:      code,
		Graph:     graph(scores),
		Intensity: disc.IntensityFor(scores.Get(primary)),
	}
}

// rawScores accumulates table contributions for each answer.
func (c *Calculator) rawScores(answers disc.AnswerSet) disc.Scores {
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var raw disc.Scores
	for _, id := range ids {
		choices, ok := c.table[id]
		if !ok {
			continue
		}
		for dim, pts := range choices[answers[id]] {
			raw.Add(dim, pts)
		}
	}
	return raw
}

// normalize scales raw scores to 0-100, rounding to nearest.
func (c *Calculator) normalize(raw disc.Scores) disc.Scores {
	var out disc.Scores
	for _, d := range disc.AllDimensions() {
		out.Add(d, int(float64(raw.Get(d))/float64(c.maxRaw)*100+0.5))
	}
	return out
}

// determineProfiles picks the primary (argmax, ties broken by the
// D > I > S > C precedence of AllDimensions) and the secondary (the
// next-highest dimension, included only above the threshold).
func determineProfiles(scores disc.Scores) (primary, secondary disc.Dimension) {
	for _, d := range disc.AllDimensions() {
		if primary == "" || scores.Get(d) > scores.Get(primary) {
			primary = d
		}
	}
	for _, d := range disc.AllDimensions() {
		if d == primary {
			continue
		}
		if secondary == "" || scores.Get(d) > scores.Get(secondary) {
			secondary = d
		}
	}
	if scores.Get(secondary) <= SecondaryThreshold {
		secondary = ""
	}
	return primary, secondary
}

// graph renders normalized scores on the 0-10 display scale.
func graph(scores disc.Scores) disc.Graph {
	var g disc.Graph
	for i, d := range disc.AllDimensions() {
		g[i] = int(float64(scores.Get(d))/10 + 0.5)
	}
	return g
}

// ResolveCharacteristics looks up knowledge-base characteristics for a
// profile code, degrading gracefully: an unknown combined code falls
// back to its primary letter's pure entry, and as a last resort to the
// Dominance entry. This is the engine-side fallback rule; the bare
// profiles accessor applies none.
func ResolveCharacteristics(code string) *profiles.Characteristics {
	if p := profiles.ByCode(code); p != nil {
		return p
	}
	if p := profiles.ByCode(string(disc.PrimaryLetter(code))); p != nil {
		return p
	}
	return profiles.ByCode(string(disc.Dominance))
}
