package scoring

import (
	"github.com/abhisek/teamlens/internal/disc"
	"github.com/abhisek/teamlens/internal/questionnaire"
)

// Contribution maps dimensions to the points one choice adds. A choice
// may span more than one dimension, though every entry in the default
// table contributes to exactly one.
type Contribution map[disc.Dimension]int

// Table maps question id and choice key to a per-dimension contribution.
// It is the scoring half of the questionnaire and must be versioned
// together with it.
type Table map[int]map[disc.ChoiceKey]Contribution

// MaxRaw returns the highest raw score a single dimension could
// theoretically accumulate: the sum over questions of the largest
// per-choice contribution. Deriving it from the table keeps the
// normalization denominator in lockstep with the catalog (96 for the
// default 24-question, 4-point table).
func (t Table) MaxRaw() int {
	total := 0
	for _, choices := range t {
		best := 0
		for _, contrib := range choices {
			sum := 0
			for _, pts := range contrib {
				sum += pts
			}
			if sum > best {
				best = sum
			}
		}
		total += best
	}
	return total
}

// pointsPerAnswer is the fixed contribution of every choice in the
// default table.
const pointsPerAnswer = 4

// choiceDimensions maps each choice key to the dimension it expresses:
// option A of every question is the Dominance answer, B Influence,
// C Steadiness and D Conformity, matching the authored option texts.
var choiceDimensions = map[disc.ChoiceKey]disc.Dimension{
	disc.ChoiceA: disc.Dominance,
	disc.ChoiceB: disc.Influence,
	disc.ChoiceC: disc.Steadiness,
	disc.ChoiceD: disc.Conformity,
}

// defaultTable is built over the canonical catalog so that adding or
// removing questions moves the normalization denominator with it.
var defaultTable = TableFor(questionnaire.Default())

// TableFor builds the default-rule scoring table for a catalog.
func TableFor(catalog *questionnaire.Catalog) Table {
	t := make(Table, catalog.Len())
	for _, q := range catalog.Questions() {
		choices := make(map[disc.ChoiceKey]Contribution, len(choiceDimensions))
		for key, dim := range choiceDimensions {
			choices[key] = Contribution{dim: pointsPerAnswer}
		}
		t[q.ID] = choices
	}
	return t
}

// DefaultTable returns the built-in scoring table.
func DefaultTable() Table {
	return defaultTable
}
