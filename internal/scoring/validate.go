package scoring

import (
	"fmt"
	"sort"

	"github.com/abhisek/teamlens/internal/disc"
)

// Validation is the result of a non-throwing answer pre-check.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateAnswers checks that an answer set has exactly one entry per
// table question and that every stored value is a valid choice key.
// It never fails hard; callers are expected to run it before Calculate.
func (c *Calculator) ValidateAnswers(answers disc.AnswerSet) Validation {
	errors := []string{}

	if len(answers) != len(c.table) {
		errors = append(errors, fmt.Sprintf("expected %d answers, got %d", len(c.table), len(answers)))
	}

	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if choice := answers[id]; !choice.Valid() {
			errors = append(errors, fmt.Sprintf("question %d: invalid choice %q", id, string(choice)))
		}
	}

	return Validation{Valid: len(errors) == 0, Errors: errors}
}
