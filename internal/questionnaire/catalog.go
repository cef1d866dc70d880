package questionnaire

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/abhisek/teamlens/internal/disc"
)

// Catalog holds an ordered question set with precomputed indices.
// It is immutable after construction and safe for concurrent reads.
type Catalog struct {
	questions  []Question
	byID       map[int]*Question
	byCategory map[Category][]Question
}

// c is the package-level canonical catalog, built from the seed.
var c = NewCatalog(seedQuestions)

// NewCatalog constructs a catalog from a slice of questions,
// preserving slice order as catalog order.
func NewCatalog(questions []Question) *Catalog {
	ct := &Catalog{
		questions:  questions,
		byID:       make(map[int]*Question, len(questions)),
		byCategory: make(map[Category][]Question),
	}
	for i := range ct.questions {
		q := &ct.questions[i]
		ct.byID[q.ID] = q
		ct.byCategory[q.Category] = append(ct.byCategory[q.Category], *q)
	}
	return ct
}

// Default returns the canonical 24-question catalog.
func Default() *Catalog {
	return c
}

// Len returns the number of questions in the catalog.
func (ct *Catalog) Len() int {
	return len(ct.questions)
}

// Questions returns all questions in catalog order.
func (ct *Catalog) Questions() []Question {
	return slices.Clone(ct.questions)
}

// Question returns a question by id, or an error if not found.
func (ct *Catalog) Question(id int) (Question, error) {
	q, ok := ct.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %d", id)
	}
	return *q, nil
}

// ByCategory returns all questions in the given category, in catalog order.
func (ct *Catalog) ByCategory(cat Category) []Question {
	return slices.Clone(ct.byCategory[cat])
}

// Completeness reports whether answers cover the whole catalog.
type Completeness struct {
	Valid   bool  `json:"valid"`
	Missing []int `json:"missing"`
}

// ValidateCompleteness checks that every catalog question has an answer.
// It only checks presence; choice-key validity is the scoring engine's
// ValidateAnswers concern.
func (ct *Catalog) ValidateCompleteness(answers disc.AnswerSet) Completeness {
	missing := []int{}
	for _, q := range ct.questions {
		if _, ok := answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return Completeness{Valid: len(missing) == 0, Missing: missing}
}

// CategoryProgress counts answered questions within one category.
type CategoryProgress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// Progress is a point-in-time snapshot of answering progress.
type Progress struct {
	Answered   int                           `json:"answered"`
	Total      int                           `json:"total"`
	Percentage int                           `json:"percentage"`
	ByCategory map[Category]CategoryProgress `json:"byCategory"`
}

// Progress returns a snapshot of how many catalog questions the given
// answers cover, overall and per category. Callers must re-invoke after
// updating answers; the result does not track the map.
func (ct *Catalog) Progress(answers disc.AnswerSet) Progress {
	p := Progress{
		Total:      len(ct.questions),
		ByCategory: make(map[Category]CategoryProgress, len(ct.byCategory)),
	}
	for _, q := range ct.questions {
		cp := p.ByCategory[q.Category]
		cp.Total++
		if _, ok := answers[q.ID]; ok {
			cp.Answered++
			p.Answered++
		}
		p.ByCategory[q.Category] = cp
	}
	if p.Total > 0 {
		p.Percentage = int(float64(p.Answered)/float64(p.Total)*100 + 0.5)
	}
	return p
}

// Stats summarizes the catalog's shape.
type Stats struct {
	TotalQuestions int              `json:"totalQuestions"`
	ByCategory     map[Category]int `json:"byCategory"`
	AverageWeight  float64          `json:"averageWeight"`
	MinWeight      int              `json:"minWeight"`
	MaxWeight      int              `json:"maxWeight"`
}

// Stats returns per-category counts and weight statistics.
func (ct *Catalog) Stats() Stats {
	st := Stats{
		TotalQuestions: len(ct.questions),
		ByCategory:     make(map[Category]int),
	}
	if len(ct.questions) == 0 {
		return st
	}
	st.MinWeight = ct.questions[0].Weight
	st.MaxWeight = ct.questions[0].Weight
	sum := 0
	for _, q := range ct.questions {
		st.ByCategory[q.Category]++
		sum += q.Weight
		if q.Weight < st.MinWeight {
			st.MinWeight = q.Weight
		}
		if q.Weight > st.MaxWeight {
			st.MaxWeight = q.Weight
		}
	}
	st.AverageWeight = float64(sum) / float64(len(ct.questions))
	return st
}

// Shuffled is a re-ordered, re-numbered presentation copy of a catalog,
// used during interview sessions to defeat answer-pattern recognition.
// Presentation ids run 1..N in shuffled order; canonical ids are kept so
// collected answers can be mapped back before scoring.
type Shuffled struct {
	Questions []Question  `json:"questions"`
	Canonical map[int]int `json:"canonical"` // presentation id -> canonical id
}

// Shuffle returns a shuffled copy of the catalog. The canonical catalog
// is never mutated; options and scoring semantics are preserved via the
// canonical-id mapping.
func (ct *Catalog) Shuffle() Shuffled {
	qs := slices.Clone(ct.questions)
	rand.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})

	sh := Shuffled{
		Questions: qs,
		Canonical: make(map[int]int, len(qs)),
	}
	for i := range sh.Questions {
		sh.Canonical[i+1] = sh.Questions[i].ID
		sh.Questions[i].ID = i + 1
	}
	return sh
}

// RemapAnswers converts answers keyed by presentation ids back to
// canonical question ids. Unknown presentation ids are dropped.
func (sh Shuffled) RemapAnswers(answers disc.AnswerSet) disc.AnswerSet {
	out := make(disc.AnswerSet, len(answers))
	for id, choice := range answers {
		if canonical, ok := sh.Canonical[id]; ok {
			out[canonical] = choice
		}
	}
	return out
}
