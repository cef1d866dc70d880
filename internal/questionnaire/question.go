package questionnaire

import "github.com/abhisek/teamlens/internal/disc"

// Category represents a thematic group of questions.
type Category string

const (
	CategoryBehavior      Category = "behavior"
	CategoryCommunication Category = "communication"
	CategoryWork          Category = "work"
	CategoryLeadership    Category = "leadership"
)

// AllCategories returns all categories in catalog order.
func AllCategories() []Category {
	return []Category{
		CategoryBehavior,
		CategoryCommunication,
		CategoryWork,
		CategoryLeadership,
	}
}

// DisplayName returns a human-readable label for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryBehavior:
		return "General Behavior"
	case CategoryCommunication:
		return "Communication"
	case CategoryWork:
		return "Teamwork"
	case CategoryLeadership:
		return "Leadership & Decision-Making"
	default:
		return string(c)
	}
}

// Description returns a one-line explanation of what a category probes.
func (c Category) Description() string {
	switch c {
	case CategoryBehavior:
		return "How you naturally act day to day"
	case CategoryCommunication:
		return "How you express yourself and interact"
	case CategoryWork:
		return "Your preferences in the work environment"
	case CategoryLeadership:
		return "How you lead and make decisions"
	default:
		return ""
	}
}

// Question is a single catalog entry with exactly four labeled options.
// The weight (1-5) records authored importance and is informational only;
// it does not participate in scoring.
type Question struct {
	ID       int                        `json:"id"`
	Text     string                     `json:"text"`
	Category Category                   `json:"category"`
	Options  map[disc.ChoiceKey]string  `json:"options"`
	Weight   int                        `json:"weight"`
}
