package disc

// Dimension represents one of the four behavioral dimensions.
type Dimension string

const (
	Dominance  Dimension = "D"
	Influence  Dimension = "I"
	Steadiness Dimension = "S"
	Conformity Dimension = "C"
)

// AllDimensions returns the four dimensions in precedence order.
// This order also serves as the tie-break when scores are equal.
func AllDimensions() []Dimension {
	return []Dimension{Dominance, Influence, Steadiness, Conformity}
}

// DisplayName returns a human-readable name for a dimension.
func (d Dimension) DisplayName() string {
	switch d {
	case Dominance:
		return "Dominance"
	case Influence:
		return "Influence"
	case Steadiness:
		return "Steadiness"
	case Conformity:
		return "Conformity"
	default:
		return string(d)
	}
}

// Valid reports whether d is one of the four defined dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case Dominance, Influence, Steadiness, Conformity:
		return true
	}
	return false
}

// ChoiceKey identifies one of the four options of a question.
type ChoiceKey string

const (
	ChoiceA ChoiceKey = "A"
	ChoiceB ChoiceKey = "B"
	ChoiceC ChoiceKey = "C"
	ChoiceD ChoiceKey = "D"
)

// AllChoiceKeys returns the four choice keys in option order.
func AllChoiceKeys() []ChoiceKey {
	return []ChoiceKey{ChoiceA, ChoiceB, ChoiceC, ChoiceD}
}

// Valid reports whether k is one of the four defined choice keys.
func (k ChoiceKey) Valid() bool {
	switch k {
	case ChoiceA, ChoiceB, ChoiceC, ChoiceD:
		return true
	}
	return false
}
