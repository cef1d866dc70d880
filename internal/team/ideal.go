package team

// CompositionSuggestion recommends a profile mix for a target size.
type CompositionSuggestion struct {
	Composition []string `json:"composition"`
	Rationale   string   `json:"rationale"`
	Priorities  []string `json:"priorities"`
}

// SuggestIdealComposition recommends a mix of profiles for a team of
// the given size: small up to five members, medium up to ten, large
// beyond that.
func SuggestIdealComposition(targetSize int) CompositionSuggestion {
	if targetSize <= 5 {
		return CompositionSuggestion{
			Composition: []string{"D or D-I", "I or I-S", "S or S-C", "C or D-C"},
			Rationale:   "Coverage of the four main profiles for small teams",
			Priorities: []string{
				"1st: profile D or D-I for leadership",
				"2nd: profile I or I-S for communication",
				"3rd: profile S or S-C for stability",
				"4th: profile C or D-C for quality",
			},
		}
	}
	if targetSize <= 10 {
		return CompositionSuggestion{
			Composition: []string{"2 D/D-I", "2 I/I-S", "2-3 S/S-C", "2 C/D-C"},
			Rationale:   "Profile redundancy for resilience and specialization",
			Priorities: []string{
				"Ensure at least one of each pure profile (D, I, S, C)",
				"Add combined profiles as the need arises",
				"Keep the balance between task and people focus",
			},
		}
	}
	return CompositionSuggestion{
		Composition: []string{"3+ D/D-I", "3+ I/I-S", "4+ S/S-C", "3+ C/D-C"},
		Rationale:   "Multiple profiles in every category for sub-teams",
		Priorities: []string{
			"Form sub-teams with profile diversity",
			"Assign leads of each profile to specific areas",
			"Keep communication flowing between sub-teams",
		},
	}
}
