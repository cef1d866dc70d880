package compat

import "github.com/abhisek/teamlens/internal/disc"

// Narrative guidance keys on primary letters in pair order, so it is
// coarser than the numeric matrix and, like it, order-sensitive:
// a (D, I) pair reads strengths that an (I, D) pair does not.

// PairStrengths returns what an ordered pair of profile codes tends to
// do well together.
func PairStrengths(codeA, codeB string) []string {
	a, b := disc.PrimaryLetter(codeA), disc.PrimaryLetter(codeB)

	var strengths []string

	if a == disc.Dominance && b == disc.Influence {
		strengths = append(strengths,
			"D leads, I motivates, a powerful combination",
			"They complement each other on action (D) and people (I)")
	}
	if a == disc.Influence && b == disc.Steadiness {
		strengths = append(strengths,
			"I energizes, S stabilizes, a well-matched balance",
			"Excellent for collaborative work")
	}
	if a == disc.Steadiness && b == disc.Conformity {
		strengths = append(strengths,
			"S supports, C structures, a natural synergy",
			"Reliability and quality assured")
	}
	if a == disc.Dominance && b == disc.Conformity {
		strengths = append(strengths,
			"D decides, C analyzes, well-grounded decisions",
			"Results with quality")
	}

	if len(strengths) == 0 {
		return []string{"Potential to complement each other"}
	}
	return strengths
}

// PairChallenges returns the friction points of an ordered pair.
func PairChallenges(codeA, codeB string) []string {
	a, b := disc.PrimaryLetter(codeA), disc.PrimaryLetter(codeB)

	var challenges []string

	if a == disc.Dominance && b == disc.Dominance {
		challenges = append(challenges,
			"Possible conflict over authority",
			"Competition for control")
	}
	if a == disc.Dominance && b == disc.Steadiness {
		challenges = append(challenges,
			"D may push too hard, S may resist",
			"Different working rhythms")
	}
	if a == disc.Influence && b == disc.Conformity {
		challenges = append(challenges,
			"I is spontaneous, C is cautious",
			"Different priorities (people vs precision)")
	}
	if a == disc.Conformity && b == disc.Conformity {
		challenges = append(challenges,
			"Over-analysis can delay action",
			"Double perfectionism")
	}

	if len(challenges) == 0 {
		return []string{"Requires mutual adaptation"}
	}
	return challenges
}

// PairTips returns working-together advice for an ordered pair.
func PairTips(codeA, codeB string) []string {
	a, b := disc.PrimaryLetter(codeA), disc.PrimaryLetter(codeB)

	var tips []string

	if a == disc.Dominance && b == disc.Steadiness {
		tips = append(tips,
			"D: allow time and introduce changes gradually",
			"S: voice your concerns openly")
	}
	if a == disc.Influence && b == disc.Conformity {
		tips = append(tips,
			"I: respect the need for data and precision",
			"C: appreciate the creativity and enthusiasm")
	}
	if a == disc.Dominance && b == disc.Dominance {
		tips = append(tips,
			"Define areas of responsibility clearly",
			"Focus on shared goals")
	}

	if len(tips) == 0 {
		return []string{"Keep communication open and respect mutual differences"}
	}
	return tips
}
