package compat

// DefaultScore is returned for pairs the matrix does not tabulate:
// an unknown combination is treated as moderate, not as an error.
const DefaultScore = 70

// matrix holds the hand-authored pairwise scores, keyed by ordered
// (code, code) pair. The table is not guaranteed symmetric, so lookups
// must not be reordered or symmetrized.
var matrix = map[string]map[string]int{
	"D": {
		"D": 65, // two dominants may compete
		"I": 85, // D drives, I energizes
		"S": 55, // D pushes, S resists
		"C": 70, // D decides, C analyzes
		"D-I": 80, "D-C": 75, "I-S": 70, "S-C": 60,
	},
	"I": {
		"D": 85,
		"I": 75, // two influencers may scatter
		"S": 90, // I lifts, S grounds
		"C": 60, // I improvises, C deliberates
		"D-I": 88, "D-C": 65, "I-S": 92, "S-C": 70,
	},
	"S": {
		"D": 55,
		"I": 90,
		"S": 80, // two steady profiles are harmonious
		"C": 85, // S supports, C structures
		"D-I": 70, "D-C": 60, "I-S": 95, "S-C": 88,
	},
	"C": {
		"D": 70,
		"I": 60,
		"S": 85,
		"C": 70, // two analysts can be slow
		"D-I": 65, "D-C": 82, "I-S": 75, "S-C": 90,
	},
	"D-I": {
		"D": 80, "I": 88, "S": 70, "C": 65,
		"D-I": 78, "D-C": 75, "I-S": 82, "S-C": 68,
	},
	"D-C": {
		"D": 75, "I": 65, "S": 60, "C": 82,
		"D-I": 75, "D-C": 80, "I-S": 68, "S-C": 75,
	},
	"I-S": {
		"D": 70, "I": 92, "S": 95, "C": 75,
		"D-I": 82, "D-C": 68, "I-S": 90, "S-C": 85,
	},
	"S-C": {
		"D": 60, "I": 70, "S": 88, "C": 90,
		"D-I": 68, "D-C": 75, "I-S": 85, "S-C": 88,
	},
}

// MatrixScore looks up the ordered-pair score for two profile codes,
// falling back to DefaultScore when either code or the pair is absent.
func MatrixScore(codeA, codeB string) int {
	row, ok := matrix[codeA]
	if !ok {
		return DefaultScore
	}
	score, ok := row[codeB]
	if !ok {
		return DefaultScore
	}
	return score
}

// Matrix returns a deep copy of the pairwise score table.
func Matrix() map[string]map[string]int {
	out := make(map[string]map[string]int, len(matrix))
	for code, row := range matrix {
		cp := make(map[string]int, len(row))
		for other, score := range row {
			cp[other] = score
		}
		out[code] = cp
	}
	return out
}
