// Package tables serializes the engine's reference data as a versioned
// JSON document: the scoring table, the pairwise compatibility matrix
// and the classification thresholds. Documents can be exported for
// inspection and loaded back to drive the calculator with an alternate
// table, with schema and version checks guarding the load path.
package tables

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/mod/semver"

	"github.com/abhisek/teamlens/internal/compat"
	"github.com/abhisek/teamlens/internal/disc"
	"github.com/abhisek/teamlens/internal/scoring"
)

// EngineVersion is the semantic version of the built-in reference data.
// Loaded documents must share its major version.
const EngineVersion = "3.0.0"

// Thresholds groups the classification cut-offs of the engine.
type Thresholds struct {
	Secondary       int `json:"secondary"`
	IntensityMedium int `json:"intensityMedium"`
	IntensityHigh   int `json:"intensityHigh"`
	LevelMedium     int `json:"levelMedium"`
	LevelHigh       int `json:"levelHigh"`
	LevelVeryHigh   int `json:"levelVeryHigh"`
}

// Document is the on-disk form of the reference data. Scoring keys are
// decimal question ids mapping choice keys to per-dimension points.
type Document struct {
	Version       string                               `json:"version"`
	Scoring       map[string]map[string]map[string]int `json:"scoring"`
	Compatibility map[string]map[string]int            `json:"compatibility"`
	Thresholds    Thresholds                           `json:"thresholds"`
}

// Export captures the built-in reference data as a document.
func Export() *Document {
	table := scoring.DefaultTable()
	sc := make(map[string]map[string]map[string]int, len(table))
	for id, choices := range table {
		ch := make(map[string]map[string]int, len(choices))
		for key, contrib := range choices {
			dims := make(map[string]int, len(contrib))
			for dim, pts := range contrib {
				dims[string(dim)] = pts
			}
			ch[string(key)] = dims
		}
		sc[strconv.Itoa(id)] = ch
	}

	return &Document{
		Version:       EngineVersion,
		Scoring:       sc,
		Compatibility: compat.Matrix(),
		Thresholds: Thresholds{
			Secondary:       scoring.SecondaryThreshold,
			IntensityMedium: disc.IntensityMediumMin,
			IntensityHigh:   disc.IntensityHighMin,
			LevelMedium:     compat.LevelMediumMin,
			LevelHigh:       compat.LevelHighMin,
			LevelVeryHigh:   compat.LevelVeryHighMin,
		},
	}
}

// Marshal renders the document as indented JSON.
func (d *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Load parses and validates a document: well-formed JSON, schema
// conformance, and a version sharing the engine's major.
func Load(data []byte) (*Document, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	v := "v" + doc.Version
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("invalid document version %q", doc.Version)
	}
	if semver.Major(v) != semver.Major("v"+EngineVersion) {
		return nil, fmt.Errorf("document version %s is incompatible with engine %s", doc.Version, EngineVersion)
	}

	return &doc, nil
}

// ScoringTable converts the document's scoring section into a table
// the calculator can run on.
func (d *Document) ScoringTable() (scoring.Table, error) {
	table := make(scoring.Table, len(d.Scoring))
	for idStr, choices := range d.Scoring {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("scoring key %q is not a question id", idStr)
		}
		ch := make(map[disc.ChoiceKey]scoring.Contribution, len(choices))
		for key, dims := range choices {
			choice := disc.ChoiceKey(key)
			if !choice.Valid() {
				return nil, fmt.Errorf("question %d: unknown choice key %q", id, key)
			}
			contrib := make(scoring.Contribution, len(dims))
			for name, pts := range dims {
				dim := disc.Dimension(name)
				if !dim.Valid() {
					return nil, fmt.Errorf("question %d choice %s: unknown dimension %q", id, key, name)
				}
				contrib[dim] = pts
			}
			ch[choice] = contrib
		}
		table[id] = ch
	}
	return table, nil
}
