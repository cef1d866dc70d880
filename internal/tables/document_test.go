package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/teamlens/internal/disc"
	"github.com/abhisek/teamlens/internal/scoring"
)

func TestExport_RoundTrip(t *testing.T) {
	data, err := Export().Marshal()
	require.NoError(t, err)

	doc, err := Load(data)
	require.NoError(t, err)

	assert.Equal(t, EngineVersion, doc.Version)
	assert.Len(t, doc.Scoring, 24)
	assert.Len(t, doc.Compatibility, 8)
	assert.Equal(t, 65, doc.Compatibility["D"]["D"])
	assert.Equal(t, 20, doc.Thresholds.Secondary)
	assert.Equal(t, 85, doc.Thresholds.LevelVeryHigh)
}

func TestDocument_ScoringTableDrivesCalculator(t *testing.T) {
	data, err := Export().Marshal()
	require.NoError(t, err)
	doc, err := Load(data)
	require.NoError(t, err)

	table, err := doc.ScoringTable()
	require.NoError(t, err)
	assert.Equal(t, 96, table.MaxRaw())

	answers := make(disc.AnswerSet, 24)
	for i := 1; i <= 24; i++ {
		answers[i] = disc.ChoiceB
	}
	p := scoring.NewCalculator(table).Calculate(answers)
	assert.Equal(t, "I", p.Code)
	assert.Equal(t, 100, p.Scores.I)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoad_RejectsMissingSections(t *testing.T) {
	_, err := Load([]byte(`{"version": "3.0.0"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoad_RejectsBadVersionString(t *testing.T) {
	data, err := Export().Marshal()
	require.NoError(t, err)
	mangled := strings.Replace(string(data), `"version": "3.0.0"`, `"version": "three"`, 1)

	_, err = Load([]byte(mangled))
	require.Error(t, err)
}

func TestLoad_RejectsMajorVersionMismatch(t *testing.T) {
	data, err := Export().Marshal()
	require.NoError(t, err)
	mangled := strings.Replace(string(data), `"version": "3.0.0"`, `"version": "4.0.0"`, 1)

	_, err = Load([]byte(mangled))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incompatible")
}

func TestLoad_AcceptsMinorVersionDrift(t *testing.T) {
	data, err := Export().Marshal()
	require.NoError(t, err)
	mangled := strings.Replace(string(data), `"version": "3.0.0"`, `"version": "3.1.0"`, 1)

	doc, err := Load([]byte(mangled))
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", doc.Version)
}

func TestScoringTable_RejectsUnknownKeys(t *testing.T) {
	doc := &Document{
		Scoring: map[string]map[string]map[string]int{
			"1": {"E": {"D": 4}},
		},
	}
	_, err := doc.ScoringTable()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown choice key")

	doc = &Document{
		Scoring: map[string]map[string]map[string]int{
			"1": {"A": {"X": 4}},
		},
	}
	_, err = doc.ScoringTable()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dimension")
}
