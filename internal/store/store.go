// Package store persists assessment results and team analyses in a
// local SQLite database so past runs can be listed and revisited.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/abhisek/teamlens/internal/assessment"
	"github.com/abhisek/teamlens/internal/team"
)

// Store wraps the SQLite history database.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies pragmas and
// creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS assessments (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			name         TEXT    NOT NULL,
			profile_code TEXT    NOT NULL,
			result       TEXT    NOT NULL,
			created_at   TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_assessments_code    ON assessments(profile_code);

		CREATE TABLE IF NOT EXISTS team_analyses (
			team_id       TEXT PRIMARY KEY,
			member_count  INTEGER NOT NULL,
			average_score REAL    NOT NULL,
			analysis      TEXT    NOT NULL,
			created_at    TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_team_analyses_created ON team_analyses(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TEAMLENS_DB environment variable
// 2. $XDG_DATA_HOME/teamlens/teamlens.db
// 3. ~/.local/share/teamlens/teamlens.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TEAMLENS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "teamlens", "teamlens.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// AssessmentRecord is a stored assessment with its metadata.
type AssessmentRecord struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	ProfileCode string             `json:"profileCode"`
	Result      *assessment.Result `json:"result"`
	CreatedAt   string             `json:"createdAt"`
}

// SaveAssessment stores a completed assessment under a person's name.
func (s *Store) SaveAssessment(name string, res *assessment.Result) (int64, error) {
	payload, err := json.Marshal(res)
	if err != nil {
		return 0, fmt.Errorf("encode result: %w", err)
	}

	out, err := s.db.Exec(
		`INSERT INTO assessments (name, profile_code, result) VALUES (?, ?, ?)`,
		name, res.Profile.Code, string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("insert assessment: %w", err)
	}
	return out.LastInsertId()
}

// GetAssessment retrieves a stored assessment by id.
func (s *Store) GetAssessment(id int64) (*AssessmentRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, name, profile_code, result, created_at FROM assessments WHERE id = ?`, id,
	)
	return scanAssessment(row)
}

// ListAssessments returns stored assessments, newest first.
func (s *Store) ListAssessments(limit int) ([]AssessmentRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, profile_code, result, created_at
		 FROM assessments ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var records []AssessmentRecord
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// DeleteAssessment removes a stored assessment by id.
func (s *Store) DeleteAssessment(id int64) error {
	out, err := s.db.Exec(`DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	n, _ := out.RowsAffected()
	if n == 0 {
		return fmt.Errorf("assessment %d not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*AssessmentRecord, error) {
	var rec AssessmentRecord
	var payload string
	if err := row.Scan(&rec.ID, &rec.Name, &rec.ProfileCode, &payload, &rec.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &rec.Result); err != nil {
		return nil, fmt.Errorf("decode assessment %d: %w", rec.ID, err)
	}
	return &rec, nil
}

// TeamRecord is a stored team analysis with its metadata.
type TeamRecord struct {
	TeamID       string         `json:"teamId"`
	MemberCount  int            `json:"memberCount"`
	AverageScore float64        `json:"averageScore"`
	Analysis     *team.Analysis `json:"analysis"`
	CreatedAt    string         `json:"createdAt"`
}

// SaveTeamAnalysis stores a team analysis keyed by its generated id.
func (s *Store) SaveTeamAnalysis(a team.Analysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO team_analyses (team_id, member_count, average_score, analysis) VALUES (?, ?, ?, ?)`,
		a.TeamID, len(a.Members), a.Compatibility.AverageScore, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert team analysis: %w", err)
	}
	return nil
}

// GetTeamAnalysis retrieves a stored team analysis by team id.
func (s *Store) GetTeamAnalysis(teamID string) (*TeamRecord, error) {
	row := s.db.QueryRow(
		`SELECT team_id, member_count, average_score, analysis, created_at
		 FROM team_analyses WHERE team_id = ?`, teamID,
	)
	return scanTeam(row)
}

// ListTeamAnalyses returns stored team analyses, newest first.
func (s *Store) ListTeamAnalyses(limit int) ([]TeamRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT team_id, member_count, average_score, analysis, created_at
		 FROM team_analyses ORDER BY created_at DESC, team_id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list team analyses: %w", err)
	}
	defer rows.Close()

	var records []TeamRecord
	for rows.Next() {
		rec, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// DeleteTeamAnalysis removes a stored team analysis by team id.
func (s *Store) DeleteTeamAnalysis(teamID string) error {
	out, err := s.db.Exec(`DELETE FROM team_analyses WHERE team_id = ?`, teamID)
	if err != nil {
		return fmt.Errorf("delete team analysis: %w", err)
	}
	n, _ := out.RowsAffected()
	if n == 0 {
		return fmt.Errorf("team analysis %s not found", teamID)
	}
	return nil
}

func scanTeam(row rowScanner) (*TeamRecord, error) {
	var rec TeamRecord
	var payload string
	if err := row.Scan(&rec.TeamID, &rec.MemberCount, &rec.AverageScore, &payload, &rec.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &rec.Analysis); err != nil {
		return nil, fmt.Errorf("decode team analysis %s: %w", rec.TeamID, err)
	}
	return &rec, nil
}
