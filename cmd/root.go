package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/teamlens/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "teamlens",
	Short: "Behavioral profiling and team compatibility analysis",
	Long:  "Teamlens scores behavioral self-assessments, maps respondents to profile archetypes and analyzes how teams fit together.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TEAMLENS_DB env var)")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TEAMLENS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
