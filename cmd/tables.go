package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/teamlens/internal/tables"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Export or check the engine's reference tables",
}

var tablesExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the reference tables as versioned JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := tables.Export().Marshal()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return os.WriteFile(args[0], data, 0o644)
		}
		fmt.Println(string(data))
		return nil
	},
}

var tablesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a tables document against the schema and engine version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		doc, err := tables.Load(data)
		if err != nil {
			return err
		}
		table, err := doc.ScoringTable()
		if err != nil {
			return err
		}

		fmt.Printf("%s: valid (version %s, %d questions, max raw %d)\n",
			args[0], doc.Version, len(table), table.MaxRaw())
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesExportCmd)
	tablesCmd.AddCommand(tablesCheckCmd)
}
