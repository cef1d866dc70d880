package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/teamlens/internal/assessment"
	"github.com/abhisek/teamlens/internal/disc"
	"github.com/abhisek/teamlens/internal/report"
)

var scoreCmd = &cobra.Command{
	Use:   "score [answers.json]",
	Short: "Score a completed assessment",
	Long: `Score reads an answer set as JSON, mapping question ids to choice
keys, e.g. {"1": "A", "2": "C", ...}, and prints the derived profile.
Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := readAnswers(args)
		if err != nil {
			return err
		}

		res, err := assessment.Complete(answers)
		if err != nil {
			return err
		}

		if name, _ := cmd.Flags().GetString("save"); name != "" {
			st, err := openStore(cmd)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			id, err := st.SaveAssessment(name, res)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved assessment #%d for %s\n", id, name)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(report.Profile(res.Profile))
		return nil
	},
}

// readAnswers loads an answer set from the given file argument or stdin.
func readAnswers(args []string) (disc.AnswerSet, error) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read answers: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	var answers disc.AnswerSet
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

func init() {
	scoreCmd.Flags().String("save", "", "Store the result in history under this name")
	scoreCmd.Flags().Bool("json", false, "Print the full result as JSON instead of a report")
}
