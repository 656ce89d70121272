package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studymap/studymap/internal/config"
	"github.com/studymap/studymap/internal/remediate"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a student's weakest topics, worst first",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
		classID, _ := cmd.Flags().GetString("class")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := openStoreFor(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.AttemptRepo().TopicStats(cmd.Context(), studentID, classID)
		if err != nil {
			return fmt.Errorf("aggregate attempts: %w", err)
		}

		ranking := remediate.Rank(stats, cfg.Remediate)
		top := ranking.Top(cfg.Remediate.TopK)
		if len(top) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no attempted topics yet")
			return nil
		}
		if ranking.Fallback {
			fmt.Fprintln(cmd.OutOrStdout(), "(low evidence: no topic has enough attempts, showing all attempted)")
		}
		for i, t := range top {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s  %.0f%% (%d/%d)\n",
				i+1, t.Label, t.Accuracy()*100, t.Correct, t.Attempts)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("student", "", "Student identifier")
	statsCmd.Flags().String("class", "", "Class identifier")
	statsCmd.MarkFlagRequired("student")
	statsCmd.MarkFlagRequired("class")
}
