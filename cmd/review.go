package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studymap/studymap/internal/config"
	"github.com/studymap/studymap/internal/leitner"
	"github.com/studymap/studymap/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Record attempts and list due topics for a student",
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List topics due for review, most overdue first",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
		classID, _ := cmd.Flags().GetString("class")

		asOf := time.Now().UTC()
		if v, _ := cmd.Flags().GetString("as-of"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return fmt.Errorf("parse --as-of: %w", err)
			}
			asOf = t
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := openStoreFor(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sched := leitner.NewScheduler(st.ScheduleRepo(), cfg.Leitner)
		entries, err := sched.DueEntries(cmd.Context(), studentID, classID, asOf)
		if err != nil {
			return fmt.Errorf("list due topics: %w", err)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing due")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  box %d  due %s  accuracy %.0f%%\n",
				e.TopicLabel, e.Box, e.NextReview.Format("2006-01-02"), e.Accuracy()*100)
		}
		return nil
	},
}

var reviewRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record one quiz-attempt outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
		classID, _ := cmd.Flags().GetString("class")
		topicID, _ := cmd.Flags().GetString("topic")
		label, _ := cmd.Flags().GetString("label")
		correct, _ := cmd.Flags().GetBool("correct")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := openStoreFor(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sched := leitner.NewScheduler(st.ScheduleRepo(), cfg.Leitner)
		entry, err := sched.RecordAttempt(cmd.Context(), studentID, classID, topicID, label, correct, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}

		err = st.AttemptRepo().AppendAttempt(cmd.Context(), store.AttemptData{
			StudentID:  studentID,
			ClassID:    classID,
			TopicID:    topicID,
			TopicLabel: label,
			Correct:    correct,
		})
		if err != nil {
			return fmt.Errorf("append attempt event: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: box %d, streak %d, next review %s\n",
			entry.TopicLabel, entry.Box, entry.Streak, entry.NextReview.Format("2006-01-02"))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{reviewDueCmd, reviewRecordCmd} {
		c.Flags().String("student", "", "Student identifier")
		c.Flags().String("class", "", "Class identifier")
		c.MarkFlagRequired("student")
		c.MarkFlagRequired("class")
	}
	reviewDueCmd.Flags().String("as-of", "", "Evaluate due topics at this RFC3339 time instead of now")
	reviewRecordCmd.Flags().String("topic", "", "Topic identifier")
	reviewRecordCmd.Flags().String("label", "", "Topic display label")
	reviewRecordCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	reviewRecordCmd.MarkFlagRequired("topic")

	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewRecordCmd)
}
