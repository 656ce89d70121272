package cmd

import (
	"github.com/spf13/cobra"

	"github.com/studymap/studymap/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studymap",
	Short: "Knowledge graph and spaced-repetition engine for classrooms",
	Long: "Studymap maintains a prerequisite graph of course topics per class and\n" +
		"tracks per-student Leitner review schedules over them.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYMAP_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYMAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
