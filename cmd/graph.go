package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/studymap/studymap/internal/knowledge"
	"github.com/studymap/studymap/internal/store"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect, export and import class knowledge graphs",
}

var graphCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a class's stored graph and report its shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetString("class")

		st, err := openStoreFor(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := knowledge.OpenSession(cmd.Context(), st.GraphRepo(), classID)
		if err != nil {
			return fmt.Errorf("open graph: %w", err)
		}

		g := sess.Graph()
		fmt.Fprintf(cmd.OutOrStdout(), "class %s: %d topics, %d prerequisite edges, acyclic\n",
			classID, g.NodeCount(), g.EdgeCount())

		if err := knowledge.CanCreateLesson(g.Labels()); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "lesson creation blocked: %v\n", err)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "lesson creation ready")
		}
		return nil
	},
}

var graphExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a class's graph document to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetString("class")

		st, err := openStoreFor(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := knowledge.OpenSession(cmd.Context(), st.GraphRepo(), classID)
		if err != nil {
			return fmt.Errorf("open graph: %w", err)
		}

		nodes, edges := sess.Graph().Snapshot()
		raw, err := knowledge.EncodeDocument(nodes, edges)
		if err != nil {
			return fmt.Errorf("encode graph: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	},
}

var graphImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Validate a graph document and save it as the class's graph",
	Long: "Reads a graph document from the given file (or stdin), validates it\n" +
		"(schema, dangling edges, cycles) and overwrites the class's stored graph.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetString("class")

		var raw []byte
		var err error
		if len(args) == 1 {
			raw, err = os.ReadFile(args[0])
		} else {
			raw, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		doc, err := knowledge.ParseDocument(raw)
		if err != nil {
			return fmt.Errorf("parse document: %w", err)
		}
		g := knowledge.NewGraph()
		if err := g.Load(doc.Nodes, doc.Edges); err != nil {
			return fmt.Errorf("invalid graph: %w", err)
		}

		st, err := openStoreFor(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.GraphRepo().SaveGraph(cmd.Context(), classID, doc.Nodes, doc.Edges); err != nil {
			return fmt.Errorf("save graph: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d topics, %d edges into class %s\n",
			len(doc.Nodes), len(doc.Edges), classID)
		return nil
	},
}

func openStoreFor(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func init() {
	for _, c := range []*cobra.Command{graphCheckCmd, graphExportCmd, graphImportCmd} {
		c.Flags().String("class", "", "Class identifier")
		c.MarkFlagRequired("class")
		graphCmd.AddCommand(c)
	}
}
