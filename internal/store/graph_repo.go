package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/studymap/studymap/ent"
	"github.com/studymap/studymap/ent/graphsnapshot"
	"github.com/studymap/studymap/internal/knowledge"
)

// GraphRepo persists whole-graph snapshots, one row per class, and implements
// knowledge.SnapshotStore. Saves overwrite the row (last write wins).
type GraphRepo struct {
	client *ent.Client
}

func (r *GraphRepo) LoadGraph(ctx context.Context, classID string) ([]knowledge.Node, []knowledge.Edge, error) {
	row, err := r.client.GraphSnapshot.Query().
		Where(graphsnapshot.ClassID(classID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("query graph snapshot: %w", err)
	}

	raw, err := json.Marshal(row.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal stored graph: %w", err)
	}
	doc, err := knowledge.ParseDocument(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode stored graph: %w", err)
	}
	return doc.Nodes, doc.Edges, nil
}

func (r *GraphRepo) SaveGraph(ctx context.Context, classID string, nodes []knowledge.Node, edges []knowledge.Edge) error {
	raw, err := knowledge.EncodeDocument(nodes, edges)
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}

	n, err := r.client.GraphSnapshot.Update().
		Where(graphsnapshot.ClassID(classID)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update graph snapshot: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.GraphSnapshot.Create().
		SetClassID(classID).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create graph snapshot: %w", err)
	}
	return nil
}
