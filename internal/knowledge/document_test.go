package knowledge

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseDocument_Valid(t *testing.T) {
	raw := []byte(`{
		"nodes": [{"id": "1", "label": "Algebra"}, {"id": "2", "label": "Calculus"}],
		"edges": [{"source": "1", "target": "2"}]
	}`)

	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Nodes) != 2 || len(doc.Edges) != 1 {
		t.Errorf("parsed %d nodes, %d edges", len(doc.Nodes), len(doc.Edges))
	}
	if doc.Edges[0] != (Edge{Source: "1", Target: "2"}) {
		t.Errorf("edge = %v", doc.Edges[0])
	}
}

func TestParseDocument_EmptyGraph(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"nodes": [], "edges": []}`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Nodes == nil || doc.Edges == nil {
		t.Error("empty arrays must decode to non-nil slices for exact round-trips")
	}
}

func TestParseDocument_RejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{nodes}`},
		{"missing edges", `{"nodes": []}`},
		{"node without id", `{"nodes": [{"label": "x"}], "edges": []}`},
		{"empty node id", `{"nodes": [{"id": "", "label": "x"}], "edges": []}`},
		{"edge missing target", `{"nodes": [], "edges": [{"source": "1"}]}`},
		{"unknown field", `{"nodes": [], "edges": [], "extra": 1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseDocument([]byte(tc.raw)); err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestDocument_RoundTripIsExact(t *testing.T) {
	nodes := []Node{{ID: "1", Label: "A"}, {ID: "2", Label: "B"}}
	edges := []Edge{{"1", "2"}}

	raw, err := EncodeDocument(nodes, edges)
	if err != nil {
		t.Fatalf("EncodeDocument: %v", err)
	}
	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if !reflect.DeepEqual(doc.Nodes, nodes) || !reflect.DeepEqual(doc.Edges, edges) {
		t.Errorf("round-trip mismatch: %v / %v", doc.Nodes, doc.Edges)
	}
}

func TestDocument_WireShape(t *testing.T) {
	// The persisted shape is a bit-exact contract: {id,label} and
	// {source,target} with no extra keys.
	raw, err := EncodeDocument([]Node{{ID: "1", Label: "A"}}, []Edge{{"1", "1x"}})
	if err != nil {
		t.Fatalf("EncodeDocument: %v", err)
	}
	var shape struct {
		Nodes []map[string]any `json:"nodes"`
		Edges []map[string]any `json:"edges"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(shape.Nodes[0]) != 2 {
		t.Errorf("node keys = %v, want exactly id and label", shape.Nodes[0])
	}
	if len(shape.Edges[0]) != 2 {
		t.Errorf("edge keys = %v, want exactly source and target", shape.Edges[0])
	}
}
