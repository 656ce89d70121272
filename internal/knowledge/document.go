package knowledge

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Document is the persisted JSON shape of a class graph. This shape is the
// only bit-exact contract the engine owns: nodes are {id, label}, edges are
// {source, target} referencing node ids, and it must round-trip unchanged
// through save/load.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// documentSchema constrains imported graph documents before they reach
// Graph.Load. Structural validity (dangling edges, cycles) is Load's job;
// this catches malformed shapes with a precise message.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"nodes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"label": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "label"},
				"additionalProperties": false,
			},
		},
		"edges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"source": map[string]any{"type": "string", "minLength": 1},
					"target": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"source", "target"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"nodes", "edges"},
	"additionalProperties": false,
}

var compileDocumentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	b, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://graph-document.json"
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(url)
})

// ParseDocument validates raw JSON against the graph document schema and
// decodes it. It does not check structural graph invariants; feed the result
// to Graph.Load for that.
func ParseDocument(raw []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrValidation{Field: "document", Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	schema, err := compileDocumentSchema()
	if err != nil {
		return nil, fmt.Errorf("compile graph document schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrValidation{Field: "document", Reason: err.Error()}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrValidation{Field: "document", Reason: err.Error()}
	}
	if doc.Nodes == nil {
		doc.Nodes = []Node{}
	}
	if doc.Edges == nil {
		doc.Edges = []Edge{}
	}
	return &doc, nil
}

// EncodeDocument serializes a snapshot in the persisted wire shape.
func EncodeDocument(nodes []Node, edges []Edge) ([]byte, error) {
	if nodes == nil {
		nodes = []Node{}
	}
	if edges == nil {
		edges = []Edge{}
	}
	return json.MarshalIndent(Document{Nodes: nodes, Edges: edges}, "", "  ")
}
