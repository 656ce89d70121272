package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphSnapshot stores the current knowledge graph of a class as one JSON
// document. Saves overwrite the row wholesale (last write wins); the event
// log, not this table, is the history.
type GraphSnapshot struct {
	ent.Schema
}

func (GraphSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("class_id").
			NotEmpty().
			Unique().
			Comment("Class the graph belongs to"),
		field.JSON("data", map[string]any{}).
			Comment("Graph document: nodes and edges"),
		field.Time("saved_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the snapshot was last written"),
	}
}

func (GraphSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("saved_at"),
	}
}
