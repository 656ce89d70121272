// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studymap/studymap/ent/graphsnapshot"
)

// GraphSnapshot is the model entity for the GraphSnapshot schema.
type GraphSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Class the graph belongs to
	ClassID string `json:"class_id,omitempty"`
	// Graph document: nodes and edges
	Data map[string]interface{} `json:"data,omitempty"`
	// When the snapshot was last written
	SavedAt      time.Time `json:"saved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphsnapshot.FieldData:
			values[i] = new([]byte)
		case graphsnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case graphsnapshot.FieldClassID:
			values[i] = new(sql.NullString)
		case graphsnapshot.FieldSavedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphSnapshot fields.
func (gs *GraphSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			gs.ID = int(value.Int64)
		case graphsnapshot.FieldClassID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_id", values[i])
			} else if value.Valid {
				gs.ClassID = value.String
			}
		case graphsnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &gs.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case graphsnapshot.FieldSavedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field saved_at", values[i])
			} else if value.Valid {
				gs.SavedAt = value.Time
			}
		default:
			gs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GraphSnapshot.
// This includes values selected through modifiers, order, etc.
func (gs *GraphSnapshot) Value(name string) (ent.Value, error) {
	return gs.selectValues.Get(name)
}

// Update returns a builder for updating this GraphSnapshot.
// Note that you need to call GraphSnapshot.Unwrap() before calling this method if this GraphSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (gs *GraphSnapshot) Update() *GraphSnapshotUpdateOne {
	return NewGraphSnapshotClient(gs.config).UpdateOne(gs)
}

// Unwrap unwraps the GraphSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (gs *GraphSnapshot) Unwrap() *GraphSnapshot {
	_tx, ok := gs.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphSnapshot is not a transactional entity")
	}
	gs.config.driver = _tx.drv
	return gs
}

// String implements the fmt.Stringer.
func (gs *GraphSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("GraphSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", gs.ID))
	builder.WriteString("class_id=")
	builder.WriteString(gs.ClassID)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", gs.Data))
	builder.WriteString(", ")
	builder.WriteString("saved_at=")
	builder.WriteString(gs.SavedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GraphSnapshots is a parsable slice of GraphSnapshot.
type GraphSnapshots []*GraphSnapshot
