// Code generated by ent, DO NOT EDIT.

package graphsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graphsnapshot type in the database.
	Label = "graph_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClassID holds the string denoting the class_id field in the database.
	FieldClassID = "class_id"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldSavedAt holds the string denoting the saved_at field in the database.
	FieldSavedAt = "saved_at"
	// Table holds the table name of the graphsnapshot in the database.
	Table = "graph_snapshots"
)

// Columns holds all SQL columns for graphsnapshot fields.
var Columns = []string{
	FieldID,
	FieldClassID,
	FieldData,
	FieldSavedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	ClassIDValidator func(string) error
	// DefaultSavedAt holds the default value on creation for the "saved_at" field.
	DefaultSavedAt func() time.Time
	// UpdateDefaultSavedAt holds the default value on update for the "saved_at" field.
	UpdateDefaultSavedAt func() time.Time
)

// OrderOption defines the ordering options for the GraphSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClassID orders the results by the class_id field.
func ByClassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassID, opts...).ToFunc()
}

// BySavedAt orders the results by the saved_at field.
func BySavedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSavedAt, opts...).ToFunc()
}
