// Code generated by ent, DO NOT EDIT.

package graphsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studymap/studymap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldLTE(FieldID, id))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldEQ(FieldClassID, v))
}

// SavedAt applies equality check predicate on the "saved_at" field. It's identical to SavedAtEQ.
func SavedAt(v time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldEQ(FieldSavedAt, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldLTE(FieldClassID, v))
}

// ClassIDContains applies the Contains predicate on the "class_id" field.
func ClassIDContains(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldContains(FieldClassID, v))
}

// ClassIDHasPrefix applies the HasPrefix predicate on the "class_id" field.
func ClassIDHasPrefix(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldHasPrefix(FieldClassID, v))
}

// ClassIDHasSuffix applies the HasSuffix predicate on the "class_id" field.
func ClassIDHasSuffix(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldHasSuffix(FieldClassID, v))
}

// ClassIDEqualFold applies the EqualFold predicate on the "class_id" field.
func ClassIDEqualFold(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldEqualFold(FieldClassID, v))
}

// ClassIDContainsFold applies the ContainsFold predicate on the "class_id" field.
func ClassIDContainsFold(v string) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldContainsFold(FieldClassID, v))
}

// SavedAtEQ applies the EQ predicate on the "saved_at" field.
func SavedAtEQ(v time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldEQ(FieldSavedAt, v))
}

// SavedAtNEQ applies the NEQ predicate on the "saved_at" field.
func SavedAtNEQ(v time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldNEQ(FieldSavedAt, v))
}

// SavedAtIn applies the In predicate on the "saved_at" field.
func SavedAtIn(vs ...time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldIn(FieldSavedAt, vs...))
}

// SavedAtNotIn applies the NotIn predicate on the "saved_at" field.
func SavedAtNotIn(vs ...time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldNotIn(FieldSavedAt, vs...))
}

// SavedAtGT applies the GT predicate on the "saved_at" field.
func SavedAtGT(v time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldGT(FieldSavedAt, v))
}

// SavedAtGTE applies the GTE predicate on the "saved_at" field.
func SavedAtGTE(v time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldGTE(FieldSavedAt, v))
}

// SavedAtLT applies the LT predicate on the "saved_at" field.
func SavedAtLT(v time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldLT(FieldSavedAt, v))
}

// SavedAtLTE applies the LTE predicate on the "saved_at" field.
func SavedAtLTE(v time.Time) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.FieldLTE(FieldSavedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphSnapshot) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphSnapshot) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphSnapshot) predicate.GraphSnapshot {
	return predicate.GraphSnapshot(sql.NotPredicates(p))
}
