// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymap/studymap/ent/graphsnapshot"
	"github.com/studymap/studymap/ent/predicate"
)

// GraphSnapshotUpdate is the builder for updating GraphSnapshot entities.
type GraphSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *GraphSnapshotMutation
}

// Where appends a list predicates to the GraphSnapshotUpdate builder.
func (gsu *GraphSnapshotUpdate) Where(ps ...predicate.GraphSnapshot) *GraphSnapshotUpdate {
	gsu.mutation.Where(ps...)
	return gsu
}

// SetClassID sets the "class_id" field.
func (gsu *GraphSnapshotUpdate) SetClassID(s string) *GraphSnapshotUpdate {
	gsu.mutation.SetClassID(s)
	return gsu
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (gsu *GraphSnapshotUpdate) SetNillableClassID(s *string) *GraphSnapshotUpdate {
	if s != nil {
		gsu.SetClassID(*s)
	}
	return gsu
}

// SetData sets the "data" field.
func (gsu *GraphSnapshotUpdate) SetData(m map[string]interface{}) *GraphSnapshotUpdate {
	gsu.mutation.SetData(m)
	return gsu
}

// SetSavedAt sets the "saved_at" field.
func (gsu *GraphSnapshotUpdate) SetSavedAt(t time.Time) *GraphSnapshotUpdate {
	gsu.mutation.SetSavedAt(t)
	return gsu
}

// Mutation returns the GraphSnapshotMutation object of the builder.
func (gsu *GraphSnapshotUpdate) Mutation() *GraphSnapshotMutation {
	return gsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (gsu *GraphSnapshotUpdate) Save(ctx context.Context) (int, error) {
	gsu.defaults()
	return withHooks(ctx, gsu.sqlSave, gsu.mutation, gsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gsu *GraphSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := gsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (gsu *GraphSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := gsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gsu *GraphSnapshotUpdate) ExecX(ctx context.Context) {
	if err := gsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gsu *GraphSnapshotUpdate) defaults() {
	if _, ok := gsu.mutation.SavedAt(); !ok {
		v := graphsnapshot.UpdateDefaultSavedAt()
		gsu.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gsu *GraphSnapshotUpdate) check() error {
	if v, ok := gsu.mutation.ClassID(); ok {
		if err := graphsnapshot.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "GraphSnapshot.class_id": %w`, err)}
		}
	}
	return nil
}

func (gsu *GraphSnapshotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := gsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphsnapshot.Table, graphsnapshot.Columns, sqlgraph.NewFieldSpec(graphsnapshot.FieldID, field.TypeInt))
	if ps := gsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gsu.mutation.ClassID(); ok {
		_spec.SetField(graphsnapshot.FieldClassID, field.TypeString, value)
	}
	if value, ok := gsu.mutation.Data(); ok {
		_spec.SetField(graphsnapshot.FieldData, field.TypeJSON, value)
	}
	if value, ok := gsu.mutation.SavedAt(); ok {
		_spec.SetField(graphsnapshot.FieldSavedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, gsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	gsu.mutation.done = true
	return n, nil
}

// GraphSnapshotUpdateOne is the builder for updating a single GraphSnapshot entity.
type GraphSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphSnapshotMutation
}

// SetClassID sets the "class_id" field.
func (gsuo *GraphSnapshotUpdateOne) SetClassID(s string) *GraphSnapshotUpdateOne {
	gsuo.mutation.SetClassID(s)
	return gsuo
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (gsuo *GraphSnapshotUpdateOne) SetNillableClassID(s *string) *GraphSnapshotUpdateOne {
	if s != nil {
		gsuo.SetClassID(*s)
	}
	return gsuo
}

// SetData sets the "data" field.
func (gsuo *GraphSnapshotUpdateOne) SetData(m map[string]interface{}) *GraphSnapshotUpdateOne {
	gsuo.mutation.SetData(m)
	return gsuo
}

// SetSavedAt sets the "saved_at" field.
func (gsuo *GraphSnapshotUpdateOne) SetSavedAt(t time.Time) *GraphSnapshotUpdateOne {
	gsuo.mutation.SetSavedAt(t)
	return gsuo
}

// Mutation returns the GraphSnapshotMutation object of the builder.
func (gsuo *GraphSnapshotUpdateOne) Mutation() *GraphSnapshotMutation {
	return gsuo.mutation
}

// Where appends a list predicates to the GraphSnapshotUpdate builder.
func (gsuo *GraphSnapshotUpdateOne) Where(ps ...predicate.GraphSnapshot) *GraphSnapshotUpdateOne {
	gsuo.mutation.Where(ps...)
	return gsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (gsuo *GraphSnapshotUpdateOne) Select(field string, fields ...string) *GraphSnapshotUpdateOne {
	gsuo.fields = append([]string{field}, fields...)
	return gsuo
}

// Save executes the query and returns the updated GraphSnapshot entity.
func (gsuo *GraphSnapshotUpdateOne) Save(ctx context.Context) (*GraphSnapshot, error) {
	gsuo.defaults()
	return withHooks(ctx, gsuo.sqlSave, gsuo.mutation, gsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gsuo *GraphSnapshotUpdateOne) SaveX(ctx context.Context) *GraphSnapshot {
	node, err := gsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (gsuo *GraphSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := gsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gsuo *GraphSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := gsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gsuo *GraphSnapshotUpdateOne) defaults() {
	if _, ok := gsuo.mutation.SavedAt(); !ok {
		v := graphsnapshot.UpdateDefaultSavedAt()
		gsuo.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gsuo *GraphSnapshotUpdateOne) check() error {
	if v, ok := gsuo.mutation.ClassID(); ok {
		if err := graphsnapshot.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "GraphSnapshot.class_id": %w`, err)}
		}
	}
	return nil
}

func (gsuo *GraphSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *GraphSnapshot, err error) {
	if err := gsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphsnapshot.Table, graphsnapshot.Columns, sqlgraph.NewFieldSpec(graphsnapshot.FieldID, field.TypeInt))
	id, ok := gsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := gsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphsnapshot.FieldID)
		for _, f := range fields {
			if !graphsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := gsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gsuo.mutation.ClassID(); ok {
		_spec.SetField(graphsnapshot.FieldClassID, field.TypeString, value)
	}
	if value, ok := gsuo.mutation.Data(); ok {
		_spec.SetField(graphsnapshot.FieldData, field.TypeJSON, value)
	}
	if value, ok := gsuo.mutation.SavedAt(); ok {
		_spec.SetField(graphsnapshot.FieldSavedAt, field.TypeTime, value)
	}
	_node = &GraphSnapshot{config: gsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, gsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	gsuo.mutation.done = true
	return _node, nil
}
