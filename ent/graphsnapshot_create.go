// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymap/studymap/ent/graphsnapshot"
)

// GraphSnapshotCreate is the builder for creating a GraphSnapshot entity.
type GraphSnapshotCreate struct {
	config
	mutation *GraphSnapshotMutation
	hooks    []Hook
}

// SetClassID sets the "class_id" field.
func (gsc *GraphSnapshotCreate) SetClassID(s string) *GraphSnapshotCreate {
	gsc.mutation.SetClassID(s)
	return gsc
}

// SetData sets the "data" field.
func (gsc *GraphSnapshotCreate) SetData(m map[string]interface{}) *GraphSnapshotCreate {
	gsc.mutation.SetData(m)
	return gsc
}

// SetSavedAt sets the "saved_at" field.
func (gsc *GraphSnapshotCreate) SetSavedAt(t time.Time) *GraphSnapshotCreate {
	gsc.mutation.SetSavedAt(t)
	return gsc
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (gsc *GraphSnapshotCreate) SetNillableSavedAt(t *time.Time) *GraphSnapshotCreate {
	if t != nil {
		gsc.SetSavedAt(*t)
	}
	return gsc
}

// Mutation returns the GraphSnapshotMutation object of the builder.
func (gsc *GraphSnapshotCreate) Mutation() *GraphSnapshotMutation {
	return gsc.mutation
}

// Save creates the GraphSnapshot in the database.
func (gsc *GraphSnapshotCreate) Save(ctx context.Context) (*GraphSnapshot, error) {
	gsc.defaults()
	return withHooks(ctx, gsc.sqlSave, gsc.mutation, gsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (gsc *GraphSnapshotCreate) SaveX(ctx context.Context) *GraphSnapshot {
	v, err := gsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gsc *GraphSnapshotCreate) Exec(ctx context.Context) error {
	_, err := gsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gsc *GraphSnapshotCreate) ExecX(ctx context.Context) {
	if err := gsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gsc *GraphSnapshotCreate) defaults() {
	if _, ok := gsc.mutation.SavedAt(); !ok {
		v := graphsnapshot.DefaultSavedAt()
		gsc.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gsc *GraphSnapshotCreate) check() error {
	if _, ok := gsc.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "GraphSnapshot.class_id"`)}
	}
	if v, ok := gsc.mutation.ClassID(); ok {
		if err := graphsnapshot.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "GraphSnapshot.class_id": %w`, err)}
		}
	}
	if _, ok := gsc.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "GraphSnapshot.data"`)}
	}
	if _, ok := gsc.mutation.SavedAt(); !ok {
		return &ValidationError{Name: "saved_at", err: errors.New(`ent: missing required field "GraphSnapshot.saved_at"`)}
	}
	return nil
}

func (gsc *GraphSnapshotCreate) sqlSave(ctx context.Context) (*GraphSnapshot, error) {
	if err := gsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := gsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, gsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	gsc.mutation.id = &_node.ID
	gsc.mutation.done = true
	return _node, nil
}

func (gsc *GraphSnapshotCreate) createSpec() (*GraphSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphSnapshot{config: gsc.config}
		_spec = sqlgraph.NewCreateSpec(graphsnapshot.Table, sqlgraph.NewFieldSpec(graphsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := gsc.mutation.ClassID(); ok {
		_spec.SetField(graphsnapshot.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := gsc.mutation.Data(); ok {
		_spec.SetField(graphsnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := gsc.mutation.SavedAt(); ok {
		_spec.SetField(graphsnapshot.FieldSavedAt, field.TypeTime, value)
		_node.SavedAt = value
	}
	return _node, _spec
}

// GraphSnapshotCreateBulk is the builder for creating many GraphSnapshot entities in bulk.
type GraphSnapshotCreateBulk struct {
	config
	err      error
	builders []*GraphSnapshotCreate
}

// Save creates the GraphSnapshot entities in the database.
func (gscb *GraphSnapshotCreateBulk) Save(ctx context.Context) ([]*GraphSnapshot, error) {
	if gscb.err != nil {
		return nil, gscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(gscb.builders))
	nodes := make([]*GraphSnapshot, len(gscb.builders))
	mutators := make([]Mutator, len(gscb.builders))
	for i := range gscb.builders {
		func(i int, root context.Context) {
			builder := gscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, gscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, gscb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, gscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (gscb *GraphSnapshotCreateBulk) SaveX(ctx context.Context) []*GraphSnapshot {
	v, err := gscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gscb *GraphSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := gscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gscb *GraphSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := gscb.Exec(ctx); err != nil {
		panic(err)
	}
}
