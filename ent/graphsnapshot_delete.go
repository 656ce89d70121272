// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymap/studymap/ent/graphsnapshot"
	"github.com/studymap/studymap/ent/predicate"
)

// GraphSnapshotDelete is the builder for deleting a GraphSnapshot entity.
type GraphSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *GraphSnapshotMutation
}

// Where appends a list predicates to the GraphSnapshotDelete builder.
func (gsd *GraphSnapshotDelete) Where(ps ...predicate.GraphSnapshot) *GraphSnapshotDelete {
	gsd.mutation.Where(ps...)
	return gsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (gsd *GraphSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, gsd.sqlExec, gsd.mutation, gsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (gsd *GraphSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := gsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (gsd *GraphSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(graphsnapshot.Table, sqlgraph.NewFieldSpec(graphsnapshot.FieldID, field.TypeInt))
	if ps := gsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, gsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	gsd.mutation.done = true
	return affected, err
}

// GraphSnapshotDeleteOne is the builder for deleting a single GraphSnapshot entity.
type GraphSnapshotDeleteOne struct {
	gsd *GraphSnapshotDelete
}

// Where appends a list predicates to the GraphSnapshotDelete builder.
func (gsdo *GraphSnapshotDeleteOne) Where(ps ...predicate.GraphSnapshot) *GraphSnapshotDeleteOne {
	gsdo.gsd.mutation.Where(ps...)
	return gsdo
}

// Exec executes the deletion query.
func (gsdo *GraphSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := gsdo.gsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{graphsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (gsdo *GraphSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := gsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
