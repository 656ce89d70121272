// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymap/studymap/ent/predicate"
	"github.com/studymap/studymap/ent/scheduleentry"
)

// ScheduleEntryDelete is the builder for deleting a ScheduleEntry entity.
type ScheduleEntryDelete struct {
	config
	hooks    []Hook
	mutation *ScheduleEntryMutation
}

// Where appends a list predicates to the ScheduleEntryDelete builder.
func (sed *ScheduleEntryDelete) Where(ps ...predicate.ScheduleEntry) *ScheduleEntryDelete {
	sed.mutation.Where(ps...)
	return sed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (sed *ScheduleEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, sed.sqlExec, sed.mutation, sed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (sed *ScheduleEntryDelete) ExecX(ctx context.Context) int {
	n, err := sed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (sed *ScheduleEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scheduleentry.Table, sqlgraph.NewFieldSpec(scheduleentry.FieldID, field.TypeInt))
	if ps := sed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, sed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	sed.mutation.done = true
	return affected, err
}

// ScheduleEntryDeleteOne is the builder for deleting a single ScheduleEntry entity.
type ScheduleEntryDeleteOne struct {
	sed *ScheduleEntryDelete
}

// Where appends a list predicates to the ScheduleEntryDelete builder.
func (sedo *ScheduleEntryDeleteOne) Where(ps ...predicate.ScheduleEntry) *ScheduleEntryDeleteOne {
	sedo.sed.mutation.Where(ps...)
	return sedo
}

// Exec executes the deletion query.
func (sedo *ScheduleEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := sedo.sed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scheduleentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (sedo *ScheduleEntryDeleteOne) ExecX(ctx context.Context) {
	if err := sedo.Exec(ctx); err != nil {
		panic(err)
	}
}
