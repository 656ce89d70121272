// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymap/studymap/ent/scheduleentry"
)

// ScheduleEntryCreate is the builder for creating a ScheduleEntry entity.
type ScheduleEntryCreate struct {
	config
	mutation *ScheduleEntryMutation
	hooks    []Hook
}

// SetEntryID sets the "entry_id" field.
func (sec *ScheduleEntryCreate) SetEntryID(s string) *ScheduleEntryCreate {
	sec.mutation.SetEntryID(s)
	return sec
}

// SetStudentID sets the "student_id" field.
func (sec *ScheduleEntryCreate) SetStudentID(s string) *ScheduleEntryCreate {
	sec.mutation.SetStudentID(s)
	return sec
}

// SetClassID sets the "class_id" field.
func (sec *ScheduleEntryCreate) SetClassID(s string) *ScheduleEntryCreate {
	sec.mutation.SetClassID(s)
	return sec
}

// SetTopicID sets the "topic_id" field.
func (sec *ScheduleEntryCreate) SetTopicID(s string) *ScheduleEntryCreate {
	sec.mutation.SetTopicID(s)
	return sec
}

// SetTopicLabel sets the "topic_label" field.
func (sec *ScheduleEntryCreate) SetTopicLabel(s string) *ScheduleEntryCreate {
	sec.mutation.SetTopicLabel(s)
	return sec
}

// SetBox sets the "box" field.
func (sec *ScheduleEntryCreate) SetBox(i int) *ScheduleEntryCreate {
	sec.mutation.SetBox(i)
	return sec
}

// SetNillableBox sets the "box" field if the given value is not nil.
func (sec *ScheduleEntryCreate) SetNillableBox(i *int) *ScheduleEntryCreate {
	if i != nil {
		sec.SetBox(*i)
	}
	return sec
}

// SetStreak sets the "streak" field.
func (sec *ScheduleEntryCreate) SetStreak(i int) *ScheduleEntryCreate {
	sec.mutation.SetStreak(i)
	return sec
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (sec *ScheduleEntryCreate) SetNillableStreak(i *int) *ScheduleEntryCreate {
	if i != nil {
		sec.SetStreak(*i)
	}
	return sec
}

// SetTotalAttempts sets the "total_attempts" field.
func (sec *ScheduleEntryCreate) SetTotalAttempts(i int) *ScheduleEntryCreate {
	sec.mutation.SetTotalAttempts(i)
	return sec
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (sec *ScheduleEntryCreate) SetNillableTotalAttempts(i *int) *ScheduleEntryCreate {
	if i != nil {
		sec.SetTotalAttempts(*i)
	}
	return sec
}

// SetTotalCorrect sets the "total_correct" field.
func (sec *ScheduleEntryCreate) SetTotalCorrect(i int) *ScheduleEntryCreate {
	sec.mutation.SetTotalCorrect(i)
	return sec
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (sec *ScheduleEntryCreate) SetNillableTotalCorrect(i *int) *ScheduleEntryCreate {
	if i != nil {
		sec.SetTotalCorrect(*i)
	}
	return sec
}

// SetLastQuizAttempts sets the "last_quiz_attempts" field.
func (sec *ScheduleEntryCreate) SetLastQuizAttempts(i int) *ScheduleEntryCreate {
	sec.mutation.SetLastQuizAttempts(i)
	return sec
}

// SetNillableLastQuizAttempts sets the "last_quiz_attempts" field if the given value is not nil.
func (sec *ScheduleEntryCreate) SetNillableLastQuizAttempts(i *int) *ScheduleEntryCreate {
	if i != nil {
		sec.SetLastQuizAttempts(*i)
	}
	return sec
}

// SetLastQuizCorrect sets the "last_quiz_correct" field.
func (sec *ScheduleEntryCreate) SetLastQuizCorrect(i int) *ScheduleEntryCreate {
	sec.mutation.SetLastQuizCorrect(i)
	return sec
}

// SetNillableLastQuizCorrect sets the "last_quiz_correct" field if the given value is not nil.
func (sec *ScheduleEntryCreate) SetNillableLastQuizCorrect(i *int) *ScheduleEntryCreate {
	if i != nil {
		sec.SetLastQuizCorrect(*i)
	}
	return sec
}

// SetLastReviewed sets the "last_reviewed" field.
func (sec *ScheduleEntryCreate) SetLastReviewed(t time.Time) *ScheduleEntryCreate {
	sec.mutation.SetLastReviewed(t)
	return sec
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (sec *ScheduleEntryCreate) SetNillableLastReviewed(t *time.Time) *ScheduleEntryCreate {
	if t != nil {
		sec.SetLastReviewed(*t)
	}
	return sec
}

// SetNextReview sets the "next_review" field.
func (sec *ScheduleEntryCreate) SetNextReview(t time.Time) *ScheduleEntryCreate {
	sec.mutation.SetNextReview(t)
	return sec
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (sec *ScheduleEntryCreate) SetNillableNextReview(t *time.Time) *ScheduleEntryCreate {
	if t != nil {
		sec.SetNextReview(*t)
	}
	return sec
}

// Mutation returns the ScheduleEntryMutation object of the builder.
func (sec *ScheduleEntryCreate) Mutation() *ScheduleEntryMutation {
	return sec.mutation
}

// Save creates the ScheduleEntry in the database.
func (sec *ScheduleEntryCreate) Save(ctx context.Context) (*ScheduleEntry, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *ScheduleEntryCreate) SaveX(ctx context.Context) *ScheduleEntry {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *ScheduleEntryCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *ScheduleEntryCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *ScheduleEntryCreate) defaults() {
	if _, ok := sec.mutation.Box(); !ok {
		v := scheduleentry.DefaultBox
		sec.mutation.SetBox(v)
	}
	if _, ok := sec.mutation.Streak(); !ok {
		v := scheduleentry.DefaultStreak
		sec.mutation.SetStreak(v)
	}
	if _, ok := sec.mutation.TotalAttempts(); !ok {
		v := scheduleentry.DefaultTotalAttempts
		sec.mutation.SetTotalAttempts(v)
	}
	if _, ok := sec.mutation.TotalCorrect(); !ok {
		v := scheduleentry.DefaultTotalCorrect
		sec.mutation.SetTotalCorrect(v)
	}
	if _, ok := sec.mutation.LastQuizAttempts(); !ok {
		v := scheduleentry.DefaultLastQuizAttempts
		sec.mutation.SetLastQuizAttempts(v)
	}
	if _, ok := sec.mutation.LastQuizCorrect(); !ok {
		v := scheduleentry.DefaultLastQuizCorrect
		sec.mutation.SetLastQuizCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *ScheduleEntryCreate) check() error {
	if _, ok := sec.mutation.EntryID(); !ok {
		return &ValidationError{Name: "entry_id", err: errors.New(`ent: missing required field "ScheduleEntry.entry_id"`)}
	}
	if v, ok := sec.mutation.EntryID(); ok {
		if err := scheduleentry.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.entry_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "ScheduleEntry.student_id"`)}
	}
	if v, ok := sec.mutation.StudentID(); ok {
		if err := scheduleentry.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.student_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "ScheduleEntry.class_id"`)}
	}
	if v, ok := sec.mutation.ClassID(); ok {
		if err := scheduleentry.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.class_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ScheduleEntry.topic_id"`)}
	}
	if v, ok := sec.mutation.TopicID(); ok {
		if err := scheduleentry.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.topic_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.TopicLabel(); !ok {
		return &ValidationError{Name: "topic_label", err: errors.New(`ent: missing required field "ScheduleEntry.topic_label"`)}
	}
	if _, ok := sec.mutation.Box(); !ok {
		return &ValidationError{Name: "box", err: errors.New(`ent: missing required field "ScheduleEntry.box"`)}
	}
	if _, ok := sec.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "ScheduleEntry.streak"`)}
	}
	if _, ok := sec.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "ScheduleEntry.total_attempts"`)}
	}
	if _, ok := sec.mutation.TotalCorrect(); !ok {
		return &ValidationError{Name: "total_correct", err: errors.New(`ent: missing required field "ScheduleEntry.total_correct"`)}
	}
	if _, ok := sec.mutation.LastQuizAttempts(); !ok {
		return &ValidationError{Name: "last_quiz_attempts", err: errors.New(`ent: missing required field "ScheduleEntry.last_quiz_attempts"`)}
	}
	if _, ok := sec.mutation.LastQuizCorrect(); !ok {
		return &ValidationError{Name: "last_quiz_correct", err: errors.New(`ent: missing required field "ScheduleEntry.last_quiz_correct"`)}
	}
	return nil
}

func (sec *ScheduleEntryCreate) sqlSave(ctx context.Context) (*ScheduleEntry, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *ScheduleEntryCreate) createSpec() (*ScheduleEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleEntry{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(scheduleentry.Table, sqlgraph.NewFieldSpec(scheduleentry.FieldID, field.TypeInt))
	)
	if value, ok := sec.mutation.EntryID(); ok {
		_spec.SetField(scheduleentry.FieldEntryID, field.TypeString, value)
		_node.EntryID = value
	}
	if value, ok := sec.mutation.StudentID(); ok {
		_spec.SetField(scheduleentry.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := sec.mutation.ClassID(); ok {
		_spec.SetField(scheduleentry.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := sec.mutation.TopicID(); ok {
		_spec.SetField(scheduleentry.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := sec.mutation.TopicLabel(); ok {
		_spec.SetField(scheduleentry.FieldTopicLabel, field.TypeString, value)
		_node.TopicLabel = value
	}
	if value, ok := sec.mutation.Box(); ok {
		_spec.SetField(scheduleentry.FieldBox, field.TypeInt, value)
		_node.Box = value
	}
	if value, ok := sec.mutation.Streak(); ok {
		_spec.SetField(scheduleentry.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := sec.mutation.TotalAttempts(); ok {
		_spec.SetField(scheduleentry.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := sec.mutation.TotalCorrect(); ok {
		_spec.SetField(scheduleentry.FieldTotalCorrect, field.TypeInt, value)
		_node.TotalCorrect = value
	}
	if value, ok := sec.mutation.LastQuizAttempts(); ok {
		_spec.SetField(scheduleentry.FieldLastQuizAttempts, field.TypeInt, value)
		_node.LastQuizAttempts = value
	}
	if value, ok := sec.mutation.LastQuizCorrect(); ok {
		_spec.SetField(scheduleentry.FieldLastQuizCorrect, field.TypeInt, value)
		_node.LastQuizCorrect = value
	}
	if value, ok := sec.mutation.LastReviewed(); ok {
		_spec.SetField(scheduleentry.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = value
	}
	if value, ok := sec.mutation.NextReview(); ok {
		_spec.SetField(scheduleentry.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	return _node, _spec
}

// ScheduleEntryCreateBulk is the builder for creating many ScheduleEntry entities in bulk.
type ScheduleEntryCreateBulk struct {
	config
	err      error
	builders []*ScheduleEntryCreate
}

// Save creates the ScheduleEntry entities in the database.
func (secb *ScheduleEntryCreateBulk) Save(ctx context.Context) ([]*ScheduleEntry, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*ScheduleEntry, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleEntryMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *ScheduleEntryCreateBulk) SaveX(ctx context.Context) []*ScheduleEntry {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *ScheduleEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *ScheduleEntryCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
