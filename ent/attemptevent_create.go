// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymap/studymap/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AttemptEventCreate) SetSequence(i int64) *AttemptEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AttemptEventCreate) SetTimestamp(t time.Time) *AttemptEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableTimestamp(t *time.Time) *AttemptEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetStudentID sets the "student_id" field.
func (aec *AttemptEventCreate) SetStudentID(s string) *AttemptEventCreate {
	aec.mutation.SetStudentID(s)
	return aec
}

// SetClassID sets the "class_id" field.
func (aec *AttemptEventCreate) SetClassID(s string) *AttemptEventCreate {
	aec.mutation.SetClassID(s)
	return aec
}

// SetTopicID sets the "topic_id" field.
func (aec *AttemptEventCreate) SetTopicID(s string) *AttemptEventCreate {
	aec.mutation.SetTopicID(s)
	return aec
}

// SetTopicLabel sets the "topic_label" field.
func (aec *AttemptEventCreate) SetTopicLabel(s string) *AttemptEventCreate {
	aec.mutation.SetTopicLabel(s)
	return aec
}

// SetQuestionID sets the "question_id" field.
func (aec *AttemptEventCreate) SetQuestionID(s string) *AttemptEventCreate {
	aec.mutation.SetQuestionID(s)
	return aec
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableQuestionID(s *string) *AttemptEventCreate {
	if s != nil {
		aec.SetQuestionID(*s)
	}
	return aec
}

// SetCorrect sets the "correct" field.
func (aec *AttemptEventCreate) SetCorrect(b bool) *AttemptEventCreate {
	aec.mutation.SetCorrect(b)
	return aec
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aec *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return aec.mutation
}

// Save creates the AttemptEvent in the database.
func (aec *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AttemptEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AttemptEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AttemptEvent.student_id"`)}
	}
	if v, ok := aec.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "AttemptEvent.class_id"`)}
	}
	if v, ok := aec.mutation.ClassID(); ok {
		if err := attemptevent.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.class_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "AttemptEvent.topic_id"`)}
	}
	if v, ok := aec.mutation.TopicID(); ok {
		if err := attemptevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.TopicLabel(); !ok {
		return &ValidationError{Name: "topic_label", err: errors.New(`ent: missing required field "AttemptEvent.topic_label"`)}
	}
	if _, ok := aec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	return nil
}

func (aec *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := aec.mutation.ClassID(); ok {
		_spec.SetField(attemptevent.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := aec.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := aec.mutation.TopicLabel(); ok {
		_spec.SetField(attemptevent.FieldTopicLabel, field.TypeString, value)
		_node.TopicLabel = value
	}
	if value, ok := aec.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := aec.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (aecb *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AttemptEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
