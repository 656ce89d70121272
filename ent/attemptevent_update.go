// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymap/studymap/ent/attemptevent"
	"github.com/studymap/studymap/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeu *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetStudentID sets the "student_id" field.
func (aeu *AttemptEventUpdate) SetStudentID(s string) *AttemptEventUpdate {
	aeu.mutation.SetStudentID(s)
	return aeu
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableStudentID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetStudentID(*s)
	}
	return aeu
}

// SetClassID sets the "class_id" field.
func (aeu *AttemptEventUpdate) SetClassID(s string) *AttemptEventUpdate {
	aeu.mutation.SetClassID(s)
	return aeu
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableClassID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetClassID(*s)
	}
	return aeu
}

// SetTopicID sets the "topic_id" field.
func (aeu *AttemptEventUpdate) SetTopicID(s string) *AttemptEventUpdate {
	aeu.mutation.SetTopicID(s)
	return aeu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableTopicID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetTopicID(*s)
	}
	return aeu
}

// SetTopicLabel sets the "topic_label" field.
func (aeu *AttemptEventUpdate) SetTopicLabel(s string) *AttemptEventUpdate {
	aeu.mutation.SetTopicLabel(s)
	return aeu
}

// SetNillableTopicLabel sets the "topic_label" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableTopicLabel(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetTopicLabel(*s)
	}
	return aeu
}

// SetQuestionID sets the "question_id" field.
func (aeu *AttemptEventUpdate) SetQuestionID(s string) *AttemptEventUpdate {
	aeu.mutation.SetQuestionID(s)
	return aeu
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableQuestionID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetQuestionID(*s)
	}
	return aeu
}

// ClearQuestionID clears the value of the "question_id" field.
func (aeu *AttemptEventUpdate) ClearQuestionID() *AttemptEventUpdate {
	aeu.mutation.ClearQuestionID()
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AttemptEventUpdate) SetCorrect(b bool) *AttemptEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableCorrect(b *bool) *AttemptEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeu *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AttemptEventUpdate) check() error {
	if v, ok := aeu.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.ClassID(); ok {
		if err := attemptevent.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.class_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.TopicID(); ok {
		if err := attemptevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic_id": %w`, err)}
		}
	}
	return nil
}

func (aeu *AttemptEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.ClassID(); ok {
		_spec.SetField(attemptevent.FieldClassID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.TopicLabel(); ok {
		_spec.SetField(attemptevent.FieldTopicLabel, field.TypeString, value)
	}
	if value, ok := aeu.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if aeu.mutation.QuestionIDCleared() {
		_spec.ClearField(attemptevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetStudentID sets the "student_id" field.
func (aeuo *AttemptEventUpdateOne) SetStudentID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetStudentID(s)
	return aeuo
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableStudentID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetStudentID(*s)
	}
	return aeuo
}

// SetClassID sets the "class_id" field.
func (aeuo *AttemptEventUpdateOne) SetClassID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetClassID(s)
	return aeuo
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableClassID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetClassID(*s)
	}
	return aeuo
}

// SetTopicID sets the "topic_id" field.
func (aeuo *AttemptEventUpdateOne) SetTopicID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetTopicID(s)
	return aeuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableTopicID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetTopicID(*s)
	}
	return aeuo
}

// SetTopicLabel sets the "topic_label" field.
func (aeuo *AttemptEventUpdateOne) SetTopicLabel(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetTopicLabel(s)
	return aeuo
}

// SetNillableTopicLabel sets the "topic_label" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableTopicLabel(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetTopicLabel(*s)
	}
	return aeuo
}

// SetQuestionID sets the "question_id" field.
func (aeuo *AttemptEventUpdateOne) SetQuestionID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetQuestionID(s)
	return aeuo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableQuestionID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetQuestionID(*s)
	}
	return aeuo
}

// ClearQuestionID clears the value of the "question_id" field.
func (aeuo *AttemptEventUpdateOne) ClearQuestionID() *AttemptEventUpdateOne {
	aeuo.mutation.ClearQuestionID()
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AttemptEventUpdateOne) SetCorrect(b bool) *AttemptEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableCorrect(b *bool) *AttemptEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeuo *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeuo *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AttemptEvent entity.
func (aeuo *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AttemptEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.ClassID(); ok {
		if err := attemptevent.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.class_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.TopicID(); ok {
		if err := attemptevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic_id": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.ClassID(); ok {
		_spec.SetField(attemptevent.FieldClassID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.TopicLabel(); ok {
		_spec.SetField(attemptevent.FieldTopicLabel, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if aeuo.mutation.QuestionIDCleared() {
		_spec.ClearField(attemptevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
