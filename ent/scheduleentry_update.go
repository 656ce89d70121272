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
	"github.com/studymap/studymap/ent/predicate"
	"github.com/studymap/studymap/ent/scheduleentry"
)

// ScheduleEntryUpdate is the builder for updating ScheduleEntry entities.
type ScheduleEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleEntryMutation
}

// Where appends a list predicates to the ScheduleEntryUpdate builder.
func (seu *ScheduleEntryUpdate) Where(ps ...predicate.ScheduleEntry) *ScheduleEntryUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetEntryID sets the "entry_id" field.
func (seu *ScheduleEntryUpdate) SetEntryID(s string) *ScheduleEntryUpdate {
	seu.mutation.SetEntryID(s)
	return seu
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableEntryID(s *string) *ScheduleEntryUpdate {
	if s != nil {
		seu.SetEntryID(*s)
	}
	return seu
}

// SetStudentID sets the "student_id" field.
func (seu *ScheduleEntryUpdate) SetStudentID(s string) *ScheduleEntryUpdate {
	seu.mutation.SetStudentID(s)
	return seu
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableStudentID(s *string) *ScheduleEntryUpdate {
	if s != nil {
		seu.SetStudentID(*s)
	}
	return seu
}

// SetClassID sets the "class_id" field.
func (seu *ScheduleEntryUpdate) SetClassID(s string) *ScheduleEntryUpdate {
	seu.mutation.SetClassID(s)
	return seu
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableClassID(s *string) *ScheduleEntryUpdate {
	if s != nil {
		seu.SetClassID(*s)
	}
	return seu
}

// SetTopicID sets the "topic_id" field.
func (seu *ScheduleEntryUpdate) SetTopicID(s string) *ScheduleEntryUpdate {
	seu.mutation.SetTopicID(s)
	return seu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableTopicID(s *string) *ScheduleEntryUpdate {
	if s != nil {
		seu.SetTopicID(*s)
	}
	return seu
}

// SetTopicLabel sets the "topic_label" field.
func (seu *ScheduleEntryUpdate) SetTopicLabel(s string) *ScheduleEntryUpdate {
	seu.mutation.SetTopicLabel(s)
	return seu
}

// SetNillableTopicLabel sets the "topic_label" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableTopicLabel(s *string) *ScheduleEntryUpdate {
	if s != nil {
		seu.SetTopicLabel(*s)
	}
	return seu
}

// SetBox sets the "box" field.
func (seu *ScheduleEntryUpdate) SetBox(i int) *ScheduleEntryUpdate {
	seu.mutation.ResetBox()
	seu.mutation.SetBox(i)
	return seu
}

// SetNillableBox sets the "box" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableBox(i *int) *ScheduleEntryUpdate {
	if i != nil {
		seu.SetBox(*i)
	}
	return seu
}

// AddBox adds i to the "box" field.
func (seu *ScheduleEntryUpdate) AddBox(i int) *ScheduleEntryUpdate {
	seu.mutation.AddBox(i)
	return seu
}

// SetStreak sets the "streak" field.
func (seu *ScheduleEntryUpdate) SetStreak(i int) *ScheduleEntryUpdate {
	seu.mutation.ResetStreak()
	seu.mutation.SetStreak(i)
	return seu
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableStreak(i *int) *ScheduleEntryUpdate {
	if i != nil {
		seu.SetStreak(*i)
	}
	return seu
}

// AddStreak adds i to the "streak" field.
func (seu *ScheduleEntryUpdate) AddStreak(i int) *ScheduleEntryUpdate {
	seu.mutation.AddStreak(i)
	return seu
}

// SetTotalAttempts sets the "total_attempts" field.
func (seu *ScheduleEntryUpdate) SetTotalAttempts(i int) *ScheduleEntryUpdate {
	seu.mutation.ResetTotalAttempts()
	seu.mutation.SetTotalAttempts(i)
	return seu
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableTotalAttempts(i *int) *ScheduleEntryUpdate {
	if i != nil {
		seu.SetTotalAttempts(*i)
	}
	return seu
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (seu *ScheduleEntryUpdate) AddTotalAttempts(i int) *ScheduleEntryUpdate {
	seu.mutation.AddTotalAttempts(i)
	return seu
}

// SetTotalCorrect sets the "total_correct" field.
func (seu *ScheduleEntryUpdate) SetTotalCorrect(i int) *ScheduleEntryUpdate {
	seu.mutation.ResetTotalCorrect()
	seu.mutation.SetTotalCorrect(i)
	return seu
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableTotalCorrect(i *int) *ScheduleEntryUpdate {
	if i != nil {
		seu.SetTotalCorrect(*i)
	}
	return seu
}

// AddTotalCorrect adds i to the "total_correct" field.
func (seu *ScheduleEntryUpdate) AddTotalCorrect(i int) *ScheduleEntryUpdate {
	seu.mutation.AddTotalCorrect(i)
	return seu
}

// SetLastQuizAttempts sets the "last_quiz_attempts" field.
func (seu *ScheduleEntryUpdate) SetLastQuizAttempts(i int) *ScheduleEntryUpdate {
	seu.mutation.ResetLastQuizAttempts()
	seu.mutation.SetLastQuizAttempts(i)
	return seu
}

// SetNillableLastQuizAttempts sets the "last_quiz_attempts" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableLastQuizAttempts(i *int) *ScheduleEntryUpdate {
	if i != nil {
		seu.SetLastQuizAttempts(*i)
	}
	return seu
}

// AddLastQuizAttempts adds i to the "last_quiz_attempts" field.
func (seu *ScheduleEntryUpdate) AddLastQuizAttempts(i int) *ScheduleEntryUpdate {
	seu.mutation.AddLastQuizAttempts(i)
	return seu
}

// SetLastQuizCorrect sets the "last_quiz_correct" field.
func (seu *ScheduleEntryUpdate) SetLastQuizCorrect(i int) *ScheduleEntryUpdate {
	seu.mutation.ResetLastQuizCorrect()
	seu.mutation.SetLastQuizCorrect(i)
	return seu
}

// SetNillableLastQuizCorrect sets the "last_quiz_correct" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableLastQuizCorrect(i *int) *ScheduleEntryUpdate {
	if i != nil {
		seu.SetLastQuizCorrect(*i)
	}
	return seu
}

// AddLastQuizCorrect adds i to the "last_quiz_correct" field.
func (seu *ScheduleEntryUpdate) AddLastQuizCorrect(i int) *ScheduleEntryUpdate {
	seu.mutation.AddLastQuizCorrect(i)
	return seu
}

// SetLastReviewed sets the "last_reviewed" field.
func (seu *ScheduleEntryUpdate) SetLastReviewed(t time.Time) *ScheduleEntryUpdate {
	seu.mutation.SetLastReviewed(t)
	return seu
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableLastReviewed(t *time.Time) *ScheduleEntryUpdate {
	if t != nil {
		seu.SetLastReviewed(*t)
	}
	return seu
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (seu *ScheduleEntryUpdate) ClearLastReviewed() *ScheduleEntryUpdate {
	seu.mutation.ClearLastReviewed()
	return seu
}

// SetNextReview sets the "next_review" field.
func (seu *ScheduleEntryUpdate) SetNextReview(t time.Time) *ScheduleEntryUpdate {
	seu.mutation.SetNextReview(t)
	return seu
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (seu *ScheduleEntryUpdate) SetNillableNextReview(t *time.Time) *ScheduleEntryUpdate {
	if t != nil {
		seu.SetNextReview(*t)
	}
	return seu
}

// ClearNextReview clears the value of the "next_review" field.
func (seu *ScheduleEntryUpdate) ClearNextReview() *ScheduleEntryUpdate {
	seu.mutation.ClearNextReview()
	return seu
}

// Mutation returns the ScheduleEntryMutation object of the builder.
func (seu *ScheduleEntryUpdate) Mutation() *ScheduleEntryMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *ScheduleEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *ScheduleEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *ScheduleEntryUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *ScheduleEntryUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *ScheduleEntryUpdate) check() error {
	if v, ok := seu.mutation.EntryID(); ok {
		if err := scheduleentry.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.entry_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.StudentID(); ok {
		if err := scheduleentry.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.student_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.ClassID(); ok {
		if err := scheduleentry.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.class_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.TopicID(); ok {
		if err := scheduleentry.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.topic_id": %w`, err)}
		}
	}
	return nil
}

func (seu *ScheduleEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleentry.Table, scheduleentry.Columns, sqlgraph.NewFieldSpec(scheduleentry.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.EntryID(); ok {
		_spec.SetField(scheduleentry.FieldEntryID, field.TypeString, value)
	}
	if value, ok := seu.mutation.StudentID(); ok {
		_spec.SetField(scheduleentry.FieldStudentID, field.TypeString, value)
	}
	if value, ok := seu.mutation.ClassID(); ok {
		_spec.SetField(scheduleentry.FieldClassID, field.TypeString, value)
	}
	if value, ok := seu.mutation.TopicID(); ok {
		_spec.SetField(scheduleentry.FieldTopicID, field.TypeString, value)
	}
	if value, ok := seu.mutation.TopicLabel(); ok {
		_spec.SetField(scheduleentry.FieldTopicLabel, field.TypeString, value)
	}
	if value, ok := seu.mutation.Box(); ok {
		_spec.SetField(scheduleentry.FieldBox, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedBox(); ok {
		_spec.AddField(scheduleentry.FieldBox, field.TypeInt, value)
	}
	if value, ok := seu.mutation.Streak(); ok {
		_spec.SetField(scheduleentry.FieldStreak, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedStreak(); ok {
		_spec.AddField(scheduleentry.FieldStreak, field.TypeInt, value)
	}
	if value, ok := seu.mutation.TotalAttempts(); ok {
		_spec.SetField(scheduleentry.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(scheduleentry.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := seu.mutation.TotalCorrect(); ok {
		_spec.SetField(scheduleentry.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(scheduleentry.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := seu.mutation.LastQuizAttempts(); ok {
		_spec.SetField(scheduleentry.FieldLastQuizAttempts, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedLastQuizAttempts(); ok {
		_spec.AddField(scheduleentry.FieldLastQuizAttempts, field.TypeInt, value)
	}
	if value, ok := seu.mutation.LastQuizCorrect(); ok {
		_spec.SetField(scheduleentry.FieldLastQuizCorrect, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedLastQuizCorrect(); ok {
		_spec.AddField(scheduleentry.FieldLastQuizCorrect, field.TypeInt, value)
	}
	if value, ok := seu.mutation.LastReviewed(); ok {
		_spec.SetField(scheduleentry.FieldLastReviewed, field.TypeTime, value)
	}
	if seu.mutation.LastReviewedCleared() {
		_spec.ClearField(scheduleentry.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := seu.mutation.NextReview(); ok {
		_spec.SetField(scheduleentry.FieldNextReview, field.TypeTime, value)
	}
	if seu.mutation.NextReviewCleared() {
		_spec.ClearField(scheduleentry.FieldNextReview, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// ScheduleEntryUpdateOne is the builder for updating a single ScheduleEntry entity.
type ScheduleEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleEntryMutation
}

// SetEntryID sets the "entry_id" field.
func (seuo *ScheduleEntryUpdateOne) SetEntryID(s string) *ScheduleEntryUpdateOne {
	seuo.mutation.SetEntryID(s)
	return seuo
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableEntryID(s *string) *ScheduleEntryUpdateOne {
	if s != nil {
		seuo.SetEntryID(*s)
	}
	return seuo
}

// SetStudentID sets the "student_id" field.
func (seuo *ScheduleEntryUpdateOne) SetStudentID(s string) *ScheduleEntryUpdateOne {
	seuo.mutation.SetStudentID(s)
	return seuo
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableStudentID(s *string) *ScheduleEntryUpdateOne {
	if s != nil {
		seuo.SetStudentID(*s)
	}
	return seuo
}

// SetClassID sets the "class_id" field.
func (seuo *ScheduleEntryUpdateOne) SetClassID(s string) *ScheduleEntryUpdateOne {
	seuo.mutation.SetClassID(s)
	return seuo
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableClassID(s *string) *ScheduleEntryUpdateOne {
	if s != nil {
		seuo.SetClassID(*s)
	}
	return seuo
}

// SetTopicID sets the "topic_id" field.
func (seuo *ScheduleEntryUpdateOne) SetTopicID(s string) *ScheduleEntryUpdateOne {
	seuo.mutation.SetTopicID(s)
	return seuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableTopicID(s *string) *ScheduleEntryUpdateOne {
	if s != nil {
		seuo.SetTopicID(*s)
	}
	return seuo
}

// SetTopicLabel sets the "topic_label" field.
func (seuo *ScheduleEntryUpdateOne) SetTopicLabel(s string) *ScheduleEntryUpdateOne {
	seuo.mutation.SetTopicLabel(s)
	return seuo
}

// SetNillableTopicLabel sets the "topic_label" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableTopicLabel(s *string) *ScheduleEntryUpdateOne {
	if s != nil {
		seuo.SetTopicLabel(*s)
	}
	return seuo
}

// SetBox sets the "box" field.
func (seuo *ScheduleEntryUpdateOne) SetBox(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.ResetBox()
	seuo.mutation.SetBox(i)
	return seuo
}

// SetNillableBox sets the "box" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableBox(i *int) *ScheduleEntryUpdateOne {
	if i != nil {
		seuo.SetBox(*i)
	}
	return seuo
}

// AddBox adds i to the "box" field.
func (seuo *ScheduleEntryUpdateOne) AddBox(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.AddBox(i)
	return seuo
}

// SetStreak sets the "streak" field.
func (seuo *ScheduleEntryUpdateOne) SetStreak(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.ResetStreak()
	seuo.mutation.SetStreak(i)
	return seuo
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableStreak(i *int) *ScheduleEntryUpdateOne {
	if i != nil {
		seuo.SetStreak(*i)
	}
	return seuo
}

// AddStreak adds i to the "streak" field.
func (seuo *ScheduleEntryUpdateOne) AddStreak(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.AddStreak(i)
	return seuo
}

// SetTotalAttempts sets the "total_attempts" field.
func (seuo *ScheduleEntryUpdateOne) SetTotalAttempts(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.ResetTotalAttempts()
	seuo.mutation.SetTotalAttempts(i)
	return seuo
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableTotalAttempts(i *int) *ScheduleEntryUpdateOne {
	if i != nil {
		seuo.SetTotalAttempts(*i)
	}
	return seuo
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (seuo *ScheduleEntryUpdateOne) AddTotalAttempts(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.AddTotalAttempts(i)
	return seuo
}

// SetTotalCorrect sets the "total_correct" field.
func (seuo *ScheduleEntryUpdateOne) SetTotalCorrect(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.ResetTotalCorrect()
	seuo.mutation.SetTotalCorrect(i)
	return seuo
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableTotalCorrect(i *int) *ScheduleEntryUpdateOne {
	if i != nil {
		seuo.SetTotalCorrect(*i)
	}
	return seuo
}

// AddTotalCorrect adds i to the "total_correct" field.
func (seuo *ScheduleEntryUpdateOne) AddTotalCorrect(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.AddTotalCorrect(i)
	return seuo
}

// SetLastQuizAttempts sets the "last_quiz_attempts" field.
func (seuo *ScheduleEntryUpdateOne) SetLastQuizAttempts(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.ResetLastQuizAttempts()
	seuo.mutation.SetLastQuizAttempts(i)
	return seuo
}

// SetNillableLastQuizAttempts sets the "last_quiz_attempts" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableLastQuizAttempts(i *int) *ScheduleEntryUpdateOne {
	if i != nil {
		seuo.SetLastQuizAttempts(*i)
	}
	return seuo
}

// AddLastQuizAttempts adds i to the "last_quiz_attempts" field.
func (seuo *ScheduleEntryUpdateOne) AddLastQuizAttempts(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.AddLastQuizAttempts(i)
	return seuo
}

// SetLastQuizCorrect sets the "last_quiz_correct" field.
func (seuo *ScheduleEntryUpdateOne) SetLastQuizCorrect(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.ResetLastQuizCorrect()
	seuo.mutation.SetLastQuizCorrect(i)
	return seuo
}

// SetNillableLastQuizCorrect sets the "last_quiz_correct" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableLastQuizCorrect(i *int) *ScheduleEntryUpdateOne {
	if i != nil {
		seuo.SetLastQuizCorrect(*i)
	}
	return seuo
}

// AddLastQuizCorrect adds i to the "last_quiz_correct" field.
func (seuo *ScheduleEntryUpdateOne) AddLastQuizCorrect(i int) *ScheduleEntryUpdateOne {
	seuo.mutation.AddLastQuizCorrect(i)
	return seuo
}

// SetLastReviewed sets the "last_reviewed" field.
func (seuo *ScheduleEntryUpdateOne) SetLastReviewed(t time.Time) *ScheduleEntryUpdateOne {
	seuo.mutation.SetLastReviewed(t)
	return seuo
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableLastReviewed(t *time.Time) *ScheduleEntryUpdateOne {
	if t != nil {
		seuo.SetLastReviewed(*t)
	}
	return seuo
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (seuo *ScheduleEntryUpdateOne) ClearLastReviewed() *ScheduleEntryUpdateOne {
	seuo.mutation.ClearLastReviewed()
	return seuo
}

// SetNextReview sets the "next_review" field.
func (seuo *ScheduleEntryUpdateOne) SetNextReview(t time.Time) *ScheduleEntryUpdateOne {
	seuo.mutation.SetNextReview(t)
	return seuo
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (seuo *ScheduleEntryUpdateOne) SetNillableNextReview(t *time.Time) *ScheduleEntryUpdateOne {
	if t != nil {
		seuo.SetNextReview(*t)
	}
	return seuo
}

// ClearNextReview clears the value of the "next_review" field.
func (seuo *ScheduleEntryUpdateOne) ClearNextReview() *ScheduleEntryUpdateOne {
	seuo.mutation.ClearNextReview()
	return seuo
}

// Mutation returns the ScheduleEntryMutation object of the builder.
func (seuo *ScheduleEntryUpdateOne) Mutation() *ScheduleEntryMutation {
	return seuo.mutation
}

// Where appends a list predicates to the ScheduleEntryUpdate builder.
func (seuo *ScheduleEntryUpdateOne) Where(ps ...predicate.ScheduleEntry) *ScheduleEntryUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *ScheduleEntryUpdateOne) Select(field string, fields ...string) *ScheduleEntryUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated ScheduleEntry entity.
func (seuo *ScheduleEntryUpdateOne) Save(ctx context.Context) (*ScheduleEntry, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *ScheduleEntryUpdateOne) SaveX(ctx context.Context) *ScheduleEntry {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *ScheduleEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *ScheduleEntryUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *ScheduleEntryUpdateOne) check() error {
	if v, ok := seuo.mutation.EntryID(); ok {
		if err := scheduleentry.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.entry_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.StudentID(); ok {
		if err := scheduleentry.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.student_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.ClassID(); ok {
		if err := scheduleentry.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.class_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.TopicID(); ok {
		if err := scheduleentry.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEntry.topic_id": %w`, err)}
		}
	}
	return nil
}

func (seuo *ScheduleEntryUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleEntry, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleentry.Table, scheduleentry.Columns, sqlgraph.NewFieldSpec(scheduleentry.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduleEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduleentry.FieldID)
		for _, f := range fields {
			if !scheduleentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduleentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.EntryID(); ok {
		_spec.SetField(scheduleentry.FieldEntryID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.StudentID(); ok {
		_spec.SetField(scheduleentry.FieldStudentID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.ClassID(); ok {
		_spec.SetField(scheduleentry.FieldClassID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.TopicID(); ok {
		_spec.SetField(scheduleentry.FieldTopicID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.TopicLabel(); ok {
		_spec.SetField(scheduleentry.FieldTopicLabel, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Box(); ok {
		_spec.SetField(scheduleentry.FieldBox, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedBox(); ok {
		_spec.AddField(scheduleentry.FieldBox, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.Streak(); ok {
		_spec.SetField(scheduleentry.FieldStreak, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedStreak(); ok {
		_spec.AddField(scheduleentry.FieldStreak, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.TotalAttempts(); ok {
		_spec.SetField(scheduleentry.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(scheduleentry.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.TotalCorrect(); ok {
		_spec.SetField(scheduleentry.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(scheduleentry.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.LastQuizAttempts(); ok {
		_spec.SetField(scheduleentry.FieldLastQuizAttempts, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedLastQuizAttempts(); ok {
		_spec.AddField(scheduleentry.FieldLastQuizAttempts, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.LastQuizCorrect(); ok {
		_spec.SetField(scheduleentry.FieldLastQuizCorrect, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedLastQuizCorrect(); ok {
		_spec.AddField(scheduleentry.FieldLastQuizCorrect, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.LastReviewed(); ok {
		_spec.SetField(scheduleentry.FieldLastReviewed, field.TypeTime, value)
	}
	if seuo.mutation.LastReviewedCleared() {
		_spec.ClearField(scheduleentry.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := seuo.mutation.NextReview(); ok {
		_spec.SetField(scheduleentry.FieldNextReview, field.TypeTime, value)
	}
	if seuo.mutation.NextReviewCleared() {
		_spec.ClearField(scheduleentry.FieldNextReview, field.TypeTime)
	}
	_node = &ScheduleEntry{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
