// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studymap/studymap/ent/attemptevent"
	"github.com/studymap/studymap/ent/graphsnapshot"
	"github.com/studymap/studymap/ent/predicate"
	"github.com/studymap/studymap/ent/scheduleentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptEvent  = "AttemptEvent"
	TypeGraphSnapshot = "GraphSnapshot"
	TypeScheduleEntry = "ScheduleEntry"
)

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	student_id    *string
	class_id      *string
	topic_id      *string
	topic_label   *string
	question_id   *string
	correct       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AttemptEvent, error)
	predicates    []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetStudentID sets the "student_id" field.
func (m *AttemptEventMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AttemptEventMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AttemptEventMutation) ResetStudentID() {
	m.student_id = nil
}

// SetClassID sets the "class_id" field.
func (m *AttemptEventMutation) SetClassID(s string) {
	m.class_id = &s
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *AttemptEventMutation) ClassID() (r string, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldClassID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// ResetClassID resets all changes to the "class_id" field.
func (m *AttemptEventMutation) ResetClassID() {
	m.class_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *AttemptEventMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *AttemptEventMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *AttemptEventMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetTopicLabel sets the "topic_label" field.
func (m *AttemptEventMutation) SetTopicLabel(s string) {
	m.topic_label = &s
}

// TopicLabel returns the value of the "topic_label" field in the mutation.
func (m *AttemptEventMutation) TopicLabel() (r string, exists bool) {
	v := m.topic_label
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicLabel returns the old "topic_label" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTopicLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicLabel: %w", err)
	}
	return oldValue.TopicLabel, nil
}

// ResetTopicLabel resets all changes to the "topic_label" field.
func (m *AttemptEventMutation) ResetTopicLabel() {
	m.topic_label = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ClearQuestionID clears the value of the "question_id" field.
func (m *AttemptEventMutation) ClearQuestionID() {
	m.question_id = nil
	m.clearedFields[attemptevent.FieldQuestionID] = struct{}{}
}

// QuestionIDCleared returns if the "question_id" field was cleared in this mutation.
func (m *AttemptEventMutation) QuestionIDCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldQuestionID]
	return ok
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptEventMutation) ResetQuestionID() {
	m.question_id = nil
	delete(m.clearedFields, attemptevent.FieldQuestionID)
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.student_id != nil {
		fields = append(fields, attemptevent.FieldStudentID)
	}
	if m.class_id != nil {
		fields = append(fields, attemptevent.FieldClassID)
	}
	if m.topic_id != nil {
		fields = append(fields, attemptevent.FieldTopicID)
	}
	if m.topic_label != nil {
		fields = append(fields, attemptevent.FieldTopicLabel)
	}
	if m.question_id != nil {
		fields = append(fields, attemptevent.FieldQuestionID)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldStudentID:
		return m.StudentID()
	case attemptevent.FieldClassID:
		return m.ClassID()
	case attemptevent.FieldTopicID:
		return m.TopicID()
	case attemptevent.FieldTopicLabel:
		return m.TopicLabel()
	case attemptevent.FieldQuestionID:
		return m.QuestionID()
	case attemptevent.FieldCorrect:
		return m.Correct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case attemptevent.FieldClassID:
		return m.OldClassID(ctx)
	case attemptevent.FieldTopicID:
		return m.OldTopicID(ctx)
	case attemptevent.FieldTopicLabel:
		return m.OldTopicLabel(ctx)
	case attemptevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case attemptevent.FieldClassID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case attemptevent.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case attemptevent.FieldTopicLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicLabel(v)
		return nil
	case attemptevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptevent.FieldQuestionID) {
		fields = append(fields, attemptevent.FieldQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	switch name {
	case attemptevent.FieldQuestionID:
		m.ClearQuestionID()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case attemptevent.FieldClassID:
		m.ResetClassID()
		return nil
	case attemptevent.FieldTopicID:
		m.ResetTopicID()
		return nil
	case attemptevent.FieldTopicLabel:
		m.ResetTopicLabel()
		return nil
	case attemptevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// GraphSnapshotMutation represents an operation that mutates the GraphSnapshot nodes in the graph.
type GraphSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	class_id      *string
	data          *map[string]interface{}
	saved_at      *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GraphSnapshot, error)
	predicates    []predicate.GraphSnapshot
}

var _ ent.Mutation = (*GraphSnapshotMutation)(nil)

// graphsnapshotOption allows management of the mutation configuration using functional options.
type graphsnapshotOption func(*GraphSnapshotMutation)

// newGraphSnapshotMutation creates new mutation for the GraphSnapshot entity.
func newGraphSnapshotMutation(c config, op Op, opts ...graphsnapshotOption) *GraphSnapshotMutation {
	m := &GraphSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphSnapshotID sets the ID field of the mutation.
func withGraphSnapshotID(id int) graphsnapshotOption {
	return func(m *GraphSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphSnapshot
		)
		m.oldValue = func(ctx context.Context) (*GraphSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphSnapshot sets the old GraphSnapshot of the mutation.
func withGraphSnapshot(node *GraphSnapshot) graphsnapshotOption {
	return func(m *GraphSnapshotMutation) {
		m.oldValue = func(context.Context) (*GraphSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClassID sets the "class_id" field.
func (m *GraphSnapshotMutation) SetClassID(s string) {
	m.class_id = &s
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *GraphSnapshotMutation) ClassID() (r string, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the GraphSnapshot entity.
// If the GraphSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphSnapshotMutation) OldClassID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// ResetClassID resets all changes to the "class_id" field.
func (m *GraphSnapshotMutation) ResetClassID() {
	m.class_id = nil
}

// SetData sets the "data" field.
func (m *GraphSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *GraphSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the GraphSnapshot entity.
// If the GraphSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *GraphSnapshotMutation) ResetData() {
	m.data = nil
}

// SetSavedAt sets the "saved_at" field.
func (m *GraphSnapshotMutation) SetSavedAt(t time.Time) {
	m.saved_at = &t
}

// SavedAt returns the value of the "saved_at" field in the mutation.
func (m *GraphSnapshotMutation) SavedAt() (r time.Time, exists bool) {
	v := m.saved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSavedAt returns the old "saved_at" field's value of the GraphSnapshot entity.
// If the GraphSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphSnapshotMutation) OldSavedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSavedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSavedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSavedAt: %w", err)
	}
	return oldValue.SavedAt, nil
}

// ResetSavedAt resets all changes to the "saved_at" field.
func (m *GraphSnapshotMutation) ResetSavedAt() {
	m.saved_at = nil
}

// Where appends a list predicates to the GraphSnapshotMutation builder.
func (m *GraphSnapshotMutation) Where(ps ...predicate.GraphSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphSnapshot).
func (m *GraphSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.class_id != nil {
		fields = append(fields, graphsnapshot.FieldClassID)
	}
	if m.data != nil {
		fields = append(fields, graphsnapshot.FieldData)
	}
	if m.saved_at != nil {
		fields = append(fields, graphsnapshot.FieldSavedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphsnapshot.FieldClassID:
		return m.ClassID()
	case graphsnapshot.FieldData:
		return m.Data()
	case graphsnapshot.FieldSavedAt:
		return m.SavedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphsnapshot.FieldClassID:
		return m.OldClassID(ctx)
	case graphsnapshot.FieldData:
		return m.OldData(ctx)
	case graphsnapshot.FieldSavedAt:
		return m.OldSavedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GraphSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphsnapshot.FieldClassID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case graphsnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case graphsnapshot.FieldSavedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSavedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GraphSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphSnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GraphSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GraphSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphSnapshotMutation) ResetField(name string) error {
	switch name {
	case graphsnapshot.FieldClassID:
		m.ResetClassID()
		return nil
	case graphsnapshot.FieldData:
		m.ResetData()
		return nil
	case graphsnapshot.FieldSavedAt:
		m.ResetSavedAt()
		return nil
	}
	return fmt.Errorf("unknown GraphSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GraphSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GraphSnapshot edge %s", name)
}

// ScheduleEntryMutation represents an operation that mutates the ScheduleEntry nodes in the graph.
type ScheduleEntryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	entry_id              *string
	student_id            *string
	class_id              *string
	topic_id              *string
	topic_label           *string
	box                   *int
	addbox                *int
	streak                *int
	addstreak             *int
	total_attempts        *int
	addtotal_attempts     *int
	total_correct         *int
	addtotal_correct      *int
	last_quiz_attempts    *int
	addlast_quiz_attempts *int
	last_quiz_correct     *int
	addlast_quiz_correct  *int
	last_reviewed         *time.Time
	next_review           *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ScheduleEntry, error)
	predicates            []predicate.ScheduleEntry
}

var _ ent.Mutation = (*ScheduleEntryMutation)(nil)

// scheduleentryOption allows management of the mutation configuration using functional options.
type scheduleentryOption func(*ScheduleEntryMutation)

// newScheduleEntryMutation creates new mutation for the ScheduleEntry entity.
func newScheduleEntryMutation(c config, op Op, opts ...scheduleentryOption) *ScheduleEntryMutation {
	m := &ScheduleEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduleEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleEntryID sets the ID field of the mutation.
func withScheduleEntryID(id int) scheduleentryOption {
	return func(m *ScheduleEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduleEntry
		)
		m.oldValue = func(ctx context.Context) (*ScheduleEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduleEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduleEntry sets the old ScheduleEntry of the mutation.
func withScheduleEntry(node *ScheduleEntry) scheduleentryOption {
	return func(m *ScheduleEntryMutation) {
		m.oldValue = func(context.Context) (*ScheduleEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduleEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntryID sets the "entry_id" field.
func (m *ScheduleEntryMutation) SetEntryID(s string) {
	m.entry_id = &s
}

// EntryID returns the value of the "entry_id" field in the mutation.
func (m *ScheduleEntryMutation) EntryID() (r string, exists bool) {
	v := m.entry_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryID returns the old "entry_id" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldEntryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryID: %w", err)
	}
	return oldValue.EntryID, nil
}

// ResetEntryID resets all changes to the "entry_id" field.
func (m *ScheduleEntryMutation) ResetEntryID() {
	m.entry_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *ScheduleEntryMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *ScheduleEntryMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *ScheduleEntryMutation) ResetStudentID() {
	m.student_id = nil
}

// SetClassID sets the "class_id" field.
func (m *ScheduleEntryMutation) SetClassID(s string) {
	m.class_id = &s
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *ScheduleEntryMutation) ClassID() (r string, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldClassID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// ResetClassID resets all changes to the "class_id" field.
func (m *ScheduleEntryMutation) ResetClassID() {
	m.class_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *ScheduleEntryMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ScheduleEntryMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ScheduleEntryMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetTopicLabel sets the "topic_label" field.
func (m *ScheduleEntryMutation) SetTopicLabel(s string) {
	m.topic_label = &s
}

// TopicLabel returns the value of the "topic_label" field in the mutation.
func (m *ScheduleEntryMutation) TopicLabel() (r string, exists bool) {
	v := m.topic_label
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicLabel returns the old "topic_label" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldTopicLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicLabel: %w", err)
	}
	return oldValue.TopicLabel, nil
}

// ResetTopicLabel resets all changes to the "topic_label" field.
func (m *ScheduleEntryMutation) ResetTopicLabel() {
	m.topic_label = nil
}

// SetBox sets the "box" field.
func (m *ScheduleEntryMutation) SetBox(i int) {
	m.box = &i
	m.addbox = nil
}

// Box returns the value of the "box" field in the mutation.
func (m *ScheduleEntryMutation) Box() (r int, exists bool) {
	v := m.box
	if v == nil {
		return
	}
	return *v, true
}

// OldBox returns the old "box" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldBox(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBox is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBox requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBox: %w", err)
	}
	return oldValue.Box, nil
}

// AddBox adds i to the "box" field.
func (m *ScheduleEntryMutation) AddBox(i int) {
	if m.addbox != nil {
		*m.addbox += i
	} else {
		m.addbox = &i
	}
}

// AddedBox returns the value that was added to the "box" field in this mutation.
func (m *ScheduleEntryMutation) AddedBox() (r int, exists bool) {
	v := m.addbox
	if v == nil {
		return
	}
	return *v, true
}

// ResetBox resets all changes to the "box" field.
func (m *ScheduleEntryMutation) ResetBox() {
	m.box = nil
	m.addbox = nil
}

// SetStreak sets the "streak" field.
func (m *ScheduleEntryMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *ScheduleEntryMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *ScheduleEntryMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *ScheduleEntryMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *ScheduleEntryMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *ScheduleEntryMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *ScheduleEntryMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *ScheduleEntryMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *ScheduleEntryMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *ScheduleEntryMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetTotalCorrect sets the "total_correct" field.
func (m *ScheduleEntryMutation) SetTotalCorrect(i int) {
	m.total_correct = &i
	m.addtotal_correct = nil
}

// TotalCorrect returns the value of the "total_correct" field in the mutation.
func (m *ScheduleEntryMutation) TotalCorrect() (r int, exists bool) {
	v := m.total_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCorrect returns the old "total_correct" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldTotalCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCorrect: %w", err)
	}
	return oldValue.TotalCorrect, nil
}

// AddTotalCorrect adds i to the "total_correct" field.
func (m *ScheduleEntryMutation) AddTotalCorrect(i int) {
	if m.addtotal_correct != nil {
		*m.addtotal_correct += i
	} else {
		m.addtotal_correct = &i
	}
}

// AddedTotalCorrect returns the value that was added to the "total_correct" field in this mutation.
func (m *ScheduleEntryMutation) AddedTotalCorrect() (r int, exists bool) {
	v := m.addtotal_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCorrect resets all changes to the "total_correct" field.
func (m *ScheduleEntryMutation) ResetTotalCorrect() {
	m.total_correct = nil
	m.addtotal_correct = nil
}

// SetLastQuizAttempts sets the "last_quiz_attempts" field.
func (m *ScheduleEntryMutation) SetLastQuizAttempts(i int) {
	m.last_quiz_attempts = &i
	m.addlast_quiz_attempts = nil
}

// LastQuizAttempts returns the value of the "last_quiz_attempts" field in the mutation.
func (m *ScheduleEntryMutation) LastQuizAttempts() (r int, exists bool) {
	v := m.last_quiz_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldLastQuizAttempts returns the old "last_quiz_attempts" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldLastQuizAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastQuizAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastQuizAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastQuizAttempts: %w", err)
	}
	return oldValue.LastQuizAttempts, nil
}

// AddLastQuizAttempts adds i to the "last_quiz_attempts" field.
func (m *ScheduleEntryMutation) AddLastQuizAttempts(i int) {
	if m.addlast_quiz_attempts != nil {
		*m.addlast_quiz_attempts += i
	} else {
		m.addlast_quiz_attempts = &i
	}
}

// AddedLastQuizAttempts returns the value that was added to the "last_quiz_attempts" field in this mutation.
func (m *ScheduleEntryMutation) AddedLastQuizAttempts() (r int, exists bool) {
	v := m.addlast_quiz_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastQuizAttempts resets all changes to the "last_quiz_attempts" field.
func (m *ScheduleEntryMutation) ResetLastQuizAttempts() {
	m.last_quiz_attempts = nil
	m.addlast_quiz_attempts = nil
}

// SetLastQuizCorrect sets the "last_quiz_correct" field.
func (m *ScheduleEntryMutation) SetLastQuizCorrect(i int) {
	m.last_quiz_correct = &i
	m.addlast_quiz_correct = nil
}

// LastQuizCorrect returns the value of the "last_quiz_correct" field in the mutation.
func (m *ScheduleEntryMutation) LastQuizCorrect() (r int, exists bool) {
	v := m.last_quiz_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldLastQuizCorrect returns the old "last_quiz_correct" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldLastQuizCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastQuizCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastQuizCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastQuizCorrect: %w", err)
	}
	return oldValue.LastQuizCorrect, nil
}

// AddLastQuizCorrect adds i to the "last_quiz_correct" field.
func (m *ScheduleEntryMutation) AddLastQuizCorrect(i int) {
	if m.addlast_quiz_correct != nil {
		*m.addlast_quiz_correct += i
	} else {
		m.addlast_quiz_correct = &i
	}
}

// AddedLastQuizCorrect returns the value that was added to the "last_quiz_correct" field in this mutation.
func (m *ScheduleEntryMutation) AddedLastQuizCorrect() (r int, exists bool) {
	v := m.addlast_quiz_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastQuizCorrect resets all changes to the "last_quiz_correct" field.
func (m *ScheduleEntryMutation) ResetLastQuizCorrect() {
	m.last_quiz_correct = nil
	m.addlast_quiz_correct = nil
}

// SetLastReviewed sets the "last_reviewed" field.
func (m *ScheduleEntryMutation) SetLastReviewed(t time.Time) {
	m.last_reviewed = &t
}

// LastReviewed returns the value of the "last_reviewed" field in the mutation.
func (m *ScheduleEntryMutation) LastReviewed() (r time.Time, exists bool) {
	v := m.last_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewed returns the old "last_reviewed" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldLastReviewed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewed: %w", err)
	}
	return oldValue.LastReviewed, nil
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (m *ScheduleEntryMutation) ClearLastReviewed() {
	m.last_reviewed = nil
	m.clearedFields[scheduleentry.FieldLastReviewed] = struct{}{}
}

// LastReviewedCleared returns if the "last_reviewed" field was cleared in this mutation.
func (m *ScheduleEntryMutation) LastReviewedCleared() bool {
	_, ok := m.clearedFields[scheduleentry.FieldLastReviewed]
	return ok
}

// ResetLastReviewed resets all changes to the "last_reviewed" field.
func (m *ScheduleEntryMutation) ResetLastReviewed() {
	m.last_reviewed = nil
	delete(m.clearedFields, scheduleentry.FieldLastReviewed)
}

// SetNextReview sets the "next_review" field.
func (m *ScheduleEntryMutation) SetNextReview(t time.Time) {
	m.next_review = &t
}

// NextReview returns the value of the "next_review" field in the mutation.
func (m *ScheduleEntryMutation) NextReview() (r time.Time, exists bool) {
	v := m.next_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReview returns the old "next_review" field's value of the ScheduleEntry entity.
// If the ScheduleEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEntryMutation) OldNextReview(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReview: %w", err)
	}
	return oldValue.NextReview, nil
}

// ClearNextReview clears the value of the "next_review" field.
func (m *ScheduleEntryMutation) ClearNextReview() {
	m.next_review = nil
	m.clearedFields[scheduleentry.FieldNextReview] = struct{}{}
}

// NextReviewCleared returns if the "next_review" field was cleared in this mutation.
func (m *ScheduleEntryMutation) NextReviewCleared() bool {
	_, ok := m.clearedFields[scheduleentry.FieldNextReview]
	return ok
}

// ResetNextReview resets all changes to the "next_review" field.
func (m *ScheduleEntryMutation) ResetNextReview() {
	m.next_review = nil
	delete(m.clearedFields, scheduleentry.FieldNextReview)
}

// Where appends a list predicates to the ScheduleEntryMutation builder.
func (m *ScheduleEntryMutation) Where(ps ...predicate.ScheduleEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduleEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduleEntry).
func (m *ScheduleEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleEntryMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.entry_id != nil {
		fields = append(fields, scheduleentry.FieldEntryID)
	}
	if m.student_id != nil {
		fields = append(fields, scheduleentry.FieldStudentID)
	}
	if m.class_id != nil {
		fields = append(fields, scheduleentry.FieldClassID)
	}
	if m.topic_id != nil {
		fields = append(fields, scheduleentry.FieldTopicID)
	}
	if m.topic_label != nil {
		fields = append(fields, scheduleentry.FieldTopicLabel)
	}
	if m.box != nil {
		fields = append(fields, scheduleentry.FieldBox)
	}
	if m.streak != nil {
		fields = append(fields, scheduleentry.FieldStreak)
	}
	if m.total_attempts != nil {
		fields = append(fields, scheduleentry.FieldTotalAttempts)
	}
	if m.total_correct != nil {
		fields = append(fields, scheduleentry.FieldTotalCorrect)
	}
	if m.last_quiz_attempts != nil {
		fields = append(fields, scheduleentry.FieldLastQuizAttempts)
	}
	if m.last_quiz_correct != nil {
		fields = append(fields, scheduleentry.FieldLastQuizCorrect)
	}
	if m.last_reviewed != nil {
		fields = append(fields, scheduleentry.FieldLastReviewed)
	}
	if m.next_review != nil {
		fields = append(fields, scheduleentry.FieldNextReview)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduleentry.FieldEntryID:
		return m.EntryID()
	case scheduleentry.FieldStudentID:
		return m.StudentID()
	case scheduleentry.FieldClassID:
		return m.ClassID()
	case scheduleentry.FieldTopicID:
		return m.TopicID()
	case scheduleentry.FieldTopicLabel:
		return m.TopicLabel()
	case scheduleentry.FieldBox:
		return m.Box()
	case scheduleentry.FieldStreak:
		return m.Streak()
	case scheduleentry.FieldTotalAttempts:
		return m.TotalAttempts()
	case scheduleentry.FieldTotalCorrect:
		return m.TotalCorrect()
	case scheduleentry.FieldLastQuizAttempts:
		return m.LastQuizAttempts()
	case scheduleentry.FieldLastQuizCorrect:
		return m.LastQuizCorrect()
	case scheduleentry.FieldLastReviewed:
		return m.LastReviewed()
	case scheduleentry.FieldNextReview:
		return m.NextReview()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduleentry.FieldEntryID:
		return m.OldEntryID(ctx)
	case scheduleentry.FieldStudentID:
		return m.OldStudentID(ctx)
	case scheduleentry.FieldClassID:
		return m.OldClassID(ctx)
	case scheduleentry.FieldTopicID:
		return m.OldTopicID(ctx)
	case scheduleentry.FieldTopicLabel:
		return m.OldTopicLabel(ctx)
	case scheduleentry.FieldBox:
		return m.OldBox(ctx)
	case scheduleentry.FieldStreak:
		return m.OldStreak(ctx)
	case scheduleentry.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case scheduleentry.FieldTotalCorrect:
		return m.OldTotalCorrect(ctx)
	case scheduleentry.FieldLastQuizAttempts:
		return m.OldLastQuizAttempts(ctx)
	case scheduleentry.FieldLastQuizCorrect:
		return m.OldLastQuizCorrect(ctx)
	case scheduleentry.FieldLastReviewed:
		return m.OldLastReviewed(ctx)
	case scheduleentry.FieldNextReview:
		return m.OldNextReview(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduleEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduleentry.FieldEntryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryID(v)
		return nil
	case scheduleentry.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case scheduleentry.FieldClassID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case scheduleentry.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case scheduleentry.FieldTopicLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicLabel(v)
		return nil
	case scheduleentry.FieldBox:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBox(v)
		return nil
	case scheduleentry.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case scheduleentry.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case scheduleentry.FieldTotalCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCorrect(v)
		return nil
	case scheduleentry.FieldLastQuizAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastQuizAttempts(v)
		return nil
	case scheduleentry.FieldLastQuizCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastQuizCorrect(v)
		return nil
	case scheduleentry.FieldLastReviewed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewed(v)
		return nil
	case scheduleentry.FieldNextReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReview(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleEntryMutation) AddedFields() []string {
	var fields []string
	if m.addbox != nil {
		fields = append(fields, scheduleentry.FieldBox)
	}
	if m.addstreak != nil {
		fields = append(fields, scheduleentry.FieldStreak)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, scheduleentry.FieldTotalAttempts)
	}
	if m.addtotal_correct != nil {
		fields = append(fields, scheduleentry.FieldTotalCorrect)
	}
	if m.addlast_quiz_attempts != nil {
		fields = append(fields, scheduleentry.FieldLastQuizAttempts)
	}
	if m.addlast_quiz_correct != nil {
		fields = append(fields, scheduleentry.FieldLastQuizCorrect)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduleentry.FieldBox:
		return m.AddedBox()
	case scheduleentry.FieldStreak:
		return m.AddedStreak()
	case scheduleentry.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case scheduleentry.FieldTotalCorrect:
		return m.AddedTotalCorrect()
	case scheduleentry.FieldLastQuizAttempts:
		return m.AddedLastQuizAttempts()
	case scheduleentry.FieldLastQuizCorrect:
		return m.AddedLastQuizCorrect()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduleentry.FieldBox:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBox(v)
		return nil
	case scheduleentry.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case scheduleentry.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case scheduleentry.FieldTotalCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCorrect(v)
		return nil
	case scheduleentry.FieldLastQuizAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastQuizAttempts(v)
		return nil
	case scheduleentry.FieldLastQuizCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastQuizCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduleentry.FieldLastReviewed) {
		fields = append(fields, scheduleentry.FieldLastReviewed)
	}
	if m.FieldCleared(scheduleentry.FieldNextReview) {
		fields = append(fields, scheduleentry.FieldNextReview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleEntryMutation) ClearField(name string) error {
	switch name {
	case scheduleentry.FieldLastReviewed:
		m.ClearLastReviewed()
		return nil
	case scheduleentry.FieldNextReview:
		m.ClearNextReview()
		return nil
	}
	return fmt.Errorf("unknown ScheduleEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleEntryMutation) ResetField(name string) error {
	switch name {
	case scheduleentry.FieldEntryID:
		m.ResetEntryID()
		return nil
	case scheduleentry.FieldStudentID:
		m.ResetStudentID()
		return nil
	case scheduleentry.FieldClassID:
		m.ResetClassID()
		return nil
	case scheduleentry.FieldTopicID:
		m.ResetTopicID()
		return nil
	case scheduleentry.FieldTopicLabel:
		m.ResetTopicLabel()
		return nil
	case scheduleentry.FieldBox:
		m.ResetBox()
		return nil
	case scheduleentry.FieldStreak:
		m.ResetStreak()
		return nil
	case scheduleentry.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case scheduleentry.FieldTotalCorrect:
		m.ResetTotalCorrect()
		return nil
	case scheduleentry.FieldLastQuizAttempts:
		m.ResetLastQuizAttempts()
		return nil
	case scheduleentry.FieldLastQuizCorrect:
		m.ResetLastQuizCorrect()
		return nil
	case scheduleentry.FieldLastReviewed:
		m.ResetLastReviewed()
		return nil
	case scheduleentry.FieldNextReview:
		m.ResetNextReview()
		return nil
	}
	return fmt.Errorf("unknown ScheduleEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduleEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduleEntry edge %s", name)
}
