// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studymap/studymap/ent/scheduleentry"
)

// ScheduleEntry is the model entity for the ScheduleEntry schema.
type ScheduleEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable external identifier
	EntryID string `json:"entry_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// ClassID holds the value of the "class_id" field.
	ClassID string `json:"class_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Display label, carried for rows predating stable topic IDs
	TopicLabel string `json:"topic_label,omitempty"`
	// Current Leitner box, 1-based
	Box int `json:"box,omitempty"`
	// Consecutive correct attempts since the last box change
	Streak int `json:"streak,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// TotalCorrect holds the value of the "total_correct" field.
	TotalCorrect int `json:"total_correct,omitempty"`
	// Aggregate of the most recent finished quiz
	LastQuizAttempts int `json:"last_quiz_attempts,omitempty"`
	// LastQuizCorrect holds the value of the "last_quiz_correct" field.
	LastQuizCorrect int `json:"last_quiz_correct,omitempty"`
	// LastReviewed holds the value of the "last_reviewed" field.
	LastReviewed time.Time `json:"last_reviewed,omitempty"`
	// NextReview holds the value of the "next_review" field.
	NextReview   time.Time `json:"next_review,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduleEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduleentry.FieldID, scheduleentry.FieldBox, scheduleentry.FieldStreak, scheduleentry.FieldTotalAttempts, scheduleentry.FieldTotalCorrect, scheduleentry.FieldLastQuizAttempts, scheduleentry.FieldLastQuizCorrect:
			values[i] = new(sql.NullInt64)
		case scheduleentry.FieldEntryID, scheduleentry.FieldStudentID, scheduleentry.FieldClassID, scheduleentry.FieldTopicID, scheduleentry.FieldTopicLabel:
			values[i] = new(sql.NullString)
		case scheduleentry.FieldLastReviewed, scheduleentry.FieldNextReview:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduleEntry fields.
func (se *ScheduleEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduleentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			se.ID = int(value.Int64)
		case scheduleentry.FieldEntryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_id", values[i])
			} else if value.Valid {
				se.EntryID = value.String
			}
		case scheduleentry.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				se.StudentID = value.String
			}
		case scheduleentry.FieldClassID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_id", values[i])
			} else if value.Valid {
				se.ClassID = value.String
			}
		case scheduleentry.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				se.TopicID = value.String
			}
		case scheduleentry.FieldTopicLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_label", values[i])
			} else if value.Valid {
				se.TopicLabel = value.String
			}
		case scheduleentry.FieldBox:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field box", values[i])
			} else if value.Valid {
				se.Box = int(value.Int64)
			}
		case scheduleentry.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				se.Streak = int(value.Int64)
			}
		case scheduleentry.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				se.TotalAttempts = int(value.Int64)
			}
		case scheduleentry.FieldTotalCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_correct", values[i])
			} else if value.Valid {
				se.TotalCorrect = int(value.Int64)
			}
		case scheduleentry.FieldLastQuizAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_quiz_attempts", values[i])
			} else if value.Valid {
				se.LastQuizAttempts = int(value.Int64)
			}
		case scheduleentry.FieldLastQuizCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_quiz_correct", values[i])
			} else if value.Valid {
				se.LastQuizCorrect = int(value.Int64)
			}
		case scheduleentry.FieldLastReviewed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed", values[i])
			} else if value.Valid {
				se.LastReviewed = value.Time
			}
		case scheduleentry.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				se.NextReview = value.Time
			}
		default:
			se.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduleEntry.
// This includes values selected through modifiers, order, etc.
func (se *ScheduleEntry) Value(name string) (ent.Value, error) {
	return se.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduleEntry.
// Note that you need to call ScheduleEntry.Unwrap() before calling this method if this ScheduleEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (se *ScheduleEntry) Update() *ScheduleEntryUpdateOne {
	return NewScheduleEntryClient(se.config).UpdateOne(se)
}

// Unwrap unwraps the ScheduleEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (se *ScheduleEntry) Unwrap() *ScheduleEntry {
	_tx, ok := se.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduleEntry is not a transactional entity")
	}
	se.config.driver = _tx.drv
	return se
}

// String implements the fmt.Stringer.
func (se *ScheduleEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduleEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", se.ID))
	builder.WriteString("entry_id=")
	builder.WriteString(se.EntryID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(se.StudentID)
	builder.WriteString(", ")
	builder.WriteString("class_id=")
	builder.WriteString(se.ClassID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(se.TopicID)
	builder.WriteString(", ")
	builder.WriteString("topic_label=")
	builder.WriteString(se.TopicLabel)
	builder.WriteString(", ")
	builder.WriteString("box=")
	builder.WriteString(fmt.Sprintf("%v", se.Box))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", se.Streak))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", se.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("total_correct=")
	builder.WriteString(fmt.Sprintf("%v", se.TotalCorrect))
	builder.WriteString(", ")
	builder.WriteString("last_quiz_attempts=")
	builder.WriteString(fmt.Sprintf("%v", se.LastQuizAttempts))
	builder.WriteString(", ")
	builder.WriteString("last_quiz_correct=")
	builder.WriteString(fmt.Sprintf("%v", se.LastQuizCorrect))
	builder.WriteString(", ")
	builder.WriteString("last_reviewed=")
	builder.WriteString(se.LastReviewed.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(se.NextReview.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduleEntries is a parsable slice of ScheduleEntry.
type ScheduleEntries []*ScheduleEntry
