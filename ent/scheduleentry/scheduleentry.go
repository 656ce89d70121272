// Code generated by ent, DO NOT EDIT.

package scheduleentry

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduleentry type in the database.
	Label = "schedule_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntryID holds the string denoting the entry_id field in the database.
	FieldEntryID = "entry_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldClassID holds the string denoting the class_id field in the database.
	FieldClassID = "class_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldTopicLabel holds the string denoting the topic_label field in the database.
	FieldTopicLabel = "topic_label"
	// FieldBox holds the string denoting the box field in the database.
	FieldBox = "box"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldTotalCorrect holds the string denoting the total_correct field in the database.
	FieldTotalCorrect = "total_correct"
	// FieldLastQuizAttempts holds the string denoting the last_quiz_attempts field in the database.
	FieldLastQuizAttempts = "last_quiz_attempts"
	// FieldLastQuizCorrect holds the string denoting the last_quiz_correct field in the database.
	FieldLastQuizCorrect = "last_quiz_correct"
	// FieldLastReviewed holds the string denoting the last_reviewed field in the database.
	FieldLastReviewed = "last_reviewed"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// Table holds the table name of the scheduleentry in the database.
	Table = "schedule_entries"
)

// Columns holds all SQL columns for scheduleentry fields.
var Columns = []string{
	FieldID,
	FieldEntryID,
	FieldStudentID,
	FieldClassID,
	FieldTopicID,
	FieldTopicLabel,
	FieldBox,
	FieldStreak,
	FieldTotalAttempts,
	FieldTotalCorrect,
	FieldLastQuizAttempts,
	FieldLastQuizCorrect,
	FieldLastReviewed,
	FieldNextReview,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	EntryIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	ClassIDValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// DefaultBox holds the default value on creation for the "box" field.
	DefaultBox int
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultTotalCorrect holds the default value on creation for the "total_correct" field.
	DefaultTotalCorrect int
	// DefaultLastQuizAttempts holds the default value on creation for the "last_quiz_attempts" field.
	DefaultLastQuizAttempts int
	// DefaultLastQuizCorrect holds the default value on creation for the "last_quiz_correct" field.
	DefaultLastQuizCorrect int
)

// OrderOption defines the ordering options for the ScheduleEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntryID orders the results by the entry_id field.
func ByEntryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByClassID orders the results by the class_id field.
func ByClassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByTopicLabel orders the results by the topic_label field.
func ByTopicLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicLabel, opts...).ToFunc()
}

// ByBox orders the results by the box field.
func ByBox(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBox, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByTotalCorrect orders the results by the total_correct field.
func ByTotalCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCorrect, opts...).ToFunc()
}

// ByLastQuizAttempts orders the results by the last_quiz_attempts field.
func ByLastQuizAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQuizAttempts, opts...).ToFunc()
}

// ByLastQuizCorrect orders the results by the last_quiz_correct field.
func ByLastQuizCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQuizCorrect, opts...).ToFunc()
}

// ByLastReviewed orders the results by the last_reviewed field.
func ByLastReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewed, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}
