// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studymap/studymap/ent/attemptevent"
	"github.com/studymap/studymap/ent/graphsnapshot"
	"github.com/studymap/studymap/ent/scheduleentry"
	"github.com/studymap/studymap/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescStudentID is the schema descriptor for student_id field.
	attempteventDescStudentID := attempteventFields[0].Descriptor()
	// attemptevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	attemptevent.StudentIDValidator = attempteventDescStudentID.Validators[0].(func(string) error)
	// attempteventDescClassID is the schema descriptor for class_id field.
	attempteventDescClassID := attempteventFields[1].Descriptor()
	// attemptevent.ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	attemptevent.ClassIDValidator = attempteventDescClassID.Validators[0].(func(string) error)
	// attempteventDescTopicID is the schema descriptor for topic_id field.
	attempteventDescTopicID := attempteventFields[2].Descriptor()
	// attemptevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	attemptevent.TopicIDValidator = attempteventDescTopicID.Validators[0].(func(string) error)
	graphsnapshotFields := schema.GraphSnapshot{}.Fields()
	_ = graphsnapshotFields
	// graphsnapshotDescClassID is the schema descriptor for class_id field.
	graphsnapshotDescClassID := graphsnapshotFields[0].Descriptor()
	// graphsnapshot.ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	graphsnapshot.ClassIDValidator = graphsnapshotDescClassID.Validators[0].(func(string) error)
	// graphsnapshotDescSavedAt is the schema descriptor for saved_at field.
	graphsnapshotDescSavedAt := graphsnapshotFields[2].Descriptor()
	// graphsnapshot.DefaultSavedAt holds the default value on creation for the saved_at field.
	graphsnapshot.DefaultSavedAt = graphsnapshotDescSavedAt.Default.(func() time.Time)
	// graphsnapshot.UpdateDefaultSavedAt holds the default value on update for the saved_at field.
	graphsnapshot.UpdateDefaultSavedAt = graphsnapshotDescSavedAt.UpdateDefault.(func() time.Time)
	scheduleentryFields := schema.ScheduleEntry{}.Fields()
	_ = scheduleentryFields
	// scheduleentryDescEntryID is the schema descriptor for entry_id field.
	scheduleentryDescEntryID := scheduleentryFields[0].Descriptor()
	// scheduleentry.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	scheduleentry.EntryIDValidator = scheduleentryDescEntryID.Validators[0].(func(string) error)
	// scheduleentryDescStudentID is the schema descriptor for student_id field.
	scheduleentryDescStudentID := scheduleentryFields[1].Descriptor()
	// scheduleentry.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	scheduleentry.StudentIDValidator = scheduleentryDescStudentID.Validators[0].(func(string) error)
	// scheduleentryDescClassID is the schema descriptor for class_id field.
	scheduleentryDescClassID := scheduleentryFields[2].Descriptor()
	// scheduleentry.ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	scheduleentry.ClassIDValidator = scheduleentryDescClassID.Validators[0].(func(string) error)
	// scheduleentryDescTopicID is the schema descriptor for topic_id field.
	scheduleentryDescTopicID := scheduleentryFields[3].Descriptor()
	// scheduleentry.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	scheduleentry.TopicIDValidator = scheduleentryDescTopicID.Validators[0].(func(string) error)
	// scheduleentryDescBox is the schema descriptor for box field.
	scheduleentryDescBox := scheduleentryFields[5].Descriptor()
	// scheduleentry.DefaultBox holds the default value on creation for the box field.
	scheduleentry.DefaultBox = scheduleentryDescBox.Default.(int)
	// scheduleentryDescStreak is the schema descriptor for streak field.
	scheduleentryDescStreak := scheduleentryFields[6].Descriptor()
	// scheduleentry.DefaultStreak holds the default value on creation for the streak field.
	scheduleentry.DefaultStreak = scheduleentryDescStreak.Default.(int)
	// scheduleentryDescTotalAttempts is the schema descriptor for total_attempts field.
	scheduleentryDescTotalAttempts := scheduleentryFields[7].Descriptor()
	// scheduleentry.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	scheduleentry.DefaultTotalAttempts = scheduleentryDescTotalAttempts.Default.(int)
	// scheduleentryDescTotalCorrect is the schema descriptor for total_correct field.
	scheduleentryDescTotalCorrect := scheduleentryFields[8].Descriptor()
	// scheduleentry.DefaultTotalCorrect holds the default value on creation for the total_correct field.
	scheduleentry.DefaultTotalCorrect = scheduleentryDescTotalCorrect.Default.(int)
	// scheduleentryDescLastQuizAttempts is the schema descriptor for last_quiz_attempts field.
	scheduleentryDescLastQuizAttempts := scheduleentryFields[9].Descriptor()
	// scheduleentry.DefaultLastQuizAttempts holds the default value on creation for the last_quiz_attempts field.
	scheduleentry.DefaultLastQuizAttempts = scheduleentryDescLastQuizAttempts.Default.(int)
	// scheduleentryDescLastQuizCorrect is the schema descriptor for last_quiz_correct field.
	scheduleentryDescLastQuizCorrect := scheduleentryFields[10].Descriptor()
	// scheduleentry.DefaultLastQuizCorrect holds the default value on creation for the last_quiz_correct field.
	scheduleentry.DefaultLastQuizCorrect = scheduleentryDescLastQuizCorrect.Default.(int)
}
