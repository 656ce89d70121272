// Code generated by ent, DO NOT EDIT.

package scheduleentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studymap/studymap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldID, id))
}

// EntryID applies equality check predicate on the "entry_id" field. It's identical to EntryIDEQ.
func EntryID(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldEntryID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldStudentID, v))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldClassID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldTopicID, v))
}

// TopicLabel applies equality check predicate on the "topic_label" field. It's identical to TopicLabelEQ.
func TopicLabel(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldTopicLabel, v))
}

// Box applies equality check predicate on the "box" field. It's identical to BoxEQ.
func Box(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldBox, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldStreak, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalCorrect applies equality check predicate on the "total_correct" field. It's identical to TotalCorrectEQ.
func TotalCorrect(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldTotalCorrect, v))
}

// LastQuizAttempts applies equality check predicate on the "last_quiz_attempts" field. It's identical to LastQuizAttemptsEQ.
func LastQuizAttempts(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldLastQuizAttempts, v))
}

// LastQuizCorrect applies equality check predicate on the "last_quiz_correct" field. It's identical to LastQuizCorrectEQ.
func LastQuizCorrect(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldLastQuizCorrect, v))
}

// LastReviewed applies equality check predicate on the "last_reviewed" field. It's identical to LastReviewedEQ.
func LastReviewed(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldLastReviewed, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldNextReview, v))
}

// EntryIDEQ applies the EQ predicate on the "entry_id" field.
func EntryIDEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldEntryID, v))
}

// EntryIDNEQ applies the NEQ predicate on the "entry_id" field.
func EntryIDNEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldEntryID, v))
}

// EntryIDIn applies the In predicate on the "entry_id" field.
func EntryIDIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldEntryID, vs...))
}

// EntryIDNotIn applies the NotIn predicate on the "entry_id" field.
func EntryIDNotIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldEntryID, vs...))
}

// EntryIDGT applies the GT predicate on the "entry_id" field.
func EntryIDGT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldEntryID, v))
}

// EntryIDGTE applies the GTE predicate on the "entry_id" field.
func EntryIDGTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldEntryID, v))
}

// EntryIDLT applies the LT predicate on the "entry_id" field.
func EntryIDLT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldEntryID, v))
}

// EntryIDLTE applies the LTE predicate on the "entry_id" field.
func EntryIDLTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldEntryID, v))
}

// EntryIDContains applies the Contains predicate on the "entry_id" field.
func EntryIDContains(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContains(FieldEntryID, v))
}

// EntryIDHasPrefix applies the HasPrefix predicate on the "entry_id" field.
func EntryIDHasPrefix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasPrefix(FieldEntryID, v))
}

// EntryIDHasSuffix applies the HasSuffix predicate on the "entry_id" field.
func EntryIDHasSuffix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasSuffix(FieldEntryID, v))
}

// EntryIDEqualFold applies the EqualFold predicate on the "entry_id" field.
func EntryIDEqualFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEqualFold(FieldEntryID, v))
}

// EntryIDContainsFold applies the ContainsFold predicate on the "entry_id" field.
func EntryIDContainsFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContainsFold(FieldEntryID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContainsFold(FieldStudentID, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldClassID, v))
}

// ClassIDContains applies the Contains predicate on the "class_id" field.
func ClassIDContains(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContains(FieldClassID, v))
}

// ClassIDHasPrefix applies the HasPrefix predicate on the "class_id" field.
func ClassIDHasPrefix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasPrefix(FieldClassID, v))
}

// ClassIDHasSuffix applies the HasSuffix predicate on the "class_id" field.
func ClassIDHasSuffix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasSuffix(FieldClassID, v))
}

// ClassIDEqualFold applies the EqualFold predicate on the "class_id" field.
func ClassIDEqualFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEqualFold(FieldClassID, v))
}

// ClassIDContainsFold applies the ContainsFold predicate on the "class_id" field.
func ClassIDContainsFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContainsFold(FieldClassID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContainsFold(FieldTopicID, v))
}

// TopicLabelEQ applies the EQ predicate on the "topic_label" field.
func TopicLabelEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldTopicLabel, v))
}

// TopicLabelNEQ applies the NEQ predicate on the "topic_label" field.
func TopicLabelNEQ(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldTopicLabel, v))
}

// TopicLabelIn applies the In predicate on the "topic_label" field.
func TopicLabelIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldTopicLabel, vs...))
}

// TopicLabelNotIn applies the NotIn predicate on the "topic_label" field.
func TopicLabelNotIn(vs ...string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldTopicLabel, vs...))
}

// TopicLabelGT applies the GT predicate on the "topic_label" field.
func TopicLabelGT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldTopicLabel, v))
}

// TopicLabelGTE applies the GTE predicate on the "topic_label" field.
func TopicLabelGTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldTopicLabel, v))
}

// TopicLabelLT applies the LT predicate on the "topic_label" field.
func TopicLabelLT(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldTopicLabel, v))
}

// TopicLabelLTE applies the LTE predicate on the "topic_label" field.
func TopicLabelLTE(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldTopicLabel, v))
}

// TopicLabelContains applies the Contains predicate on the "topic_label" field.
func TopicLabelContains(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContains(FieldTopicLabel, v))
}

// TopicLabelHasPrefix applies the HasPrefix predicate on the "topic_label" field.
func TopicLabelHasPrefix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasPrefix(FieldTopicLabel, v))
}

// TopicLabelHasSuffix applies the HasSuffix predicate on the "topic_label" field.
func TopicLabelHasSuffix(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldHasSuffix(FieldTopicLabel, v))
}

// TopicLabelEqualFold applies the EqualFold predicate on the "topic_label" field.
func TopicLabelEqualFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEqualFold(FieldTopicLabel, v))
}

// TopicLabelContainsFold applies the ContainsFold predicate on the "topic_label" field.
func TopicLabelContainsFold(v string) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldContainsFold(FieldTopicLabel, v))
}

// BoxEQ applies the EQ predicate on the "box" field.
func BoxEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldBox, v))
}

// BoxNEQ applies the NEQ predicate on the "box" field.
func BoxNEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldBox, v))
}

// BoxIn applies the In predicate on the "box" field.
func BoxIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldBox, vs...))
}

// BoxNotIn applies the NotIn predicate on the "box" field.
func BoxNotIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldBox, vs...))
}

// BoxGT applies the GT predicate on the "box" field.
func BoxGT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldBox, v))
}

// BoxGTE applies the GTE predicate on the "box" field.
func BoxGTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldBox, v))
}

// BoxLT applies the LT predicate on the "box" field.
func BoxLT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldBox, v))
}

// BoxLTE applies the LTE predicate on the "box" field.
func BoxLTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldBox, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldStreak, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldTotalAttempts, v))
}

// TotalCorrectEQ applies the EQ predicate on the "total_correct" field.
func TotalCorrectEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldTotalCorrect, v))
}

// TotalCorrectNEQ applies the NEQ predicate on the "total_correct" field.
func TotalCorrectNEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldTotalCorrect, v))
}

// TotalCorrectIn applies the In predicate on the "total_correct" field.
func TotalCorrectIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldTotalCorrect, vs...))
}

// TotalCorrectNotIn applies the NotIn predicate on the "total_correct" field.
func TotalCorrectNotIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldTotalCorrect, vs...))
}

// TotalCorrectGT applies the GT predicate on the "total_correct" field.
func TotalCorrectGT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldTotalCorrect, v))
}

// TotalCorrectGTE applies the GTE predicate on the "total_correct" field.
func TotalCorrectGTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldTotalCorrect, v))
}

// TotalCorrectLT applies the LT predicate on the "total_correct" field.
func TotalCorrectLT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldTotalCorrect, v))
}

// TotalCorrectLTE applies the LTE predicate on the "total_correct" field.
func TotalCorrectLTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldTotalCorrect, v))
}

// LastQuizAttemptsEQ applies the EQ predicate on the "last_quiz_attempts" field.
func LastQuizAttemptsEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldLastQuizAttempts, v))
}

// LastQuizAttemptsNEQ applies the NEQ predicate on the "last_quiz_attempts" field.
func LastQuizAttemptsNEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldLastQuizAttempts, v))
}

// LastQuizAttemptsIn applies the In predicate on the "last_quiz_attempts" field.
func LastQuizAttemptsIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldLastQuizAttempts, vs...))
}

// LastQuizAttemptsNotIn applies the NotIn predicate on the "last_quiz_attempts" field.
func LastQuizAttemptsNotIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldLastQuizAttempts, vs...))
}

// LastQuizAttemptsGT applies the GT predicate on the "last_quiz_attempts" field.
func LastQuizAttemptsGT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldLastQuizAttempts, v))
}

// LastQuizAttemptsGTE applies the GTE predicate on the "last_quiz_attempts" field.
func LastQuizAttemptsGTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldLastQuizAttempts, v))
}

// LastQuizAttemptsLT applies the LT predicate on the "last_quiz_attempts" field.
func LastQuizAttemptsLT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldLastQuizAttempts, v))
}

// LastQuizAttemptsLTE applies the LTE predicate on the "last_quiz_attempts" field.
func LastQuizAttemptsLTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldLastQuizAttempts, v))
}

// LastQuizCorrectEQ applies the EQ predicate on the "last_quiz_correct" field.
func LastQuizCorrectEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldLastQuizCorrect, v))
}

// LastQuizCorrectNEQ applies the NEQ predicate on the "last_quiz_correct" field.
func LastQuizCorrectNEQ(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldLastQuizCorrect, v))
}

// LastQuizCorrectIn applies the In predicate on the "last_quiz_correct" field.
func LastQuizCorrectIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldLastQuizCorrect, vs...))
}

// LastQuizCorrectNotIn applies the NotIn predicate on the "last_quiz_correct" field.
func LastQuizCorrectNotIn(vs ...int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldLastQuizCorrect, vs...))
}

// LastQuizCorrectGT applies the GT predicate on the "last_quiz_correct" field.
func LastQuizCorrectGT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldLastQuizCorrect, v))
}

// LastQuizCorrectGTE applies the GTE predicate on the "last_quiz_correct" field.
func LastQuizCorrectGTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldLastQuizCorrect, v))
}

// LastQuizCorrectLT applies the LT predicate on the "last_quiz_correct" field.
func LastQuizCorrectLT(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldLastQuizCorrect, v))
}

// LastQuizCorrectLTE applies the LTE predicate on the "last_quiz_correct" field.
func LastQuizCorrectLTE(v int) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldLastQuizCorrect, v))
}

// LastReviewedEQ applies the EQ predicate on the "last_reviewed" field.
func LastReviewedEQ(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldLastReviewed, v))
}

// LastReviewedNEQ applies the NEQ predicate on the "last_reviewed" field.
func LastReviewedNEQ(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldLastReviewed, v))
}

// LastReviewedIn applies the In predicate on the "last_reviewed" field.
func LastReviewedIn(vs ...time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldLastReviewed, vs...))
}

// LastReviewedNotIn applies the NotIn predicate on the "last_reviewed" field.
func LastReviewedNotIn(vs ...time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldLastReviewed, vs...))
}

// LastReviewedGT applies the GT predicate on the "last_reviewed" field.
func LastReviewedGT(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldLastReviewed, v))
}

// LastReviewedGTE applies the GTE predicate on the "last_reviewed" field.
func LastReviewedGTE(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldLastReviewed, v))
}

// LastReviewedLT applies the LT predicate on the "last_reviewed" field.
func LastReviewedLT(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldLastReviewed, v))
}

// LastReviewedLTE applies the LTE predicate on the "last_reviewed" field.
func LastReviewedLTE(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldLastReviewed, v))
}

// LastReviewedIsNil applies the IsNil predicate on the "last_reviewed" field.
func LastReviewedIsNil() predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIsNull(FieldLastReviewed))
}

// LastReviewedNotNil applies the NotNil predicate on the "last_reviewed" field.
func LastReviewedNotNil() predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotNull(FieldLastReviewed))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldLTE(FieldNextReview, v))
}

// NextReviewIsNil applies the IsNil predicate on the "next_review" field.
func NextReviewIsNil() predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldIsNull(FieldNextReview))
}

// NextReviewNotNil applies the NotNil predicate on the "next_review" field.
func NextReviewNotNil() predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.FieldNotNull(FieldNextReview))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleEntry) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleEntry) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleEntry) predicate.ScheduleEntry {
	return predicate.ScheduleEntry(sql.NotPredicates(p))
}
