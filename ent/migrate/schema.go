// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "class_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "topic_label", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_student_id_class_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[8]},
			},
		},
	}
	// GraphSnapshotsColumns holds the columns for the "graph_snapshots" table.
	GraphSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "class_id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "saved_at", Type: field.TypeTime},
	}
	// GraphSnapshotsTable holds the schema information for the "graph_snapshots" table.
	GraphSnapshotsTable = &schema.Table{
		Name:       "graph_snapshots",
		Columns:    GraphSnapshotsColumns,
		PrimaryKey: []*schema.Column{GraphSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphsnapshot_saved_at",
				Unique:  false,
				Columns: []*schema.Column{GraphSnapshotsColumns[3]},
			},
		},
	}
	// ScheduleEntriesColumns holds the columns for the "schedule_entries" table.
	ScheduleEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "class_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "topic_label", Type: field.TypeString},
		{Name: "box", Type: field.TypeInt, Default: 1},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "total_correct", Type: field.TypeInt, Default: 0},
		{Name: "last_quiz_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_quiz_correct", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
		{Name: "next_review", Type: field.TypeTime, Nullable: true},
	}
	// ScheduleEntriesTable holds the schema information for the "schedule_entries" table.
	ScheduleEntriesTable = &schema.Table{
		Name:       "schedule_entries",
		Columns:    ScheduleEntriesColumns,
		PrimaryKey: []*schema.Column{ScheduleEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduleentry_student_id_class_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{ScheduleEntriesColumns[2], ScheduleEntriesColumns[3], ScheduleEntriesColumns[4]},
			},
			{
				Name:    "scheduleentry_student_id_class_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduleEntriesColumns[2], ScheduleEntriesColumns[3]},
			},
			{
				Name:    "scheduleentry_next_review",
				Unique:  false,
				Columns: []*schema.Column{ScheduleEntriesColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		GraphSnapshotsTable,
		ScheduleEntriesTable,
	}
)

func init() {
}
