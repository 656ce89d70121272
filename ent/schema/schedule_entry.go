package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduleEntry is the Leitner review state for one (student, class, topic).
type ScheduleEntry struct {
	ent.Schema
}

func (ScheduleEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("entry_id").
			NotEmpty().
			Unique().
			Comment("Stable external identifier"),
		field.String("student_id").
			NotEmpty(),
		field.String("class_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("topic_label").
			Comment("Display label, carried for rows predating stable topic IDs"),
		field.Int("box").
			Default(1).
			Comment("Current Leitner box, 1-based"),
		field.Int("streak").
			Default(0).
			Comment("Consecutive correct attempts since the last box change"),
		field.Int("total_attempts").
			Default(0),
		field.Int("total_correct").
			Default(0),
		field.Int("last_quiz_attempts").
			Default(0).
			Comment("Aggregate of the most recent finished quiz"),
		field.Int("last_quiz_correct").
			Default(0),
		field.Time("last_reviewed").
			Optional(),
		field.Time("next_review").
			Optional(),
	}
}

func (ScheduleEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "class_id", "topic_id").
			Unique(),
		index.Fields("student_id", "class_id"),
		index.Fields("next_review"),
	}
}
