package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single quiz-question attempt. The event log is
// append-only; per-topic aggregates for remediation are computed from it.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("class_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the question was for"),
		field.String("topic_label").
			Comment("Topic label at the time of the attempt"),
		field.String("question_id").
			Optional().
			Comment("Source question, when the quiz engine provides one"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "class_id"),
		index.Fields("topic_id"),
		index.Fields("correct"),
	}
}
