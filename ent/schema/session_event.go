package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records a game starting or finishing.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID shared by all events of one game"),
		field.String("player").
			Default(""),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("source").
			Default("").
			Comment("Question source name"),
		field.Int("questions_served").
			Default(0).
			Comment("End only"),
		field.Int("correct_answers").
			Default(0).
			Comment("End only"),
		field.Int("score").
			Default(0).
			Comment("Final score (end only)"),
		field.Int("best_streak").
			Default(0),
		field.String("final_difficulty").
			Default(""),
		field.Int("duration_secs").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
