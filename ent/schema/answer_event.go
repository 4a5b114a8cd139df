package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered question within a game.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("turn").
			Comment("1-based question number"),
		field.String("question_text"),
		field.String("category").
			Default(""),
		field.String("difficulty").
			Comment("Difficulty the question was served at"),
		field.String("correct_answer"),
		field.String("selected_answer"),
		field.Bool("correct"),
		field.Int("points").
			Default(0).
			Comment("Points awarded after the streak multiplier"),
		field.Int("multiplier").
			Default(0),
		field.String("next_difficulty").
			Comment("Difficulty after the controller reacted"),
		field.Int("time_ms").
			Default(0).
			Comment("Time from question shown to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
