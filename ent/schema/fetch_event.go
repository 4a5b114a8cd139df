package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FetchEvent records a request to a question source.
type FetchEvent struct {
	ent.Schema
}

func (FetchEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FetchEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("source"),
		field.String("category").
			Default(""),
		field.Int("requested").
			Default(0),
		field.Int("received").
			Default(0).
			Comment("Questions that passed validation"),
		field.Int("rejected").
			Default(0).
			Comment("Questions dropped by validation"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}

func (FetchEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
	}
}
