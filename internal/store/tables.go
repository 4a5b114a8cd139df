package store

import (
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/triviaz/ent/schema"
)

const (
	tableSessionEvents    = "session_events"
	tableAnswerEvents     = "answer_events"
	tableFetchEvents      = "fetch_events"
	tableLLMRequestEvents = "llm_request_events"
)

// entity is the part of an ent schema the migrator reads.
type entity interface {
	Mixin() []ent.Mixin
	Fields() []ent.Field
	Indexes() []ent.Index
}

// tables lists every table created by auto-migration, built from the
// declarations in ent/schema.
var tables = []*schema.Table{
	tableOf(tableSessionEvents, entschema.SessionEvent{}),
	tableOf(tableAnswerEvents, entschema.AnswerEvent{}),
	tableOf(tableFetchEvents, entschema.FetchEvent{}),
	tableOf(tableLLMRequestEvents, entschema.LLMRequestEvent{}),
}

// tableOf turns an ent entity into a migratable table: an auto-increment id
// followed by the mixin fields, then the entity's own fields. Index names
// are the table name joined with the indexed columns.
func tableOf(name string, e entity) *schema.Table {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}

	fields := []ent.Field{}
	indexes := []ent.Index{}
	for _, m := range e.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, e.Fields()...)
	indexes = append(indexes, e.Indexes()...)

	byName := make(map[string]*schema.Column, len(fields))
	for _, f := range fields {
		col := columnOf(f.Descriptor())
		t.Columns = append(t.Columns, col)
		byName[col.Name] = col
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		idx := &schema.Index{
			Name:   name + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, f := range d.Fields {
			idx.Columns = append(idx.Columns, byName[f])
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t
}

// columnOf maps a field descriptor to a column. Only literal defaults are
// carried over; function defaults like time.Now are applied on append.
func columnOf(d *field.Descriptor) *schema.Column {
	col := &schema.Column{
		Name:     d.Name,
		Type:     d.Info.Type,
		Unique:   d.Unique,
		Nullable: d.Optional,
		Size:     int64(d.Size),
	}
	switch v := d.Default.(type) {
	case string, bool, int, int64, float64:
		col.Default = v
	}
	return col
}
