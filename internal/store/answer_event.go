package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	err := r.appendEvent(ctx, tableAnswerEvents,
		[]string{
			"session_id", "turn", "question_text", "category", "difficulty",
			"correct_answer", "selected_answer", "correct", "points", "multiplier",
			"next_difficulty", "time_ms",
		},
		[]any{
			data.SessionID, data.Turn, data.QuestionText, data.Category, data.Difficulty,
			data.CorrectAnswer, data.SelectedAnswer, data.Correct, data.Points, data.Multiplier,
			data.NextDifficulty, data.TimeMs,
		},
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, sessionID string) ([]AnswerEventRecord, error) {
	sel := builder().Select(
		"session_id", "turn", "question_text", "category", "difficulty",
		"correct_answer", "selected_answer", "correct", "points", "multiplier",
		"next_difficulty", "time_ms", "sequence", "timestamp",
	).
		From(entsql.Table(tableAnswerEvents)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy(entsql.Asc("sequence"))

	var records []AnswerEventRecord
	err := r.queryRows(ctx, sel, func(rows *sql.Rows) error {
		var rec AnswerEventRecord
		if err := rows.Scan(
			&rec.SessionID, &rec.Turn, &rec.QuestionText, &rec.Category, &rec.Difficulty,
			&rec.CorrectAnswer, &rec.SelectedAnswer, &rec.Correct, &rec.Points, &rec.Multiplier,
			&rec.NextDifficulty, &rec.TimeMs, &rec.Sequence, &rec.Timestamp,
		); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return records, nil
}
