package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.SessionID == "" {
		return fmt.Errorf("save session event: empty session id")
	}
	if data.Action != ActionStart && data.Action != ActionEnd {
		return fmt.Errorf("save session event: unknown action %q", data.Action)
	}

	err := r.appendEvent(ctx, tableSessionEvents,
		[]string{
			"session_id", "player", "action", "source",
			"questions_served", "correct_answers", "score", "best_streak",
			"final_difficulty", "duration_secs",
		},
		[]any{
			data.SessionID, data.Player, data.Action, data.Source,
			data.QuestionsServed, data.CorrectAnswers, data.Score, data.BestStreak,
			data.FinalDifficulty, data.DurationSecs,
		},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

var sessionSummaryColumns = []string{
	"session_id", "player", "source", "sequence", "timestamp",
	"questions_served", "correct_answers", "score", "best_streak",
	"final_difficulty", "duration_secs",
}

func scanSessionSummary(rows *sql.Rows) (SessionSummaryRecord, error) {
	var rec SessionSummaryRecord
	err := rows.Scan(
		&rec.SessionID, &rec.Player, &rec.Source, &rec.Sequence, &rec.Timestamp,
		&rec.QuestionsServed, &rec.CorrectAnswers, &rec.Score, &rec.BestStreak,
		&rec.FinalDifficulty, &rec.DurationSecs,
	)
	return rec, err
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	sel := selectEvents(tableSessionEvents, opts, sessionSummaryColumns...).
		Where(entsql.EQ("action", ActionEnd))

	var records []SessionSummaryRecord
	err := r.queryRows(ctx, sel, func(rows *sql.Rows) error {
		rec, err := scanSessionSummary(rows)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	return records, nil
}

func (r *eventRepo) BestSession(ctx context.Context) (*SessionSummaryRecord, error) {
	sel := builder().Select(sessionSummaryColumns...).
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", ActionEnd)).
		OrderBy(entsql.Desc("score"), entsql.Asc("sequence")).
		Limit(1)

	var best *SessionSummaryRecord
	err := r.queryRows(ctx, sel, func(rows *sql.Rows) error {
		rec, err := scanSessionSummary(rows)
		if err != nil {
			return err
		}
		best = &rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query best session: %w", err)
	}
	return best, nil
}
