package store

import (
	"context"
	"database/sql"
	"fmt"
)

func (r *eventRepo) AppendFetchEvent(ctx context.Context, data FetchEventData) error {
	err := r.appendEvent(ctx, tableFetchEvents,
		[]string{"source", "category", "requested", "received", "rejected", "latency_ms", "success", "error_message"},
		[]any{data.Source, data.Category, data.Requested, data.Received, data.Rejected, data.LatencyMs, data.Success, data.ErrorMessage},
	)
	if err != nil {
		return fmt.Errorf("save fetch event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryFetchEvents(ctx context.Context, opts QueryOpts) ([]FetchEventRecord, error) {
	sel := selectEvents(tableFetchEvents, opts,
		"source", "category", "requested", "received", "rejected", "latency_ms", "success", "error_message",
		"sequence", "timestamp",
	)

	var records []FetchEventRecord
	err := r.queryRows(ctx, sel, func(rows *sql.Rows) error {
		var rec FetchEventRecord
		if err := rows.Scan(
			&rec.Source, &rec.Category, &rec.Requested, &rec.Received, &rec.Rejected, &rec.LatencyMs,
			&rec.Success, &rec.ErrorMessage, &rec.Sequence, &rec.Timestamp,
		); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query fetch events: %w", err)
	}
	return records, nil
}
