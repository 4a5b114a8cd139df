package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/trivia"
)

// LoggingSource is a decorator that records every fetch as an event.
type LoggingSource struct {
	inner     Source
	eventRepo store.EventRepo
}

// WithLogging wraps a Source with fetch event logging. A nil repo returns
// src unchanged.
func WithLogging(src Source, repo store.EventRepo) Source {
	if repo == nil {
		return src
	}
	return &LoggingSource{inner: src, eventRepo: repo}
}

func (l *LoggingSource) Name() string { return l.inner.Name() }

func (l *LoggingSource) Fetch(ctx context.Context, q Query) ([]trivia.Question, error) {
	ctx, stats := WithStats(ctx)
	start := time.Now()
	pool, err := l.inner.Fetch(ctx, q)

	data := store.FetchEventData{
		Source:    l.inner.Name(),
		Category:  q.Category,
		Requested: q.Amount,
		Received:  len(pool),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if rejected := stats.Rejected(); len(rejected) > 0 {
		data.Rejected = len(rejected)
		if data.ErrorMessage == "" {
			data.ErrorMessage = rejected[0].Error()
		}
	}

	if logErr := l.eventRepo.AppendFetchEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log fetch event: %v\n", logErr)
	}

	return pool, err
}
