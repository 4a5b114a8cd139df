package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/triviaz/internal/store"
	"github.com/goccy/go-json"
)

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"question":"Capital of Peru?","correct":1}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7, TotalTokens: 19},
	})
	p := WithLogging(mock, ProviderMock, repo)

	ctx := WithPurpose(context.Background(), PurposeTriviaGen)
	_, err := p.Generate(ctx, Request{
		System:   "You write trivia.",
		Messages: []Message{{Role: RoleUser, Content: "One question about Peru."}},
		Schema:   testSchema(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "mock" || ev.Model != "mock" || ev.Purpose != "trivia-gen" {
		t.Errorf("event identity = %q/%q/%q", ev.Provider, ev.Model, ev.Purpose)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("event outcome = %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "One question about Peru.") || !strings.Contains(ev.RequestBody, "[schema: test-trivia-item]") {
		t.Errorf("request body missing content: %q", ev.RequestBody)
	}
	if !strings.Contains(ev.ResponseBody, "Capital of Peru?") {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &UnavailableError{Err: errors.New("down")}})
	p := WithLogging(mock, ProviderMock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	if repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Errorf("failure not recorded: %+v", repo.events[0])
	}
	if repo.events[0].Purpose != PurposeUnknown {
		t.Errorf("purpose = %q, want unknown", repo.events[0].Purpose)
	}
}

func TestLogging_AppendFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogging_NilRepoPassesThrough(t *testing.T) {
	mock := NewMockProvider()
	if p := WithLogging(mock, ProviderMock, nil); p != Provider(mock) {
		t.Fatalf("expected the inner provider back, got %T", p)
	}
}
