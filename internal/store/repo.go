package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Session lifecycle actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID string
	Player    string
	Action    string // ActionStart or ActionEnd
	Source    string

	// Set on end only.
	QuestionsServed int
	CorrectAnswers  int
	Score           int
	BestStreak      int
	FinalDifficulty string
	DurationSecs    int
}

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	SessionID      string
	Turn           int
	QuestionText   string
	Category       string
	Difficulty     string
	CorrectAnswer  string
	SelectedAnswer string
	Correct        bool
	Points         int
	Multiplier     int
	NextDifficulty string
	TimeMs         int
}

// FetchEventData captures one question source fetch.
type FetchEventData struct {
	Source       string
	Category     string
	Requested    int
	Received     int
	Rejected     int // questions dropped by validation
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummaryRecord is a completed session as read back from its end event.
type SessionSummaryRecord struct {
	SessionID       string
	Player          string
	Source          string
	Sequence        int64
	Timestamp       time.Time
	QuestionsServed int
	CorrectAnswers  int
	Score           int
	BestStreak      int
	FinalDifficulty string
	DurationSecs    int
}

// AnswerEventRecord is a persisted answer event.
type AnswerEventRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// FetchEventRecord is a persisted fetch event.
type FetchEventRecord struct {
	FetchEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendFetchEvent records a question source fetch.
	AppendFetchEvent(ctx context.Context, data FetchEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionSummaries returns completed sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// BestSession returns the highest scoring completed session, or nil.
	BestSession(ctx context.Context) (*SessionSummaryRecord, error)

	// QueryAnswerEvents returns the answers of one session in turn order.
	QueryAnswerEvents(ctx context.Context, sessionID string) ([]AnswerEventRecord, error)

	// QueryFetchEvents returns fetch events, newest first.
	QueryFetchEvents(ctx context.Context, opts QueryOpts) ([]FetchEventRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event by id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
}
