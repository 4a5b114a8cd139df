package llm

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
)

// MockResponse is one scripted reply. A non-nil Err is returned as is.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted responses in order and keeps every request
// it was given in Calls. It is safe for concurrent use.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

// NewMockProvider returns a MockProvider that will answer with responses,
// then fail with *UnavailableError once they run out.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// Generate pops the next scripted response. Content goes through the same
// schema check as a real provider's output.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	var next MockResponse
	ok := len(m.script) > 0
	if ok {
		next, m.script = m.script[0], m.script[1:]
	}
	m.mu.Unlock()

	switch {
	case !ok:
		return nil, &UnavailableError{}
	case next.Err != nil:
		return nil, next.Err
	}
	return finishResponse(req, next.Content, next.Usage, m.ModelID(), StopEnd)
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many requests Generate has seen.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
