package source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/trivia"
)

const batchJSON = `{"questions":[
	{"question":"What is the largest desert?","options":["Sahara","Antarctic","Gobi","Arabian"],"correct_index":1,"difficulty":"hard","category":"Geography"},
	{"question":"Which metal is liquid at room temperature?","options":["Mercury","Lead","Tin","Zinc"],"correct_index":0,"difficulty":"medium","category":"Science"},
	{"question":"Duplicate options?","options":["Yes","yes","No","Maybe"],"correct_index":0,"difficulty":"easy","category":"Misc"}
]}`

func TestLLM_Fetch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batchJSON)})
	src := NewLLM(mock, DefaultLLMConfig())

	pool, err := src.Fetch(context.Background(), Query{Amount: 10})
	require.NoError(t, err)
	require.Len(t, pool, 2, "the duplicate-options question is dropped")
	assert.Equal(t, "Antarctic", pool[0].CorrectAnswer())
	assert.Equal(t, trivia.DifficultyMedium, pool[1].Difficulty())

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, TriviaSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "Number of questions: 10")
	assert.Contains(t, req.Messages[0].Content, "Category: any")
}

func TestLLM_FetchTruncatesToAmount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batchJSON)})
	pool, err := NewLLM(mock, DefaultLLMConfig()).Fetch(context.Background(), Query{Amount: 1, Category: "Geography"})
	require.NoError(t, err)
	assert.Len(t, pool, 1)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Category: Geography")
}

func TestLLM_FetchSetsPurpose(t *testing.T) {
	var purpose string
	p := purposeProvider{onGenerate: func(ctx context.Context) { purpose = llm.PurposeFrom(ctx) }}

	_, _ = NewLLM(p, DefaultLLMConfig()).Fetch(context.Background(), Query{Amount: 3})
	assert.Equal(t, llm.PurposeTriviaGen, purpose)
}

func TestLLM_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.UnavailableError{Err: errors.New("down")}})
	_, err := NewLLM(mock, DefaultLLMConfig()).Fetch(context.Background(), Query{Amount: 10})

	var unavail *llm.UnavailableError
	require.ErrorAs(t, err, &unavail)
}

func TestLLM_SchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[{"question":"x"}]}`)})
	_, err := NewLLM(mock, DefaultLLMConfig()).Fetch(context.Background(), Query{Amount: 10})

	var inv *llm.InvalidResponseError
	require.ErrorAs(t, err, &inv)
}

func TestBuildAvoidList(t *testing.T) {
	assert.Equal(t, "None", buildAvoidList(nil, 5))

	asked := []string{"a?", "b?", "c?"}
	assert.Equal(t, "1. b?\n2. c?", buildAvoidList(asked, 2))
	assert.Equal(t, 3, strings.Count(buildAvoidList(asked, 0), "\n")+1)
}

type purposeProvider struct {
	onGenerate func(ctx context.Context)
}

func (p purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.onGenerate(ctx)
	return nil, errors.New("not generating")
}

func (p purposeProvider) ModelID() string { return "purpose" }
