package source

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
	"golang.org/x/net/html"

	"github.com/abhisek/triviaz/internal/trivia"
)

// DefaultOpenTDBURL is the Open Trivia Database question endpoint.
const DefaultOpenTDBURL = "https://opentdb.com/api.php"

// OpenTDB response codes.
const (
	otdbSuccess       = 0
	otdbNoResults     = 1
	otdbInvalidParam  = 2
	otdbTokenNotFound = 3
	otdbTokenEmpty    = 4
	otdbRateLimit     = 5
)

const (
	otdbMaxAmount      = 50
	otdbMultipleChoice = "multiple"
	otdbRetryMinWait   = 200 * time.Millisecond
	otdbRetryMaxWait   = 2 * time.Second
)

// OpenTDBConfig configures the OpenTDB client.
type OpenTDBConfig struct {
	BaseURL string
	Timeout time.Duration
	Retries int

	// Rand shuffles the correct answer into the options. Nil uses a
	// randomly seeded generator.
	Rand *rand.Rand

	Validators []Validator
}

// OpenTDB fetches multiple-choice questions from opentdb.com.
type OpenTDB struct {
	client     *req.Client
	baseURL    string
	rng        *rand.Rand
	validators []Validator
}

// NewOpenTDB creates an OpenTDB source.
func NewOpenTDB(cfg OpenTDBConfig) *OpenTDB {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenTDBURL
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Validators == nil {
		cfg.Validators = DefaultValidators()
	}

	client := req.C().
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal).
		SetCommonHeader("Accept", "application/json").
		SetCommonRetryCount(cfg.Retries).
		SetCommonRetryBackoffInterval(otdbRetryMinWait, otdbRetryMaxWait).
		SetCommonRetryCondition(func(resp *req.Response, err error) bool {
			if err != nil {
				return true
			}
			code := resp.GetStatusCode()
			return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
		})
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &OpenTDB{
		client:     client,
		baseURL:    cfg.BaseURL,
		rng:        cfg.Rand,
		validators: cfg.Validators,
	}
}

func (s *OpenTDB) Name() string { return "opentdb" }

type otdbResponse struct {
	ResponseCode int          `json:"response_code"`
	Results      []otdbResult `json:"results"`
}

type otdbResult struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Fetch requests q.Amount multiple-choice questions. A non-empty category
// must be an OpenTDB numeric category id.
func (s *OpenTDB) Fetch(ctx context.Context, q Query) ([]trivia.Question, error) {
	amount := min(max(q.Amount, 1), otdbMaxAmount)

	r := s.client.R().
		SetContext(ctx).
		SetQueryParam("amount", strconv.Itoa(amount)).
		SetQueryParam("type", otdbMultipleChoice)
	if q.Category != "" {
		if _, err := strconv.Atoi(q.Category); err != nil {
			return nil, fmt.Errorf("opentdb category must be numeric, got %q", q.Category)
		}
		r.SetQueryParam("category", q.Category)
	}

	var body otdbResponse
	resp, err := r.SetSuccessResult(&body).Get(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("request opentdb: %w", err)
	}
	if !resp.IsSuccessState() {
		return nil, fmt.Errorf("request opentdb: unexpected status %d", resp.GetStatusCode())
	}
	if err := otdbCodeError(body.ResponseCode); err != nil {
		return nil, err
	}

	records := make([]record, 0, len(body.Results))
	for _, res := range body.Results {
		if res.Type != otdbMultipleChoice {
			continue
		}
		records = append(records, s.toRecord(res))
	}
	pool, rejected := buildPool(records, s.validators)
	noteRejected(ctx, rejected)
	return pool, nil
}

// toRecord decodes HTML entities and inserts the correct answer at a random
// position among the incorrect ones.
func (s *OpenTDB) toRecord(res otdbResult) record {
	options := make([]string, 0, len(res.IncorrectAnswers)+1)
	for _, a := range res.IncorrectAnswers {
		options = append(options, html.UnescapeString(a))
	}
	s.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	correct := s.rng.IntN(len(options) + 1)
	options = append(options, "")
	copy(options[correct+1:], options[correct:])
	options[correct] = html.UnescapeString(res.CorrectAnswer)

	return record{
		Question:     html.UnescapeString(res.Question),
		Options:      options,
		CorrectIndex: correct,
		Difficulty:   res.Difficulty,
		Category:     html.UnescapeString(res.Category),
	}
}

func otdbCodeError(code int) error {
	switch code {
	case otdbSuccess, otdbNoResults:
		return nil
	case otdbInvalidParam:
		return fmt.Errorf("opentdb rejected the request parameters")
	case otdbTokenNotFound, otdbTokenEmpty:
		return fmt.Errorf("opentdb session token problem (code %d)", code)
	case otdbRateLimit:
		return fmt.Errorf("opentdb rate limit exceeded")
	default:
		return fmt.Errorf("opentdb returned response code %d", code)
	}
}
