package geminiservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type scriptedModels struct {
	calls     int
	responses []*genai.GenerateContentResponse
	errs      []error
	lastModel string
	lastText  string
}

func (s *scriptedModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	i := s.calls
	s.calls++
	s.lastModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		s.lastText = contents[0].Parts[0].Text
	}
	var resp *genai.GenerateContentResponse
	if i < len(s.responses) {
		resp = s.responses[i]
	}
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return resp, err
}

func textResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: parts}},
		},
	}
}

func fastConfig() Config {
	return Config{Model: "test-model", MaxRetries: 3, InitialBackoff: time.Millisecond, Timeout: time.Second}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateTextSuccess(t *testing.T) {
	models := &scriptedModels{
		responses: []*genai.GenerateContentResponse{
			textResponse(&genai.Part{Text: "thinking...", Thought: true}, &genai.Part{Text: "Eat more "}, &genai.Part{Text: "protein."}),
		},
	}
	c := newClient(models, fastConfig())

	got, err := c.GenerateText(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "Eat more protein.", got)
	assert.Equal(t, 1, models.calls)
	assert.Equal(t, "test-model", models.lastModel)
	assert.Equal(t, "hello", models.lastText)
}

func TestGenerateTextRetriesThenSucceeds(t *testing.T) {
	models := &scriptedModels{
		errs:      []error{errors.New("503"), errors.New("503")},
		responses: []*genai.GenerateContentResponse{nil, nil, textResponse(&genai.Part{Text: "ok"})},
	}
	c := newClient(models, fastConfig())

	got, err := c.GenerateText(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, models.calls)
}

func TestGenerateTextGivesUp(t *testing.T) {
	boom := errors.New("unavailable")
	models := &scriptedModels{errs: []error{boom, boom, boom}}
	c := newClient(models, fastConfig())

	_, err := c.GenerateText(context.Background(), "p")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, models.calls)
}

func TestGenerateTextNoCandidatesIsError(t *testing.T) {
	models := &scriptedModels{
		responses: []*genai.GenerateContentResponse{{}, nil, {}},
	}
	c := newClient(models, fastConfig())

	_, err := c.GenerateText(context.Background(), "p")

	assert.ErrorContains(t, err, "no candidates")
	assert.Equal(t, 3, models.calls)
}

func TestGenerateTextEmptyCandidateIsNotRetried(t *testing.T) {
	models := &scriptedModels{
		responses: []*genai.GenerateContentResponse{
			textResponse(&genai.Part{Text: ""}),
		},
	}
	c := newClient(models, fastConfig())

	got, err := c.GenerateText(context.Background(), "p")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, models.calls)
}

func TestGenerateTextStopsOnCancel(t *testing.T) {
	models := &scriptedModels{errs: []error{errors.New("slow"), errors.New("slow"), errors.New("slow")}}
	cfg := fastConfig()
	cfg.InitialBackoff = time.Hour
	c := newClient(models, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := c.GenerateText(ctx, "p")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, models.calls)
}

func TestNewClientDefaults(t *testing.T) {
	c := newClient(&scriptedModels{}, Config{})
	assert.Equal(t, defaultModel, c.Model())
	assert.Equal(t, defaultMaxRetries, c.cfg.MaxRetries)
	assert.Equal(t, defaultRequestTimeout, c.cfg.Timeout)
}

func TestBudgetCoversEveryAttempt(t *testing.T) {
	c := newClient(&scriptedModels{}, Config{
		MaxRetries:     3,
		Timeout:        30 * time.Second,
		InitialBackoff: time.Second,
	})

	// 3 attempts of 30s plus backoffs of 1s and 2s.
	assert.Equal(t, 93*time.Second, c.Budget())
}
