/*
Package geminiservice is the text-generation gateway. It sends a fully
assembled prompt to Gemini and returns the raw text of the first candidate.
*/
package geminiservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// --- Gemini API Configuration ---
const (
	defaultModel          = "gemini-2.5-flash"
	defaultMaxRetries     = 3
	defaultInitialBackoff = 1 * time.Second
	defaultRequestTimeout = 30 * time.Second
	defaultTemperature    = 0.7
)

// ErrNotConfigured is returned when no API key was supplied.
var ErrNotConfigured = errors.New("server is not configured for AI responses")

// Config controls the gateway behaviour. Zero values fall back to defaults.
type Config struct {
	APIKey         string
	Model          string
	Timeout        time.Duration // per attempt
	MaxRetries     int
	InitialBackoff time.Duration
}

// contentGenerator is the part of *genai.Models the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client calls Gemini with retries and exponential backoff.
type Client struct {
	models contentGenerator
	cfg    Config
}

// NewClient creates a Gemini client for the Gemini Developer API.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newClient(gc.Models, cfg), nil
}

func newClient(models contentGenerator, cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = defaultInitialBackoff
	}
	return &Client{models: models, cfg: cfg}
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.cfg.Model
}

// GenerateText sends prompt as a single user turn and returns the generated text.
// It gives up early when ctx is cancelled.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	logger := zerolog.Ctx(ctx)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](defaultTemperature),
	}

	var lastErr error

	// Exponential backoff retry loop
	for i := 0; i < c.cfg.MaxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("gemini call abandoned: %w", ctx.Err())
			case <-time.After(c.backoff(i)):
			}
		}

		logger.Debug().Msgf("Attempt %d: Calling Gemini API...", i+1)

		text, err := c.generateOnce(ctx, contents, genCfg)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", fmt.Errorf("gemini call abandoned: %w", ctx.Err())
		}
		logger.Warn().Err(err).Msgf("Attempt %d failed", i+1)
	}

	return "", fmt.Errorf("failed to call Gemini API after %d attempts: %w", c.cfg.MaxRetries, lastErr)
}

// backoff is the wait before retry attempt i (1-based).
func (c *Client) backoff(i int) time.Duration {
	return c.cfg.InitialBackoff * time.Duration(math.Pow(2, float64(i-1)))
}

// Budget is how long GenerateText may run when every attempt times out,
// backoff included. Callers bounding the whole call should allow at least this.
func (c *Client) Budget() time.Duration {
	total := time.Duration(c.cfg.MaxRetries) * c.cfg.Timeout
	for i := 1; i < c.cfg.MaxRetries; i++ {
		total += c.backoff(i)
	}
	return total
}

func (c *Client) generateOnce(ctx context.Context, contents []*genai.Content, genCfg *genai.GenerateContentConfig) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.models.GenerateContent(reqCtx, c.cfg.Model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}
	// A candidate with no text is a valid, empty answer; the caller decides
	// what to show for it.
	return responseText(resp.Candidates[0]), nil
}

// responseText joins the non-thought text parts of a candidate.
func responseText(cand *genai.Candidate) string {
	if cand == nil || cand.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
