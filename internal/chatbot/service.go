package chatbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"NutriScan_Backend/internal/nutrition"
	"github.com/rs/zerolog"
)

// ErrGeneratorUnavailable is reported when no text generator is configured.
var ErrGeneratorUnavailable = errors.New("AI service not configured")

// TextGenerator produces text for a prompt. It may be slow or fail.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// SnapshotFetcher loads the personalization snapshot of a user.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, externalID string) (*nutrition.Snapshot, error)
}

// ChatInput is a validated /chat request.
type ChatInput struct {
	UserID  string
	Message string
	Context ContextTag
	History []HistoryTurn
}

// NutritionQuestionInput is a validated /nutrition-question request.
type NutritionQuestionInput struct {
	UserID   string
	Question string
	Product  *ProductData
}

// Reply is the outcome of one pipeline run. When IsFallback is set, Text is
// a canned answer and Err holds the failure that caused it.
type Reply struct {
	Text       string
	IsFallback bool
	Err        error
}

// Service runs fetch -> format -> assemble -> generate -> clean.
type Service struct {
	fetcher   SnapshotFetcher
	generator TextGenerator
	timeout   time.Duration
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithGenerateTimeout bounds the whole generation step, retries included.
func WithGenerateTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.timeout = d }
}

// NewService wires the pipeline. A nil generator makes every call fall back.
func NewService(fetcher SnapshotFetcher, generator TextGenerator, opts ...ServiceOption) *Service {
	s := &Service{fetcher: fetcher, generator: generator}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Chat answers a conversational message. It always returns a usable Reply.
func (s *Service) Chat(ctx context.Context, in ChatInput) Reply {
	logger := zerolog.Ctx(ctx)

	snap, fetchErr := s.fetch(ctx, in.UserID)

	prompt := BuildChatPrompt(
		in.Context,
		BuildPersonalizationContext(snap, fetchErr),
		BuildConversationContext(in.History),
		in.Message,
	)

	event := logger.Info().
		Str("context", string(in.Context)).
		Int("message_length", len(in.Message)).
		Bool("has_history", len(in.History) > 0).
		Bool("user_data_fetched", fetchErr == nil)
	if snap != nil {
		event = event.
			Bool("has_profile", snap.Profile != nil).
			Bool("has_goals", snap.DailyGoals != nil).
			Int("today_logs_count", snap.Today.LogCount)
	}
	event.Msg("Processing chatbot message")

	text, err := s.generate(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Str("context", string(in.Context)).Msg("Chatbot error")
		return Reply{Text: in.Context.Fallback(), IsFallback: true, Err: err}
	}

	return Reply{Text: CleanResponse(text)}
}

// NutritionQuestion answers a targeted question, optionally about a product.
func (s *Service) NutritionQuestion(ctx context.Context, in NutritionQuestionInput) Reply {
	logger := zerolog.Ctx(ctx)

	snap, fetchErr := s.fetch(ctx, in.UserID)
	prompt := BuildNutritionPrompt(in.Question, in.Product, BuildPersonalizationContext(snap, fetchErr))

	logger.Info().
		Bool("has_product", in.Product != nil).
		Bool("user_data_fetched", fetchErr == nil).
		Msg("Processing nutrition question")

	text, err := s.generate(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("Nutrition question error")
		return Reply{Text: NutritionQuestionFallback, IsFallback: true, Err: err}
	}

	return Reply{Text: CleanResponse(text)}
}

func (s *Service) fetch(ctx context.Context, userID string) (snap *nutrition.Snapshot, err error) {
	if s.fetcher == nil {
		return nil, errors.New("no snapshot fetcher configured")
	}
	defer func() {
		if r := recover(); r != nil {
			snap, err = nil, fmt.Errorf("snapshot fetch panicked: %v", r)
		}
	}()

	snap, err = s.fetcher.Fetch(ctx, userID)
	if err != nil && !errors.Is(err, nutrition.ErrUserNotFound) {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Continuing without user data")
	}
	return snap, err
}

func (s *Service) generate(ctx context.Context, prompt string) (text string, err error) {
	if s.generator == nil {
		return "", ErrGeneratorUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("text generator panicked: %v", r)
		}
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.generator.GenerateText(ctx, prompt)
}
