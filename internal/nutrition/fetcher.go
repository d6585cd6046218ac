package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"NutriScan_Backend/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrUserNotFound is returned when no user matches the external identity.
// Callers treat it as missing context, not as a failure.
var ErrUserNotFound = errors.New("user not found")

// Store is the read side of the nutrition database. *database.Queries satisfies it.
type Store interface {
	GetUserByFirebaseUID(ctx context.Context, firebaseUid string) (database.User, error)
	GetProfileByUserID(ctx context.Context, userID int64) (database.Profile, error)
	GetDailyGoalByUserID(ctx context.Context, userID int64) (database.DailyGoal, error)
	ListConsumptionLogsByDate(ctx context.Context, arg database.ListConsumptionLogsByDateParams) ([]database.ListConsumptionLogsByDateRow, error)
	ListRecentConsumptionLogs(ctx context.Context, arg database.ListRecentConsumptionLogsParams) ([]database.ListRecentConsumptionLogsRow, error)
}

var _ Store = (*database.Queries)(nil)

// Fetcher builds Snapshots from a Store.
type Fetcher struct {
	store Store
	now   func() time.Time
	loc   *time.Location
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithClock replaces the wall clock used to decide what "today" is.
func WithClock(now func() time.Time) FetcherOption {
	return func(f *Fetcher) { f.now = now }
}

// WithLocation sets the time zone whose calendar day counts as "today".
func WithLocation(loc *time.Location) FetcherOption {
	return func(f *Fetcher) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// NewFetcher returns a Fetcher reading from store.
func NewFetcher(store Store, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		store: store,
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch loads the snapshot for the user with the given external identity.
// It returns ErrUserNotFound when the user does not exist and a wrapped error
// for any store fault; it never panics on missing profile or goals.
func (f *Fetcher) Fetch(ctx context.Context, externalID string) (*Snapshot, error) {
	logger := zerolog.Ctx(ctx)

	user, err := f.store.GetUserByFirebaseUID(ctx, externalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error fetching user personalization data")
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	now := f.now().In(f.loc)
	today := calendarDate(now)
	since := today.AddDate(0, 0, -PatternWindowDays)

	var (
		profile    *Profile
		goals      *DailyGoals
		todayRows  []database.ListConsumptionLogsByDateRow
		recentRows []database.ListRecentConsumptionLogsRow
	)

	// Each task owns its own result variable, so no locking is needed.
	g, grpCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := f.store.GetProfileByUserID(grpCtx, user.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to fetch profile: %w", err)
		}
		profile = profileFromRow(p)
		return nil
	})

	g.Go(func() error {
		dg, err := f.store.GetDailyGoalByUserID(grpCtx, user.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to fetch daily goals: %w", err)
		}
		goals = goalsFromRow(dg)
		return nil
	})

	g.Go(func() error {
		rows, err := f.store.ListConsumptionLogsByDate(grpCtx, database.ListConsumptionLogsByDateParams{
			UserID: user.ID,
			Date:   pgtype.Date{Time: today, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("failed to fetch today's logs: %w", err)
		}
		todayRows = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.store.ListRecentConsumptionLogs(grpCtx, database.ListRecentConsumptionLogsParams{
			UserID:     user.ID,
			Since:      pgtype.Date{Time: since, Valid: true},
			LimitCount: PatternFetchLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch recent logs: %w", err)
		}
		recentRows = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("Error fetching user personalization data")
		return nil, err
	}

	todayLogs := make([]LogEntry, 0, len(todayRows))
	for _, r := range todayRows {
		todayLogs = append(todayLogs, entryFromRow(r, f.loc))
	}

	recentLogs := make([]LogEntry, 0, len(recentRows))
	for _, r := range recentRows {
		recentLogs = append(recentLogs, entryFromRow(database.ListConsumptionLogsByDateRow(r), f.loc))
	}

	return &Snapshot{
		User: UserSummary{
			Name:  user.Name.String,
			Email: user.Email,
		},
		Profile:    profile,
		DailyGoals: goals,
		Today: TodayConsumption{
			Totals:   CalculateDailyTotals(todayLogs),
			Logs:     head(todayLogs, TodayExcerptSize),
			LogCount: len(todayLogs),
		},
		Recent: RecentPatterns{
			Logs:      head(recentLogs, PatternExcerptSize),
			TotalDays: PatternWindowDays,
		},
	}, nil
}

// calendarDate truncates t to midnight of its calendar day, expressed in UTC
// so pgtype.Date encodes the same year/month/day.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func head(logs []LogEntry, n int) []LogEntry {
	if len(logs) > n {
		return logs[:n]
	}
	return logs
}

func profileFromRow(p database.Profile) *Profile {
	out := &Profile{
		Gender:        p.Gender.String,
		Height:        float8Ptr(p.Height),
		Weight:        float8Ptr(p.Weight),
		BMI:           float8Ptr(p.Bmi),
		ActivityLevel: p.ActivityLevel.String,
		GoalType:      p.GoalType.String,
	}
	if p.Age.Valid {
		age := p.Age.Int32
		out.Age = &age
	}
	return out
}

func goalsFromRow(g database.DailyGoal) *DailyGoals {
	return &DailyGoals{
		Calories: float8Ptr(g.Calories),
		Protein:  float8Ptr(g.Proteins),
		Carbs:    float8Ptr(g.Carbs),
		Fat:      float8Ptr(g.Fats),
		Sugar:    float8Ptr(g.Sugars),
	}
}

func entryFromRow(r database.ListConsumptionLogsByDateRow, loc *time.Location) LogEntry {
	return LogEntry{
		ID:              r.ID,
		Barcode:         r.Barcode,
		FoodName:        r.FoodName.String,
		CaloriesPer100g: float8Ptr(r.CaloriesPer100g),
		AmountConsumed:  r.AmountConsumed,
		ConsumedAt:      r.ConsumedAt.Time.In(loc),
		Date:            r.Date.Time.Format(time.DateOnly),
		Calories:        float8Ptr(r.CalculatedCalories),
		Protein:         float8Ptr(r.CalculatedProtein),
		Carbs:           float8Ptr(r.CalculatedCarbs),
		Fat:             float8Ptr(r.CalculatedFat),
		Sugar:           float8Ptr(r.CalculatedSugar),
	}
}

func float8Ptr(v pgtype.Float8) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
