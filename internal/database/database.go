package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health(ctx context.Context) map[string]string

	// Close terminates the database connection pool.
	Close()

	Queries() *Queries
}

type service struct {
	pool *pgxpool.Pool
	q    *Queries
}

// NewService opens a pgx pool for connString and verifies it with a ping.
func NewService(ctx context.Context, connString string) (Service, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}

	return &service{
		pool: pool,
		q:    New(pool),
	}, nil
}

// Queries implements Service.
func (s *service) Queries() *Queries {
	return s.q
}

// Health checks the health of the database connection.
func (s *service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if _, err := s.q.GetDatabaseStatus(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Error().Err(err).Msg("db down")
		return stats
	}

	pool := s.pool.Stat()
	stats["status"] = "up"
	stats["open_conns"] = strconv.Itoa(int(pool.TotalConns()))
	stats["in_use"] = strconv.Itoa(int(pool.AcquiredConns()))
	stats["max_conns"] = strconv.Itoa(int(pool.MaxConns()))

	if pool.AcquiredConns() > pool.MaxConns()*8/10 {
		stats["message"] = "The database connection pool is experiencing heavy load."
	}

	return stats
}

// Close closes the database connection pool.
func (s *service) Close() {
	log.Info().Msg("Disconnected from database")
	s.pool.Close()
}
