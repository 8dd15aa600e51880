package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/joshzacharytan/about-me/internal/app/ds"
	"github.com/joshzacharytan/about-me/internal/app/redis"
)

type Repository struct {
	db    *gorm.DB
	redis *redis.Client
}

func New(dsn string, redisClient *redis.Client) (*Repository, error) {
	// TranslateError maps the unique-constraint violation on
	// users.username to gorm.ErrDuplicatedKey, so concurrent duplicate
	// registrations are resolved by the database, not by a pre-check.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db, redisClient)
}

// NewWithDB wraps an already opened gorm connection. Tests use it with
// an in-memory sqlite database.
func NewWithDB(db *gorm.DB, redisClient *redis.Client) (*Repository, error) {
	err := db.AutoMigrate(&ds.User{}, &ds.Comment{}, &ds.ContactFormEntry{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db:    db,
		redis: redisClient,
	}, nil
}

// RevokeSession adds a session id to the blacklist for the remaining
// lifetime of its token. Without a redis client logout still clears the
// cookie, it just cannot invalidate stolen copies of it.
func (r *Repository) RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.AddRevokedSession(ctx, sessionID, ttl)
}

func (r *Repository) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	if r.redis == nil {
		return false, nil
	}
	return r.redis.IsSessionRevoked(ctx, sessionID)
}
