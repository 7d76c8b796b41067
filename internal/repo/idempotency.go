// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file stores and retrieves Idempotency records, the
// persisted responses behind safe retries of the generation POST endpoints.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// ErrDuplicate indicates that a record already exists for a unique key,
// e.g. the (user_id, scope, key) idempotency tuple or a colliding derived ID.
var ErrDuplicate = errors.New("duplicate")

// GetIdempotency returns the record for (userID, scope, key) whose TTL has
// not yet lapsed, or ErrNotFound. Expired records are invisible here; they
// are reaped lazily rather than by a background job.
func GetIdempotency(ctx context.Context, db *gorm.DB, userID, scope, key string, now time.Time) (*domain.Idempotency, error) {
	if strings.TrimSpace(scope) == "" {
		return nil, ErrNotFound
	}
	var rec domain.Idempotency
	err := db.WithContext(ctx).
		Where("user_id = ? AND scope = ? AND key = ? AND expires_at > ?", userID, scope, key, now).
		First(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}
	return &rec, nil
}

// CreateIdempotency persists a completed response body under the caller's
// key, valid for ttl from now. A concurrent retry that lost the race gets
// ErrDuplicate and should re-read the stored record instead.
func CreateIdempotency(ctx context.Context, db *gorm.DB, userID, scope, key, body string, status int, ttl time.Duration) (*domain.Idempotency, error) {
	now := time.Now().UTC()
	rec := &domain.Idempotency{
		ID:        uuid.NewString(),
		UserID:    userID,
		Scope:     scope,
		Key:       key,
		Status:    status,
		Body:      body,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	err := db.WithContext(ctx).Create(rec).Error
	switch {
	case isUniqueViolation(err):
		return nil, ErrDuplicate
	case err != nil:
		return nil, err
	}
	return rec, nil
}
