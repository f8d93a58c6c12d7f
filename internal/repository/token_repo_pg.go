package repository

import (
	"context"
	"time"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepository persists refresh tokens. Only the SHA-256 hash of the raw
// token is stored.
type TokenRepository interface {
	StoreRefresh(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	// ValidateRefresh returns the owning user id for a live token hash,
	// domain.ErrNotFound for unknown or expired ones.
	ValidateRefresh(ctx context.Context, tokenHash string) (int64, error)
	Revoke(ctx context.Context, tokenHash string) error
	// DeleteExpired removes tokens that expired before the deadline and
	// reports how many rows went away. Called by the worker sweep.
	DeleteExpired(ctx context.Context, deadline time.Time) (int64, error)
}

type PGTokenRepository struct {
	db *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) TokenRepository {
	return &PGTokenRepository{db: db}
}

func (r *PGTokenRepository) StoreRefresh(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		userID, tokenHash, expiresAt)
	return err
}

func (r *PGTokenRepository) ValidateRefresh(ctx context.Context, tokenHash string) (int64, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, expires_at FROM refresh_tokens WHERE token_hash=$1`, tokenHash)
	var (
		userID    int64
		expiresAt time.Time
	)
	if err := row.Scan(&userID, &expiresAt); err != nil {
		return 0, mapNotFound(err)
	}
	if time.Now().After(expiresAt) {
		return 0, domain.ErrNotFound
	}
	return userID, nil
}

func (r *PGTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash=$1`, tokenHash)
	return err
}

func (r *PGTokenRepository) DeleteExpired(ctx context.Context, deadline time.Time) (int64, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1`, deadline)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ TokenRepository = (*PGTokenRepository)(nil)
