package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
	"foodexpress/storage"
)

// authRepo resolves bearer tokens to user ids. Token issuing lives in the
// auth subsystem; this side only reads.
type authRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewAuthRepo(db *pgxpool.Pool, log logger.ILogger) storage.IAuthStorage {
	return &authRepo{db: db, log: log}
}

func (r *authRepo) GetUserIDByToken(ctx context.Context, token string) (int64, error) {
	var userID int64
	query := `
		SELECT user_id FROM auth_tokens
		WHERE token = $1 AND expires_at > NOW()
	`
	err := r.db.QueryRow(ctx, query, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, models.ErrUnauthorized
		}
		r.log.Error("failed to resolve token", logger.Error(err))
		return 0, err
	}
	return userID, nil
}
