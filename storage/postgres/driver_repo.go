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

type driverRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewDriverRepo(db *pgxpool.Pool, log logger.ILogger) storage.IDriverStorage {
	return &driverRepo{db: db, log: log}
}

func (r *driverRepo) GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error) {
	query := `
		SELECT driver_id, user_id, status, created_at
		FROM drivers
		WHERE status = 'available'
		ORDER BY driver_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to get available drivers", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var drivers []*models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.UserID, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}
		drivers = append(drivers, &d)
	}
	return drivers, rows.Err()
}

// ClaimAvailableDriver marks the first free driver as delivering in a single
// statement, so two concurrent orders can never grab the same driver. SKIP
// LOCKED makes concurrent claims take different rows instead of queueing.
func (r *driverRepo) ClaimAvailableDriver(ctx context.Context) (*models.Driver, error) {
	query := `
		UPDATE drivers SET status = 'delivering'
		WHERE driver_id = (
			SELECT driver_id FROM drivers
			WHERE status = 'available'
			ORDER BY driver_id
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING driver_id, user_id, status, created_at
	`
	var d models.Driver
	err := r.db.QueryRow(ctx, query).Scan(&d.ID, &d.UserID, &d.Status, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNoDriverAvailable
		}
		r.log.Error("failed to claim driver", logger.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *driverRepo) SetStatus(ctx context.Context, status string, driverID int64) (string, error) {
	var newStatus string
	query := `UPDATE drivers SET status = $1 WHERE driver_id = $2 RETURNING status`
	err := r.db.QueryRow(ctx, query, status, driverID).Scan(&newStatus)
	if err != nil {
		r.log.Error("failed to set driver status", logger.Int64("driver_id", driverID), logger.Error(err))
		return "", err
	}
	return newStatus, nil
}

func (r *driverRepo) SetStatusByUser(ctx context.Context, status string, userID int64) (string, error) {
	var newStatus string
	query := `UPDATE drivers SET status = $1 WHERE user_id = $2 RETURNING status`
	err := r.db.QueryRow(ctx, query, status, userID).Scan(&newStatus)
	if err != nil {
		r.log.Error("failed to set driver status by user", logger.Int64("user_id", userID), logger.Error(err))
		return "", err
	}
	return newStatus, nil
}

func (r *driverRepo) Register(ctx context.Context, userID int64) (*models.Driver, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE users SET user_role = 'driver' WHERE id = $1`, userID); err != nil {
		r.log.Error("failed to promote user to driver", logger.Error(err))
		return nil, err
	}

	var d models.Driver
	query := `
		INSERT INTO drivers (user_id, status)
		VALUES ($1, 'unavailable')
		RETURNING driver_id, user_id, status, created_at
	`
	if err := tx.QueryRow(ctx, query, userID).Scan(&d.ID, &d.UserID, &d.Status, &d.CreatedAt); err != nil {
		r.log.Error("failed to register driver", logger.Error(err))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &d, nil
}
