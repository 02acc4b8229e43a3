package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
	"foodexpress/storage"
)

type itemRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewItemRepo(db *pgxpool.Pool, log logger.ILogger) storage.IItemStorage {
	return &itemRepo{db: db, log: log}
}

func (r *itemRepo) GetItemsData(ctx context.Context, ids []int64) ([]models.Item, error) {
	query := `
		SELECT item_id, price, preparation_time
		FROM items
		WHERE item_id = ANY($1::bigint[])
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("failed to get items data", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Price, &it.PreparationTime); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
