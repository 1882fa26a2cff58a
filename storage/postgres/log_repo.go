package postgres

import (
	"context"

	"shopbot/pkg/logger"
	"shopbot/pkg/models"
	"shopbot/storage"
)

type logRepo struct {
	db  storage.DB
	log logger.ILogger
}

func NewLogRepo(db storage.DB, log logger.ILogger) storage.ILogStorage {
	return &logRepo{db: db, log: log}
}

func (r *logRepo) Create(ctx context.Context, userID int64, description string) (int64, error) {
	var id int64
	query := `
		INSERT INTO logs (user_id, description)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, userID, description).Scan(&id)
	if err != nil {
		r.log.Error("failed to log action", logger.Int64("user_id", userID), logger.Error(err))
		return 0, MapError(err)
	}
	return id, nil
}

func (r *logRepo) GetByUser(ctx context.Context, userID int64) ([]*models.Log, error) {
	query := `SELECT id, user_id, description, created_at FROM logs WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to get user logs", logger.Int64("user_id", userID), logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []*models.Log
	for rows.Next() {
		var l models.Log
		if err := rows.Scan(&l.ID, &l.UserID, &l.Description, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
