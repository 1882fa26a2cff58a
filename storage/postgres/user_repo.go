package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"shopbot/pkg/logger"
	"shopbot/pkg/models"
	"shopbot/storage"
)

const userColumns = `id, tg, name, is_admin, balance, stage, created_at, updated_at`

type userRepo struct {
	db  storage.DB
	log logger.ILogger
}

func NewUserRepo(db storage.DB, log logger.ILogger) storage.IUserStorage {
	return &userRepo{db: db, log: log}
}

func (r *userRepo) Create(ctx context.Context, tg int64, name string, isAdmin bool) (int64, error) {
	var id int64
	query := `
		INSERT INTO users (tg, name, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, tg, name, isAdmin).Scan(&id)
	if err != nil {
		r.log.Error("failed to create user", logger.Int64("tg", tg), logger.Error(err))
		return 0, MapError(err)
	}
	return id, nil
}

func (r *userRepo) Get(ctx context.Context, tg int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE tg = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, tg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get user", logger.Int64("tg", tg), logger.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get user by id", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to get users", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) ChangeStage(ctx context.Context, id int64, stage int) (int, error) {
	var newStage int
	query := `
		UPDATE users
		SET stage = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING stage
	`
	err := r.db.QueryRow(ctx, query, stage, id).Scan(&newStage)
	if err != nil {
		r.log.Error("failed to change user stage", logger.Int64("id", id), logger.Error(err))
		return 0, MapError(err)
	}
	return newStage, nil
}

func (r *userRepo) IsAdmin(ctx context.Context, tg int64) (bool, error) {
	var isAdmin bool
	err := r.db.QueryRow(ctx, `SELECT is_admin FROM users WHERE tg = $1`, tg).Scan(&isAdmin)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.log.Error("failed to check admin flag", logger.Int64("tg", tg), logger.Error(err))
		}
		return false, MapError(err)
	}
	return isAdmin, nil
}

func (r *userRepo) GetTotalUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&count)
	return count, err
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.TG, &u.Name, &u.IsAdmin, &u.Balance, &u.Stage, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
