package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"shopbot/pkg/logger"
	"shopbot/storage"
)

// withTx runs fn inside a single transaction. The transaction is committed
// when fn returns nil and rolled back otherwise, so a failing fn never leaves
// partial writes behind.
func withTx(ctx context.Context, db storage.DB, log logger.ILogger, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error("failed to begin transaction", logger.Error(err))
		return err
	}

	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Error("failed to rollback transaction", logger.Error(rbErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error("failed to commit transaction", logger.Error(err))
		return err
	}
	return nil
}
