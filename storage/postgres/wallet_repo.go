package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopbot/pkg/logger"
	"shopbot/storage"
)

type walletRepo struct {
	db  storage.DB
	log logger.ILogger
}

func NewWalletRepo(db storage.DB, log logger.ILogger) storage.IWalletStorage {
	return &walletRepo{db: db, log: log}
}

// UpdateBalance adds delta to the user's balance and records the change
// against invoker. Both writes share one transaction.
func (r *walletRepo) UpdateBalance(ctx context.Context, id, delta, invoker int64) (int64, error) {
	var newBalance int64
	err := withTx(ctx, r.db, r.log, func(tx pgx.Tx) error {
		if err := ensureInvoker(ctx, tx, invoker); err != nil {
			return err
		}

		query := `
			UPDATE users
			SET balance = balance + $1, updated_at = NOW()
			WHERE id = $2
			RETURNING balance
		`
		if err := tx.QueryRow(ctx, query, delta, id).Scan(&newBalance); err != nil {
			return MapError(err)
		}

		return insertLog(ctx, tx, invoker, fmt.Sprintf("Added money %d to user %d", delta, id))
	})
	if err != nil {
		r.log.Error("failed to update user balance",
			logger.Int64("id", id), logger.Int64("delta", delta), logger.Int64("invoker", invoker), logger.Error(err))
		return 0, err
	}
	return newBalance, nil
}

// SetBalance overwrites the user's balance and records the change against
// invoker in the same transaction.
func (r *walletRepo) SetBalance(ctx context.Context, id, amount, invoker int64) (int64, error) {
	var newBalance int64
	err := withTx(ctx, r.db, r.log, func(tx pgx.Tx) error {
		if err := ensureInvoker(ctx, tx, invoker); err != nil {
			return err
		}

		query := `
			UPDATE users
			SET balance = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING balance
		`
		if err := tx.QueryRow(ctx, query, amount, id).Scan(&newBalance); err != nil {
			return MapError(err)
		}

		return insertLog(ctx, tx, invoker, fmt.Sprintf("Set money %d to user %d", amount, id))
	})
	if err != nil {
		r.log.Error("failed to set user balance",
			logger.Int64("id", id), logger.Int64("amount", amount), logger.Int64("invoker", invoker), logger.Error(err))
		return 0, err
	}
	return newBalance, nil
}

// Transfer hands the move over to the transfer_funds routine and returns its
// result untouched.
func (r *walletRepo) Transfer(ctx context.Context, senderID, receiverID, amount int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT transfer_funds($1, $2, $3)`, senderID, receiverID, amount).Scan(&ok)
	if err != nil {
		r.log.Error("failed to transfer funds",
			logger.Int64("sender", senderID), logger.Int64("receiver", receiverID), logger.Error(err))
		return false, MapError(err)
	}
	return ok, nil
}

func ensureInvoker(ctx context.Context, tx pgx.Tx, invoker int64) error {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, invoker).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %d", storage.ErrInvokerNotFound, invoker)
	}
	return nil
}

func insertLog(ctx context.Context, tx pgx.Tx, userID int64, description string) error {
	_, err := tx.Exec(ctx, `INSERT INTO logs (user_id, description) VALUES ($1, $2)`, userID, description)
	return MapError(err)
}
