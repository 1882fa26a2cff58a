package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"shopbot/pkg/logger"
	"shopbot/pkg/models"
	"shopbot/storage"
)

type WalletService interface {
	Deposit(ctx context.Context, userID, delta, invoker int64) (int64, error)
	SetBalance(ctx context.Context, userID, amount, invoker int64) (int64, error)
	Transfer(ctx context.Context, senderID, receiverID, amount int64) (bool, error)
	History(ctx context.Context, userID int64) ([]*models.Log, error)
}

type walletService struct {
	wallet   storage.IWalletStorage
	logs     storage.ILogStorage
	log      logger.ILogger
	validate *validator.Validate
}

func NewWalletService(stg storage.IStorage, log logger.ILogger, v *validator.Validate) WalletService {
	return &walletService{
		wallet:   stg.Wallet(),
		logs:     stg.Log(),
		log:      log,
		validate: v,
	}
}

// Deposit applies delta (which may be negative) to the user's balance.
func (s *walletService) Deposit(ctx context.Context, userID, delta, invoker int64) (int64, error) {
	if delta == 0 {
		return 0, invalid(errors.New("delta must not be zero"))
	}
	balance, err := s.wallet.UpdateBalance(ctx, userID, delta, invoker)
	if err != nil {
		return 0, err
	}
	s.log.Info("balance updated",
		logger.Int64("user_id", userID), logger.Int64("delta", delta), logger.Int64("balance", balance))
	return balance, nil
}

func (s *walletService) SetBalance(ctx context.Context, userID, amount, invoker int64) (int64, error) {
	if err := s.validate.Var(amount, "gte=0"); err != nil {
		return 0, invalid(err)
	}
	return s.wallet.SetBalance(ctx, userID, amount, invoker)
}

func (s *walletService) Transfer(ctx context.Context, senderID, receiverID, amount int64) (bool, error) {
	if err := s.validate.Var(amount, "gt=0"); err != nil {
		return false, invalid(err)
	}
	if senderID == receiverID {
		return false, invalid(errors.New("cannot transfer to the same user"))
	}

	ok, err := s.wallet.Transfer(ctx, senderID, receiverID, amount)
	if err != nil {
		return false, err
	}
	if !ok {
		s.log.Warning("transfer declined",
			logger.Int64("sender", senderID), logger.Int64("receiver", receiverID), logger.Int64("amount", amount))
	}
	return ok, nil
}

func (s *walletService) History(ctx context.Context, userID int64) ([]*models.Log, error) {
	return s.logs.GetByUser(ctx, userID)
}
