package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"shopbot/pkg/logger"
	"shopbot/storage"
)

var ErrInvalidInput = errors.New("invalid input")

type IServiceManager interface {
	User() UserService
	Wallet() WalletService
	Shop() ShopService
}

type service struct {
	userService   UserService
	walletService WalletService
	shopService   ShopService
}

func New(stg storage.IStorage, log logger.ILogger) IServiceManager {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &service{
		userService:   NewUserService(stg, log),
		walletService: NewWalletService(stg, log, v),
		shopService:   NewShopService(stg, log, v),
	}
}

func (s *service) User() UserService {
	return s.userService
}

func (s *service) Wallet() WalletService {
	return s.walletService
}

func (s *service) Shop() ShopService {
	return s.shopService
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
