package service

import (
	"context"

	"shopbot/pkg/logger"
	"shopbot/pkg/models"
	"shopbot/storage"
)

type UserService interface {
	Register(ctx context.Context, tg int64, name string) (*models.User, error)
	Get(ctx context.Context, tg int64) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	IsAdmin(ctx context.Context, tg int64) (bool, error)
	SetStage(ctx context.Context, id int64, stage int) (int, error)
}

type userService struct {
	stg storage.IUserStorage
	log logger.ILogger
}

func NewUserService(stg storage.IStorage, log logger.ILogger) UserService {
	return &userService{
		stg: stg.User(),
		log: log,
	}
}

// Register returns the user with the given tg, creating a non-admin account
// on first contact.
func (s *userService) Register(ctx context.Context, tg int64, name string) (*models.User, error) {
	user, err := s.stg.Get(ctx, tg)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	id, err := s.stg.Create(ctx, tg, name, false)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", logger.Int64("id", id), logger.Int64("tg", tg))

	return s.stg.GetByID(ctx, id)
}

func (s *userService) Get(ctx context.Context, tg int64) (*models.User, error) {
	return s.stg.Get(ctx, tg)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.stg.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.stg.GetAll(ctx)
}

func (s *userService) IsAdmin(ctx context.Context, tg int64) (bool, error) {
	return s.stg.IsAdmin(ctx, tg)
}

func (s *userService) SetStage(ctx context.Context, id int64, stage int) (int, error) {
	return s.stg.ChangeStage(ctx, id, stage)
}
