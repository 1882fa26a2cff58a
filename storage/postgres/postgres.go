package postgres

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopbot/config"
	"shopbot/pkg/logger"
	"shopbot/storage"
)

type Store struct {
	db    storage.DB
	close func()
	log   logger.ILogger
}

// New creates the shared pool from cfg.DSN() and applies pending migrations.
// It is meant to be called once at startup; the returned storage is safe for
// concurrent use and must be closed on shutdown.
func New(ctx context.Context, cfg config.Config, log logger.ILogger) (storage.IStorage, error) {
	url := cfg.DSN()

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Error("error while parsing Postgres config", logger.Error(err))
		return nil, err
	}
	if cfg.PostgresMaxConns > 0 {
		poolConfig.MaxConns = cfg.PostgresMaxConns
	}
	if cfg.PostgresMinConns > 0 {
		poolConfig.MinConns = cfg.PostgresMinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("failed to connect Postgres", logger.Error(err))
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		log.Error("failed to ping Postgres", logger.Error(err))
		pool.Close()
		return nil, err
	}

	if err := applyMigrations(cfg.MigrationsDir, url, log); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Postgres connected")

	return &Store{
		db:    pool,
		close: pool.Close,
		log:   log,
	}, nil
}

// NewWithDB wraps an already established connection handle. Close is a no-op;
// the owner of db is responsible for releasing it.
func NewWithDB(db storage.DB, log logger.ILogger) *Store {
	return &Store{
		db:    db,
		close: func() {},
		log:   log,
	}
}

func applyMigrations(dir, url string, log logger.ILogger) error {
	if dir == "" {
		return nil
	}

	mPath, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(mPath); err != nil {
		log.Warning("migrations directory not found, skipping", logger.String("dir", mPath))
		return nil
	}

	m, err := migrate.New("file://"+mPath, url)
	if err != nil {
		log.Error("migration init error", logger.Error(err))
		return err
	}
	defer m.Close()

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		log.Error("migration up error", logger.Error(err))
		return err
	}

	log.Info("migrations applied", logger.String("dir", mPath))
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() {
	s.close()
}

func (s *Store) GetDB() storage.DB {
	return s.db
}

func (s *Store) User() storage.IUserStorage         { return NewUserRepo(s.db, s.log) }
func (s *Store) Wallet() storage.IWalletStorage     { return NewWalletRepo(s.db, s.log) }
func (s *Store) Product() storage.IProductStorage   { return NewProductRepo(s.db, s.log) }
func (s *Store) Purchase() storage.IPurchaseStorage { return NewPurchaseRepo(s.db, s.log) }
func (s *Store) Log() storage.ILogStorage           { return NewLogRepo(s.db, s.log) }
