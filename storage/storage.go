package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"shopbot/pkg/models"
)

// DB is the subset of *pgxpool.Pool the repositories use. Each call leases a
// connection from the pool and returns it when the call completes.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

type IStorage interface {
	User() IUserStorage
	Wallet() IWalletStorage
	Product() IProductStorage
	Purchase() IPurchaseStorage
	Log() ILogStorage
	Ping(ctx context.Context) error
	Close()
	GetDB() DB
}

type IUserStorage interface {
	Create(ctx context.Context, tg int64, name string, isAdmin bool) (int64, error)
	Get(ctx context.Context, tg int64) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	ChangeStage(ctx context.Context, id int64, stage int) (int, error)
	IsAdmin(ctx context.Context, tg int64) (bool, error)
	GetTotalUsers(ctx context.Context) (int, error)
}

// IWalletStorage holds every operation that moves money. Each one writes its
// audit log row in the same transaction as the balance change.
type IWalletStorage interface {
	UpdateBalance(ctx context.Context, id, delta, invoker int64) (int64, error)
	SetBalance(ctx context.Context, id, amount, invoker int64) (int64, error)
	Transfer(ctx context.Context, senderID, receiverID, amount int64) (bool, error)
}

type IProductStorage interface {
	Create(ctx context.Context, name, description string, price int64, stock int) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetAll(ctx context.Context) ([]*models.Product, error)
	GetAvailable(ctx context.Context) ([]*models.Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) (int, error)
	ChangePrice(ctx context.Context, id int64, price int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	GetTotalProducts(ctx context.Context) (int, error)
}

type IPurchaseStorage interface {
	Buy(ctx context.Context, userID, productID int64, quantity int) (bool, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.Purchase, error)
	ClearForUser(ctx context.Context, userID int64) error
}

type ILogStorage interface {
	Create(ctx context.Context, userID int64, description string) (int64, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.Log, error)
}
