package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shopbot/pkg/models"
	"shopbot/storage"
)

// mockStorage hands out the embedded sub-storage mocks.
type mockStorage struct {
	user     *mockUserStorage
	wallet   *mockWalletStorage
	product  *mockProductStorage
	purchase *mockPurchaseStorage
	logs     *mockLogStorage
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		user:     &mockUserStorage{},
		wallet:   &mockWalletStorage{},
		product:  &mockProductStorage{},
		purchase: &mockPurchaseStorage{},
		logs:     &mockLogStorage{},
	}
}

func (m *mockStorage) User() storage.IUserStorage         { return m.user }
func (m *mockStorage) Wallet() storage.IWalletStorage     { return m.wallet }
func (m *mockStorage) Product() storage.IProductStorage   { return m.product }
func (m *mockStorage) Purchase() storage.IPurchaseStorage { return m.purchase }
func (m *mockStorage) Log() storage.ILogStorage           { return m.logs }
func (m *mockStorage) Ping(ctx context.Context) error     { return nil }
func (m *mockStorage) Close()                             {}
func (m *mockStorage) GetDB() storage.DB                  { return nil }

type mockUserStorage struct {
	mock.Mock
}

func (m *mockUserStorage) Create(ctx context.Context, tg int64, name string, isAdmin bool) (int64, error) {
	args := m.Called(ctx, tg, name, isAdmin)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserStorage) Get(ctx context.Context, tg int64) (*models.User, error) {
	args := m.Called(ctx, tg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStorage) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStorage) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockUserStorage) ChangeStage(ctx context.Context, id int64, stage int) (int, error) {
	args := m.Called(ctx, id, stage)
	return args.Int(0), args.Error(1)
}

func (m *mockUserStorage) IsAdmin(ctx context.Context, tg int64) (bool, error) {
	args := m.Called(ctx, tg)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStorage) GetTotalUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockWalletStorage struct {
	mock.Mock
}

func (m *mockWalletStorage) UpdateBalance(ctx context.Context, id, delta, invoker int64) (int64, error) {
	args := m.Called(ctx, id, delta, invoker)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockWalletStorage) SetBalance(ctx context.Context, id, amount, invoker int64) (int64, error) {
	args := m.Called(ctx, id, amount, invoker)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockWalletStorage) Transfer(ctx context.Context, senderID, receiverID, amount int64) (bool, error) {
	args := m.Called(ctx, senderID, receiverID, amount)
	return args.Bool(0), args.Error(1)
}

type mockProductStorage struct {
	mock.Mock
}

func (m *mockProductStorage) Create(ctx context.Context, name, description string, price int64, stock int) (int64, error) {
	args := m.Called(ctx, name, description, price, stock)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductStorage) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductStorage) GetAll(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *mockProductStorage) GetAvailable(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *mockProductStorage) UpdateStock(ctx context.Context, id int64, stock int) (int, error) {
	args := m.Called(ctx, id, stock)
	return args.Int(0), args.Error(1)
}

func (m *mockProductStorage) ChangePrice(ctx context.Context, id int64, price int64) (int64, error) {
	args := m.Called(ctx, id, price)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductStorage) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductStorage) GetTotalProducts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockPurchaseStorage struct {
	mock.Mock
}

func (m *mockPurchaseStorage) Buy(ctx context.Context, userID, productID int64, quantity int) (bool, error) {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *mockPurchaseStorage) GetByUser(ctx context.Context, userID int64) ([]*models.Purchase, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.Purchase), args.Error(1)
}

func (m *mockPurchaseStorage) ClearForUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockLogStorage struct {
	mock.Mock
}

func (m *mockLogStorage) Create(ctx context.Context, userID int64, description string) (int64, error) {
	args := m.Called(ctx, userID, description)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLogStorage) GetByUser(ctx context.Context, userID int64) ([]*models.Log, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.Log), args.Error(1)
}
