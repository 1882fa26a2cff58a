package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"shopbot/pkg/logger"
	"shopbot/pkg/models"
	"shopbot/storage"
)

type ProductInput struct {
	Name        string `validate:"required,max=255"`
	Description string `validate:"max=4096"`
	Price       int64  `validate:"gte=0"`
	Stock       int    `validate:"gte=0"`
}

type ShopService interface {
	AddProduct(ctx context.Context, in ProductInput) (int64, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	Catalog(ctx context.Context) ([]*models.Product, error)
	AllProducts(ctx context.Context) ([]*models.Product, error)
	Restock(ctx context.Context, id int64, stock int) (int, error)
	Reprice(ctx context.Context, id int64, price int64) (int64, error)
	Remove(ctx context.Context, id int64) error
	Buy(ctx context.Context, userID, productID int64, quantity int) (bool, error)
	Purchases(ctx context.Context, userID int64) ([]*models.Purchase, error)
	ClearPurchases(ctx context.Context, userID int64) error
}

type shopService struct {
	products  storage.IProductStorage
	purchases storage.IPurchaseStorage
	log       logger.ILogger
	validate  *validator.Validate
}

func NewShopService(stg storage.IStorage, log logger.ILogger, v *validator.Validate) ShopService {
	return &shopService{
		products:  stg.Product(),
		purchases: stg.Purchase(),
		log:       log,
		validate:  v,
	}
}

func (s *shopService) AddProduct(ctx context.Context, in ProductInput) (int64, error) {
	if err := s.validate.Struct(in); err != nil {
		return 0, invalid(err)
	}
	id, err := s.products.Create(ctx, in.Name, in.Description, in.Price, in.Stock)
	if err != nil {
		return 0, err
	}
	s.log.Info("product added", logger.Int64("id", id), logger.String("name", in.Name))
	return id, nil
}

func (s *shopService) Product(ctx context.Context, id int64) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

// Catalog lists products that are in stock.
func (s *shopService) Catalog(ctx context.Context) ([]*models.Product, error) {
	return s.products.GetAvailable(ctx)
}

func (s *shopService) AllProducts(ctx context.Context) ([]*models.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *shopService) Restock(ctx context.Context, id int64, stock int) (int, error) {
	if err := s.validate.Var(stock, "gte=0"); err != nil {
		return 0, invalid(err)
	}
	return s.products.UpdateStock(ctx, id, stock)
}

func (s *shopService) Reprice(ctx context.Context, id int64, price int64) (int64, error) {
	if err := s.validate.Var(price, "gte=0"); err != nil {
		return 0, invalid(err)
	}
	return s.products.ChangePrice(ctx, id, price)
}

func (s *shopService) Remove(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}

func (s *shopService) Buy(ctx context.Context, userID, productID int64, quantity int) (bool, error) {
	if err := s.validate.Var(quantity, "gt=0"); err != nil {
		return false, invalid(err)
	}
	ok, err := s.purchases.Buy(ctx, userID, productID, quantity)
	if err != nil {
		return false, err
	}
	if !ok {
		s.log.Warning("purchase declined",
			logger.Int64("user_id", userID), logger.Int64("product_id", productID), logger.Int("quantity", quantity))
	}
	return ok, nil
}

func (s *shopService) Purchases(ctx context.Context, userID int64) ([]*models.Purchase, error) {
	return s.purchases.GetByUser(ctx, userID)
}

func (s *shopService) ClearPurchases(ctx context.Context, userID int64) error {
	return s.purchases.ClearForUser(ctx, userID)
}
