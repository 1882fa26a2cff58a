package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"shopbot/pkg/logger"
	"shopbot/pkg/models"
	"shopbot/storage"
)

const productColumns = `id, name, description, price, stock, created_at, updated_at`

type productRepo struct {
	db  storage.DB
	log logger.ILogger
}

func NewProductRepo(db storage.DB, log logger.ILogger) storage.IProductStorage {
	return &productRepo{db: db, log: log}
}

func (r *productRepo) Create(ctx context.Context, name, description string, price int64, stock int) (int64, error) {
	var id int64
	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, name, description, price, stock).Scan(&id)
	if err != nil {
		r.log.Error("failed to create product", logger.String("name", name), logger.Error(err))
		return 0, MapError(err)
	}
	return id, nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get product by id", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetAll(ctx context.Context) ([]*models.Product, error) {
	return r.scanProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *productRepo) GetAvailable(ctx context.Context) ([]*models.Product, error) {
	return r.scanProducts(ctx, `SELECT `+productColumns+` FROM products WHERE stock > 0 ORDER BY id`)
}

func (r *productRepo) UpdateStock(ctx context.Context, id int64, stock int) (int, error) {
	var newStock int
	query := `
		UPDATE products
		SET stock = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING stock
	`
	err := r.db.QueryRow(ctx, query, stock, id).Scan(&newStock)
	if err != nil {
		r.log.Error("failed to update product stock", logger.Int64("id", id), logger.Error(err))
		return 0, MapError(err)
	}
	return newStock, nil
}

func (r *productRepo) ChangePrice(ctx context.Context, id int64, price int64) (int64, error) {
	var newPrice int64
	query := `
		UPDATE products
		SET price = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING price
	`
	err := r.db.QueryRow(ctx, query, price, id).Scan(&newPrice)
	if err != nil {
		r.log.Error("failed to change product price", logger.Int64("id", id), logger.Error(err))
		return 0, MapError(err)
	}
	return newPrice, nil
}

// Delete removes the product if it exists. Missing ids are not an error.
func (r *productRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete product", logger.Int64("id", id), logger.Error(err))
		return MapError(err)
	}
	return nil
}

func (r *productRepo) GetTotalProducts(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM products").Scan(&count)
	return count, err
}

func (r *productRepo) scanProducts(ctx context.Context, query string, args ...interface{}) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to query products", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
