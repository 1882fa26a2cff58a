package postgres

import (
	"context"

	"shopbot/pkg/logger"
	"shopbot/pkg/models"
	"shopbot/storage"
)

type purchaseRepo struct {
	db  storage.DB
	log logger.ILogger
}

func NewPurchaseRepo(db storage.DB, log logger.ILogger) storage.IPurchaseStorage {
	return &purchaseRepo{db: db, log: log}
}

// Buy calls the buy_product routine, which decrements stock, debits the user
// and records the purchase atomically. Its result is returned as is.
func (r *purchaseRepo) Buy(ctx context.Context, userID, productID int64, quantity int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT buy_product($1, $2, $3)`, userID, productID, quantity).Scan(&ok)
	if err != nil {
		r.log.Error("failed to buy product",
			logger.Int64("user_id", userID), logger.Int64("product_id", productID), logger.Error(err))
		return false, MapError(err)
	}
	return ok, nil
}

func (r *purchaseRepo) GetByUser(ctx context.Context, userID int64) ([]*models.Purchase, error) {
	query := `
		SELECT
			p.id AS product_id,
			p.name AS product_name,
			p.description AS product_description,
			p.price AS product_price,
			pu.quantity AS quantity_purchased,
			pu.created_at AS purchase_date
		FROM purchases pu
		JOIN products p ON pu.product_id = p.id
		WHERE pu.user_id = $1
		ORDER BY pu.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to get user purchases", logger.Int64("user_id", userID), logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []*models.Purchase
	for rows.Next() {
		var p models.Purchase
		err := rows.Scan(
			&p.ProductID, &p.ProductName, &p.ProductDescription, &p.ProductPrice,
			&p.QuantityPurchased, &p.PurchaseDate,
		)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}

// ClearForUser deletes every purchase of the user. No rows is not an error.
func (r *purchaseRepo) ClearForUser(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM purchases WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error("failed to clear user purchases", logger.Int64("user_id", userID), logger.Error(err))
		return MapError(err)
	}
	return nil
}
