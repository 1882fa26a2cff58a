package models

import "time"

// Purchase is a purchases row joined with its product.
type Purchase struct {
	ProductID          int64     `json:"product_id"`
	ProductName        string    `json:"product_name"`
	ProductDescription string    `json:"product_description"`
	ProductPrice       int64     `json:"product_price"`
	QuantityPurchased  int       `json:"quantity_purchased"`
	PurchaseDate       time.Time `json:"purchase_date"`
}
