package postgres

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"shopbot/pkg/logger"
)

var (
	userCols     = []string{"id", "tg", "name", "is_admin", "balance", "stage", "created_at", "updated_at"}
	productCols  = []string{"id", "name", "description", "price", "stock", "created_at", "updated_at"}
	purchaseCols = []string{"product_id", "product_name", "product_description", "product_price", "quantity_purchased", "purchase_date"}
	logCols      = []string{"id", "user_id", "description", "created_at"}

	fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewWithDB(mock, logger.NewNop())
}
