package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/database"
)

type postgresRepo struct{ db database.Querier }

// NewPostgresRepository returns the sales repository. It also serves as the
// promotion.VolumeCounter of the hot-product detector.
func NewPostgresRepository(db database.Querier) Repository { return &postgresRepo{db: db} }

const columns = `id, order_id, user_id, store_id, items, total_amount, total_items,
	       payment_method, payment_status, customer_info, midtrans_token,
	       midtrans_redirect_url, created_at`

// Insert stores s with s.CreatedAt as created_at, so hot-product windows
// computed from the same clock always include the row.
func (r *postgresRepo) Insert(ctx context.Context, s *Sale) error {
	err := r.db.GetContext(ctx, s, `
		INSERT INTO sales
		  (id, order_id, user_id, store_id, items, total_amount, total_items,
		   payment_method, payment_status, customer_info, midtrans_token, midtrans_redirect_url,
		   created_at)
		VALUES ($1,$2,$3,$4,$5::jsonb,$6,$7,$8,$9,$10::jsonb,$11,$12,$13)
		RETURNING `+columns,
		s.ID, s.OrderID, s.UserID, s.StoreID, s.Items, s.TotalAmount, s.TotalItems,
		s.PaymentMethod, s.PaymentStatus, s.CustomerInfo, s.MidtransToken, s.MidtransRedirectURL,
		s.CreatedAt)
	if apperr.IsUniqueViolation(err) {
		return apperr.Validation("order_id %s already exists", s.OrderID)
	}
	return err
}

func (r *postgresRepo) InsertPlaceholder(ctx context.Context, s *Sale) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sales
		  (id, order_id, user_id, store_id, items, total_amount, total_items, payment_method, payment_status,
		   created_at)
		VALUES ($1,$2,$3,$4,$5::jsonb,$6,$7,$8,$9,$10)
		ON CONFLICT (order_id) DO NOTHING`,
		s.ID, s.OrderID, s.UserID, s.StoreID, s.Items, s.TotalAmount, s.TotalItems,
		s.PaymentMethod, s.PaymentStatus, s.CreatedAt)
	return err
}

// completedFilter builds the shared WHERE clause for completed-sale reads.
func completedFilter(userID, storeID string, since time.Time) (string, []interface{}) {
	where := `user_id = $1 AND created_at >= $2 AND total_items > 0`
	args := []interface{}{userID, since}
	if storeID != "" {
		args = append(args, storeID)
		where += fmt.Sprintf(` AND store_id = $%d`, len(args))
	}
	return where, args
}

func (r *postgresRepo) ListCompletedSince(ctx context.Context, userID, storeID string, since time.Time) ([]Sale, error) {
	where, args := completedFilter(userID, storeID, since)
	sales := []Sale{}
	err := r.db.SelectContext(ctx, &sales,
		`SELECT `+columns+` FROM sales WHERE `+where+` ORDER BY created_at DESC`, args...)
	return sales, err
}

func (r *postgresRepo) CountCompletedSince(ctx context.Context, userID, storeID string, since time.Time) (int, error) {
	where, args := completedFilter(userID, storeID, since)
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM sales WHERE `+where, args...)
	return n, err
}

func (r *postgresRepo) SumProductQuantity(ctx context.Context, userID, storeID, productID string, from, to time.Time) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM((elem->>'qty')::int), 0)
		FROM sales s, jsonb_array_elements(s.items) AS elem
		WHERE s.user_id = $1
		  AND s.store_id = $2
		  AND s.created_at > $3
		  AND s.created_at <= $4
		  AND s.total_items > 0
		  AND elem->>'id' = $5`,
		userID, storeID, from, to, productID)
	return total, err
}
