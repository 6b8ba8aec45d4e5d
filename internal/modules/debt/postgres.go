package debt

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/database"
)

type postgresRepo struct{ db database.Querier }

func NewPostgresRepository(db database.Querier) Repository { return &postgresRepo{db: db} }

const columns = `id, user_id, store_id, customer_id, customer_name, customer_phone,
	       customer_address, total_amount, paid_amount, remaining_amount, status,
	       due_date, notes, last_payment_date, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, d *Debt) error {
	return r.db.GetContext(ctx, d, `
		INSERT INTO debts
		  (id, user_id, store_id, customer_id, customer_name, customer_phone, customer_address,
		   total_amount, paid_amount, status, due_date, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING `+columns,
		d.ID, d.UserID, d.StoreID, d.CustomerID, d.CustomerName, d.CustomerPhone, d.CustomerAddress,
		d.Amount, d.AmountPaid, d.Status, d.DueDate, d.Description)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Debt, error) {
	d := &Debt{}
	err := r.db.GetContext(ctx, d, `SELECT `+columns+` FROM debts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("debt", id)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies req. A new paid amount also stamps last_payment_date.
func (r *postgresRepo) Update(ctx context.Context, id string, req UpdateDebtRequest) (*Debt, error) {
	d := &Debt{}
	err := r.db.GetContext(ctx, d, `
		UPDATE debts
		SET customer_name = COALESCE($1, customer_name),
		    customer_phone = COALESCE($2, customer_phone),
		    customer_address = COALESCE($3, customer_address),
		    total_amount = COALESCE($4, total_amount),
		    paid_amount = COALESCE($5, paid_amount),
		    due_date = COALESCE($6, due_date),
		    status = COALESCE($7, status),
		    notes = COALESCE($8, notes),
		    last_payment_date = CASE WHEN $5::numeric IS NULL THEN last_payment_date ELSE NOW() END,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING `+columns,
		req.CustomerName, req.CustomerPhone, req.CustomerAddress, req.Amount, req.AmountPaid,
		req.DueDate, req.Status, req.Description, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("debt", id)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("debt", id)
	}
	return nil
}

func (r *postgresRepo) CountOverdue(ctx context.Context, userID, storeID string, day time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `
		SELECT COUNT(*) FROM debts
		WHERE user_id = $1 AND store_id = $2 AND due_date < $3 AND status <> 'paid'`,
		userID, storeID, day)
	return n, err
}
