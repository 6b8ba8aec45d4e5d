package promotion

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/database"
)

type postgresRepo struct{ db database.Querier }

func NewPostgresRepository(db database.Querier) Repository { return &postgresRepo{db: db} }

const columns = `id, user_id, store_id, name, description, discount_type, discount_value,
	       min_order_quantity, start_date, end_date, is_active, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, p *Promotion) error {
	return r.db.GetContext(ctx, p, `
		INSERT INTO promotions
		  (id, user_id, store_id, name, description, discount_type, discount_value,
		   min_order_quantity, start_date, end_date, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+columns,
		p.ID, p.UserID, p.StoreID, p.Name, p.Description, p.DiscountType, p.DiscountValue,
		p.MinOrderQuantity, p.StartDate, p.EndDate, p.IsActive)
}

func (r *postgresRepo) ExistsActiveByName(ctx context.Context, storeID, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM promotions
			WHERE store_id = $1 AND name = $2 AND is_active = true
		)`, storeID, name).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) Update(ctx context.Context, id string, req UpdatePromotionRequest) (*Promotion, error) {
	p := &Promotion{}
	err := r.db.GetContext(ctx, p, `
		UPDATE promotions
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    discount_type = COALESCE($3, discount_type),
		    discount_value = COALESCE($4, discount_value),
		    min_order_quantity = COALESCE($5, min_order_quantity),
		    start_date = COALESCE($6, start_date),
		    end_date = COALESCE($7, end_date),
		    is_active = COALESCE($8, is_active),
		    updated_at = NOW()
		WHERE id = $9
		RETURNING `+columns,
		req.Name, req.Description, req.DiscountType, req.DiscountValue, req.MinQuantity,
		req.StartDate, req.EndDate, req.IsActive, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("promotion", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("promotion", id)
	}
	return nil
}
