package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/database"
)

type productPostgres struct{ db database.Querier }

func NewProductPostgresRepository(db database.Querier) ProductRepository { return &productPostgres{db: db} }

const productColumns = `id, user_id, store_id, name, price, cost_price, stock, category,
	       unit, barcode, min_stock_level, created_at, updated_at`

func (r *productPostgres) Create(ctx context.Context, p *Product) error {
	return r.db.GetContext(ctx, p, `
		INSERT INTO products
		  (id, user_id, store_id, name, price, cost_price, stock, category, unit, barcode, min_stock_level)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+productColumns,
		p.ID, p.UserID, p.StoreID, p.Name, p.Price, p.CostPrice,
		p.Stock, p.Category, p.Unit, p.Barcode, p.MinStockLevel)
}

func (r *productPostgres) GetByID(ctx context.Context, id string) (*Product, error) {
	p := &Product{}
	err := r.db.GetContext(ctx, p, `SELECT `+productColumns+` FROM products WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("product", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productPostgres) Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	p := &Product{}
	err := r.db.GetContext(ctx, p, `
		UPDATE products
		SET name = COALESCE($1, name),
		    price = COALESCE($2, price),
		    cost_price = COALESCE($3, cost_price),
		    stock = COALESCE($4, stock),
		    category = COALESCE($5, category),
		    unit = COALESCE($6, unit),
		    barcode = COALESCE($7, barcode),
		    min_stock_level = COALESCE($8, min_stock_level),
		    updated_at = NOW()
		WHERE id = $9
		RETURNING `+productColumns,
		req.Name, req.Price, req.CostPrice, req.Stock, req.Category,
		req.Unit, req.Barcode, req.MinStockLevel, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("product", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("product", id)
	}
	return nil
}

func (r *productPostgres) DecrementStock(ctx context.Context, productID, storeID string, qty int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND store_id = $3`,
		qty, productID, storeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("product in store", productID)
	}
	return nil
}

func (r *productPostgres) CountLowStock(ctx context.Context, userID, storeID string, limit int) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM products WHERE user_id = $1 AND store_id = $2 AND stock <= $3`,
		userID, storeID, limit)
	return n, err
}
