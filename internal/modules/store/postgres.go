package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/database"
)

type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository creates a new PostgreSQL store repository.
func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

const columns = `id, user_id, name, owner_name, address, phone, email, description,
	       total_sales, total_revenue, total_profit, total_products, last_sale_date,
	       is_active, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, s *Store) error {
	query := `
		INSERT INTO stores (id, user_id, name, owner_name, address, phone, email, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + columns
	return r.db.GetContext(ctx, s, query,
		s.ID, s.UserID, s.Name, s.OwnerName, s.Address, s.Phone, s.Email, s.Description)
}

func (r *postgresRepository) Update(ctx context.Context, id string, req UpdateStoreRequest) (*Store, error) {
	query := `
		UPDATE stores
		SET name = COALESCE($1, name),
		    owner_name = COALESCE($2, owner_name),
		    address = COALESCE($3, address),
		    phone = COALESCE($4, phone),
		    email = COALESCE($5, email),
		    description = COALESCE($6, description),
		    is_active = COALESCE($7, is_active),
		    updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING ` + columns
	s := &Store{}
	err := r.db.GetContext(ctx, s, query,
		req.Name, req.OwnerName, req.Address, req.Phone, req.Email, req.Description, req.IsActive,
		id, req.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("store", id)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
