package customer

import (
	"context"

	"github.com/georgemunganga/dagangcerdas-backend/internal/database"
)

// Repository defines the interface for customer data storage.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
}

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (id, user_id, store_id, name, phone, address, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, store_id, name, phone, address, email, notes, created_at`
	return r.db.GetContext(ctx, c, query,
		c.ID, c.UserID, c.StoreID, c.Name, c.Phone, c.Address, c.Email)
}
