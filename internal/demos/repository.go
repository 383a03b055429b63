package demos

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studioreel/website/internal/models"
	"github.com/studioreel/website/pkg/database"
)

// Repository handles demo request persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a demo request repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create records a demo request. A number that is already on file yields models.ErrAlreadyRegistered;
// the unique index decides, so concurrent submissions of one number store a single row.
func (r *Repository) Create(ctx context.Context, mobile string) (*models.DemoRequest, error) {
	const q = `INSERT INTO demo_requests (mobile) VALUES ($1)
		ON CONFLICT (mobile) DO NOTHING
		RETURNING id, mobile, created_at`
	var d models.DemoRequest
	err := r.pool.QueryRow(ctx, q, mobile).Scan(&d.ID, &d.Mobile, &d.CreatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows), database.IsUniqueViolation(err):
		return nil, models.ErrAlreadyRegistered
	case err != nil:
		return nil, err
	}
	return &d, nil
}

// List returns every demo request, newest first.
func (r *Repository) List(ctx context.Context) ([]models.DemoRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, mobile, created_at FROM demo_requests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.DemoRequest{}
	for rows.Next() {
		var d models.DemoRequest
		if err := rows.Scan(&d.ID, &d.Mobile, &d.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
