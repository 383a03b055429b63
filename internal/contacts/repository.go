package contacts

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studioreel/website/internal/models"
)

// Repository handles lead persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a lead repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a lead and fills in its id and created_at.
func (r *Repository) Create(ctx context.Context, l *models.Lead) error {
	const q = `INSERT INTO contacts (name, email, phone, subject, budget, membership, website, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	return r.pool.QueryRow(ctx, q, l.Name, l.Email, l.Phone, l.Subject, l.Budget, l.Membership, l.Website, l.Message).
		Scan(&l.ID, &l.CreatedAt)
}

// List returns every lead, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Lead, error) {
	const q = `SELECT id, name, email, phone, subject, budget, membership, website, message, created_at
		FROM contacts ORDER BY created_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Lead{}
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Subject, &l.Budget, &l.Membership, &l.Website, &l.Message, &l.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Delete removes a lead.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
