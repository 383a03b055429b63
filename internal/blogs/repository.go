package blogs

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studioreel/website/internal/models"
)

// Repository handles blog persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a blog repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const blogColumns = `id, title, image_url, paragraph1, paragraph2, quote, created_at`

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var b models.Blog
	if err := row.Scan(&b.ID, &b.Title, &b.ImageURL, &b.Paragraph1, &b.Paragraph2, &b.Quote, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a post and fills in its id and created_at.
func (r *Repository) Create(ctx context.Context, b *models.Blog) error {
	const q = `INSERT INTO blogs (title, image_url, paragraph1, paragraph2, quote)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	return r.pool.QueryRow(ctx, q, b.Title, b.ImageURL, b.Paragraph1, b.Paragraph2, b.Quote).Scan(&b.ID, &b.CreatedAt)
}

// List returns every post, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Blog, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+blogColumns+` FROM blogs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *b)
	}
	return list, rows.Err()
}

// GetByID returns a post or models.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	b, err := scanBlog(r.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return b, err
}

// Update replaces the text fields. The image is only replaced when u.ImageURL is set.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, u models.BlogUpdate) error {
	const q = `UPDATE blogs SET title = $1, paragraph1 = $2, paragraph2 = $3, quote = $4,
		image_url = COALESCE($5::text, image_url)
		WHERE id = $6`
	tag, err := r.pool.Exec(ctx, q, u.Title, u.Paragraph1, u.Paragraph2, u.Quote, u.ImageURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a post.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
