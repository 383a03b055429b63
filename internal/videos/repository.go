package videos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studioreel/website/internal/models"
)

// Repository handles video persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a video repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const videoColumns = `id, title, description, media_url, media_ref, kind, created_at`

func scanVideo(row pgx.Row) (*models.Video, error) {
	var v models.Video
	if err := row.Scan(&v.ID, &v.Title, &v.Description, &v.MediaURL, &v.MediaRef, &v.Kind, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a video and fills in its id and created_at.
func (r *Repository) Create(ctx context.Context, v *models.Video) error {
	const q = `INSERT INTO videos (title, description, media_url, media_ref, kind)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	return r.pool.QueryRow(ctx, q, v.Title, v.Description, v.MediaURL, v.MediaRef, v.Kind).Scan(&v.ID, &v.CreatedAt)
}

// List returns every video, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Video, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *v)
	}
	return list, rows.Err()
}

// GetByID returns a video or models.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	v, err := scanVideo(r.pool.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return v, err
}

// Delete removes a video row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
