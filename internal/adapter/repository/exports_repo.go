package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"portfolio-server/internal/usecase"
)

// ExportsRepo persists export job rows. Persistence is best-effort: a nil
// pool makes every operation a no-op so the server runs without a database.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, j *usecase.ExportJob) error {
	if r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO resume_exports (id, session_id, file_name, status, error, html_path, pdf_path, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, error = EXCLUDED.error, html_path = EXCLUDED.html_path, pdf_path = EXCLUDED.pdf_path, updated_at = EXCLUDED.updated_at`,
		j.ID, j.SessionID, j.FileName, j.Status, j.Error, j.HTMLPath, j.PDFPath, j.CreatedAt, j.UpdatedAt)
	return err
}
