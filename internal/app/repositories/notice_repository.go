package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// NoticeRepository handles database operations for notices
type NoticeRepository struct {
	db *pgxpool.Pool
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{
		db: db,
	}
}

func (r *NoticeRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFromContext(ctx, r.db)
}

// GetAllOrderedByDateDesc retrieves all notices, most recent first
func (r *NoticeRepository) GetAllOrderedByDateDesc(ctx context.Context) ([]*models.Notice, error) {
	query := `
		SELECT id, title, content, date, priority
		FROM notices
		ORDER BY date DESC, id DESC
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		var notice models.Notice
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Content, &notice.Date, &notice.Priority); err != nil {
			return nil, err
		}
		notices = append(notices, &notice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notices, nil
}

// Create inserts a new notice
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	query := `
		INSERT INTO notices (title, content, date, priority)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.q(ctx).QueryRow(ctx, query, notice.Title, notice.Content, notice.Date, notice.Priority).Scan(&notice.ID)
	if err != nil {
		return fmt.Errorf("error creating notice: %w", err)
	}

	return nil
}

// Delete deletes a notice by ID
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}
