package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
	"github.com/eren/campuscore/internal/pkg/dberrors"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

func (r *SubjectRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFromContext(ctx, r.db)
}

const subjectColumns = `
	s.id, s.name, s.department_id, d.name
`

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var subject models.Subject
	if err := row.Scan(&subject.ID, &subject.Name, &subject.DepartmentID, &subject.DepartmentName); err != nil {
		return nil, err
	}
	return &subject, nil
}

// Create inserts a new subject. The (department_id, name) pair is unique.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, department_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.q(ctx).QueryRow(ctx, query, subject.Name, subject.DepartmentID).Scan(&subject.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uk_subjects_department_name") {
			return apperrors.ErrSubjectAlreadyExists
		}
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT ` + subjectColumns + `
		FROM subjects s
		LEFT JOIN departments d ON d.id = s.department_id
		WHERE s.id = $1
	`

	subject, err := scanSubject(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return subject, nil
}

// GetAll retrieves all subjects with their department names resolved
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	query := `
		SELECT ` + subjectColumns + `
		FROM subjects s
		LEFT JOIN departments d ON d.id = s.department_id
		ORDER BY s.id
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSubjects(rows)
}

// GetByDepartmentName retrieves all subjects belonging to the named department
func (r *SubjectRepository) GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Subject, error) {
	query := `
		SELECT ` + subjectColumns + `
		FROM subjects s
		JOIN departments d ON d.id = s.department_id
		WHERE d.name = $1
		ORDER BY s.id
	`

	rows, err := r.q(ctx).Query(ctx, query, departmentName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSubjects(rows)
}

func collectSubjects(rows pgx.Rows) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// ExistsByID checks whether a subject row exists
func (r *SubjectRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}
	return exists, nil
}

// Delete deletes a subject by ID
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}
