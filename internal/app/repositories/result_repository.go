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

// ResultRepository handles database operations for result rows.
// The (student_id, subject_id) pair is unique.
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

func (r *ResultRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFromContext(ctx, r.db)
}

const resultColumns = `
	r.id, r.student_id, r.subject_id, r.marks, st.name, su.name
`

func scanResult(row pgx.Row) (*models.Result, error) {
	var result models.Result
	err := row.Scan(
		&result.ID,
		&result.StudentID,
		&result.SubjectID,
		&result.Marks,
		&result.StudentName,
		&result.SubjectName,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByStudentID retrieves all results for a student
func (r *ResultRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM results r
		JOIN students st ON st.id = r.student_id
		JOIN subjects su ON su.id = r.subject_id
		WHERE r.student_id = $1
		ORDER BY r.id
	`

	rows, err := r.q(ctx).Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectResults(rows)
}

// GetByDepartmentName retrieves all results whose subject belongs to the named department
func (r *ResultRepository) GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Result, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM results r
		JOIN students st ON st.id = r.student_id
		JOIN subjects su ON su.id = r.subject_id
		JOIN departments d ON d.id = su.department_id
		WHERE d.name = $1
		ORDER BY r.id
	`

	rows, err := r.q(ctx).Query(ctx, query, departmentName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectResults(rows)
}

func collectResults(rows pgx.Rows) ([]*models.Result, error) {
	var results []*models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// GetByStudentAndSubject retrieves the single result row for a (student, subject) pair
func (r *ResultRepository) GetByStudentAndSubject(ctx context.Context, studentID, subjectID int64) (*models.Result, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM results r
		JOIN students st ON st.id = r.student_id
		JOIN subjects su ON su.id = r.subject_id
		WHERE r.student_id = $1 AND r.subject_id = $2
	`

	result, err := scanResult(r.q(ctx).QueryRow(ctx, query, studentID, subjectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving result: %w", err)
	}

	return result, nil
}

// Create inserts a new result row
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO results (student_id, subject_id, marks)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.q(ctx).QueryRow(ctx, query, result.StudentID, result.SubjectID, result.Marks).Scan(&result.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uk_results_student_subject") {
			return apperrors.ErrResultAlreadyExists
		}
		return fmt.Errorf("error creating result: %w", err)
	}

	return nil
}

// UpdateMarks overwrites the marks of an existing result row
func (r *ResultRepository) UpdateMarks(ctx context.Context, id int64, marks float64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `UPDATE results SET marks = $1 WHERE id = $2`, marks, id)
	if err != nil {
		return fmt.Errorf("error updating result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// DeleteByStudentID removes every result row referencing a student
func (r *ResultRepository) DeleteByStudentID(ctx context.Context, studentID int64) error {
	_, err := r.q(ctx).Exec(ctx, `DELETE FROM results WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting results for student: %w", err)
	}
	return nil
}

// DeleteBySubjectID removes every result row referencing a subject
func (r *ResultRepository) DeleteBySubjectID(ctx context.Context, subjectID int64) error {
	_, err := r.q(ctx).Exec(ctx, `DELETE FROM results WHERE subject_id = $1`, subjectID)
	if err != nil {
		return fmt.Errorf("error deleting results for subject: %w", err)
	}
	return nil
}
