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
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

func (r *TeacherRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFromContext(ctx, r.db)
}

const teacherColumns = `
	t.id, t.name, t.email, t.password, t.designation, t.department_id, d.name
`

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	var teacher models.Teacher
	err := row.Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.Email,
		&teacher.Password,
		&teacher.Designation,
		&teacher.DepartmentID,
		&teacher.DepartmentName,
	)
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (name, email, password, designation, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.q(ctx).QueryRow(ctx, query,
		teacher.Name, teacher.Email, teacher.Password, teacher.Designation, teacher.DepartmentID,
	).Scan(&teacher.ID)
	if err != nil {
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT ` + teacherColumns + `
		FROM teachers t
		LEFT JOIN departments d ON d.id = t.department_id
		WHERE t.id = $1
	`

	teacher, err := scanTeacher(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// GetByEmail retrieves a teacher by email
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	query := `
		SELECT ` + teacherColumns + `
		FROM teachers t
		LEFT JOIN departments d ON d.id = t.department_id
		WHERE t.email = $1
	`

	teacher, err := scanTeacher(r.q(ctx).QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// GetAll retrieves all teachers with department names resolved
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT ` + teacherColumns + `
		FROM teachers t
		LEFT JOIN departments d ON d.id = t.department_id
		ORDER BY t.id
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Update persists all mutable columns of an existing teacher row
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $1, email = $2, password = $3, designation = $4, department_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.q(ctx).Exec(ctx, query,
		teacher.Name, teacher.Email, teacher.Password, teacher.Designation, teacher.DepartmentID, teacher.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete deletes a teacher by ID
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}
