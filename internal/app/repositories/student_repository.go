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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func (r *StudentRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFromContext(ctx, r.db)
}

const studentColumns = `
	s.id, s.name, s.email, s.password, s.department_id, s.gpa, d.name
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Password,
		&student.DepartmentID,
		&student.GPA,
		&student.DepartmentName,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, password, department_id, gpa)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.q(ctx).QueryRow(ctx, query,
		student.Name, student.Email, student.Password, student.DepartmentID, student.GPA,
	).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		LEFT JOIN departments d ON d.id = s.department_id
		WHERE s.id = $1
	`

	student, err := scanStudent(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		LEFT JOIN departments d ON d.id = s.department_id
		WHERE s.email = $1
	`

	student, err := scanStudent(r.q(ctx).QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students with department names resolved
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		LEFT JOIN departments d ON d.id = s.department_id
		ORDER BY s.id
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

// GetByDepartmentName retrieves all students belonging to the named department
func (r *StudentRepository) GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN departments d ON d.id = s.department_id
		WHERE d.name = $1
		ORDER BY s.id
	`

	rows, err := r.q(ctx).Query(ctx, query, departmentName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ExistsByID checks whether a student row exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Update persists all mutable columns of an existing student row
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, password = $3, department_id = $4, gpa = $5
		WHERE id = $6
	`

	cmdTag, err := r.q(ctx).Exec(ctx, query,
		student.Name, student.Email, student.Password, student.DepartmentID, student.GPA, student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateGPA sets the GPA column directly
func (r *StudentRepository) UpdateGPA(ctx context.Context, id int64, gpa *float64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `UPDATE students SET gpa = $1 WHERE id = $2`, gpa, id)
	if err != nil {
		return fmt.Errorf("error updating student gpa: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
