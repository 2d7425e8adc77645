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

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

func (r *DepartmentRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFromContext(ctx, r.db)
}

// GetByName retrieves a department by its unique name
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	query := `
		SELECT id, name
		FROM departments
		WHERE name = $1
	`

	var department models.Department
	err := r.q(ctx).QueryRow(ctx, query, name).Scan(&department.ID, &department.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(&department.ID, &department.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name
		FROM departments
		ORDER BY name
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetOrCreate returns the department with the given name, creating it when it
// does not exist yet. If a concurrent insert races on the unique name
// constraint, the constraint wins and the loser re-reads the winner's row.
func (r *DepartmentRepository) GetOrCreate(ctx context.Context, name string) (*models.Department, error) {
	department, err := r.GetByName(ctx, name)
	if err == nil {
		return department, nil
	}
	if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		return nil, err
	}

	// DO NOTHING keeps a racing insert from aborting the surrounding
	// transaction; the loser falls through to re-read the winner's row.
	insert := `
		INSERT INTO departments (name)
		VALUES ($1)
		ON CONFLICT ON CONSTRAINT uk_departments_name DO NOTHING
		RETURNING id
	`

	created := &models.Department{Name: name}
	err = r.q(ctx).QueryRow(ctx, insert, name).Scan(&created.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || dberrors.IsDuplicateConstraintError(err, "uk_departments_name") {
			// Lost the race, the winner's row is authoritative
			return r.GetByName(ctx, name)
		}
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return created, nil
}
