package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// DepartmentStore is the storage contract the department directory consumes
type DepartmentStore interface {
	GetByName(ctx context.Context, name string) (*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetOrCreate(ctx context.Context, name string) (*models.Department, error)
}

// DepartmentService is the name-keyed directory for departments
type DepartmentService struct {
	store DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(store DepartmentStore) *DepartmentService {
	return &DepartmentService{
		store: store,
	}
}

// FindByName looks up a department by its unique name
func (s *DepartmentService) FindByName(ctx context.Context, name string) (*models.Department, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: department name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.GetByName(ctx, name)
}

// ListAll retrieves all departments
func (s *DepartmentService) ListAll(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetOrCreate resolves the department with the given name, creating it on
// demand. Callers are expected to filter blank names before reaching here;
// the guard below is defensive.
func (s *DepartmentService) GetOrCreate(ctx context.Context, name string) (*models.Department, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: department name cannot be empty", apperrors.ErrValidationFailed)
	}

	department, err := s.store.GetOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error resolving department: %w", err)
	}
	return department, nil
}
