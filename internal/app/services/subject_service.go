package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// SubjectStore is the storage contract the subject catalog consumes
type SubjectStore interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Subject, error)
	Delete(ctx context.Context, id int64) error
}

// SubjectService manages the per-department subject catalog
type SubjectService struct {
	store       SubjectStore
	departments *DepartmentService
	cascade     *CascadeCoordinator
	tx          db.TxManager
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(store SubjectStore, departments *DepartmentService, cascade *CascadeCoordinator, tx db.TxManager) *SubjectService {
	return &SubjectService{
		store:       store,
		departments: departments,
		cascade:     cascade,
		tx:          tx,
	}
}

// ListAll retrieves all subjects
func (s *SubjectService) ListAll(ctx context.Context) ([]*models.Subject, error) {
	subjects, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}

// ListByDepartment retrieves all subjects belonging to the named department
func (s *SubjectService) ListByDepartment(ctx context.Context, departmentName string) ([]*models.Subject, error) {
	subjects, err := s.store.GetByDepartmentName(ctx, departmentName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects by department: %w", err)
	}
	return subjects, nil
}

// Create adds a subject, resolving or creating the department when a name is
// supplied. A blank department name leaves the subject department-less.
// Violating the (department, name) uniqueness surfaces ErrSubjectAlreadyExists.
func (s *SubjectService) Create(ctx context.Context, departmentName, subjectName string) (*models.Subject, error) {
	if strings.TrimSpace(subjectName) == "" {
		return nil, fmt.Errorf("%w: subject name cannot be empty", apperrors.ErrValidationFailed)
	}

	subject := &models.Subject{Name: subjectName}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if strings.TrimSpace(departmentName) != "" {
			department, err := s.departments.GetOrCreate(ctx, departmentName)
			if err != nil {
				return err
			}
			subject.DepartmentID = &department.ID
			subject.DepartmentName = &department.Name
		}

		return s.store.Create(ctx, subject)
	})
	if err != nil {
		return nil, err
	}

	return subject, nil
}

// Delete removes a subject after cascading away its dependent result rows.
// The cascade and the root delete commit as one unit.
func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.cascade.OnSubjectDeleted(ctx, id); err != nil {
			return err
		}
		return s.store.Delete(ctx, id)
	})
}
