package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// TeacherStore is the storage contract the teacher registry consumes
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// CreateTeacherInput carries the validated primitive fields for a new teacher
type CreateTeacherInput struct {
	Name           string
	Email          string
	Password       string
	Designation    string
	DepartmentName string
}

// UpdateTeacherPatch carries optional fields for a partial update. Nil (or
// blank, for strings) fields leave the stored value untouched.
type UpdateTeacherPatch struct {
	Name           *string
	Email          *string
	Password       *string
	Designation    *string
	DepartmentName *string
}

// TeacherService manages the teacher registry
type TeacherService struct {
	store       TeacherStore
	departments *DepartmentService
	tx          db.TxManager
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(store TeacherStore, departments *DepartmentService, tx db.TxManager) *TeacherService {
	return &TeacherService{
		store:       store,
		departments: departments,
		tx:          tx,
	}
}

// Create registers a new teacher. The department is resolved (or created) by
// name when one is supplied; an omitted credential gets the default value.
func (s *TeacherService) Create(ctx context.Context, input CreateTeacherInput) (*models.Teacher, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	password := input.Password
	if password == "" {
		password = DefaultCredential
	}

	teacher := &models.Teacher{
		Name:        input.Name,
		Email:       input.Email,
		Password:    password,
		Designation: input.Designation,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if strings.TrimSpace(input.DepartmentName) != "" {
			department, err := s.departments.GetOrCreate(ctx, input.DepartmentName)
			if err != nil {
				return err
			}
			teacher.DepartmentID = &department.ID
			teacher.DepartmentName = &department.Name
		}

		return s.store.Create(ctx, teacher)
	})
	if err != nil {
		return nil, err
	}

	return teacher, nil
}

// ListAll retrieves all teachers
func (s *TeacherService) ListAll(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

// GetByID retrieves a teacher by ID
func (s *TeacherService) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.store.GetByID(ctx, id)
}

// Update applies a partial update: only supplied, non-blank fields overwrite
// the stored values; everything else is preserved.
func (s *TeacherService) Update(ctx context.Context, id int64, patch UpdateTeacherPatch) (*models.Teacher, error) {
	var updated *models.Teacher

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.store.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
			existing.Name = *patch.Name
		}
		if patch.Email != nil && strings.TrimSpace(*patch.Email) != "" {
			existing.Email = *patch.Email
		}
		if patch.Password != nil && *patch.Password != "" {
			existing.Password = *patch.Password
		}
		if patch.Designation != nil && strings.TrimSpace(*patch.Designation) != "" {
			existing.Designation = *patch.Designation
		}
		if patch.DepartmentName != nil && strings.TrimSpace(*patch.DepartmentName) != "" {
			department, err := s.departments.GetOrCreate(ctx, *patch.DepartmentName)
			if err != nil {
				return err
			}
			existing.DepartmentID = &department.ID
			existing.DepartmentName = &department.Name
		}

		if err := s.store.Update(ctx, existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a teacher. Teachers own no downstream ledger rows, so there
// is nothing to cascade.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
