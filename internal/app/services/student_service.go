package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// DefaultCredential is assigned when a student or teacher is created without
// one. Hashing is the API layer's concern; this layer stores what it is given.
const DefaultCredential = "password"

// StudentStore is the storage contract the student registry consumes
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	UpdateGPA(ctx context.Context, id int64, gpa *float64) error
	Delete(ctx context.Context, id int64) error
}

// CreateStudentInput carries the validated primitive fields for a new student
type CreateStudentInput struct {
	Name           string
	Email          string
	Password       string
	DepartmentName string
	GPA            *float64
}

// UpdateStudentPatch carries optional fields for a partial update. Nil (or
// blank, for strings) fields leave the stored value untouched.
type UpdateStudentPatch struct {
	Name           *string
	Email          *string
	Password       *string
	DepartmentName *string
	GPA            *float64
}

// StudentService manages the student registry
type StudentService struct {
	store       StudentStore
	departments *DepartmentService
	cascade     *CascadeCoordinator
	tx          db.TxManager
}

// NewStudentService creates a new student service instance
func NewStudentService(store StudentStore, departments *DepartmentService, cascade *CascadeCoordinator, tx db.TxManager) *StudentService {
	return &StudentService{
		store:       store,
		departments: departments,
		cascade:     cascade,
		tx:          tx,
	}
}

// Create registers a new student. The department is resolved (or created) by
// name when one is supplied; an omitted credential gets the default value.
func (s *StudentService) Create(ctx context.Context, input CreateStudentInput) (*models.Student, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	password := input.Password
	if password == "" {
		password = DefaultCredential
	}

	student := &models.Student{
		Name:     input.Name,
		Email:    input.Email,
		Password: password,
		GPA:      input.GPA,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if strings.TrimSpace(input.DepartmentName) != "" {
			department, err := s.departments.GetOrCreate(ctx, input.DepartmentName)
			if err != nil {
				return err
			}
			student.DepartmentID = &department.ID
			student.DepartmentName = &department.Name
		}

		return s.store.Create(ctx, student)
	})
	if err != nil {
		return nil, err
	}

	return student, nil
}

// ListAll retrieves all students
func (s *StudentService) ListAll(ctx context.Context) ([]*models.Student, error) {
	students, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// ListByDepartment retrieves all students belonging to the named department
func (s *StudentService) ListByDepartment(ctx context.Context, departmentName string) ([]*models.Student, error) {
	students, err := s.store.GetByDepartmentName(ctx, departmentName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by department: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by ID
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.store.GetByID(ctx, id)
}

// Update applies a partial update: only supplied, non-blank fields overwrite
// the stored values; everything else is preserved.
func (s *StudentService) Update(ctx context.Context, id int64, patch UpdateStudentPatch) (*models.Student, error) {
	var updated *models.Student

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
		if patch.GPA != nil {
			existing.GPA = patch.GPA
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

// UpdateGPA sets the GPA field directly
func (s *StudentService) UpdateGPA(ctx context.Context, id int64, gpa *float64) (*models.Student, error) {
	if err := s.store.UpdateGPA(ctx, id, gpa); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// Delete removes a student together with every result and attendance row
// referencing it. The cascade and the root delete commit as one unit; partial
// completion is a consistency violation.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.cascade.OnStudentDeleted(ctx, id); err != nil {
			return err
		}
		return s.store.Delete(ctx, id)
	})
}
