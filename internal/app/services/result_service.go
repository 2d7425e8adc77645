package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// ResultStore is the storage contract the result ledger consumes
type ResultStore interface {
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error)
	GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Result, error)
	GetByStudentAndSubject(ctx context.Context, studentID, subjectID int64) (*models.Result, error)
	Create(ctx context.Context, result *models.Result) error
	UpdateMarks(ctx context.Context, id int64, marks float64) error
}

// ResultStudentResolver checks student references
type ResultStudentResolver interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// ResultSubjectResolver checks subject references
type ResultSubjectResolver interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// ResultService manages the one-mark-per-(student, subject) result ledger
type ResultService struct {
	store    ResultStore
	students ResultStudentResolver
	subjects ResultSubjectResolver
	tx       db.TxManager
}

// NewResultService creates a new result service instance
func NewResultService(store ResultStore, students ResultStudentResolver, subjects ResultSubjectResolver, tx db.TxManager) *ResultService {
	return &ResultService{
		store:    store,
		students: students,
		subjects: subjects,
		tx:       tx,
	}
}

// GetByStudent retrieves all results for a student
func (s *ResultService) GetByStudent(ctx context.Context, studentID int64) ([]*models.Result, error) {
	results, err := s.store.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving results by student: %w", err)
	}
	return results, nil
}

// GetByDepartment retrieves all results whose subject belongs to the named
// department (joined through Subject -> Department)
func (s *ResultService) GetByDepartment(ctx context.Context, departmentName string) ([]*models.Result, error) {
	results, err := s.store.GetByDepartmentName(ctx, departmentName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving results by department: %w", err)
	}
	return results, nil
}

// Upsert records marks for a (student, subject) pair: an existing row is
// overwritten in place, otherwise a new one is created. Marks outside [0,100]
// are rejected; an unresolvable student or subject id fails with
// ErrInvalidReference.
func (s *ResultService) Upsert(ctx context.Context, studentID, subjectID int64, marks float64) (*models.Result, error) {
	if marks < 0 || marks > 100 {
		return nil, apperrors.NewValidationError("marks must be between 0 and 100")
	}

	var saved *models.Result

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		studentExists, err := s.students.ExistsByID(ctx, studentID)
		if err != nil {
			return fmt.Errorf("error resolving student %d: %w", studentID, err)
		}
		subjectExists, err := s.subjects.ExistsByID(ctx, subjectID)
		if err != nil {
			return fmt.Errorf("error resolving subject %d: %w", subjectID, err)
		}
		if !studentExists || !subjectExists {
			return apperrors.NewCustomError(apperrors.ErrInvalidReference,
				fmt.Sprintf("student %d or subject %d does not resolve", studentID, subjectID)).
				WithDetails(map[string]interface{}{"studentId": studentID, "subjectId": subjectID})
		}

		existing, err := s.store.GetByStudentAndSubject(ctx, studentID, subjectID)
		if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}

		if existing != nil {
			if err := s.store.UpdateMarks(ctx, existing.ID, marks); err != nil {
				return err
			}
			existing.Marks = marks
			saved = existing
			return nil
		}

		result := &models.Result{
			StudentID: studentID,
			SubjectID: subjectID,
			Marks:     marks,
		}
		if err := s.store.Create(ctx, result); err != nil {
			return err
		}
		saved = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}
