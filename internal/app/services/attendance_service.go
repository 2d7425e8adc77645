package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// AttendanceStore is the storage contract the attendance ledger consumes
type AttendanceStore interface {
	GetByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Attendance, error)
	Create(ctx context.Context, record *models.Attendance) error
	UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) error
}

// AttendanceStudentResolver resolves student references for new ledger rows
type AttendanceStudentResolver interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// AttendanceService manages the one-row-per-(student, date) attendance ledger
type AttendanceService struct {
	store    AttendanceStore
	students AttendanceStudentResolver
	tx       db.TxManager
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(store AttendanceStore, students AttendanceStudentResolver, tx db.TxManager) *AttendanceService {
	return &AttendanceService{
		store:    store,
		students: students,
		tx:       tx,
	}
}

// GetByDate retrieves all attendance rows recorded for a date
func (s *AttendanceService) GetByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error) {
	records, err := s.store.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance by date: %w", err)
	}
	return records, nil
}

// GetByStudent retrieves all attendance rows for a student
func (s *AttendanceService) GetByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	records, err := s.store.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance by student: %w", err)
	}
	return records, nil
}

// UpsertBatch records the statuses for a date in one atomic batch. Existing
// rows for a (student, date) pair are overwritten in place; missing rows are
// created after resolving the student, and unknown student ids are skipped
// silently. The lookup-then-branch never produces two rows for the same pair;
// the storage-level unique constraint is the final guard against races.
func (s *AttendanceService) UpsertBatch(ctx context.Context, date time.Time, statuses map[int64]models.AttendanceStatus) error {
	for studentID, status := range statuses {
		if !status.IsValid() {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("invalid attendance status %q for student %d", status, studentID)).
				WithDetails(map[string]interface{}{"studentId": studentID, "status": string(status)})
		}
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.store.GetByDate(ctx, date)
		if err != nil {
			return fmt.Errorf("error loading attendance for date: %w", err)
		}

		byStudent := make(map[int64]*models.Attendance, len(existing))
		for _, record := range existing {
			byStudent[record.StudentID] = record
		}

		// Stable order keeps the write pattern deterministic
		studentIDs := make([]int64, 0, len(statuses))
		for studentID := range statuses {
			studentIDs = append(studentIDs, studentID)
		}
		sort.Slice(studentIDs, func(i, j int) bool { return studentIDs[i] < studentIDs[j] })

		for _, studentID := range studentIDs {
			status := statuses[studentID]

			if record, ok := byStudent[studentID]; ok {
				if err := s.store.UpdateStatus(ctx, record.ID, status); err != nil {
					return err
				}
				continue
			}

			exists, err := s.students.ExistsByID(ctx, studentID)
			if err != nil {
				return fmt.Errorf("error resolving student %d: %w", studentID, err)
			}
			if !exists {
				continue
			}

			record := &models.Attendance{
				StudentID: studentID,
				Date:      date,
				Status:    status,
			}
			if err := s.store.Create(ctx, record); err != nil {
				return err
			}
		}

		return nil
	})
}
