package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
	"github.com/eren/campuscore/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for attendance rows.
// The (student_id, date) pair is unique.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

func (r *AttendanceRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFromContext(ctx, r.db)
}

// GetByDate retrieves all attendance rows recorded for a date
func (r *AttendanceRepository) GetByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.date, a.status, s.name
		FROM attendance a
		JOIN students s ON s.id = a.student_id
		WHERE a.date = $1
		ORDER BY a.student_id
	`

	rows, err := r.q(ctx).Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// GetByStudentID retrieves all attendance rows for a student
func (r *AttendanceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.date, a.status, s.name
		FROM attendance a
		JOIN students s ON s.id = a.student_id
		WHERE a.student_id = $1
		ORDER BY a.date
	`

	rows, err := r.q(ctx).Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]*models.Attendance, error) {
	var records []*models.Attendance
	for rows.Next() {
		var record models.Attendance
		if err := rows.Scan(&record.ID, &record.StudentID, &record.Date, &record.Status, &record.StudentName); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Create inserts a new attendance row
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.q(ctx).QueryRow(ctx, query, record.StudentID, record.Date, record.Status).Scan(&record.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uk_attendance_student_date") {
			return apperrors.ErrAttendanceAlreadyExists
		}
		return fmt.Errorf("error creating attendance: %w", err)
	}

	return nil
}

// UpdateStatus overwrites the status of an existing attendance row
func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `UPDATE attendance SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating attendance: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// DeleteByStudentID removes every attendance row referencing a student
func (r *AttendanceRepository) DeleteByStudentID(ctx context.Context, studentID int64) error {
	_, err := r.q(ctx).Exec(ctx, `DELETE FROM attendance WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting attendance for student: %w", err)
	}
	return nil
}
