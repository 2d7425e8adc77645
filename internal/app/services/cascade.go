package services

import (
	"context"
	"fmt"
)

// CascadeResultStore is the slice of result storage the coordinator needs
type CascadeResultStore interface {
	DeleteByStudentID(ctx context.Context, studentID int64) error
	DeleteBySubjectID(ctx context.Context, subjectID int64) error
}

// CascadeAttendanceStore is the slice of attendance storage the coordinator needs
type CascadeAttendanceStore interface {
	DeleteByStudentID(ctx context.Context, studentID int64) error
}

// CascadeCoordinator removes dependent ledger rows before a root Student or
// Subject row is deleted. It holds no state of its own; callers must invoke it
// inside the same transaction that removes the root row, so that either every
// row disappears or none do.
type CascadeCoordinator struct {
	results    CascadeResultStore
	attendance CascadeAttendanceStore
}

// NewCascadeCoordinator creates a new cascade coordinator
func NewCascadeCoordinator(results CascadeResultStore, attendance CascadeAttendanceStore) *CascadeCoordinator {
	return &CascadeCoordinator{
		results:    results,
		attendance: attendance,
	}
}

// OnStudentDeleted removes all result and attendance rows referencing the student.
// Must complete before the student row itself is removed.
func (c *CascadeCoordinator) OnStudentDeleted(ctx context.Context, studentID int64) error {
	if err := c.results.DeleteByStudentID(ctx, studentID); err != nil {
		return fmt.Errorf("cascade: deleting results for student %d: %w", studentID, err)
	}
	if err := c.attendance.DeleteByStudentID(ctx, studentID); err != nil {
		return fmt.Errorf("cascade: deleting attendance for student %d: %w", studentID, err)
	}
	return nil
}

// OnSubjectDeleted removes all result rows referencing the subject.
// Must complete before the subject row itself is removed.
func (c *CascadeCoordinator) OnSubjectDeleted(ctx context.Context, subjectID int64) error {
	if err := c.results.DeleteBySubjectID(ctx, subjectID); err != nil {
		return fmt.Errorf("cascade: deleting results for subject %d: %w", subjectID, err)
	}
	return nil
}
