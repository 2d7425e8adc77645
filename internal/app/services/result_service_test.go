package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

func newResultServiceForTest(t *testing.T) (*ResultService, *fakeResultStore, int64, int64) {
	t.Helper()
	store := newFakeResultStore()
	students := newFakeStudentStore()
	subjects := newFakeSubjectStore()

	student := &models.Student{Name: "Alice"}
	require.NoError(t, students.Create(context.Background(), student))
	subject := &models.Subject{Name: "Algorithms"}
	require.NoError(t, subjects.Create(context.Background(), subject))

	svc := NewResultService(store, students, subjects, &fakeTx{})
	return svc, store, student.ID, subject.ID
}

func TestResultService_Upsert_InsertThenOverwrite(t *testing.T) {
	svc, store, studentID, subjectID := newResultServiceForTest(t)

	first, err := svc.Upsert(context.Background(), studentID, subjectID, 72)
	require.NoError(t, err)
	assert.Equal(t, 72.0, first.Marks)
	require.Len(t, store.rows, 1)

	second, err := svc.Upsert(context.Background(), studentID, subjectID, 91)
	require.NoError(t, err)
	assert.Equal(t, 91.0, second.Marks)
	assert.Equal(t, first.ID, second.ID)
	require.Len(t, store.rows, 1)
}

func TestResultService_Upsert_InvalidReference(t *testing.T) {
	svc, _, studentID, subjectID := newResultServiceForTest(t)

	_, err := svc.Upsert(context.Background(), 999, subjectID, 50)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)

	_, err = svc.Upsert(context.Background(), studentID, 999, 50)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestResultService_Upsert_MarksRange(t *testing.T) {
	svc, store, studentID, subjectID := newResultServiceForTest(t)

	for _, marks := range []float64{-0.5, 100.5} {
		_, err := svc.Upsert(context.Background(), studentID, subjectID, marks)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
	assert.Empty(t, store.rows)

	// Boundary values are accepted
	_, err := svc.Upsert(context.Background(), studentID, subjectID, 0)
	require.NoError(t, err)
	_, err = svc.Upsert(context.Background(), studentID, subjectID, 100)
	require.NoError(t, err)
}

func TestResultService_GetByDepartment(t *testing.T) {
	store := newFakeResultStore()
	students := newFakeStudentStore()
	subjects := newFakeSubjectStore()
	store.subjects = subjects

	departmentSvc := NewDepartmentService(newFakeDepartmentStore())
	cascade := NewCascadeCoordinator(store, newFakeAttendanceStore())
	subjectSvc := NewSubjectService(subjects, departmentSvc, cascade, &fakeTx{})

	algorithms, err := subjectSvc.Create(context.Background(), "Computer Science", "Algorithms")
	require.NoError(t, err)
	calculus, err := subjectSvc.Create(context.Background(), "Mathematics", "Calculus")
	require.NoError(t, err)

	student := &models.Student{Name: "Alice"}
	require.NoError(t, students.Create(context.Background(), student))

	svc := NewResultService(store, students, subjects, &fakeTx{})
	_, err = svc.Upsert(context.Background(), student.ID, algorithms.ID, 90)
	require.NoError(t, err)
	_, err = svc.Upsert(context.Background(), student.ID, calculus.ID, 70)
	require.NoError(t, err)

	results, err := svc.GetByDepartment(context.Background(), "Computer Science")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, algorithms.ID, results[0].SubjectID)
	assert.Equal(t, 90.0, results[0].Marks)

	empty, err := svc.GetByDepartment(context.Background(), "Physics")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestResultService_GetByStudent(t *testing.T) {
	svc, _, studentID, subjectID := newResultServiceForTest(t)

	_, err := svc.Upsert(context.Background(), studentID, subjectID, 84)
	require.NoError(t, err)

	results, err := svc.GetByStudent(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 84.0, results[0].Marks)
}
