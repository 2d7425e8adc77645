package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

func newSubjectServiceForTest() (*SubjectService, *fakeSubjectStore, *fakeResultStore, *fakeDepartmentStore) {
	subjects := newFakeSubjectStore()
	results := newFakeResultStore()
	departments := newFakeDepartmentStore()
	cascade := NewCascadeCoordinator(results, newFakeAttendanceStore())
	svc := NewSubjectService(subjects, NewDepartmentService(departments), cascade, &fakeTx{})
	return svc, subjects, results, departments
}

func TestSubjectService_Create_ResolvesDepartmentByName(t *testing.T) {
	svc, _, _, departments := newSubjectServiceForTest()

	subject, err := svc.Create(context.Background(), "Computer Science", "Algorithms")
	require.NoError(t, err)

	require.NotNil(t, subject.DepartmentID)
	require.NotNil(t, subject.DepartmentName)
	assert.Equal(t, "Computer Science", *subject.DepartmentName)
	assert.Equal(t, 1, departments.creates)

	// Second subject in the same department reuses the row
	_, err = svc.Create(context.Background(), "Computer Science", "Databases")
	require.NoError(t, err)
	assert.Equal(t, 1, departments.creates)
}

func TestSubjectService_Create_DuplicatePairRejected(t *testing.T) {
	svc, _, _, _ := newSubjectServiceForTest()

	_, err := svc.Create(context.Background(), "Mathematics", "Calculus")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "Mathematics", "Calculus")
	assert.ErrorIs(t, err, apperrors.ErrSubjectAlreadyExists)
}

func TestSubjectService_Create_SameNameDifferentDepartments(t *testing.T) {
	svc, subjects, _, _ := newSubjectServiceForTest()

	_, err := svc.Create(context.Background(), "Mathematics", "Statistics")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "Economics", "Statistics")
	require.NoError(t, err)

	all, err := subjects.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubjectService_Create_BlankNameRejected(t *testing.T) {
	svc, _, _, _ := newSubjectServiceForTest()

	_, err := svc.Create(context.Background(), "Mathematics", "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubjectService_Delete_CascadesResults(t *testing.T) {
	svc, subjects, results, _ := newSubjectServiceForTest()

	subject, err := svc.Create(context.Background(), "Physics", "Mechanics")
	require.NoError(t, err)

	require.NoError(t, results.Create(context.Background(), &models.Result{StudentID: 7, SubjectID: subject.ID, Marks: 88}))
	require.NoError(t, results.Create(context.Background(), &models.Result{StudentID: 9, SubjectID: subject.ID, Marks: 74.5}))

	require.NoError(t, svc.Delete(context.Background(), subject.ID))

	_, err = subjects.GetByID(context.Background(), subject.ID)
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
	assert.Empty(t, results.rows)
}

func TestSubjectService_Delete_NotFound(t *testing.T) {
	svc, _, _, _ := newSubjectServiceForTest()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
}
