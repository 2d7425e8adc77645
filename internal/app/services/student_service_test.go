package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

func newStudentServiceForTest() (*StudentService, *fakeStudentStore, *fakeResultStore, *fakeAttendanceStore) {
	students := newFakeStudentStore()
	results := newFakeResultStore()
	attendance := newFakeAttendanceStore()
	cascade := NewCascadeCoordinator(results, attendance)
	svc := NewStudentService(students, NewDepartmentService(newFakeDepartmentStore()), cascade, &fakeTx{})
	return svc, students, results, attendance
}

func TestStudentService_Create_DefaultCredential(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	student, err := svc.Create(context.Background(), CreateStudentInput{
		Name:  "Ava Clarke",
		Email: "ava@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultCredential, student.Password)
}

func TestStudentService_Create_ResolvesDepartment(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	student, err := svc.Create(context.Background(), CreateStudentInput{
		Name:           "Ava Clarke",
		Email:          "ava@example.com",
		DepartmentName: "Computer Science",
	})
	require.NoError(t, err)
	require.NotNil(t, student.DepartmentName)
	assert.Equal(t, "Computer Science", *student.DepartmentName)
}

func TestStudentService_Create_BlankNameRejected(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	_, err := svc.Create(context.Background(), CreateStudentInput{Name: " "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentService_Update_PreservesOmittedFields(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	gpa := 3.4
	created, err := svc.Create(context.Background(), CreateStudentInput{
		Name:           "Ava Clarke",
		Email:          "ava@example.com",
		Password:       "secret-hash",
		DepartmentName: "Physics",
		GPA:            &gpa,
	})
	require.NoError(t, err)

	newName := "Ava C. Clarke"
	updated, err := svc.Update(context.Background(), created.ID, UpdateStudentPatch{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Ava C. Clarke", updated.Name)
	assert.Equal(t, "ava@example.com", updated.Email)
	assert.Equal(t, "secret-hash", updated.Password)
	require.NotNil(t, updated.GPA)
	assert.Equal(t, 3.4, *updated.GPA)
	require.NotNil(t, updated.DepartmentName)
	assert.Equal(t, "Physics", *updated.DepartmentName)
}

func TestStudentService_Update_MovesDepartment(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	created, err := svc.Create(context.Background(), CreateStudentInput{
		Name:           "Ava Clarke",
		DepartmentName: "Physics",
	})
	require.NoError(t, err)

	dept := "Mathematics"
	updated, err := svc.Update(context.Background(), created.ID, UpdateStudentPatch{DepartmentName: &dept})
	require.NoError(t, err)

	require.NotNil(t, updated.DepartmentName)
	assert.Equal(t, "Mathematics", *updated.DepartmentName)
}

func TestStudentService_Update_NotFound(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	name := "Nobody"
	_, err := svc.Update(context.Background(), 99, UpdateStudentPatch{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_UpdateGPA(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	created, err := svc.Create(context.Background(), CreateStudentInput{Name: "Ava Clarke"})
	require.NoError(t, err)

	gpa := 3.9
	updated, err := svc.UpdateGPA(context.Background(), created.ID, &gpa)
	require.NoError(t, err)
	require.NotNil(t, updated.GPA)
	assert.Equal(t, 3.9, *updated.GPA)

	_, err = svc.UpdateGPA(context.Background(), 123, &gpa)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_Delete_CascadesLedgers(t *testing.T) {
	svc, students, results, attendance := newStudentServiceForTest()

	created, err := svc.Create(context.Background(), CreateStudentInput{Name: "Ava Clarke"})
	require.NoError(t, err)

	other, err := svc.Create(context.Background(), CreateStudentInput{Name: "Noel Price"})
	require.NoError(t, err)

	require.NoError(t, results.Create(context.Background(), &models.Result{StudentID: created.ID, SubjectID: 1, Marks: 90}))
	require.NoError(t, results.Create(context.Background(), &models.Result{StudentID: other.ID, SubjectID: 1, Marks: 80}))
	require.NoError(t, attendance.Create(context.Background(), &models.Attendance{StudentID: created.ID, Status: models.AttendancePresent}))

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = students.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	// Only the deleted student's rows are gone
	require.Len(t, results.rows, 1)
	assert.Equal(t, other.ID, results.rows[0].StudentID)
	assert.Empty(t, attendance.rows)
}

func TestStudentService_Delete_NotFound(t *testing.T) {
	svc, _, _, _ := newStudentServiceForTest()

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
