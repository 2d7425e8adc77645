package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eren/campuscore/internal/pkg/apperrors"
)

func newTeacherServiceForTest() (*TeacherService, *fakeTeacherStore) {
	teachers := newFakeTeacherStore()
	svc := NewTeacherService(teachers, NewDepartmentService(newFakeDepartmentStore()), &fakeTx{})
	return svc, teachers
}

func TestTeacherService_Create_DefaultCredentialAndDepartment(t *testing.T) {
	svc, _ := newTeacherServiceForTest()

	teacher, err := svc.Create(context.Background(), CreateTeacherInput{
		Name:           "Noel Price",
		Email:          "noel@example.com",
		Designation:    "Assistant Professor",
		DepartmentName: "Mathematics",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultCredential, teacher.Password)
	require.NotNil(t, teacher.DepartmentName)
	assert.Equal(t, "Mathematics", *teacher.DepartmentName)
}

func TestTeacherService_Update_PreservesOmittedFields(t *testing.T) {
	svc, _ := newTeacherServiceForTest()

	created, err := svc.Create(context.Background(), CreateTeacherInput{
		Name:        "Noel Price",
		Email:       "noel@example.com",
		Designation: "Lecturer",
	})
	require.NoError(t, err)

	designation := "Professor"
	updated, err := svc.Update(context.Background(), created.ID, UpdateTeacherPatch{Designation: &designation})
	require.NoError(t, err)

	assert.Equal(t, "Professor", updated.Designation)
	assert.Equal(t, "Noel Price", updated.Name)
	assert.Equal(t, "noel@example.com", updated.Email)
}

func TestTeacherService_Delete(t *testing.T) {
	svc, teachers := newTeacherServiceForTest()

	created, err := svc.Create(context.Background(), CreateTeacherInput{Name: "Noel Price"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = teachers.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}
