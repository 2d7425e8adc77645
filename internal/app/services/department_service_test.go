package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eren/campuscore/internal/pkg/apperrors"
)

func TestDepartmentService_GetOrCreate_Idempotent(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store)

	first, err := svc.GetOrCreate(context.Background(), "Physics")
	require.NoError(t, err)

	second, err := svc.GetOrCreate(context.Background(), "Physics")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.creates)
}

func TestDepartmentService_GetOrCreate_BlankName(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentStore())

	_, err := svc.GetOrCreate(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDepartmentService_FindByName(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store)

	_, err := svc.FindByName(context.Background(), "Chemistry")
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)

	created, err := svc.GetOrCreate(context.Background(), "Chemistry")
	require.NoError(t, err)

	found, err := svc.FindByName(context.Background(), "Chemistry")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestDepartmentService_ListAll(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store)

	for _, name := range []string{"Physics", "Mathematics", "History"} {
		_, err := svc.GetOrCreate(context.Background(), name)
		require.NoError(t, err)
	}

	departments, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, departments, 3)
}
