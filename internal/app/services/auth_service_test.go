package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
	pkgAuth "github.com/eren/campuscore/internal/pkg/auth"
)

func newAuthServiceForTest(t *testing.T) (*AuthService, *fakeStudentStore, *fakeTeacherStore) {
	t.Helper()
	students := newFakeStudentStore()
	teachers := newFakeTeacherStore()

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	adminHash, err := pkgAuth.HashPassword("admin-secret")
	require.NoError(t, err)

	svc := NewAuthService(students, teachers, jwtService, AdminAccount{
		Email:        "Admin",
		PasswordHash: adminHash,
	})
	return svc, students, teachers
}

func TestAuthService_Login_Admin(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	result, err := svc.Login(context.Background(), "Admin", "admin-secret")
	require.NoError(t, err)

	assert.Equal(t, RoleAdmin, result.Role)
	assert.NotEmpty(t, result.Token)
	assert.Positive(t, result.ExpiresIn)

	_, err = svc.Login(context.Background(), "Admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_Student(t *testing.T) {
	svc, students, _ := newAuthServiceForTest(t)

	hash, err := pkgAuth.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, students.Create(context.Background(), &models.Student{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: hash,
	}))

	result, err := svc.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, result.Role)
	assert.Equal(t, "Alice", result.Name)

	_, err = svc.Login(context.Background(), "alice@example.com", "nope")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_Teacher(t *testing.T) {
	svc, _, teachers := newAuthServiceForTest(t)

	hash, err := pkgAuth.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, teachers.Create(context.Background(), &models.Teacher{
		Name:     "Noel",
		Email:    "noel@example.com",
		Password: hash,
	}))

	result, err := svc.Login(context.Background(), "noel@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, result.Role)
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
