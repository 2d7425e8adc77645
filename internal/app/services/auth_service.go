package services

import (
	"context"
	"errors"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
	pkgAuth "github.com/eren/campuscore/internal/pkg/auth"
)

// Account roles issued at login
const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
)

// AuthStudentStore looks up student accounts by email
type AuthStudentStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// AuthTeacherStore looks up teacher accounts by email
type AuthTeacherStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
}

// AdminAccount is the configured administrator identity
type AdminAccount struct {
	Email        string
	PasswordHash string
}

// LoginResult is the successful outcome of a credential check
type LoginResult struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// AuthService authenticates accounts against their stored bcrypt hashes.
// Credentials are hashed at rest; plaintext comparison is deliberately not
// supported.
type AuthService struct {
	students AuthStudentStore
	teachers AuthTeacherStore
	jwt      *pkgAuth.JWTService
	admin    AdminAccount
}

// NewAuthService creates a new auth service instance
func NewAuthService(students AuthStudentStore, teachers AuthTeacherStore, jwt *pkgAuth.JWTService, admin AdminAccount) *AuthService {
	return &AuthService{
		students: students,
		teachers: teachers,
		jwt:      jwt,
		admin:    admin,
	}
}

// Login checks the credentials against the admin identity, then students,
// then teachers, and issues a signed token for the first match.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if s.admin.Email != "" && email == s.admin.Email {
		if pkgAuth.CheckPassword(s.admin.PasswordHash, password) {
			return s.issue(0, "Admin", RoleAdmin)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	student, err := s.students.GetByEmail(ctx, email)
	if err == nil {
		if pkgAuth.CheckPassword(student.Password, password) {
			return s.issue(student.ID, student.Name, RoleStudent)
		}
		return nil, apperrors.ErrInvalidCredentials
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	teacher, err := s.teachers.GetByEmail(ctx, email)
	if err == nil {
		if pkgAuth.CheckPassword(teacher.Password, password) {
			return s.issue(teacher.ID, teacher.Name, RoleTeacher)
		}
		return nil, apperrors.ErrInvalidCredentials
	}
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		return nil, err
	}

	return nil, apperrors.ErrInvalidCredentials
}

func (s *AuthService) issue(id int64, name, role string) (*LoginResult, error) {
	token, expiresIn, err := s.jwt.GenerateToken(id, name, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		ID:        id,
		Name:      name,
		Role:      role,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
