package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	SubjectRepository    *SubjectRepository
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
	AttendanceRepository *AttendanceRepository
	ResultRepository     *ResultRepository
	FeeRepository        *FeeRepository
	NoticeRepository     *NoticeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		ResultRepository:     NewResultRepository(db),
		FeeRepository:        NewFeeRepository(db),
		NoticeRepository:     NewNoticeRepository(db),
	}
}
