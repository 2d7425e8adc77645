package services

import (
	"context"
	"sort"
	"time"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// fakeTx satisfies db.TxManager without a database; the callback runs inline.
type fakeTx struct {
	calls int
}

func (t *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// fakeDepartmentStore is an in-memory DepartmentStore
type fakeDepartmentStore struct {
	byName  map[string]*models.Department
	nextID  int64
	creates int
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{byName: make(map[string]*models.Department), nextID: 1}
}

func (s *fakeDepartmentStore) GetByName(ctx context.Context, name string) (*models.Department, error) {
	if d, ok := s.byName[name]; ok {
		return d, nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (s *fakeDepartmentStore) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	for _, d := range s.byName {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (s *fakeDepartmentStore) GetAll(ctx context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(s.byName))
	for _, d := range s.byName {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeDepartmentStore) GetOrCreate(ctx context.Context, name string) (*models.Department, error) {
	if d, ok := s.byName[name]; ok {
		return d, nil
	}
	d := &models.Department{ID: s.nextID, Name: name}
	s.nextID++
	s.creates++
	s.byName[name] = d
	return d, nil
}

// fakeStudentStore is an in-memory StudentStore. It also satisfies the
// resolver interfaces of the attendance, result and fee services and the
// auth service's student lookup.
type fakeStudentStore struct {
	byID   map[int64]*models.Student
	nextID int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{byID: make(map[int64]*models.Student), nextID: 1}
}

func (s *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	student.ID = s.nextID
	s.nextID++
	s.byID[student.ID] = student
	return nil
}

func (s *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if st, ok := s.byID[id]; ok {
		copied := *st
		return &copied, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, st := range s.byID {
		if st.Email == email {
			copied := *st
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(s.byID))
	for _, st := range s.byID {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStudentStore) GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Student, error) {
	var out []*models.Student
	for _, st := range s.byID {
		if st.DepartmentName != nil && *st.DepartmentName == departmentName {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStudentStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := s.byID[id]
	return ok, nil
}

func (s *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	if _, ok := s.byID[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	s.byID[student.ID] = &copied
	return nil
}

func (s *fakeStudentStore) UpdateGPA(ctx context.Context, id int64, gpa *float64) error {
	st, ok := s.byID[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	st.GPA = gpa
	return nil
}

func (s *fakeStudentStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.byID, id)
	return nil
}

// fakeTeacherStore is an in-memory TeacherStore that also serves the auth lookup
type fakeTeacherStore struct {
	byID   map[int64]*models.Teacher
	nextID int64
}

func newFakeTeacherStore() *fakeTeacherStore {
	return &fakeTeacherStore{byID: make(map[int64]*models.Teacher), nextID: 1}
}

func (s *fakeTeacherStore) Create(ctx context.Context, teacher *models.Teacher) error {
	teacher.ID = s.nextID
	s.nextID++
	s.byID[teacher.ID] = teacher
	return nil
}

func (s *fakeTeacherStore) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if t, ok := s.byID[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (s *fakeTeacherStore) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	for _, t := range s.byID {
		if t.Email == email {
			copied := *t
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (s *fakeTeacherStore) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	out := make([]*models.Teacher, 0, len(s.byID))
	for _, t := range s.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeTeacherStore) Update(ctx context.Context, teacher *models.Teacher) error {
	if _, ok := s.byID[teacher.ID]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	copied := *teacher
	s.byID[teacher.ID] = &copied
	return nil
}

func (s *fakeTeacherStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	delete(s.byID, id)
	return nil
}

// fakeSubjectStore is an in-memory SubjectStore enforcing (department, name)
// uniqueness the way the real constraint does
type fakeSubjectStore struct {
	byID   map[int64]*models.Subject
	nextID int64
}

func newFakeSubjectStore() *fakeSubjectStore {
	return &fakeSubjectStore{byID: make(map[int64]*models.Subject), nextID: 1}
}

func (s *fakeSubjectStore) Create(ctx context.Context, subject *models.Subject) error {
	for _, existing := range s.byID {
		if existing.Name == subject.Name && int64PtrEqual(existing.DepartmentID, subject.DepartmentID) {
			return apperrors.ErrSubjectAlreadyExists
		}
	}
	subject.ID = s.nextID
	s.nextID++
	s.byID[subject.ID] = subject
	return nil
}

func (s *fakeSubjectStore) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	if sub, ok := s.byID[id]; ok {
		copied := *sub
		return &copied, nil
	}
	return nil, apperrors.ErrSubjectNotFound
}

func (s *fakeSubjectStore) GetAll(ctx context.Context) ([]*models.Subject, error) {
	out := make([]*models.Subject, 0, len(s.byID))
	for _, sub := range s.byID {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeSubjectStore) GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Subject, error) {
	var out []*models.Subject
	for _, sub := range s.byID {
		if sub.DepartmentName != nil && *sub.DepartmentName == departmentName {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeSubjectStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := s.byID[id]
	return ok, nil
}

func (s *fakeSubjectStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return apperrors.ErrSubjectNotFound
	}
	delete(s.byID, id)
	return nil
}

// fakeAttendanceStore is an in-memory AttendanceStore keeping one row per
// (student, date). It also serves the cascade coordinator.
type fakeAttendanceStore struct {
	rows   []*models.Attendance
	nextID int64
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{nextID: 1}
}

func (s *fakeAttendanceStore) GetByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error) {
	var out []*models.Attendance
	for _, r := range s.rows {
		if r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeAttendanceStore) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	var out []*models.Attendance
	for _, r := range s.rows {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeAttendanceStore) Create(ctx context.Context, record *models.Attendance) error {
	for _, r := range s.rows {
		if r.StudentID == record.StudentID && r.Date.Equal(record.Date) {
			return apperrors.ErrAttendanceAlreadyExists
		}
	}
	record.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, record)
	return nil
}

func (s *fakeAttendanceStore) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) error {
	for _, r := range s.rows {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (s *fakeAttendanceStore) DeleteByStudentID(ctx context.Context, studentID int64) error {
	kept := s.rows[:0]
	for _, r := range s.rows {
		if r.StudentID != studentID {
			kept = append(kept, r)
		}
	}
	s.rows = kept
	return nil
}

// fakeResultStore is an in-memory ResultStore keeping one row per
// (student, subject). It also serves the cascade coordinator. Tests exercising
// the department join must point subjects at the fake subject store.
type fakeResultStore struct {
	rows     []*models.Result
	subjects *fakeSubjectStore
	nextID   int64
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{nextID: 1}
}

func (s *fakeResultStore) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error) {
	var out []*models.Result
	for _, r := range s.rows {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeResultStore) GetByDepartmentName(ctx context.Context, departmentName string) ([]*models.Result, error) {
	var out []*models.Result
	if s.subjects == nil {
		return out, nil
	}
	for _, r := range s.rows {
		subject, ok := s.subjects.byID[r.SubjectID]
		if !ok || subject.DepartmentName == nil || *subject.DepartmentName != departmentName {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeResultStore) GetByStudentAndSubject(ctx context.Context, studentID, subjectID int64) (*models.Result, error) {
	for _, r := range s.rows {
		if r.StudentID == studentID && r.SubjectID == subjectID {
			return r, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (s *fakeResultStore) Create(ctx context.Context, result *models.Result) error {
	for _, r := range s.rows {
		if r.StudentID == result.StudentID && r.SubjectID == result.SubjectID {
			return apperrors.ErrResultAlreadyExists
		}
	}
	result.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, result)
	return nil
}

func (s *fakeResultStore) UpdateMarks(ctx context.Context, id int64, marks float64) error {
	for _, r := range s.rows {
		if r.ID == id {
			r.Marks = marks
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (s *fakeResultStore) DeleteByStudentID(ctx context.Context, studentID int64) error {
	kept := s.rows[:0]
	for _, r := range s.rows {
		if r.StudentID != studentID {
			kept = append(kept, r)
		}
	}
	s.rows = kept
	return nil
}

func (s *fakeResultStore) DeleteBySubjectID(ctx context.Context, subjectID int64) error {
	kept := s.rows[:0]
	for _, r := range s.rows {
		if r.SubjectID != subjectID {
			kept = append(kept, r)
		}
	}
	s.rows = kept
	return nil
}

// fakeFeeStore is an in-memory FeeStore
type fakeFeeStore struct {
	byID   map[int64]*models.Fee
	nextID int64
}

func newFakeFeeStore() *fakeFeeStore {
	return &fakeFeeStore{byID: make(map[int64]*models.Fee), nextID: 1}
}

func (s *fakeFeeStore) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	if f, ok := s.byID[id]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, apperrors.ErrFeeNotFound
}

func (s *fakeFeeStore) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, f := range s.byID {
		if f.StudentID == studentID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeFeeStore) GetAll(ctx context.Context) ([]*models.Fee, error) {
	out := make([]*models.Fee, 0, len(s.byID))
	for _, f := range s.byID {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeFeeStore) Create(ctx context.Context, fee *models.Fee) error {
	fee.ID = s.nextID
	s.nextID++
	copied := *fee
	s.byID[fee.ID] = &copied
	return nil
}

func (s *fakeFeeStore) Update(ctx context.Context, fee *models.Fee) error {
	if _, ok := s.byID[fee.ID]; !ok {
		return apperrors.ErrFeeNotFound
	}
	copied := *fee
	s.byID[fee.ID] = &copied
	return nil
}

// fakeNoticeStore is an in-memory NoticeStore
type fakeNoticeStore struct {
	rows   []*models.Notice
	nextID int64
}

func newFakeNoticeStore() *fakeNoticeStore {
	return &fakeNoticeStore{nextID: 1}
}

func (s *fakeNoticeStore) GetAllOrderedByDateDesc(ctx context.Context) ([]*models.Notice, error) {
	out := make([]*models.Notice, len(s.rows))
	copy(out, s.rows)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *fakeNoticeStore) Create(ctx context.Context, notice *models.Notice) error {
	notice.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, notice)
	return nil
}

func (s *fakeNoticeStore) Delete(ctx context.Context, id int64) error {
	for i, n := range s.rows {
		if n.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNoticeNotFound
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
