package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// Defaults for the bootstrap fee synthesized on first read
const (
	defaultFeeAmount      = 50000.0
	defaultFeeDescription = "Semester 1 Tuition Fee"
	defaultFeeDueDays     = 30
)

// FeeStore is the storage contract the fee ledger consumes
type FeeStore interface {
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Fee, error)
	GetAll(ctx context.Context) ([]*models.Fee, error)
	Create(ctx context.Context, fee *models.Fee) error
	Update(ctx context.Context, fee *models.Fee) error
}

// FeeStudentResolver resolves the student a synthesized fee is attached to
type FeeStudentResolver interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// FeeService manages per-student billable items with a one-way
// PENDING -> PAID transition
type FeeService struct {
	store    FeeStore
	students FeeStudentResolver
	tx       db.TxManager

	now func() time.Time
}

// NewFeeService creates a new fee service instance
func NewFeeService(store FeeStore, students FeeStudentResolver, tx db.TxManager) *FeeService {
	return &FeeService{
		store:    store,
		students: students,
		tx:       tx,
		now:      time.Now,
	}
}

// ListByStudent retrieves a student's fees. A student with no fee rows gets a
// single default tuition fee synthesized and persisted before the list is
// returned; a bootstrap convenience, not a general invariant.
func (s *FeeService) ListByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	var fees []*models.Fee

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		fees, err = s.store.GetByStudentID(ctx, studentID)
		if err != nil {
			return fmt.Errorf("error retrieving fees: %w", err)
		}
		if len(fees) > 0 {
			return nil
		}

		student, err := s.students.GetByID(ctx, studentID)
		if err != nil {
			return err
		}

		dueDate := s.now().AddDate(0, 0, defaultFeeDueDays)
		fee := &models.Fee{
			StudentID:   student.ID,
			Amount:      defaultFeeAmount,
			Description: defaultFeeDescription,
			Status:      models.FeePending,
			DueDate:     &dueDate,
			StudentName: student.Name,
		}
		if err := s.store.Create(ctx, fee); err != nil {
			return err
		}

		fees = []*models.Fee{fee}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fees, nil
}

// ListAll retrieves all fees
func (s *FeeService) ListAll(ctx context.Context) ([]*models.Fee, error) {
	fees, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving fees: %w", err)
	}
	return fees, nil
}

// Pay transitions a fee from PENDING to PAID, stamping the payment date and a
// fresh opaque transaction reference. Paying an already-paid fee fails with
// ErrFeeAlreadyPaid; there is no un-pay.
func (s *FeeService) Pay(ctx context.Context, feeID int64) (*models.Fee, error) {
	var paid *models.Fee

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		fee, err := s.store.GetByID(ctx, feeID)
		if err != nil {
			return err
		}

		if fee.Status == models.FeePaid {
			return apperrors.ErrFeeAlreadyPaid
		}

		paymentDate := s.now()
		reference := newTransactionReference()

		fee.Status = models.FeePaid
		fee.PaymentDate = &paymentDate
		fee.TransactionID = &reference

		if err := s.store.Update(ctx, fee); err != nil {
			return err
		}

		paid = fee
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paid, nil
}

// newTransactionReference generates an opaque payment reference. Uniqueness
// across fees is a soft expectation, not a stored constraint.
func newTransactionReference() string {
	return "TXN-" + strings.ToUpper(uuid.New().String()[:8])
}
