package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/db"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// FeeRepository handles database operations for fees
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

func (r *FeeRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFromContext(ctx, r.db)
}

const feeColumns = `
	f.id, f.student_id, f.amount, f.description, f.status, f.due_date, f.payment_date, f.transaction_id, s.name
`

func scanFee(row pgx.Row) (*models.Fee, error) {
	var fee models.Fee
	err := row.Scan(
		&fee.ID,
		&fee.StudentID,
		&fee.Amount,
		&fee.Description,
		&fee.Status,
		&fee.DueDate,
		&fee.PaymentDate,
		&fee.TransactionID,
		&fee.StudentName,
	)
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// GetByID retrieves a fee by ID
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	query := `
		SELECT ` + feeColumns + `
		FROM fees f
		JOIN students s ON s.id = f.student_id
		WHERE f.id = $1
	`

	fee, err := scanFee(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return fee, nil
}

// GetByStudentID retrieves all fees for a student
func (r *FeeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	query := `
		SELECT ` + feeColumns + `
		FROM fees f
		JOIN students s ON s.id = f.student_id
		WHERE f.student_id = $1
		ORDER BY f.id
	`

	rows, err := r.q(ctx).Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFees(rows)
}

// GetAll retrieves all fees
func (r *FeeRepository) GetAll(ctx context.Context) ([]*models.Fee, error) {
	query := `
		SELECT ` + feeColumns + `
		FROM fees f
		JOIN students s ON s.id = f.student_id
		ORDER BY f.id
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFees(rows)
}

func collectFees(rows pgx.Rows) ([]*models.Fee, error) {
	var fees []*models.Fee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// Create inserts a new fee row
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, amount, description, status, due_date, payment_date, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.q(ctx).QueryRow(ctx, query,
		fee.StudentID, fee.Amount, fee.Description, fee.Status, fee.DueDate, fee.PaymentDate, fee.TransactionID,
	).Scan(&fee.ID)
	if err != nil {
		return fmt.Errorf("error creating fee: %w", err)
	}

	return nil
}

// Update persists the payment state columns of an existing fee row
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	query := `
		UPDATE fees
		SET status = $1, payment_date = $2, transaction_id = $3
		WHERE id = $4
	`

	cmdTag, err := r.q(ctx).Exec(ctx, query, fee.Status, fee.PaymentDate, fee.TransactionID, fee.ID)
	if err != nil {
		return fmt.Errorf("error updating fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}
