package models

import "time"

// FeeStatus is the payment state of a fee. The only legal transition is
// PENDING to PAID.
type FeeStatus string

const (
	FeePending FeeStatus = "PENDING"
	FeePaid    FeeStatus = "PAID"
)

// Fee is a billable item owned by a student
type Fee struct {
	ID            int64      `json:"id"`
	StudentID     int64      `json:"studentId"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description"`
	Status        FeeStatus  `json:"status"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	TransactionID *string    `json:"transactionId,omitempty"`

	// StudentName is resolved on read for list views
	StudentName string `json:"studentName,omitempty"`
}
