package model

import (
	"time"
)

// Expense amounts are stored as integer cents. ExpenseDate is a calendar
// date in YYYY-MM-DD form, kept as text so it compares and filters the same
// under both database drivers.
type Expense struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	CategoryID  *string   `db:"category_id"`
	AmountCents int64     `db:"amount_cents"`
	Description string    `db:"description"`
	ExpenseDate string    `db:"expense_date"`
	Location    string    `db:"location"`
	ReceiptPath *string   `db:"receipt_path"`
	CreatedAt   time.Time `db:"created_at"`

	// Joined from categories for display
	CategoryName *string `db:"category_name"`
}
