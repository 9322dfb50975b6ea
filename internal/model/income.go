package model

import (
	"time"
)

// Income holds the monthly budget for a user. Exactly one row per user,
// created with a zero budget at registration.
type Income struct {
	ID                string    `db:"id"`
	UserID            string    `db:"user_id"`
	BudgetAmountCents int64     `db:"budget_amount_cents"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
