package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spendview/spendview/internal/model"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

const (
	ExpenseSortAmountAsc  = "asc"
	ExpenseSortAmountDesc = "desc"
)

// ExpenseFilter narrows an expense listing. Zero values mean "no filter".
type ExpenseFilter struct {
	Year         int
	Month        int    // 1-12
	CategoryName string // case-insensitive
	Sort         string // ExpenseSortAmountAsc or ExpenseSortAmountDesc
}

// DateAmount is one (expense_date, amount) pair used by the monthly summary.
type DateAmount struct {
	ExpenseDate string `db:"expense_date"`
	AmountCents int64  `db:"amount_cents"`
}

// CategoryTotal is one per-category aggregate row.
type CategoryTotal struct {
	Name       string `db:"name"`
	TotalCents int64  `db:"total_cents"`
}

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	ByID(id string) (*model.Expense, error)
	ForUser(userID string, filter ExpenseFilter) ([]*model.Expense, error)
	Update(expense *model.Expense) error
	UpdateReceipt(id string, receiptPath *string) error
	Delete(id string) error
	AmountsForYear(userID string, year int) ([]DateAmount, error)
	CategoryTotals(userID string) ([]CategoryTotal, error)
}

type expenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *model.Expense) error {
	query := `INSERT INTO expenses (id, user_id, category_id, amount_cents, description, expense_date, location, receipt_path, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		expense.ID,
		expense.UserID,
		expense.CategoryID,
		expense.AmountCents,
		expense.Description,
		expense.ExpenseDate,
		expense.Location,
		expense.ReceiptPath,
		expense.CreatedAt,
	)

	return err
}

func (r *expenseRepository) ByID(id string) (*model.Expense, error) {
	expense := &model.Expense{}
	query := `SELECT e.*, c.name AS category_name
	          FROM expenses e LEFT JOIN categories c ON c.id = e.category_id
	          WHERE e.id = $1`

	err := r.db.Get(expense, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrExpenseNotFound
	}

	return expense, err
}

func (r *expenseRepository) ForUser(userID string, filter ExpenseFilter) ([]*model.Expense, error) {
	query := `SELECT e.*, c.name AS category_name
	          FROM expenses e LEFT JOIN categories c ON c.id = e.category_id
	          WHERE e.user_id = $1`
	args := []any{userID}

	// expense_date is YYYY-MM-DD text, so year and month filters are
	// substring matches that behave identically on SQLite and PostgreSQL.
	if filter.Year > 0 {
		args = append(args, fmt.Sprintf("%04d", filter.Year))
		query += fmt.Sprintf(" AND substr(e.expense_date, 1, 4) = $%d", len(args))
	}
	if filter.Month >= 1 && filter.Month <= 12 {
		args = append(args, fmt.Sprintf("%02d", filter.Month))
		query += fmt.Sprintf(" AND substr(e.expense_date, 6, 2) = $%d", len(args))
	}
	if filter.CategoryName != "" {
		args = append(args, filter.CategoryName)
		query += fmt.Sprintf(" AND LOWER(c.name) = LOWER($%d)", len(args))
	}

	switch filter.Sort {
	case ExpenseSortAmountAsc:
		query += " ORDER BY e.amount_cents ASC"
	case ExpenseSortAmountDesc:
		query += " ORDER BY e.amount_cents DESC"
	default:
		query += " ORDER BY e.expense_date DESC, e.created_at DESC"
	}

	var expenses []*model.Expense
	err := r.db.Select(&expenses, query, args...)
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *expenseRepository) Update(expense *model.Expense) error {
	query := `UPDATE expenses
	          SET category_id = $1, amount_cents = $2, description = $3, expense_date = $4, location = $5
	          WHERE id = $6`

	result, err := r.db.Exec(query,
		expense.CategoryID,
		expense.AmountCents,
		expense.Description,
		expense.ExpenseDate,
		expense.Location,
		expense.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) UpdateReceipt(id string, receiptPath *string) error {
	query := `UPDATE expenses SET receipt_path = $1 WHERE id = $2`

	result, err := r.db.Exec(query, receiptPath, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) Delete(id string) error {
	query := `DELETE FROM expenses WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// AmountsForYear returns the raw (date, amount) rows for one calendar year.
// The per-month fold happens in the summary service, keeping this query
// free of dialect-specific date functions.
func (r *expenseRepository) AmountsForYear(userID string, year int) ([]DateAmount, error) {
	var rows []DateAmount
	query := `SELECT expense_date, amount_cents FROM expenses
	          WHERE user_id = $1 AND expense_date >= $2 AND expense_date <= $3`

	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)

	err := r.db.Select(&rows, query, userID, from, to)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// CategoryTotals groups the user's expenses by category name, largest total
// first. Uncategorized expenses (category deleted) group under a fixed label
// so every row still counts somewhere.
func (r *expenseRepository) CategoryTotals(userID string) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	query := `SELECT COALESCE(c.name, 'Uncategorized') AS name, SUM(e.amount_cents) AS total_cents
	          FROM expenses e LEFT JOIN categories c ON c.id = e.category_id
	          WHERE e.user_id = $1
	          GROUP BY COALESCE(c.name, 'Uncategorized')
	          ORDER BY total_cents DESC, name ASC`

	err := r.db.Select(&totals, query, userID)
	if err != nil {
		return nil, err
	}

	return totals, nil
}
