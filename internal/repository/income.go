package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spendview/spendview/internal/model"
)

var (
	ErrIncomeNotFound = errors.New("income not found")
)

type IncomeRepository interface {
	Create(income *model.Income) error
	ByUserID(userID string) (*model.Income, error)
	UpdateBudget(userID string, budgetAmountCents int64) error
}

type incomeRepository struct {
	db *sqlx.DB
}

func NewIncomeRepository(db *sqlx.DB) IncomeRepository {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) Create(income *model.Income) error {
	query := `INSERT INTO incomes (id, user_id, budget_amount_cents, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		income.ID,
		income.UserID,
		income.BudgetAmountCents,
		income.CreatedAt,
		income.UpdatedAt,
	)

	return err
}

func (r *incomeRepository) ByUserID(userID string) (*model.Income, error) {
	income := &model.Income{}
	query := `SELECT * FROM incomes WHERE user_id = $1`

	err := r.db.Get(income, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrIncomeNotFound
	}

	return income, err
}

func (r *incomeRepository) UpdateBudget(userID string, budgetAmountCents int64) error {
	query := `UPDATE incomes SET budget_amount_cents = $1, updated_at = $2 WHERE user_id = $3`

	result, err := r.db.Exec(query, budgetAmountCents, time.Now(), userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrIncomeNotFound
	}

	return nil
}
