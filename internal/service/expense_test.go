package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spendview/spendview/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpense(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	expense, err := env.expenses.Create(user.ID, "food", ExpenseInput{
		Amount:      "12.50",
		Description: "lunch",
		ExpenseDate: "2025-04-02",
		Location:    "downtown",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1250), expense.AmountCents)
	require.NotNil(t, expense.CategoryName)
	// Category names resolve case-insensitively
	assert.Equal(t, "Food", *expense.CategoryName)

	reloaded, err := env.expenseRepo.ByID(expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-02", reloaded.ExpenseDate)
	assert.Equal(t, "lunch", reloaded.Description)
}

func TestCreateExpenseRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	_, err := env.expenses.Create(user.ID, "Food", ExpenseInput{Amount: "0", ExpenseDate: "2025-04-02"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = env.expenses.Create(user.ID, "Food", ExpenseInput{Amount: "-3.00", ExpenseDate: "2025-04-02"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = env.expenses.Create(user.ID, "Food", ExpenseInput{Amount: "5.00", ExpenseDate: "02/04/2025"})
	assert.True(t, IsValidation(err))

	_, err = env.expenses.Create(user.ID, "Gambling", ExpenseInput{Amount: "5.00", ExpenseDate: "2025-04-02"})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestUpdateExpenseOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	expense := env.createExpense(t, alice.ID, "2025-04-02", "12.50", nil)

	_, err := env.expenses.Update(bob.ID, expense.ID, ExpenseInput{Description: "not yours"})
	assert.ErrorIs(t, err, ErrNotExpenseOwner)

	err = env.expenses.Delete(bob.ID, expense.ID)
	assert.ErrorIs(t, err, ErrNotExpenseOwner)

	updated, err := env.expenses.Update(alice.ID, expense.ID, ExpenseInput{Amount: "20.00", Description: "dinner"})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), updated.AmountCents)
	assert.Equal(t, "dinner", updated.Description)
	// Untouched fields survive a partial update
	assert.Equal(t, "2025-04-02", updated.ExpenseDate)

	require.NoError(t, env.expenses.Delete(alice.ID, expense.ID))
	_, err = env.expenseRepo.ByID(expense.ID)
	assert.ErrorIs(t, err, repository.ErrExpenseNotFound)
}

func TestExpenseFilters(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	food, err := env.categoryRepo.ByName("Food")
	require.NoError(t, err)
	travel, err := env.categoryRepo.ByName("Travel")
	require.NoError(t, err)

	env.createExpense(t, user.ID, "2025-01-10", "30.00", &food.ID)
	env.createExpense(t, user.ID, "2025-01-20", "10.00", &travel.ID)
	env.createExpense(t, user.ID, "2025-02-05", "20.00", &food.ID)
	env.createExpense(t, user.ID, "2024-01-10", "99.00", &food.ID)

	byYear, err := env.expenses.ForUser(user.ID, repository.ExpenseFilter{Year: 2025})
	require.NoError(t, err)
	assert.Len(t, byYear, 3)

	byMonth, err := env.expenses.ForUser(user.ID, repository.ExpenseFilter{Year: 2025, Month: 1})
	require.NoError(t, err)
	assert.Len(t, byMonth, 2)

	byCategory, err := env.expenses.ForUser(user.ID, repository.ExpenseFilter{CategoryName: "food"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 3)

	sorted, err := env.expenses.ForUser(user.ID, repository.ExpenseFilter{Year: 2025, Sort: repository.ExpenseSortAmountAsc})
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, int64(1000), sorted[0].AmountCents)
	assert.Equal(t, int64(3000), sorted[2].AmountCents)

	_, err = env.expenses.ForUser(user.ID, repository.ExpenseFilter{Sort: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}

func TestDeleteCategoryDetachesExpenses(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	food, err := env.categoryRepo.ByName("Food")
	require.NoError(t, err)
	expense := env.createExpense(t, user.ID, "2025-01-10", "30.00", &food.ID)

	require.NoError(t, env.categories.Delete(food.ID))

	// The expense survives, just uncategorized
	reloaded, err := env.expenseRepo.ByID(expense.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.CategoryID)
}

func TestUpdateBudget(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	income, err := env.incomes.UpdateBudget(alice.ID, alice.ID, "1500.00")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), income.BudgetAmountCents)

	// Zero clears the budget
	income, err = env.incomes.UpdateBudget(alice.ID, alice.ID, "0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), income.BudgetAmountCents)

	_, err = env.incomes.UpdateBudget(bob.ID, alice.ID, "100.00")
	assert.ErrorIs(t, err, ErrNotIncomeOwner)

	_, err = env.incomes.UpdateBudget(alice.ID, alice.ID, "-5.00")
	assert.ErrorIs(t, err, ErrNegativeBudget)

	_, err = env.incomes.UpdateBudget(uuid.New().String(), uuid.New().String(), "10.00")
	assert.ErrorIs(t, err, ErrNotIncomeOwner)
}
