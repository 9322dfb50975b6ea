package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlySummary(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	env.createExpense(t, user.ID, "2025-03-10", "10.50", nil)
	env.createExpense(t, user.ID, "2025-03-28", "5.25", nil)
	env.createExpense(t, user.ID, "2025-11-01", "7.00", nil)
	// Other years never leak into the series
	env.createExpense(t, user.ID, "2024-03-15", "99.99", nil)

	series, err := env.summaries.MonthlySummary(user.ID, 2025)
	require.NoError(t, err)

	assert.Equal(t, "Jan", series.Labels[0])
	assert.Equal(t, "Dec", series.Labels[11])

	assert.InDelta(t, 15.75, series.Data[2], 0.001)
	assert.InDelta(t, 7.00, series.Data[10], 0.001)
	for _, i := range []int{0, 1, 3, 4, 5, 6, 7, 8, 9, 11} {
		assert.Zero(t, series.Data[i], "month %d should be empty", i+1)
	}
}

func TestMonthlySummaryEmptyYear(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	series, err := env.summaries.MonthlySummary(user.ID, 2025)
	require.NoError(t, err)
	for i := range series.Data {
		assert.Zero(t, series.Data[i])
	}
}

func TestMonthlySummaryScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	env.createExpense(t, alice.ID, "2025-06-01", "50.00", nil)
	env.createExpense(t, bob.ID, "2025-06-01", "80.00", nil)

	series, err := env.summaries.MonthlySummary(alice.ID, 2025)
	require.NoError(t, err)
	assert.InDelta(t, 50.00, series.Data[5], 0.001)
}

func TestCategorySummary(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	food, err := env.categoryRepo.ByName("Food")
	require.NoError(t, err)
	travel, err := env.categoryRepo.ByName("Travel")
	require.NoError(t, err)

	env.createExpense(t, user.ID, "2025-01-01", "20.00", &food.ID)
	env.createExpense(t, user.ID, "2025-02-01", "5.00", &food.ID)
	env.createExpense(t, user.ID, "2025-03-01", "30.00", &travel.ID)

	entries, err := env.summaries.CategorySummary(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Largest total first
	assert.Equal(t, "Travel", entries[0].Label)
	assert.InDelta(t, 30.00, entries[0].Total, 0.001)
	assert.Equal(t, "Food", entries[1].Label)
	assert.InDelta(t, 25.00, entries[1].Total, 0.001)
}

func TestCategorySummaryUncategorized(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	env.createExpense(t, user.ID, "2025-01-01", "12.00", nil)

	entries, err := env.summaries.CategorySummary(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Uncategorized", entries[0].Label)
	assert.InDelta(t, 12.00, entries[0].Total, 0.001)
}

func TestCategorySummaryEmpty(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	entries, err := env.summaries.CategorySummary(user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
