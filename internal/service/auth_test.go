package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSeedsIncome(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register("alice", "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	income, err := env.incomeRepo.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), income.BudgetAmountCents)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("alice", "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)

	_, err = env.auth.Register("alice2", "alice@example.com", "correct-horse-battery")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// Email comparison is case-insensitive
	_, err = env.auth.Register("alice3", "ALICE@example.com", "correct-horse-battery")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("", "alice@example.com", "correct-horse-battery")
	assert.True(t, IsValidation(err))

	_, err = env.auth.Register("alice", "not-an-email", "correct-horse-battery")
	assert.True(t, IsValidation(err))

	_, err = env.auth.Register("alice", "alice@example.com", "short")
	assert.True(t, IsValidation(err))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register("alice", "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)

	loggedIn, err := env.auth.Login("Alice@Example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	_, err = env.auth.Login("alice@example.com", "wrong-password-entirely")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login("nobody@example.com", "correct-horse-battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register("alice", "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)

	token, err := env.auth.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := env.auth.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])

	_, err = env.auth.VerifyJWT(token + "tampered")
	assert.Error(t, err)
}
