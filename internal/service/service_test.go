package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/spendview/spendview/internal/db"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/repository"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// testEnv is the fully wired service stack over a fresh in-memory
// database, migrations (including seed data) applied.
type testEnv struct {
	db *sqlx.DB

	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	videoRepo    repository.VideoRepository
	likeRepo     repository.LikeRepository
	commentRepo  repository.CommentRepository
	reviewRepo   repository.ReviewRepository
	expenseRepo  repository.ExpenseRepository
	incomeRepo   repository.IncomeRepository

	auth       *AuthService
	engagement *EngagementService
	expenses   *ExpenseService
	incomes    *IncomeService
	summaries  *SummaryService
	videos     *VideoService
	categories *CategoryService
	users      *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	env := &testEnv{db: database}
	env.userRepo = repository.NewUserRepository(database)
	env.categoryRepo = repository.NewCategoryRepository(database)
	env.videoRepo = repository.NewVideoRepository(database)
	env.likeRepo = repository.NewLikeRepository(database)
	env.commentRepo = repository.NewCommentRepository(database)
	env.reviewRepo = repository.NewReviewRepository(database)
	env.expenseRepo = repository.NewExpenseRepository(database)
	env.incomeRepo = repository.NewIncomeRepository(database)
	fileRepo := repository.NewFileRepository(database)

	emailService := NewEmailService("", "test@example.com", "spendview", true)
	fileService := NewFileService(fileRepo, nil)

	env.auth = NewAuthService(env.userRepo, env.incomeRepo, emailService, "test-secret", false, time.Hour)
	env.engagement = NewEngagementService(env.videoRepo, env.likeRepo, env.commentRepo, env.reviewRepo, env.userRepo, fileService)
	env.expenses = NewExpenseService(env.expenseRepo, env.categoryRepo, fileService)
	env.incomes = NewIncomeService(env.incomeRepo)
	env.summaries = NewSummaryService(env.expenseRepo)
	env.videos = NewVideoService(env.videoRepo, env.likeRepo, env.reviewRepo)
	env.categories = NewCategoryService(env.categoryRepo)
	env.users = NewUserService(env.userRepo, fileService)

	return env
}

func (env *testEnv) createUser(t *testing.T, username string) *model.User {
	t.Helper()

	user, err := env.auth.Register(username, username+"@example.com", "correct-horse-battery")
	require.NoError(t, err)
	return user
}

func (env *testEnv) createVideo(t *testing.T, title string) *model.Video {
	t.Helper()

	video := &model.Video{
		ID:          uuid.New().String(),
		Title:       title,
		URL:         "https://videos.example.com/" + title,
		Thumbnail:   "https://videos.example.com/" + title + ".jpg",
		Description: "test video",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, env.videoRepo.Create(video))
	return video
}

func (env *testEnv) createExpense(t *testing.T, userID, date, amount string, categoryID *string) *model.Expense {
	t.Helper()

	cents, err := parseExpenseAmount(amount)
	require.NoError(t, err)

	expense := &model.Expense{
		ID:          uuid.New().String(),
		UserID:      userID,
		CategoryID:  categoryID,
		AmountCents: cents,
		Description: "test expense",
		ExpenseDate: date,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, env.expenseRepo.Create(expense))
	return expense
}
