package routes

import (
	"net/http"

	"github.com/spendview/spendview/internal/app"
	"github.com/spendview/spendview/internal/handler"
	"github.com/spendview/spendview/internal/middleware"
)

// SetupRoutes binds every HTTP endpoint and wraps the mux in the global
// middleware chain. Auth and rate limiting are per-route: AuthMiddleware
// resolves the user into the request context for every request, RequireAuth
// enforces presence where an endpoint needs a caller.
func SetupRoutes(a *app.App) http.Handler {
	mux := http.NewServeMux()

	authHandler := handler.NewAuthHandler(a.AuthService)
	accountHandler := handler.NewAccountHandler(a.UserService)
	categoryHandler := handler.NewCategoryHandler(a.CategoryService)
	videoHandler := handler.NewVideoHandler(a.VideoService, a.EngagementService)
	expenseHandler := handler.NewExpenseHandler(a.ExpenseService, a.SummaryService)
	incomeHandler := handler.NewIncomeHandler(a.IncomeService)

	rateLimitAuth := middleware.RateLimitAuth()

	// Auth
	mux.HandleFunc("POST /users", rateLimitAuth(authHandler.Register))
	mux.HandleFunc("POST /users/login", rateLimitAuth(authHandler.Login))
	mux.HandleFunc("POST /users/logout", authHandler.Logout)

	// Account
	mux.HandleFunc("GET /account", middleware.RequireAuth(accountHandler.Me))
	mux.HandleFunc("POST /account/avatar", middleware.RequireAuth(accountHandler.SetAvatar))

	// Categories
	mux.HandleFunc("GET /categories", categoryHandler.List)
	mux.HandleFunc("POST /categories", middleware.RequireAuth(categoryHandler.Create))
	mux.HandleFunc("DELETE /categories/{id}", middleware.RequireAuth(categoryHandler.Delete))

	// Videos and engagement
	mux.HandleFunc("GET /videos", videoHandler.List)
	mux.HandleFunc("GET /videos/{id}", videoHandler.Detail)
	mux.HandleFunc("GET /videos/{id}/comments", videoHandler.Comments)
	mux.HandleFunc("POST /videos/{id}/like", middleware.RequireAuth(videoHandler.ToggleLike))
	mux.HandleFunc("POST /videos/{id}/comments", middleware.RequireAuth(videoHandler.AddComment))
	mux.HandleFunc("PUT /comments/{id}", middleware.RequireAuth(videoHandler.UpdateComment))
	mux.HandleFunc("DELETE /comments/{id}", middleware.RequireAuth(videoHandler.DeleteComment))
	mux.HandleFunc("POST /videos/{id}/review", middleware.RequireAuth(videoHandler.UpsertReview))

	// Incomes
	mux.HandleFunc("GET /incomes", middleware.RequireAuth(incomeHandler.Get))
	mux.HandleFunc("PUT /incomes/{userID}", middleware.RequireAuth(incomeHandler.UpdateBudget))

	// Expenses
	mux.HandleFunc("POST /expenses/{userID}/{categoryName}", middleware.RequireAuth(expenseHandler.Create))
	mux.HandleFunc("GET /expenses/{userID}", middleware.RequireAuth(expenseHandler.List))
	mux.HandleFunc("GET /expenses/{userID}/monthly-summary", middleware.RequireAuth(expenseHandler.MonthlySummary))
	mux.HandleFunc("GET /expenses/{userID}/category-summary", middleware.RequireAuth(expenseHandler.CategorySummary))
	mux.HandleFunc("PUT /expenses/{expenseID}", middleware.RequireAuth(expenseHandler.Update))
	mux.HandleFunc("DELETE /expenses/{expenseID}", middleware.RequireAuth(expenseHandler.Delete))
	mux.HandleFunc("POST /expenses/{expenseID}/receipt", middleware.RequireAuth(expenseHandler.AttachReceipt))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(a.AuthService, a.UserService),
	)
}
