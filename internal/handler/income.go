package handler

import (
	"encoding/json"
	"net/http"

	"github.com/spendview/spendview/internal/ctxkeys"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/money"
	"github.com/spendview/spendview/internal/service"
)

type IncomeHandler struct {
	incomeService *service.IncomeService
}

func NewIncomeHandler(incomeService *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

type incomeView struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	BudgetAmount float64 `json:"budget_amount"`
}

func newIncomeView(income *model.Income) incomeView {
	return incomeView{
		ID:           income.ID,
		UserID:       income.UserID,
		BudgetAmount: money.ToFloat(income.BudgetAmountCents),
	}
}

func (h *IncomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	income, err := h.incomeService.ByUser(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newIncomeView(income))
}

type budgetRequest struct {
	BudgetAmount json.Number `json:"budget_amount"`
}

func (h *IncomeHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req budgetRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	income, err := h.incomeService.UpdateBudget(user.ID, r.PathValue("userID"), req.BudgetAmount.String())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newIncomeView(income))
}
