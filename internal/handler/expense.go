package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/spendview/spendview/internal/ctxkeys"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/money"
	"github.com/spendview/spendview/internal/repository"
	"github.com/spendview/spendview/internal/service"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	summaryService *service.SummaryService
}

func NewExpenseHandler(
	expenseService *service.ExpenseService,
	summaryService *service.SummaryService,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		summaryService: summaryService,
	}
}

// expenseRequest accepts amount as either a JSON string or number, so
// clients are free to send "12.50" or 12.50.
type expenseRequest struct {
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	ExpenseDate string      `json:"expense_date"`
	Location    string      `json:"location"`
	CategoryID  *string     `json:"category_id"`
}

type expenseView struct {
	ID           string  `json:"id"`
	CategoryID   *string `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	ExpenseDate  string  `json:"expense_date"`
	Location     string  `json:"location"`
	ReceiptURL   string  `json:"receipt_url,omitempty"`
}

func (h *ExpenseHandler) newExpenseView(e *model.Expense) expenseView {
	return expenseView{
		ID:           e.ID,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		Amount:       money.ToFloat(e.AmountCents),
		Description:  e.Description,
		ExpenseDate:  e.ExpenseDate,
		Location:     e.Location,
		ReceiptURL:   h.expenseService.ReceiptURL(e),
	}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user.ID != r.PathValue("userID") {
		respondError(w, http.StatusForbidden, "cannot create expenses for another user")
		return
	}

	var req expenseRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := h.expenseService.Create(user.ID, r.PathValue("categoryName"), service.ExpenseInput{
		Amount:      req.Amount.String(),
		Description: req.Description,
		ExpenseDate: req.ExpenseDate,
		Location:    req.Location,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, h.newExpenseView(expense))
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user.ID != r.PathValue("userID") {
		respondError(w, http.StatusForbidden, "cannot list expenses of another user")
		return
	}

	filter := repository.ExpenseFilter{
		CategoryName: r.URL.Query().Get("category"),
		Sort:         r.URL.Query().Get("sort"),
	}
	if y := r.URL.Query().Get("year"); y != "" {
		filter.Year, _ = strconv.Atoi(y)
	}
	if m := r.URL.Query().Get("month"); m != "" {
		filter.Month, _ = strconv.Atoi(m)
	}

	expenses, err := h.expenseService.ForUser(user.ID, filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	views := make([]expenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, h.newExpenseView(e))
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req expenseRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := h.expenseService.Update(user.ID, r.PathValue("expenseID"), service.ExpenseInput{
		Amount:      req.Amount.String(),
		Description: req.Description,
		ExpenseDate: req.ExpenseDate,
		Location:    req.Location,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.newExpenseView(expense))
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.expenseService.Delete(user.ID, r.PathValue("expenseID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AttachReceipt accepts a multipart upload under the "receipt" field.
func (h *ExpenseHandler) AttachReceipt(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(10 << 20)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("receipt")
	if err != nil {
		respondError(w, http.StatusBadRequest, "receipt file is required")
		return
	}
	defer func() { _ = file.Close() }()

	expense, err := h.expenseService.AttachReceipt(user.ID, r.PathValue("expenseID"), file, header)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.newExpenseView(expense))
}

// MonthlySummary returns the fixed 12-month series for the required
// ?year= parameter.
func (h *ExpenseHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user.ID != r.PathValue("userID") {
		respondError(w, http.StatusForbidden, "cannot view summaries of another user")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		respondServiceError(w, service.ErrInvalidYear)
		return
	}

	series, err := h.summaryService.MonthlySummary(user.ID, year)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"labels": series.Labels,
		"data":   series.Data,
	})
}

func (h *ExpenseHandler) CategorySummary(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user.ID != r.PathValue("userID") {
		respondError(w, http.StatusForbidden, "cannot view summaries of another user")
		return
	}

	entries, err := h.summaryService.CategorySummary(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	labels := make([]string, 0, len(entries))
	data := make([]float64, 0, len(entries))
	for _, entry := range entries {
		labels = append(labels, entry.Label)
		data = append(data, entry.Total)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"labels": labels,
		"data":   data,
	})
}
