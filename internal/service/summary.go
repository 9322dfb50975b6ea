package service

import (
	"log/slog"
	"time"

	"github.com/spendview/spendview/internal/money"
	"github.com/spendview/spendview/internal/repository"
)

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlySeries is a fixed 12-month series in calendar order. Months
// without expenses hold zero, never a gap.
type MonthlySeries struct {
	Labels [12]string
	Data   [12]float64
}

// CategoryEntry is one per-category total. Unlike the monthly series,
// categories with no expenses are omitted entirely.
type CategoryEntry struct {
	Label string
	Total float64
}

// SummaryService computes the expense aggregations for dashboards.
type SummaryService struct {
	expenseRepo repository.ExpenseRepository
}

func NewSummaryService(expenseRepo repository.ExpenseRepository) *SummaryService {
	return &SummaryService{expenseRepo: expenseRepo}
}

// MonthlySummary sums the user's expenses per calendar month of the given
// year. The fold over raw rows happens here so the repository query stays
// portable across database drivers.
func (s *SummaryService) MonthlySummary(userID string, year int) (*MonthlySeries, error) {
	rows, err := s.expenseRepo.AmountsForYear(userID, year)
	if err != nil {
		return nil, err
	}

	var totals [12]int64
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.ExpenseDate)
		if err != nil {
			slog.Warn("skipping expense with malformed date", "date", row.ExpenseDate, "user_id", userID)
			continue
		}
		totals[int(date.Month())-1] += row.AmountCents
	}

	series := &MonthlySeries{Labels: monthLabels}
	for i, cents := range totals {
		series.Data[i] = money.ToFloat(cents)
	}

	return series, nil
}

// CategorySummary groups the user's expenses by category name, descending
// by total. Ordering ties are broken by name in the repository so the
// output is deterministic.
func (s *SummaryService) CategorySummary(userID string) ([]CategoryEntry, error) {
	totals, err := s.expenseRepo.CategoryTotals(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]CategoryEntry, 0, len(totals))
	for _, total := range totals {
		entries = append(entries, CategoryEntry{
			Label: total.Name,
			Total: money.ToFloat(total.TotalCents),
		})
	}

	return entries, nil
}
