package service

import (
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/money"
	"github.com/spendview/spendview/internal/repository"
)

type IncomeService struct {
	incomeRepo repository.IncomeRepository
}

func NewIncomeService(incomeRepo repository.IncomeRepository) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo}
}

func (s *IncomeService) ByUser(userID string) (*model.Income, error) {
	return s.incomeRepo.ByUserID(userID)
}

// UpdateBudget sets the budget for ownerID's income row. Callers may only
// touch their own row; zero is allowed (clearing the budget), negatives are
// not.
func (s *IncomeService) UpdateBudget(callerID, ownerID, amount string) (*model.Income, error) {
	if callerID != ownerID {
		return nil, ErrNotIncomeOwner
	}

	cents, err := money.ParseCents(amount)
	if err != nil {
		return nil, ErrNegativeBudget
	}

	err = s.incomeRepo.UpdateBudget(ownerID, cents)
	if err != nil {
		return nil, err
	}

	return s.incomeRepo.ByUserID(ownerID)
}
