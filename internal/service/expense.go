package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/money"
	"github.com/spendview/spendview/internal/repository"
	"github.com/spendview/spendview/internal/validation"
)

var (
	ErrNotExpenseOwner  = errors.New("only the expense owner may modify it")
	ErrInvalidAmount    = errors.New("amount must be a positive decimal")
	ErrNegativeBudget   = errors.New("budget amount cannot be negative")
	ErrNotIncomeOwner   = errors.New("only the income owner may update it")
	ErrInvalidYear      = errors.New("year parameter is required and must be an integer")
	ErrInvalidSortOrder = errors.New("sort must be asc or desc")
)

// ExpenseInput is the caller-facing shape of an expense create/update.
// Amount arrives as a decimal string and is stored as cents.
type ExpenseInput struct {
	Amount      string
	Description string
	ExpenseDate string
	Location    string
	CategoryID  *string
}

type ExpenseService struct {
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.CategoryRepository
	fileService  *FileService
}

func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	categoryRepo repository.CategoryRepository,
	fileService *FileService,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		fileService:  fileService,
	}
}

// Create records an expense against a category resolved by name
// (case-insensitive), matching the add-expense API contract.
func (s *ExpenseService) Create(userID, categoryName string, input ExpenseInput) (*model.Expense, error) {
	category, err := s.categoryRepo.ByName(categoryName)
	if err != nil {
		return nil, err
	}

	cents, err := parseExpenseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateDate(input.ExpenseDate)
	if err != nil {
		return nil, Validation(err)
	}

	expense := &model.Expense{
		ID:          uuid.New().String(),
		UserID:      userID,
		CategoryID:  &category.ID,
		AmountCents: cents,
		Description: input.Description,
		ExpenseDate: input.ExpenseDate,
		Location:    input.Location,
		CreatedAt:   time.Now(),
	}

	err = s.expenseRepo.Create(expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	expense.CategoryName = &category.Name
	return expense, nil
}

func (s *ExpenseService) ForUser(userID string, filter repository.ExpenseFilter) ([]*model.Expense, error) {
	if filter.Sort != "" &&
		filter.Sort != repository.ExpenseSortAmountAsc &&
		filter.Sort != repository.ExpenseSortAmountDesc {
		return nil, ErrInvalidSortOrder
	}

	return s.expenseRepo.ForUser(userID, filter)
}

// Update modifies an expense owned by the caller. A non-owner is rejected
// with ErrNotExpenseOwner, not a not-found, matching the comment rules.
func (s *ExpenseService) Update(userID, expenseID string, input ExpenseInput) (*model.Expense, error) {
	expense, err := s.expenseRepo.ByID(expenseID)
	if err != nil {
		return nil, err
	}

	if expense.UserID != userID {
		return nil, ErrNotExpenseOwner
	}

	if input.Amount != "" {
		cents, err := parseExpenseAmount(input.Amount)
		if err != nil {
			return nil, err
		}
		expense.AmountCents = cents
	}
	if input.ExpenseDate != "" {
		err = validation.ValidateDate(input.ExpenseDate)
		if err != nil {
			return nil, Validation(err)
		}
		expense.ExpenseDate = input.ExpenseDate
	}
	if input.Description != "" {
		expense.Description = input.Description
	}
	if input.Location != "" {
		expense.Location = input.Location
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.ByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		expense.CategoryID = &category.ID
		expense.CategoryName = &category.Name
	}

	err = s.expenseRepo.Update(expense)
	if err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *ExpenseService) Delete(userID, expenseID string) error {
	expense, err := s.expenseRepo.ByID(expenseID)
	if err != nil {
		return err
	}

	if expense.UserID != userID {
		return ErrNotExpenseOwner
	}

	return s.expenseRepo.Delete(expenseID)
}

// AttachReceipt uploads a receipt file and links it to the expense.
func (s *ExpenseService) AttachReceipt(userID, expenseID string, file multipart.File, header *multipart.FileHeader) (*model.Expense, error) {
	expense, err := s.expenseRepo.ByID(expenseID)
	if err != nil {
		return nil, err
	}

	if expense.UserID != userID {
		return nil, ErrNotExpenseOwner
	}

	err = validation.ValidateFile(header, validation.ImageConstraints, validation.DocumentConstraints)
	if err != nil {
		return nil, Validation(err)
	}

	uploaded, err := s.fileService.Upload(userID, "expense", expenseID, model.FileTypeReceipt, file, header)
	if err != nil {
		return nil, err
	}

	err = s.expenseRepo.UpdateReceipt(expenseID, &uploaded.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to link receipt: %w", err)
	}

	expense.ReceiptPath = &uploaded.StoragePath
	return expense, nil
}

// ReceiptURL resolves an expense's receipt to a presigned URL, or "".
func (s *ExpenseService) ReceiptURL(expense *model.Expense) string {
	if expense.ReceiptPath == nil {
		return ""
	}
	return s.fileService.URL(*expense.ReceiptPath)
}

func parseExpenseAmount(amount string) (int64, error) {
	cents, err := money.ParseCents(amount)
	if err != nil || cents == 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}
