package application

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type TransactionService struct {
	repo domain.TransactionRepository
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if transaction.Date.IsZero() {
		return financeErrors.NewValidationError("Transaction date is required")
	}
	transaction.NormalizeCategory()
	if err := transaction.Validate(); err != nil {
		return err
	}

	transaction.ID = uuid.NewString()
	transaction.CreatedAt = time.Now().UTC()
	return s.repo.Save(*transaction)
}

// GetUserTransactions returns all transactions of the user, awaiting ones
// first, each partition sorted by date descending.
func (s *TransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		awaitingI := transactions[i].Status == domain.StatusAwaiting
		awaitingJ := transactions[j].Status == domain.StatusAwaiting
		if awaitingI != awaitingJ {
			return awaitingI
		}
		return transactions[i].Date.After(transactions[j].Date)
	})
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetTransaction(transactionID, userID string) (*domain.Transaction, error) {
	return s.repo.FindByID(transactionID, userID)
}

// UpdateTransaction replaces every mutable field of the stored transaction.
// The owner and creation timestamp never change.
func (s *TransactionService) UpdateTransaction(transactionID, userID string, updated domain.Transaction) (*domain.Transaction, error) {
	existing, err := s.repo.FindByID(transactionID, userID)
	if err != nil {
		return nil, err
	}

	existing.Type = updated.Type
	existing.Category = updated.Category
	existing.Amount = updated.Amount
	existing.Method = updated.Method
	existing.Status = updated.Status
	existing.Note = updated.Note
	existing.Date = updated.Date

	if existing.Date.IsZero() {
		return nil, financeErrors.NewValidationError("Transaction date is required")
	}
	existing.NormalizeCategory()
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TransactionService) DeleteTransaction(transactionID, userID string) error {
	return s.repo.Delete(transactionID, userID)
}
