package interfaces

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// MockTransactionService implements TransactionServiceInterface for handler tests.
type MockTransactionService struct {
	Transactions []domain.Transaction
	Transaction  *domain.Transaction
	Err          error
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.ID = "generated-id"
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

func (m *MockTransactionService) GetTransaction(transactionID, userID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transaction, nil
}

func (m *MockTransactionService) UpdateTransaction(transactionID, userID string, updated domain.Transaction) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	updated.ID = transactionID
	updated.UserID = userID
	return &updated, nil
}

func (m *MockTransactionService) DeleteTransaction(transactionID, userID string) error {
	return m.Err
}
