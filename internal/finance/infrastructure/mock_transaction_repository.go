package infrastructure

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// MockTransactionRepository is an in-memory repository used by service tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	SaveErr      error
	FindErr      error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID && m.Transactions[i].UserID == transaction.UserID {
			transaction.CreatedAt = m.Transactions[i].CreatedAt
			m.Transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(transactionID, userID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
