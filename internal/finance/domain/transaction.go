package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusAwaiting  = "awaiting"

	maxNoteLength = 100

	// addNewCategorySentinel is sent by the client when the user typed a brand
	// new category into the note field instead of picking an existing one.
	addNewCategorySentinel = "add new"
)

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByUser(userID string) ([]Transaction, error)
	FindByID(transactionID, userID string) (*Transaction, error)
	Update(transaction Transaction) error
	Delete(transactionID, userID string) error
}

type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Note      string          `json:"note"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

func IsValidTransactionStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed || status == StatusAwaiting
}

// NormalizeCategory resolves the "add new" sentinel: when the client submits
// it together with a non-blank note, the note becomes the category with its
// first letter capitalized and the rest lowercased. The note itself is kept.
func (t *Transaction) NormalizeCategory() {
	if strings.ToLower(t.Category) != addNewCategorySentinel || strings.TrimSpace(t.Note) == "" {
		return
	}
	runes := []rune(t.Note)
	t.Category = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return errors.NewValidationError("Transaction amount cannot be negative")
	}
	if len(t.Note) > maxNoteLength {
		return errors.NewValidationError("Note must be 100 characters or less")
	}
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if !IsValidTransactionStatus(t.Status) {
		return errors.NewValidationError("Status must be 'completed', 'failed' or 'awaiting'")
	}
	return nil
}
