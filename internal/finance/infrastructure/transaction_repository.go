package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, user_id, type, category, amount, method, status, note, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		transaction.ID, transaction.UserID, transaction.Type, transaction.Category, transaction.Amount,
		transaction.Method, transaction.Status, transaction.Note, transaction.Date, transaction.CreatedAt,
	)
	return err
}

func (r *TransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, type, category, amount, method, status, note, date, created_at
		 FROM transactions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Type, &transaction.Category,
			&transaction.Amount, &transaction.Method, &transaction.Status, &transaction.Note,
			&transaction.Date, &transaction.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRow(
		`SELECT id, user_id, type, category, amount, method, status, note, date, created_at
		 FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID).
		Scan(&transaction.ID, &transaction.UserID, &transaction.Type, &transaction.Category,
			&transaction.Amount, &transaction.Method, &transaction.Status, &transaction.Note,
			&transaction.Date, &transaction.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	result, err := r.db.Exec(
		`UPDATE transactions
		 SET type = $1, category = $2, amount = $3, method = $4, status = $5, note = $6, date = $7
		 WHERE id = $8 AND user_id = $9`,
		transaction.Type, transaction.Category, transaction.Amount, transaction.Method,
		transaction.Status, transaction.Note, transaction.Date, transaction.ID, transaction.UserID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(transactionID, userID string) error {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}
