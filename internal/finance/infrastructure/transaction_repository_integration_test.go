package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/sebuszqo/FinanceTracker/db"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("financetracker_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("could not terminate postgres container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Ping())
	require.NoError(t, database.RunMigrations(db))
	return db
}

func createTestUser(t *testing.T, db *sql.DB, email string) string {
	t.Helper()
	var id string
	err := db.QueryRow(
		`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		"Test User", email, "irrelevant-hash").Scan(&id)
	require.NoError(t, err)
	return id
}

func TestTransactionRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := setupTestDatabase(t)
	repo := NewTransactionRepository(db)

	userA := createTestUser(t, db, "a@example.com")
	userB := createTestUser(t, db, "b@example.com")

	transaction := domain.Transaction{
		ID:        uuid.NewString(),
		UserID:    userA,
		Type:      domain.TypeExpense,
		Category:  "Groceries",
		Amount:    decimal.RequireFromString("42.50"),
		Method:    "card",
		Status:    domain.StatusCompleted,
		Note:      "weekly shopping",
		Date:      time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Save(transaction))

	t.Run("FindByUser returns stored amounts without precision loss", func(t *testing.T) {
		transactions, err := repo.FindByUser(userA)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "42.50", transactions[0].Amount.StringFixed(2))
		assert.Equal(t, "weekly shopping", transactions[0].Note)
	})

	t.Run("FindByID collapses foreign and missing ids", func(t *testing.T) {
		_, errForeign := repo.FindByID(transaction.ID, userB)
		_, errMissing := repo.FindByID(uuid.NewString(), userB)
		assert.ErrorIs(t, errForeign, financeErrors.ErrTransactionNotFound)
		assert.ErrorIs(t, errMissing, financeErrors.ErrTransactionNotFound)
	})

	t.Run("Update scoped to owner", func(t *testing.T) {
		updated := transaction
		updated.Category = "Food"

		updated.UserID = userB
		assert.ErrorIs(t, repo.Update(updated), financeErrors.ErrTransactionNotFound)

		updated.UserID = userA
		require.NoError(t, repo.Update(updated))

		stored, err := repo.FindByID(transaction.ID, userA)
		require.NoError(t, err)
		assert.Equal(t, "Food", stored.Category)
	})

	t.Run("Delete scoped to owner and idempotence surfaces not-found", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(transaction.ID, userB), financeErrors.ErrTransactionNotFound)
		require.NoError(t, repo.Delete(transaction.ID, userA))
		assert.ErrorIs(t, repo.Delete(transaction.ID, userA), financeErrors.ErrTransactionNotFound)
	})
}
