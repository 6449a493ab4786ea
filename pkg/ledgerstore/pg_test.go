package ledgerstore

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpet/finpet-api/pkg/ledger"
	"github.com/finpet/finpet-api/pkg/pgutil"
	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()
	requireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	require.NoError(t, mghelper.CreateSchema(ctx, db, &CategoryDao{}, &TransactionDao{}))
	require.NoError(t, mghelper.CreateUniqueIndexExpr(ctx, db, "categories", CategoryScopeIndex, CategoryScopeIndexExpr))

	return ctx, NewStore(db)
}

func requireDockerAccess(t *testing.T) {
	t.Helper()

	for _, sock := range []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	} {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed ledgerstore tests")
}

func TestLedgerPGStore_CategoryResolution(t *testing.T) {
	ctx, s := setupStore(t)

	global := &ledger.Category{ID: uuid.NewString(), Name: "Food", Type: ledger.Expense}
	own := &ledger.Category{ID: uuid.NewString(), UserID: "u1", Name: "food", Type: ledger.Expense}
	salary := &ledger.Category{ID: uuid.NewString(), Name: "Salary", Type: ledger.Income}
	for _, c := range []*ledger.Category{global, own, salary} {
		require.NoError(t, s.CreateCategory(ctx, c))
	}

	got, err := s.FindCategory(ctx, "u1", "FOOD", ledger.Expense)
	require.NoError(t, err)
	assert.Equal(t, own.ID, got.ID, "user scope wins over global scope")

	got, err = s.FindCategory(ctx, "u2", "Food", ledger.Expense)
	require.NoError(t, err)
	assert.Equal(t, global.ID, got.ID)
	assert.True(t, got.IsGlobal())

	_, err = s.FindCategory(ctx, "u1", "Salary", ledger.Expense)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	byID, err := s.GetCategory(ctx, salary.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.Income, byID.Type)

	_, err = s.GetCategory(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	other1, err := s.EnsureGlobalCategory(ctx, ledger.OtherCategory, ledger.Expense)
	require.NoError(t, err)
	other2, err := s.EnsureGlobalCategory(ctx, ledger.OtherCategory, ledger.Expense)
	require.NoError(t, err)
	assert.Equal(t, other1.ID, other2.ID)
}

func TestLedgerPGStore_TransactionsAndTotals(t *testing.T) {
	ctx, s := setupStore(t)

	food := &ledger.Category{ID: uuid.NewString(), Name: "Food", Type: ledger.Expense}
	salary := &ledger.Category{ID: uuid.NewString(), Name: "Salary", Type: ledger.Income}
	require.NoError(t, s.CreateCategory(ctx, food))
	require.NoError(t, s.CreateCategory(ctx, salary))

	march := func(day int) time.Time { return time.Date(2024, 3, day, 12, 0, 0, 0, time.UTC) }
	rows := []*ledger.Transaction{
		{ID: uuid.NewString(), UserID: "u1", Amount: decimal.RequireFromString("12.50"), Type: ledger.Expense, CategoryID: food.ID, Date: march(1), Note: "lunch"},
		{ID: uuid.NewString(), UserID: "u1", Amount: decimal.RequireFromString("7.25"), Type: ledger.Expense, CategoryID: food.ID, Date: march(5)},
		{ID: uuid.NewString(), UserID: "u1", Amount: decimal.RequireFromString("1000"), Type: ledger.Income, CategoryID: salary.ID, Date: march(10)},
		{ID: uuid.NewString(), UserID: "u1", Amount: decimal.RequireFromString("3"), Type: ledger.Expense, CategoryID: food.ID, Date: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.NewString(), UserID: "u2", Amount: decimal.RequireFromString("99"), Type: ledger.Expense, CategoryID: food.ID, Date: march(2)},
	}
	for _, tx := range rows {
		require.NoError(t, s.CreateTransaction(ctx, tx))
		assert.False(t, tx.CreatedAt.IsZero())
	}

	all, err := s.ListTransactions(ctx, "u1", ledger.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, rows[2].ID, all[0].ID, "newest first")
	assert.Equal(t, "Salary", all[0].CategoryName)

	start, end := march(1).Add(-12*time.Hour), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	expenses, err := s.ListTransactions(ctx, "u1", ledger.ListFilter{Start: &start, End: &end, Type: ledger.Expense})
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "lunch", expenses[1].Note)

	limited, err := s.ListTransactions(ctx, "u1", ledger.ListFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	totals, err := s.MonthlyTotals(ctx, "u1", start, end)
	require.NoError(t, err)
	assert.True(t, totals.Income.Equal(decimal.RequireFromString("1000")), totals.Income.String())
	assert.True(t, totals.Expense.Equal(decimal.RequireFromString("19.75")), totals.Expense.String())

	empty, err := s.MonthlyTotals(ctx, "nobody", start, end)
	require.NoError(t, err)
	assert.True(t, empty.Income.IsZero())
	assert.True(t, empty.Expense.IsZero())
}
