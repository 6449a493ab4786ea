package ledgerstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpet/finpet-api/pkg/ledger"
	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"
	"github.com/finpet/finpet-api/pkg/user"
	"github.com/finpet/finpet-api/pkg/userstore"
)

func TestLedgerPGStore_BalanceDrift(t *testing.T) {
	ctx, s := setupStore(t)
	require.NoError(t, mghelper.CreateSchema(ctx, s.db, &userstore.UserDao{}))

	users := userstore.NewStore(s.db)
	for _, u := range []*user.User{
		{ID: "u1", Email: "u1@example.com", Balance: decimal.RequireFromString("980")},
		{ID: "u2", Email: "u2@example.com", Balance: decimal.RequireFromString("-99")},
		{ID: "u3", Email: "u3@example.com", Balance: decimal.RequireFromString("5")},
	} {
		require.NoError(t, users.CreateUser(ctx, u))
	}

	food := &ledger.Category{ID: uuid.NewString(), Name: "Food", Type: ledger.Expense}
	salary := &ledger.Category{ID: uuid.NewString(), Name: "Salary", Type: ledger.Income}
	require.NoError(t, s.CreateCategory(ctx, food))
	require.NoError(t, s.CreateCategory(ctx, salary))

	now := time.Now()
	for _, tx := range []*ledger.Transaction{
		{ID: uuid.NewString(), UserID: "u1", Amount: decimal.RequireFromString("1000"), Type: ledger.Income, CategoryID: salary.ID, Date: now},
		{ID: uuid.NewString(), UserID: "u1", Amount: decimal.RequireFromString("12.50"), Type: ledger.Expense, CategoryID: food.ID, Date: now},
		{ID: uuid.NewString(), UserID: "u2", Amount: decimal.RequireFromString("99"), Type: ledger.Expense, CategoryID: food.ID, Date: now},
	} {
		require.NoError(t, s.CreateTransaction(ctx, tx))
	}

	// Every transaction is newer than the quiet cutoff.
	recent, err := s.FindBalanceDrift(ctx, now.Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "u3", recent[0].UserID)
	assert.True(t, recent[0].Computed.IsZero())

	drift, err := s.FindBalanceDrift(ctx, now.Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, drift, 2)
	assert.Equal(t, "u1", drift[0].UserID)
	assert.True(t, drift[0].Computed.Equal(decimal.RequireFromString("987.50")), drift[0].Computed.String())
	assert.True(t, drift[0].Delta().Equal(decimal.RequireFromString("7.50")))

	stale := drift[0]
	stale.Stored = decimal.RequireFromString("1")
	ok, err := s.CorrectBalance(ctx, stale)
	require.NoError(t, err)
	assert.False(t, ok, "guard rejects a moved balance")

	ok, err = s.CorrectBalance(ctx, drift[0])
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := users.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("987.50")), got.Balance.String())

	drift, err = s.FindBalanceDrift(ctx, now.Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, drift, 1)
	assert.Equal(t, "u3", drift[0].UserID)
}
