package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/ledger"
	"github.com/finpet/finpet-api/pkg/ledger/service/mocks"
	"github.com/finpet/finpet-api/pkg/ledgerstore"
	"github.com/finpet/finpet-api/pkg/mission"
	missionmocks "github.com/finpet/finpet-api/pkg/mission/service/mocks"
	"github.com/finpet/finpet-api/pkg/petstore"
	"github.com/finpet/finpet-api/pkg/user"
	"github.com/finpet/finpet-api/pkg/userstore"
)

var fixedNow = time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	store    *mocks.Store
	users    *mocks.UserStore
	pets     *mocks.PetStore
	missions *missionmocks.Service
}

func newTestService(t *testing.T) (*ledgerService, testDeps) {
	t.Helper()
	deps := testDeps{
		store:    mocks.NewStore(t),
		users:    mocks.NewUserStore(t),
		pets:     mocks.NewPetStore(t),
		missions: missionmocks.NewService(t),
	}
	svc := NewService(deps.store, deps.users, deps.pets, deps.missions, time.UTC, zap.NewNop()).(*ledgerService)
	svc.now = func() time.Time { return fixedNow }
	return svc, deps
}

func expectUser(deps testDeps) {
	deps.users.EXPECT().GetUserByID(mock.Anything, "user-1").Return(&user.User{ID: "user-1"}, nil).Once()
}

func decimalEq(want int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(want)) })
}

func TestLedgerService_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	expectUser(deps)

	food := &ledger.Category{ID: "cat-food", Name: "Food", Type: ledger.Expense}
	deps.store.EXPECT().FindCategory(ctx, "user-1", "Food", ledger.Expense).Return(food, nil).Once()
	deps.store.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(tx *ledger.Transaction) bool {
			return tx.UserID == "user-1" && tx.CategoryID == "cat-food" && tx.Type == ledger.Expense &&
				tx.Amount.Equal(decimal.NewFromInt(30)) && tx.Date.Equal(fixedNow)
		})).
		Return(nil).Once()
	deps.users.EXPECT().IncrementBalance(ctx, "user-1", decimalEq(-30)).Return(decimal.NewFromInt(970), nil).Once()
	deps.pets.EXPECT().AdjustMood(ctx, "user-1", -2).Return(68, nil).Once()

	completion := &mission.Completion{ID: "mu-1", Code: mission.CodeDailyTransaction, Reward: 10}
	deps.missions.EXPECT().RecordProgress(ctx, "user-1", mission.CodeDailyTransaction).Return(completion, nil).Once()
	deps.missions.EXPECT().RecordProgress(ctx, "user-1", mission.CodeWeeklyTransaction).Return(nil, nil).Once()

	res, err := svc.CreateTransaction(ctx, "user-1", &ledger.CreateRequest{
		Amount:   decimal.NewFromInt(30),
		Type:     "expense",
		Category: "Food",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Transaction)
	assert.NotEmpty(t, res.Transaction.ID)
	assert.Equal(t, "Food", res.Transaction.CategoryName)
	require.NotNil(t, res.NewBalance)
	assert.True(t, res.NewBalance.Equal(decimal.NewFromInt(970)))
	assert.Equal(t, completion, res.MissionCompleted)
}

func TestLedgerService_CreateTransaction_FallsBackToOther(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	expectUser(deps)

	other := &ledger.Category{ID: "cat-other", Name: ledger.OtherCategory, Type: ledger.Income}
	deps.store.EXPECT().FindCategory(ctx, "user-1", "Lottery", ledger.Income).Return(nil, ledgerstore.ErrCategoryNotFound).Once()
	deps.store.EXPECT().EnsureGlobalCategory(ctx, ledger.OtherCategory, ledger.Income).Return(other, nil).Once()
	deps.store.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*ledger.Transaction")).Return(nil).Once()
	deps.users.EXPECT().IncrementBalance(ctx, "user-1", decimalEq(200)).Return(decimal.NewFromInt(1200), nil).Once()
	deps.pets.EXPECT().AdjustMood(ctx, "user-1", 5).Return(75, nil).Once()
	deps.missions.EXPECT().RecordProgress(ctx, "user-1", mock.Anything).Return(nil, nil).Twice()

	res, err := svc.CreateTransaction(ctx, "user-1", &ledger.CreateRequest{
		Amount:   decimal.NewFromInt(200),
		TypeID:   int(ledger.Income),
		Category: "Lottery",
	})
	require.NoError(t, err)
	assert.Equal(t, "cat-other", res.Transaction.CategoryID)
	assert.Nil(t, res.MissionCompleted)
}

func TestLedgerService_CreateTransaction_WeeklyCompletionReported(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	expectUser(deps)

	other := &ledger.Category{ID: "cat-other", Name: ledger.OtherCategory, Type: ledger.Expense}
	deps.store.EXPECT().EnsureGlobalCategory(ctx, ledger.OtherCategory, ledger.Expense).Return(other, nil).Once()
	deps.store.EXPECT().CreateTransaction(ctx, mock.Anything).Return(nil).Once()
	deps.users.EXPECT().IncrementBalance(ctx, "user-1", mock.Anything).Return(decimal.Zero, nil).Once()
	deps.pets.EXPECT().AdjustMood(ctx, "user-1", -1).Return(50, nil).Once()

	weekly := &mission.Completion{ID: "mu-w", Code: mission.CodeWeeklyTransaction, Reward: 30}
	deps.missions.EXPECT().RecordProgress(ctx, "user-1", mission.CodeDailyTransaction).Return(nil, nil).Once()
	deps.missions.EXPECT().RecordProgress(ctx, "user-1", mission.CodeWeeklyTransaction).Return(weekly, nil).Once()

	res, err := svc.CreateTransaction(ctx, "user-1", &ledger.CreateRequest{Amount: decimal.NewFromInt(5), Type: "expense"})
	require.NoError(t, err)
	assert.Equal(t, weekly, res.MissionCompleted)
}

func TestLedgerService_CreateTransaction_SideEffectFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	expectUser(deps)

	other := &ledger.Category{ID: "cat-other", Name: ledger.OtherCategory, Type: ledger.Expense}
	deps.store.EXPECT().EnsureGlobalCategory(ctx, ledger.OtherCategory, ledger.Expense).Return(other, nil).Once()
	deps.store.EXPECT().CreateTransaction(ctx, mock.Anything).Return(nil).Once()
	deps.users.EXPECT().IncrementBalance(ctx, "user-1", mock.Anything).Return(decimal.Zero, errors.New("db down")).Once()
	deps.pets.EXPECT().AdjustMood(ctx, "user-1", mock.Anything).Return(0, petstore.ErrPetNotFound).Once()
	deps.missions.EXPECT().RecordProgress(ctx, "user-1", mock.Anything).Return(nil, errors.New("db down")).Twice()

	res, err := svc.CreateTransaction(ctx, "user-1", &ledger.CreateRequest{Amount: decimal.NewFromInt(10), Type: "expense"})
	require.NoError(t, err)
	require.NotNil(t, res.Transaction)
	assert.Nil(t, res.NewBalance)
	assert.Nil(t, res.MissionCompleted)
}

func TestLedgerService_CreateTransaction_InsertFailure(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	expectUser(deps)

	other := &ledger.Category{ID: "cat-other", Name: ledger.OtherCategory, Type: ledger.Expense}
	deps.store.EXPECT().EnsureGlobalCategory(ctx, ledger.OtherCategory, ledger.Expense).Return(other, nil).Once()
	deps.store.EXPECT().CreateTransaction(ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	_, err := svc.CreateTransaction(ctx, "user-1", &ledger.CreateRequest{Amount: decimal.NewFromInt(10), Type: "expense"})
	require.Error(t, err)
	assert.True(t, apperrors.IsInternalError(err))
}

func TestLedgerService_CreateTransaction_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	deps.users.EXPECT().GetUserByID(ctx, "ghost").Return(nil, userstore.ErrUserNotFound).Once()

	res, err := svc.CreateTransaction(ctx, "ghost", &ledger.CreateRequest{Amount: decimal.NewFromInt(10), Type: "expense"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
	deps.store.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	deps.users.AssertNotCalled(t, "IncrementBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerService_CreateTransaction_UserLookupFailure(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	deps.users.EXPECT().GetUserByID(ctx, "user-1").Return(nil, errors.New("db down")).Once()

	_, err := svc.CreateTransaction(ctx, "user-1", &ledger.CreateRequest{Amount: decimal.NewFromInt(10), Type: "expense"})
	require.Error(t, err)
	assert.True(t, apperrors.IsInternalError(err))
}

func TestLedgerService_CreateTransaction_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateTransaction(context.Background(), "user-1", &ledger.CreateRequest{Amount: decimal.Zero})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Contains(t, svcErr.Details, "amount")
	assert.Contains(t, svcErr.Details, "type")
}

func TestLedgerService_CreateTransaction_CategoryIDChecks(t *testing.T) {
	const id = "6f1c2b0e-8c1a-4d2e-9f3a-1b2c3d4e5f60"

	tests := []struct {
		name     string
		category *ledger.Category
		err      error
		detail   string
	}{
		{"unknown", nil, ledgerstore.ErrCategoryNotFound, "unknown category"},
		{"foreign", &ledger.Category{ID: id, UserID: "someone-else", Type: ledger.Expense}, nil, "unknown category"},
		{"wrong type", &ledger.Category{ID: id, Type: ledger.Income}, nil, "does not match type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			expectUser(deps)
			deps.store.EXPECT().GetCategory(mock.Anything, id).Return(tt.category, tt.err).Once()

			_, err := svc.CreateTransaction(context.Background(), "user-1", &ledger.CreateRequest{
				Amount:     decimal.NewFromInt(10),
				Type:       "expense",
				CategoryID: id,
			})
			require.Error(t, err)

			var svcErr *apperrors.ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.detail, svcErr.Details["categoryId"])
		})
	}
}

func TestLedgerService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	filter := ledger.ListFilter{Type: ledger.Income, Limit: 10}
	want := []*ledger.Transaction{{ID: "tx-1"}}
	deps.store.EXPECT().ListTransactions(ctx, "user-1", filter).Return(want, nil).Once()

	got, err := svc.ListTransactions(ctx, "user-1", filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
