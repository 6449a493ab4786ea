package ledger

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{"expense": Expense, "Income": Income, "1": Expense, "2": Income} {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseType("transfer")
	assert.Error(t, err)
}

func TestType_Signed(t *testing.T) {
	amt := decimal.RequireFromString("12.50")
	assert.True(t, Expense.Signed(amt).Equal(decimal.RequireFromString("-12.50")))
	assert.True(t, Income.Signed(amt).Equal(amt))
}

func TestCategory_VisibleTo(t *testing.T) {
	global := &Category{Name: "Food"}
	own := &Category{Name: "Cats", UserID: "u1"}
	assert.True(t, global.VisibleTo("u2"))
	assert.True(t, own.VisibleTo("u1"))
	assert.False(t, own.VisibleTo("u2"))
}

func TestCreateRequest_Validate(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("valid with type name and plain date", func(t *testing.T) {
		req := CreateRequest{Amount: decimal.NewFromInt(30), Type: "expense", Category: " Food ", Date: "2024-03-09"}
		v, details := req.Validate(now, time.UTC)
		require.Nil(t, details)
		assert.Equal(t, Expense, v.Type)
		assert.Equal(t, "Food", v.Category)
		assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), v.Date)
	})

	t.Run("typeId wins and date defaults to now", func(t *testing.T) {
		req := CreateRequest{Amount: decimal.NewFromInt(1), TypeID: 2}
		v, details := req.Validate(now, time.UTC)
		require.Nil(t, details)
		assert.Equal(t, Income, v.Type)
		assert.Equal(t, now, v.Date)
	})

	t.Run("field details", func(t *testing.T) {
		req := CreateRequest{Amount: decimal.NewFromInt(-5), TypeID: 3, CategoryID: "nope", Date: "yesterday"}
		_, details := req.Validate(now, time.UTC)
		assert.Contains(t, details, "amount")
		assert.Contains(t, details, "typeId")
		assert.Contains(t, details, "categoryId")
		assert.Contains(t, details, "date")
	})

	t.Run("amount precision and range", func(t *testing.T) {
		tests := []struct {
			amount string
			want   string
		}{
			{"0.001", "must have at most 2 decimal places"},
			{"0.004", "must have at most 2 decimal places"},
			{"12.345", "must have at most 2 decimal places"},
			{"10000000000000", "must be less than 1000000000000"},
			{"1000000000000", "must be less than 1000000000000"},
		}
		for _, tt := range tests {
			req := CreateRequest{Amount: decimal.RequireFromString(tt.amount), Type: "expense"}
			v, details := req.Validate(now, time.UTC)
			assert.Nil(t, v, tt.amount)
			assert.Equal(t, tt.want, details["amount"], tt.amount)
		}

		for _, ok := range []string{"0.01", "12.50", "999999999999.99"} {
			req := CreateRequest{Amount: decimal.RequireFromString(ok), Type: "expense"}
			_, details := req.Validate(now, time.UTC)
			assert.Nil(t, details, ok)
		}
	})

	t.Run("missing type", func(t *testing.T) {
		req := CreateRequest{Amount: decimal.NewFromInt(5)}
		_, details := req.Validate(now, time.UTC)
		assert.Equal(t, "type or typeId is required", details["type"])
	})

	t.Run("conflicting type and typeId", func(t *testing.T) {
		req := CreateRequest{Amount: decimal.NewFromInt(5), Type: "income", TypeID: 1}
		_, details := req.Validate(now, time.UTC)
		assert.Equal(t, "does not match typeId", details["type"])
	})
}

func TestParseListQuery(t *testing.T) {
	t.Run("plain end date is inclusive", func(t *testing.T) {
		q := url.Values{"startDate": {"2024-03-01"}, "endDate": {"2024-03-31"}, "type": {"income"}, "limit": {"20"}}
		f, details := ParseListQuery(q, time.UTC)
		require.Nil(t, details)
		require.NotNil(t, f.Start)
		require.NotNil(t, f.End)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.Start)
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *f.End)
		assert.Equal(t, Income, f.Type)
		assert.Equal(t, 20, f.Limit)
	})

	t.Run("empty query", func(t *testing.T) {
		f, details := ParseListQuery(url.Values{"type": {"all"}}, time.UTC)
		require.Nil(t, details)
		assert.Equal(t, ListFilter{}, f)
	})

	t.Run("invalid values", func(t *testing.T) {
		q := url.Values{"startDate": {"nope"}, "type": {"gift"}, "limit": {"0"}}
		_, details := ParseListQuery(q, time.UTC)
		assert.Contains(t, details, "startDate")
		assert.Contains(t, details, "type")
		assert.Contains(t, details, "limit")
	})

	t.Run("end before start", func(t *testing.T) {
		q := url.Values{"startDate": {"2024-03-10T00:00:00Z"}, "endDate": {"2024-03-01T00:00:00Z"}}
		_, details := ParseListQuery(q, time.UTC)
		assert.Equal(t, "must be after startDate", details["endDate"])
	})
}
