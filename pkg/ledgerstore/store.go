package ledgerstore

import (
	"context"
	"errors"
	"time"

	"github.com/finpet/finpet-api/pkg/ledger"
)

// ErrCategoryNotFound is returned when no category matches a lookup.
var ErrCategoryNotFound = errors.New("category not found")

// Store defines the interface for transaction and category persistence
type Store interface {
	CreateTransaction(ctx context.Context, tx *ledger.Transaction) error
	ListTransactions(ctx context.Context, userID string, filter ledger.ListFilter) ([]*ledger.Transaction, error)
	MonthlyTotals(ctx context.Context, userID string, from, to time.Time) (ledger.MonthlyTotals, error)

	GetCategory(ctx context.Context, id string) (*ledger.Category, error)
	FindCategory(ctx context.Context, userID, name string, typ ledger.Type) (*ledger.Category, error)
	EnsureGlobalCategory(ctx context.Context, name string, typ ledger.Type) (*ledger.Category, error)
	CreateCategory(ctx context.Context, c *ledger.Category) error
}
