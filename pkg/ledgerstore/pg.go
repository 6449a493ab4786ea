package ledgerstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/ledger"
)

const defaultListLimit = 100

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the ledger store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	dao := toTransactionDao(tx)
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	tx.CreatedAt = dao.CreatedAt
	return nil
}

func (s *pgStore) ListTransactions(ctx context.Context, userID string, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	var daos []TransactionDao
	q := s.db.NewSelect().
		Model(&daos).
		Relation("Category").
		Where("t.user_id = ?", userID)

	if filter.Start != nil {
		q = q.Where("t.date >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("t.date < ?", *filter.End)
	}
	if filter.Type.Valid() {
		q = q.Where("t.type_id = ?", int(filter.Type))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	err := q.Order("t.date DESC", "t.created_at DESC").Limit(limit).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make([]*ledger.Transaction, len(daos))
	for i := range daos {
		out[i] = toTransaction(&daos[i])
	}
	return out, nil
}

// MonthlyTotals sums income and expense amounts dated within [from, to).
func (s *pgStore) MonthlyTotals(ctx context.Context, userID string, from, to time.Time) (ledger.MonthlyTotals, error) {
	var row struct {
		Income  decimal.Decimal `bun:"income"`
		Expense decimal.Decimal `bun:"expense"`
	}
	err := s.db.NewSelect().
		Model((*TransactionDao)(nil)).
		ColumnExpr("COALESCE(SUM(t.amount) FILTER (WHERE t.type_id = ?), 0) AS income", int(ledger.Income)).
		ColumnExpr("COALESCE(SUM(t.amount) FILTER (WHERE t.type_id = ?), 0) AS expense", int(ledger.Expense)).
		Where("t.user_id = ?", userID).
		Where("t.date >= ?", from).
		Where("t.date < ?", to).
		Scan(ctx, &row)
	if err != nil {
		return ledger.MonthlyTotals{}, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return ledger.MonthlyTotals{Income: row.Income, Expense: row.Expense}, nil
}

func (s *pgStore) GetCategory(ctx context.Context, id string) (*ledger.Category, error) {
	dao := new(CategoryDao)
	err := s.db.NewSelect().Model(dao).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return toCategory(dao), nil
}

// FindCategory looks a category up by name and type, preferring the user's
// own categories over global ones. Names compare case-insensitively.
func (s *pgStore) FindCategory(ctx context.Context, userID, name string, typ ledger.Type) (*ledger.Category, error) {
	dao := new(CategoryDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("lower(name) = lower(?)", name).
		Where("type_id = ?", int(typ)).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("user_id = ?", userID).WhereOr("user_id IS NULL")
		}).
		OrderExpr("user_id NULLS LAST").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return toCategory(dao), nil
}

// EnsureGlobalCategory returns the global category with the given name and
// type, creating it if missing.
func (s *pgStore) EnsureGlobalCategory(ctx context.Context, name string, typ ledger.Type) (*ledger.Category, error) {
	dao := &CategoryDao{ID: uuid.NewString(), Name: name, TypeID: int(typ)}
	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure category: %w", err)
	}

	found := new(CategoryDao)
	err = s.db.NewSelect().
		Model(found).
		Where("user_id IS NULL").
		Where("lower(name) = lower(?)", name).
		Where("type_id = ?", int(typ)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read category: %w", err)
	}
	return toCategory(found), nil
}

func (s *pgStore) CreateCategory(ctx context.Context, c *ledger.Category) error {
	_, err := s.db.NewInsert().Model(toCategoryDao(c)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
