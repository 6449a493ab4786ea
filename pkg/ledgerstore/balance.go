package ledgerstore

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpet/finpet-api/pkg/ledger"
)

// FindBalanceDrift returns up to limit users whose balance differs from
// Σ income − Σ expense. Users with a transaction created at or after
// quietSince are skipped since their increment may still be in flight.
func (s *pgStore) FindBalanceDrift(ctx context.Context, quietSince time.Time, limit int) ([]ledger.BalanceDrift, error) {
	sums := s.db.NewSelect().
		Model((*TransactionDao)(nil)).
		Column("t.user_id").
		ColumnExpr("SUM(CASE WHEN t.type_id = ? THEN t.amount ELSE -t.amount END) AS total", int(ledger.Income)).
		ColumnExpr("MAX(t.created_at) AS last_at").
		Group("t.user_id")

	var rows []struct {
		UserID   string          `bun:"user_id"`
		Stored   decimal.Decimal `bun:"stored"`
		Computed decimal.Decimal `bun:"computed"`
	}
	err := s.db.NewSelect().
		TableExpr("users AS u").
		Join("LEFT JOIN (?) AS x ON x.user_id = u.id", sums).
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.balance AS stored").
		ColumnExpr("COALESCE(x.total, 0) AS computed").
		Where("u.balance <> COALESCE(x.total, 0)").
		Where("(x.last_at IS NULL OR x.last_at < ?)", quietSince).
		OrderExpr("u.id").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to find balance drift: %w", err)
	}

	out := make([]ledger.BalanceDrift, len(rows))
	for i, r := range rows {
		out[i] = ledger.BalanceDrift{UserID: r.UserID, Stored: r.Stored, Computed: r.Computed}
	}
	return out, nil
}

// CorrectBalance sets the balance to d.Computed only if it still equals
// d.Stored. It reports false when a concurrent write moved the balance.
func (s *pgStore) CorrectBalance(ctx context.Context, d ledger.BalanceDrift) (bool, error) {
	res, err := s.db.NewUpdate().
		TableExpr("users").
		Set("balance = ?::NUMERIC", d.Computed.String()).
		Set("updated_at = NOW()").
		Where("id = ?", d.UserID).
		Where("balance = ?::NUMERIC", d.Stored.String()).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to correct balance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to correct balance: %w", err)
	}
	return n == 1, nil
}
