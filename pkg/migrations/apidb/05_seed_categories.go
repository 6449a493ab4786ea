package apidb

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/ledger"
	"github.com/finpet/finpet-api/pkg/ledgerstore"
)

type seedCategory struct {
	name string
	typ  ledger.Type
	icon string
}

var defaultCategories = []seedCategory{
	{"Food", ledger.Expense, "🍔"},
	{"Transport", ledger.Expense, "🚌"},
	{"Shopping", ledger.Expense, "🛍️"},
	{"Housing", ledger.Expense, "🏠"},
	{"Entertainment", ledger.Expense, "🎮"},
	{"Health", ledger.Expense, "💊"},
	{ledger.OtherCategory, ledger.Expense, "📦"},
	{"Salary", ledger.Income, "💼"},
	{"Allowance", ledger.Income, "🎁"},
	{"Side Job", ledger.Income, "🧰"},
	{ledger.OtherCategory, ledger.Income, "💰"},
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("seeding categories table...")
		for _, c := range defaultCategories {
			icon := c.icon
			// ON CONFLICT keeps the seed idempotent against the scope index
			_, err := db.NewInsert().
				Model(&ledgerstore.CategoryDao{
					ID:     uuid.NewString(),
					Name:   c.name,
					TypeID: int(c.typ),
					Icon:   &icon,
				}).
				On("CONFLICT DO NOTHING").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("removing seed data from categories table...")
		names := make([]string, 0, len(defaultCategories))
		for _, c := range defaultCategories {
			names = append(names, c.name)
		}
		_, err := db.NewDelete().
			Model((*ledgerstore.CategoryDao)(nil)).
			Where("user_id IS NULL").
			Where("name IN (?)", bun.In(names)).
			Exec(ctx)
		return err
	})
}
