package apidb

import (
	"context"
	"log"

	"github.com/finpet/finpet-api/pkg/ledgerstore"
	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating categories table...")
		if err := mghelper.CreateSchema(ctx, db, &ledgerstore.CategoryDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &ledgerstore.CategoryDao{}, "user_id"); err != nil {
			return err
		}
		return mghelper.CreateUniqueIndexExpr(ctx, db, "categories",
			ledgerstore.CategoryScopeIndex, ledgerstore.CategoryScopeIndexExpr)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping categories table...")
		return mghelper.DropTables(ctx, db, &ledgerstore.CategoryDao{})
	})
}
