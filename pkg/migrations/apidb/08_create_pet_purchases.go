package apidb

import (
	"context"
	"log"

	"github.com/finpet/finpet-api/pkg/petstore"
	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating pet_purchases table...")
		if err := mghelper.CreateSchema(ctx, db, &petstore.PurchaseDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &petstore.PurchaseDao{}, "user_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping pet_purchases table...")
		return mghelper.DropTables(ctx, db, &petstore.PurchaseDao{})
	})
}
