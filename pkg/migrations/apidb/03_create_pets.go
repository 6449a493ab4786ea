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
		log.Println("creating pets table...")
		return mghelper.CreateSchema(ctx, db, &petstore.PetDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping pets table...")
		return mghelper.DropTables(ctx, db, &petstore.PetDao{})
	})
}
