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
		log.Println("creating custom_stickers table...")
		if err := mghelper.CreateSchema(ctx, db, &petstore.CustomStickerDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &petstore.CustomStickerDao{}, "user_id", "is_public")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping custom_stickers table...")
		return mghelper.DropTables(ctx, db, &petstore.CustomStickerDao{})
	})
}
