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
		log.Println("creating room_stickers and pet_accessories tables...")
		if err := mghelper.CreateSchema(ctx, db, &petstore.RoomStickerDao{}, &petstore.PetAccessoryDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &petstore.RoomStickerDao{}, "pet_id"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &petstore.PetAccessoryDao{}, "pet_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping room_stickers and pet_accessories tables...")
		return mghelper.DropTables(ctx, db, &petstore.RoomStickerDao{}, &petstore.PetAccessoryDao{})
	})
}
