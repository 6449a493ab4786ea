package apidb

import (
	"context"
	"log"

	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"
	"github.com/finpet/finpet-api/pkg/userstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating friends table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.FriendDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.FriendDao{}, "addressee_id", "status")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping friends table...")
		return mghelper.DropTables(ctx, db, &userstore.FriendDao{})
	})
}
