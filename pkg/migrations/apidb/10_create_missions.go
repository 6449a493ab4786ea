package apidb

import (
	"context"
	"log"

	"github.com/finpet/finpet-api/pkg/missionstore"
	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating missions and mission_users tables...")
		if err := mghelper.CreateSchema(ctx, db, &missionstore.MissionDao{}, &missionstore.MissionUserDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &missionstore.MissionUserDao{}, "completed_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping missions and mission_users tables...")
		return mghelper.DropTables(ctx, db, &missionstore.MissionUserDao{}, &missionstore.MissionDao{})
	})
}
