package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/mission"
	"github.com/finpet/finpet-api/pkg/missionstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("seeding missions table...")
		for _, m := range mission.Seed() {
			_, err := db.NewInsert().
				Model(missionstore.ToMissionDao(&m)).
				On("CONFLICT (code) DO NOTHING").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("removing seed data from missions table...")
		codes := make([]string, 0, 3)
		for _, m := range mission.Seed() {
			codes = append(codes, m.Code)
		}
		_, err := db.NewDelete().
			Model((*missionstore.MissionDao)(nil)).
			Where("code IN (?)", bun.In(codes)).
			Exec(ctx)
		return err
	})
}
