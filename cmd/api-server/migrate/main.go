package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/finpet/finpet-api/pkg/config"
	"github.com/finpet/finpet-api/pkg/migrations/apidb"
	"github.com/finpet/finpet-api/pkg/pgutil"
	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

const connectTimeout = 30 * time.Second

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	cancel()
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for finpet database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := mghelper.RunMigrations(migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
