package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/pgutil"
)

type shopItemDao struct {
	bun.BaseModel `bun:"table:shop_items"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Category      string `bun:",notnull,type:varchar(20)"`
	Price         int    `bun:",nullzero"`
}

func TestCreateSchema_Idempotent(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &shopItemDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "shop_items")

	if err := CreateSchema(ctx, db, &shopItemDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}
}

func TestDropTables_Idempotent(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &shopItemDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := DropTables(ctx, db, &shopItemDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "shop_items")

	if err := DropTables(ctx, db, &shopItemDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestInsertEntry_Seeds(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &shopItemDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	seed := []any{
		&shopItemDao{Name: "Apple", Category: "food", Price: 5},
		&shopItemDao{Name: "Top Hat", Category: "accessory", Price: 40},
	}
	if err := InsertEntry(ctx, db, seed...); err != nil {
		t.Fatalf("InsertEntry() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "shop_items", 2)

	var hat shopItemDao
	if err := db.NewSelect().Model(&hat).Where("name = ?", "Top Hat").Scan(ctx); err != nil {
		t.Fatalf("failed to query seeded row: %v", err)
	}
	if hat.Category != "accessory" || hat.Price != 40 {
		t.Errorf("seeded row mismatch: got %+v", hat)
	}
}

func TestCreateModelIndexes_Names(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &shopItemDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &shopItemDao{}, "category", "price"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}

	pgutil.AssertIndexExists(t, db, "idx_shop_items_category")
	pgutil.AssertIndexExists(t, db, "idx_shop_items_price")
}

func TestCreateUniqueIndexExpr(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &shopItemDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	if err := CreateUniqueIndexExpr(ctx, db, "shop_items", "idx_shop_items_lower_name", "lower(name)"); err != nil {
		t.Fatalf("CreateUniqueIndexExpr() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_shop_items_lower_name")

	if err := InsertEntry(ctx, db, &shopItemDao{Name: "Piggy", Category: "sticker"}); err != nil {
		t.Fatalf("InsertEntry() failed: %v", err)
	}
	err := InsertEntry(ctx, db, &shopItemDao{Name: "PIGGY", Category: "sticker"})
	if err == nil {
		t.Fatal("expected case-insensitive duplicate to fail")
	}
	if !pgutil.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}
