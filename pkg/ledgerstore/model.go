package ledgerstore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/ledger"
)

// Categories are unique per scope, name and type. Global rows have a NULL
// user_id, so the scope is compared through COALESCE.
const (
	CategoryScopeIndex     = "idx_categories_scope_name_type"
	CategoryScopeIndexExpr = "COALESCE(user_id, ''), lower(name), type_id"
)

// CategoryDao maps to the 'categories' table. A NULL user_id marks a global category.
type CategoryDao struct {
	bun.BaseModel `bun:"table:categories,alias:c"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	UserID        *string   `bun:"user_id,type:varchar(64)"`
	Name          string    `bun:"name,notnull,type:varchar(64)"`
	TypeID        int       `bun:"type_id,notnull"`
	Icon          *string   `bun:"icon,type:varchar(16)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// TransactionDao maps to the 'transactions' table.
type TransactionDao struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`
	ID            string          `bun:"id,pk,type:varchar(36)"`
	UserID        string          `bun:"user_id,notnull,type:varchar(64)"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(14,2)"`
	TypeID        int             `bun:"type_id,notnull"`
	CategoryID    string          `bun:"category_id,notnull,type:varchar(36)"`
	Date          time.Time       `bun:"date,notnull,type:timestamptz"`
	Note          *string         `bun:"note,type:text"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	Category *CategoryDao `bun:"rel:belongs-to,join:category_id=id"`
}

func toCategoryDao(c *ledger.Category) *CategoryDao {
	dao := &CategoryDao{
		ID:     c.ID,
		Name:   c.Name,
		TypeID: int(c.Type),
	}
	if c.UserID != "" {
		dao.UserID = &c.UserID
	}
	if c.Icon != "" {
		dao.Icon = &c.Icon
	}
	return dao
}

func toCategory(dao *CategoryDao) *ledger.Category {
	c := &ledger.Category{
		ID:   dao.ID,
		Name: dao.Name,
		Type: ledger.Type(dao.TypeID),
	}
	if dao.UserID != nil {
		c.UserID = *dao.UserID
	}
	if dao.Icon != nil {
		c.Icon = *dao.Icon
	}
	return c
}

func toTransactionDao(tx *ledger.Transaction) *TransactionDao {
	dao := &TransactionDao{
		ID:         tx.ID,
		UserID:     tx.UserID,
		Amount:     tx.Amount,
		TypeID:     int(tx.Type),
		CategoryID: tx.CategoryID,
		Date:       tx.Date,
		CreatedAt:  tx.CreatedAt,
	}
	if tx.Note != "" {
		dao.Note = &tx.Note
	}
	return dao
}

func toTransaction(dao *TransactionDao) *ledger.Transaction {
	tx := &ledger.Transaction{
		ID:         dao.ID,
		UserID:     dao.UserID,
		Amount:     dao.Amount,
		Type:       ledger.Type(dao.TypeID),
		CategoryID: dao.CategoryID,
		Date:       dao.Date,
		CreatedAt:  dao.CreatedAt,
	}
	if dao.Note != nil {
		tx.Note = *dao.Note
	}
	if dao.Category != nil {
		tx.CategoryName = dao.Category.Name
	}
	return tx
}
