package petstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/inventory"
	"github.com/finpet/finpet-api/pkg/pet"
)

// PetDao maps to the 'pets' table. One row per user.
type PetDao struct {
	bun.BaseModel        `bun:"table:pets,alias:p"`
	ID                   string     `bun:"id,pk,type:varchar(36)"`
	UserID               string     `bun:"user_id,unique,notnull,type:varchar(64)"`
	Name                 string     `bun:"name,notnull,type:varchar(50)"`
	ImageURL             *string    `bun:"image_url,type:text"`
	Points               int        `bun:"points,notnull,default:0"`
	Fullness             int        `bun:"fullness,notnull,default:70"`
	Mood                 int        `bun:"mood,notnull,default:70"`
	LastLoginDate        *time.Time `bun:"last_login_date,type:timestamptz"`
	LastDailyReset       *time.Time `bun:"last_daily_reset,type:timestamptz"`
	ConsecutiveLoginDays int        `bun:"consecutive_login_days,notnull,default:0"`
	CreatedAt            time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt            time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// PurchaseDao maps to the append-only 'pet_purchases' ledger.
type PurchaseDao struct {
	bun.BaseModel `bun:"table:pet_purchases,alias:pp"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	UserID        string    `bun:"user_id,notnull,type:varchar(64)"`
	ItemID        string    `bun:"item_id,notnull,type:varchar(100)"`
	Category      string    `bun:"category,notnull,type:varchar(20),default:''"`
	Quantity      int       `bun:"quantity,notnull,default:1"`
	Cost          int       `bun:"cost,notnull,default:0"`
	PurchasedAt   time.Time `bun:"purchased_at,nullzero,notnull,default:current_timestamp"`
}

// RoomStickerDao maps to 'room_stickers'. Each row is one placed sticker.
type RoomStickerDao struct {
	bun.BaseModel `bun:"table:room_stickers,alias:rs"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	PetID         string    `bun:"pet_id,notnull,type:varchar(36)"`
	StickerID     string    `bun:"sticker_id,notnull,type:varchar(100)"`
	X             float64   `bun:"x,notnull,default:0"`
	Y             float64   `bun:"y,notnull,default:0"`
	Rotation      float64   `bun:"rotation,notnull,default:0"`
	Scale         float64   `bun:"scale,notnull,default:1"`
	ZIndex        int       `bun:"z_index,notnull,default:0"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// PetAccessoryDao maps to 'pet_accessories'. Each row is one worn accessory.
type PetAccessoryDao struct {
	bun.BaseModel `bun:"table:pet_accessories,alias:pa"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	PetID         string    `bun:"pet_id,notnull,type:varchar(36)"`
	AccessoryID   string    `bun:"accessory_id,notnull,type:varchar(100)"`
	X             float64   `bun:"x,notnull,default:0"`
	Y             float64   `bun:"y,notnull,default:0"`
	Rotation      float64   `bun:"rotation,notnull,default:0"`
	Size          float64   `bun:"size,notnull,default:1"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// CustomStickerDao maps to 'custom_stickers'.
type CustomStickerDao struct {
	bun.BaseModel `bun:"table:custom_stickers,alias:cs"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	UserID        string    `bun:"user_id,notnull,type:varchar(64)"`
	Name          string    `bun:"name,notnull,type:varchar(100)"`
	ImageURL      string    `bun:"image_url,notnull,type:text"`
	Price         int       `bun:"price,notnull,default:0"`
	IsPublic      bool      `bun:"is_public,notnull,default:false"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toPetDao(p *pet.Pet) *PetDao {
	dao := &PetDao{
		ID:                   p.ID,
		UserID:               p.UserID,
		Name:                 p.Name,
		Points:               p.Points,
		Fullness:             p.Fullness,
		Mood:                 p.Mood,
		LastLoginDate:        p.LastLoginDate,
		LastDailyReset:       p.LastDailyReset,
		ConsecutiveLoginDays: p.ConsecutiveLoginDays,
		CreatedAt:            p.CreatedAt,
	}
	if p.ImageURL != "" {
		dao.ImageURL = &p.ImageURL
	}
	return dao
}

func toPet(dao *PetDao) *pet.Pet {
	p := &pet.Pet{
		ID:                   dao.ID,
		UserID:               dao.UserID,
		Name:                 dao.Name,
		Points:               dao.Points,
		Fullness:             dao.Fullness,
		Mood:                 dao.Mood,
		LastLoginDate:        dao.LastLoginDate,
		LastDailyReset:       dao.LastDailyReset,
		ConsecutiveLoginDays: dao.ConsecutiveLoginDays,
		CreatedAt:            dao.CreatedAt,
	}
	if dao.ImageURL != nil {
		p.ImageURL = *dao.ImageURL
	}
	return p
}

func toPurchase(dao *PurchaseDao) inventory.Purchase {
	return inventory.Purchase{
		ID:          dao.ID,
		UserID:      dao.UserID,
		ItemID:      dao.ItemID,
		Category:    dao.Category,
		Quantity:    dao.Quantity,
		Cost:        dao.Cost,
		PurchasedAt: dao.PurchasedAt,
	}
}

func toRoomSticker(dao *RoomStickerDao) inventory.RoomSticker {
	return inventory.RoomSticker{
		ID:        dao.ID,
		PetID:     dao.PetID,
		StickerID: dao.StickerID,
		X:         dao.X,
		Y:         dao.Y,
		Rotation:  dao.Rotation,
		Scale:     dao.Scale,
		ZIndex:    dao.ZIndex,
		CreatedAt: dao.CreatedAt,
	}
}

func toPetAccessory(dao *PetAccessoryDao) inventory.PetAccessory {
	return inventory.PetAccessory{
		ID:          dao.ID,
		PetID:       dao.PetID,
		AccessoryID: dao.AccessoryID,
		X:           dao.X,
		Y:           dao.Y,
		Rotation:    dao.Rotation,
		Size:        dao.Size,
		CreatedAt:   dao.CreatedAt,
	}
}

func toCustomSticker(dao *CustomStickerDao) inventory.CustomSticker {
	return inventory.CustomSticker{
		ID:        dao.ID,
		UserID:    dao.UserID,
		Name:      dao.Name,
		ImageURL:  dao.ImageURL,
		Price:     dao.Price,
		IsPublic:  dao.IsPublic,
		CreatedAt: dao.CreatedAt,
	}
}
