package userstore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/friend"
	"github.com/finpet/finpet-api/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            string          `bun:"id,pk,type:varchar(64)"`
	Email         string          `bun:"email,unique,notnull,type:varchar(320)"`
	Handle        *string         `bun:"user_id,unique,type:varchar(32)"`
	Name          *string         `bun:"name,type:varchar(100)"`
	Image         *string         `bun:"image,type:text"`
	Balance       decimal.Decimal `bun:"balance,notnull,type:numeric(14,2),default:0"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// FriendDao maps to the 'friends' table. One row per directed edge.
type FriendDao struct {
	bun.BaseModel `bun:"table:friends,alias:f"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	RequesterID   string    `bun:"requester_id,notnull,type:varchar(64),unique:friends_requester_addressee"`
	AddresseeID   string    `bun:"addressee_id,notnull,type:varchar(64),unique:friends_requester_addressee"`
	Status        string    `bun:"status,notnull,type:varchar(16)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toUserDao converts a user.User to UserDao.
func toUserDao(usr *user.User) *UserDao {
	return &UserDao{
		ID:        usr.ID,
		Email:     usr.Email,
		Handle:    optional(usr.Handle),
		Name:      optional(usr.Name),
		Image:     optional(usr.Image),
		Balance:   usr.Balance,
		CreatedAt: usr.CreatedAt,
	}
}

// toUser converts a UserDao to user.User.
func toUser(dao *UserDao) *user.User {
	return &user.User{
		ID:        dao.ID,
		Email:     dao.Email,
		Handle:    deref(dao.Handle),
		Name:      deref(dao.Name),
		Image:     deref(dao.Image),
		Balance:   dao.Balance,
		CreatedAt: dao.CreatedAt,
	}
}

func toFriendDao(f *friend.Friend) *FriendDao {
	return &FriendDao{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFriend(dao *FriendDao) *friend.Friend {
	return &friend.Friend{
		ID:          dao.ID,
		RequesterID: dao.RequesterID,
		AddresseeID: dao.AddresseeID,
		Status:      friend.Status(dao.Status),
		CreatedAt:   dao.CreatedAt,
		UpdatedAt:   dao.UpdatedAt,
	}
}
