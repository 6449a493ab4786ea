package userstore

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/finpet/finpet-api/pkg/friend"
	"github.com/finpet/finpet-api/pkg/user"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record.
	ErrUserNotFound = errors.New("user not found")
	// ErrHandleAlreadySet is returned when a user tries to change an existing handle.
	ErrHandleAlreadySet = errors.New("user id already set")
	// ErrHandleTaken is returned when another user already owns the handle.
	ErrHandleTaken = errors.New("user id already taken")
	// ErrFriendshipNotFound is returned when no matching friendship edge exists.
	ErrFriendshipNotFound = errors.New("friendship not found")
	// ErrFriendshipExists is returned when an edge already links both users.
	ErrFriendshipExists = errors.New("friendship already exists")
)

// BalanceStore maintains the denormalized user balance.
type BalanceStore interface {
	IncrementBalance(ctx context.Context, userID string, delta decimal.Decimal) (decimal.Decimal, error)
}

// FriendStore defines friendship edge persistence.
type FriendStore interface {
	CreateFriendship(ctx context.Context, f *friend.Friend) error
	GetFriendship(ctx context.Context, id string) (*friend.Friend, error)
	GetFriendshipBetween(ctx context.Context, a, b string) (*friend.Friend, error)
	AcceptFriendship(ctx context.Context, id, addresseeID string) error
	ListFriendships(ctx context.Context, userID string) ([]*friend.Friend, error)
	CountPendingInvitations(ctx context.Context, userID string) (int, error)
}

// Store defines the interface for user data persistence
type Store interface {
	BalanceStore
	FriendStore
	CreateUser(ctx context.Context, user *user.User) error
	GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error)
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*user.User, error)
	GetUsers(ctx context.Context, ids []string) ([]*user.User, error)
	UpdateProfile(ctx context.Context, userID string, name, image *string) error
	SetHandle(ctx context.Context, userID, handle string) error
}

// QueryOptions defines options for querying users
type QueryOptions struct {
	ID     *string
	Handle *string
	Email  *string
}

// QueryOption is a functional option for querying users
type QueryOption func(*QueryOptions)

// WithID filters by the auth provider subject
func WithID(id string) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}

// WithHandle filters by the public user id
func WithHandle(handle string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Handle = &handle
	}
}

// WithEmail filters by email
func WithEmail(email string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Email = &email
	}
}
