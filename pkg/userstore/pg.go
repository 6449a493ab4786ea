package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/friend"
	"github.com/finpet/finpet-api/pkg/pgutil"
	"github.com/finpet/finpet-api/pkg/user"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateUser(ctx context.Context, usr *user.User) error {
	dao := toUserDao(usr)

	_, err := s.db.NewInsert().
		Model(dao).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *pgStore) GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error) {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dao := new(UserDao)
	query := s.db.NewSelect().Model(dao)

	if options.ID != nil {
		query = query.Where("id = ?", *options.ID)
	}
	if options.Handle != nil {
		query = query.Where("user_id = ?", *options.Handle)
	}
	if options.Email != nil {
		query = query.Where("email = ?", *options.Email)
	}

	err := query.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(dao), nil
}

// GetUserByID looks a user up by auth provider subject.
func (s *pgStore) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	return s.GetUser(ctx, WithID(id))
}

// GetUserByHandle looks a user up by public user id.
func (s *pgStore) GetUserByHandle(ctx context.Context, handle string) (*user.User, error) {
	return s.GetUser(ctx, WithHandle(handle))
}

func (s *pgStore) GetUsers(ctx context.Context, ids []string) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var daos []UserDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	users := make([]*user.User, len(daos))
	for i := range daos {
		users[i] = toUser(&daos[i])
	}
	return users, nil
}

func (s *pgStore) UpdateProfile(ctx context.Context, userID string, name, image *string) error {
	q := s.db.NewUpdate().
		Model((*UserDao)(nil)).
		Set("updated_at = NOW()").
		Where("id = ?", userID)
	if name != nil {
		q = q.Set("name = ?", optional(*name))
	}
	if image != nil {
		q = q.Set("image = ?", optional(*image))
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetHandle sets the public user id. It only succeeds while no handle is set.
func (s *pgStore) SetHandle(ctx context.Context, userID, handle string) error {
	res, err := s.db.NewUpdate().
		Model((*UserDao)(nil)).
		Set("user_id = ?", handle).
		Set("updated_at = NOW()").
		Where("id = ?", userID).
		Where("user_id IS NULL").
		Exec(ctx)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return ErrHandleTaken
		}
		return fmt.Errorf("failed to set user id: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		exists, err := s.db.NewSelect().Model((*UserDao)(nil)).Where("id = ?", userID).Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check user exists: %w", err)
		}
		if !exists {
			return ErrUserNotFound
		}
		return ErrHandleAlreadySet
	}
	return nil
}

// IncrementBalance adds delta (negative for expenses) in a single statement
// and returns the resulting balance.
func (s *pgStore) IncrementBalance(ctx context.Context, userID string, delta decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.db.NewUpdate().
		TableExpr("users").
		Set("balance = balance + ?::NUMERIC", delta.String()).
		Set("updated_at = NOW()").
		Where("id = ?", userID).
		Returning("balance").
		Scan(ctx, &balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to increment balance: %w", err)
	}
	return balance, nil
}

func (s *pgStore) CreateFriendship(ctx context.Context, f *friend.Friend) error {
	// a reverse edge counts as the same friendship
	exists, err := s.db.NewSelect().
		Model((*FriendDao)(nil)).
		Where("requester_id = ? AND addressee_id = ?", f.AddresseeID, f.RequesterID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check friendship: %w", err)
	}
	if exists {
		return ErrFriendshipExists
	}

	_, err = s.db.NewInsert().Model(toFriendDao(f)).Exec(ctx)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return ErrFriendshipExists
		}
		return fmt.Errorf("failed to create friendship: %w", err)
	}
	return nil
}

func (s *pgStore) GetFriendship(ctx context.Context, id string) (*friend.Friend, error) {
	dao := new(FriendDao)
	err := s.db.NewSelect().Model(dao).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}
	return toFriend(dao), nil
}

func (s *pgStore) GetFriendshipBetween(ctx context.Context, a, b string) (*friend.Friend, error) {
	dao := new(FriendDao)
	err := s.db.NewSelect().
		Model(dao).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("requester_id = ? AND addressee_id = ?", a, b).
				WhereOr("requester_id = ? AND addressee_id = ?", b, a)
		}).
		OrderExpr("CASE WHEN status = ? THEN 0 ELSE 1 END", string(friend.Accepted)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}
	return toFriend(dao), nil
}

// AcceptFriendship accepts a pending invitation addressed to addresseeID.
func (s *pgStore) AcceptFriendship(ctx context.Context, id, addresseeID string) error {
	res, err := s.db.NewUpdate().
		Model((*FriendDao)(nil)).
		Set("status = ?", string(friend.Accepted)).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Where("addressee_id = ?", addresseeID).
		Where("status = ?", string(friend.Pending)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to accept friendship: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

// ListFriendships returns accepted edges touching userID and pending edges
// in either direction, newest first.
func (s *pgStore) ListFriendships(ctx context.Context, userID string) ([]*friend.Friend, error) {
	var daos []FriendDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("requester_id = ?", userID).
		WhereOr("addressee_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}

	out := make([]*friend.Friend, len(daos))
	for i := range daos {
		out[i] = toFriend(&daos[i])
	}
	return out, nil
}

func (s *pgStore) CountPendingInvitations(ctx context.Context, userID string) (int, error) {
	n, err := s.db.NewSelect().
		Model((*FriendDao)(nil)).
		Where("addressee_id = ?", userID).
		Where("status = ?", string(friend.Pending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count invitations: %w", err)
	}
	return n, nil
}
