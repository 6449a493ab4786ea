package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/app/validation"
	"github.com/finpet/finpet-api/pkg/dashboard"
	"github.com/finpet/finpet-api/pkg/friend"
	"github.com/finpet/finpet-api/pkg/mission"
	"github.com/finpet/finpet-api/pkg/user"
	"github.com/finpet/finpet-api/pkg/userstore"
)

// Store is the narrow data-access interface for the friend service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*user.User, error)
	GetUsers(ctx context.Context, ids []string) ([]*user.User, error)
	CreateFriendship(ctx context.Context, f *friend.Friend) error
	GetFriendship(ctx context.Context, id string) (*friend.Friend, error)
	GetFriendshipBetween(ctx context.Context, a, b string) (*friend.Friend, error)
	AcceptFriendship(ctx context.Context, id, addresseeID string) error
	ListFriendships(ctx context.Context, userID string) ([]*friend.Friend, error)
	CountPendingInvitations(ctx context.Context, userID string) (int, error)
}

// RoomViewer renders another user's pet room without touching its state.
//
//go:generate mockery --name RoomViewer --output mocks --outpkg mocks --filename mock_room_viewer.go --with-expecter
type RoomViewer interface {
	GetVisitRoom(ctx context.Context, ownerID string) (*dashboard.VisitRoom, error)
}

// MissionRecorder advances mission progress.
type MissionRecorder interface {
	RecordProgress(ctx context.Context, userID, code string) (*mission.Completion, error)
}

// Service defines the interface for friendships and room visits
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// List returns the caller's friends and open invitations.
	List(ctx context.Context, userID string) (*friend.Overview, error)
	// Invite sends a friend request to the user owning handle. A pending
	// request in the other direction is accepted instead.
	Invite(ctx context.Context, userID string, req *friend.InviteRequest) (*friend.Profile, error)
	// Accept accepts the pending invitation friendshipID addressed to the caller.
	Accept(ctx context.Context, userID, friendshipID string) (*friend.Profile, error)
	// PendingCount returns the number of invitations waiting for the caller.
	PendingCount(ctx context.Context, userID string) (int, error)
	// Visit returns the room of an accepted friend.
	Visit(ctx context.Context, userID, friendUserID string) (*friend.Visit, error)
}

type friendService struct {
	store    Store
	rooms    RoomViewer
	missions MissionRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a friend service.
func NewService(store Store, rooms RoomViewer, missions MissionRecorder, logger *zap.Logger) Service {
	return &friendService{
		store:    store,
		rooms:    rooms,
		missions: missions,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *friendService) List(ctx context.Context, userID string) (*friend.Overview, error) {
	edges, err := s.store.ListFriendships(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}

	ids := make([]string, 0, len(edges))
	for _, f := range edges {
		ids = append(ids, f.Other(userID))
	}

	users := make(map[string]*user.User, len(ids))
	if len(ids) > 0 {
		rows, err := s.store.GetUsers(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load friends: %w", err)
		}
		for _, u := range rows {
			users[u.ID] = u
		}
	}

	o := friend.Summarize(edges, userID, users)
	return &o, nil
}

func (s *friendService) Invite(ctx context.Context, userID string, req *friend.InviteRequest) (*friend.Profile, error) {
	req.Handle = strings.TrimSpace(req.Handle)
	if details := validation.Struct(req); details != nil {
		return nil, apperrors.ValidationError(nil, details)
	}

	target, err := s.store.GetUserByHandle(ctx, req.Handle)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if target.ID == userID {
		return nil, apperrors.BadRequestError(nil, "cannot invite yourself")
	}

	existing, err := s.store.GetFriendshipBetween(ctx, userID, target.ID)
	switch {
	case err == nil:
		return s.resolveExisting(ctx, userID, existing, target)
	case !errors.Is(err, userstore.ErrFriendshipNotFound):
		return nil, fmt.Errorf("failed to check friendship: %w", err)
	}

	now := s.now()
	f := &friend.Friend{
		ID:          uuid.NewString(),
		RequesterID: userID,
		AddresseeID: target.ID,
		Status:      friend.Pending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateFriendship(ctx, f); err != nil {
		if errors.Is(err, userstore.ErrFriendshipExists) {
			return nil, apperrors.ConflictError(err, "invitation already sent")
		}
		return nil, fmt.Errorf("failed to create friendship: %w", err)
	}

	p := friend.NewProfile(f, userID, target)
	return &p, nil
}

// resolveExisting handles an invite between two users already linked by f.
func (s *friendService) resolveExisting(ctx context.Context, userID string, f *friend.Friend, target *user.User) (*friend.Profile, error) {
	if f.Status == friend.Accepted {
		return nil, apperrors.ConflictError(nil, "already friends")
	}
	if f.RequesterID == userID {
		return nil, apperrors.ConflictError(nil, "invitation already sent")
	}

	if err := s.store.AcceptFriendship(ctx, f.ID, userID); err != nil {
		return nil, fmt.Errorf("failed to accept friendship: %w", err)
	}
	f.Status = friend.Accepted
	f.UpdatedAt = s.now()

	p := friend.NewProfile(f, userID, target)
	return &p, nil
}

func (s *friendService) Accept(ctx context.Context, userID, friendshipID string) (*friend.Profile, error) {
	f, err := s.store.GetFriendship(ctx, friendshipID)
	if err != nil {
		if errors.Is(err, userstore.ErrFriendshipNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "invitation not found")
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}
	if f.AddresseeID != userID {
		return nil, apperrors.ResourceNotFoundError(nil, "invitation not found")
	}
	if f.Status == friend.Accepted {
		return nil, apperrors.ConflictError(nil, "already friends")
	}

	if err := s.store.AcceptFriendship(ctx, f.ID, userID); err != nil {
		if errors.Is(err, userstore.ErrFriendshipNotFound) {
			return nil, apperrors.ConflictError(err, "invitation is no longer pending")
		}
		return nil, fmt.Errorf("failed to accept friendship: %w", err)
	}
	f.Status = friend.Accepted
	f.UpdatedAt = s.now()

	requester, err := s.store.GetUserByID(ctx, f.RequesterID)
	if err != nil && !errors.Is(err, userstore.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get requester: %w", err)
	}

	p := friend.NewProfile(f, userID, requester)
	return &p, nil
}

func (s *friendService) PendingCount(ctx context.Context, userID string) (int, error) {
	n, err := s.store.CountPendingInvitations(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count invitations: %w", err)
	}
	return n, nil
}

func (s *friendService) Visit(ctx context.Context, userID, friendUserID string) (*friend.Visit, error) {
	if friendUserID == userID {
		return nil, apperrors.BadRequestError(nil, "use the pet room endpoint for your own room")
	}

	f, err := s.store.GetFriendshipBetween(ctx, userID, friendUserID)
	if err != nil {
		if errors.Is(err, userstore.ErrFriendshipNotFound) {
			return nil, apperrors.ForbiddenError(err, "not friends")
		}
		return nil, fmt.Errorf("failed to check friendship: %w", err)
	}
	if f.Status != friend.Accepted {
		return nil, apperrors.ForbiddenError(nil, "not friends")
	}

	owner, err := s.store.GetUserByID(ctx, friendUserID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}

	room, err := s.rooms.GetVisitRoom(ctx, friendUserID)
	if err != nil {
		return nil, err
	}

	v := &friend.Visit{
		Friend: friend.NewProfile(f, userID, owner),
		Room:   room,
	}

	c, err := s.missions.RecordProgress(ctx, userID, mission.CodeDailyVisitFriend)
	if err != nil {
		s.logger.Warn("visit mission progress failed",
			zap.String("user_id", userID),
			zap.String("friend_id", friendUserID),
			zap.Error(err),
		)
		return v, nil
	}
	v.MissionCompleted = c
	return v, nil
}
