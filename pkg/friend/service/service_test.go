package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/dashboard"
	"github.com/finpet/finpet-api/pkg/friend"
	"github.com/finpet/finpet-api/pkg/friend/service/mocks"
	"github.com/finpet/finpet-api/pkg/mission"
	missionmocks "github.com/finpet/finpet-api/pkg/mission/service/mocks"
	"github.com/finpet/finpet-api/pkg/pet"
	"github.com/finpet/finpet-api/pkg/user"
	"github.com/finpet/finpet-api/pkg/userstore"
)

var fixedNow = time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	store    *mocks.Store
	rooms    *mocks.RoomViewer
	missions *missionmocks.Service
}

func newTestService(t *testing.T) (*friendService, testDeps) {
	t.Helper()
	deps := testDeps{
		store:    mocks.NewStore(t),
		rooms:    mocks.NewRoomViewer(t),
		missions: missionmocks.NewService(t),
	}
	svc := NewService(deps.store, deps.rooms, deps.missions, zap.NewNop()).(*friendService)
	svc.now = func() time.Time { return fixedNow }
	return svc, deps
}

func TestFriendService_Invite_Creates(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	bob := &user.User{ID: "user-2", Handle: "bob", Name: "Bob"}

	deps.store.EXPECT().GetUserByHandle(ctx, "bob").Return(bob, nil).Once()
	deps.store.EXPECT().GetFriendshipBetween(ctx, "user-1", "user-2").
		Return(nil, userstore.ErrFriendshipNotFound).Once()
	deps.store.EXPECT().CreateFriendship(ctx, mock.MatchedBy(func(f *friend.Friend) bool {
		return f.RequesterID == "user-1" && f.AddresseeID == "user-2" &&
			f.Status == friend.Pending && f.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	got, err := svc.Invite(ctx, "user-1", &friend.InviteRequest{Handle: " bob "})
	require.NoError(t, err)
	assert.Equal(t, "user-2", got.UserID)
	assert.Equal(t, "bob", got.Handle)
	assert.Equal(t, friend.Pending, got.Status)
	assert.False(t, got.Incoming)
}

func TestFriendService_Invite_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Invite(context.Background(), "user-1", &friend.InviteRequest{Handle: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestFriendService_Invite_UnknownHandle(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.store.EXPECT().GetUserByHandle(ctx, "ghost").Return(nil, userstore.ErrUserNotFound).Once()

	_, err := svc.Invite(ctx, "user-1", &friend.InviteRequest{Handle: "ghost"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}

func TestFriendService_Invite_Self(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.store.EXPECT().GetUserByHandle(ctx, "alice").Return(&user.User{ID: "user-1", Handle: "alice"}, nil).Once()

	_, err := svc.Invite(ctx, "user-1", &friend.InviteRequest{Handle: "alice"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestFriendService_Invite_Existing(t *testing.T) {
	tests := []struct {
		name string
		edge *friend.Friend
	}{
		{
			name: "already friends",
			edge: &friend.Friend{ID: "f-1", RequesterID: "user-2", AddresseeID: "user-1", Status: friend.Accepted},
		},
		{
			name: "already invited",
			edge: &friend.Friend{ID: "f-1", RequesterID: "user-1", AddresseeID: "user-2", Status: friend.Pending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, deps := newTestService(t)

			deps.store.EXPECT().GetUserByHandle(ctx, "bob").Return(&user.User{ID: "user-2", Handle: "bob"}, nil).Once()
			deps.store.EXPECT().GetFriendshipBetween(ctx, "user-1", "user-2").Return(tt.edge, nil).Once()

			_, err := svc.Invite(ctx, "user-1", &friend.InviteRequest{Handle: "bob"})
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryDataConflict))
		})
	}
}

func TestFriendService_Invite_AcceptsReverseRequest(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	edge := &friend.Friend{ID: "f-1", RequesterID: "user-2", AddresseeID: "user-1", Status: friend.Pending}

	deps.store.EXPECT().GetUserByHandle(ctx, "bob").Return(&user.User{ID: "user-2", Handle: "bob"}, nil).Once()
	deps.store.EXPECT().GetFriendshipBetween(ctx, "user-1", "user-2").Return(edge, nil).Once()
	deps.store.EXPECT().AcceptFriendship(ctx, "f-1", "user-1").Return(nil).Once()

	got, err := svc.Invite(ctx, "user-1", &friend.InviteRequest{Handle: "bob"})
	require.NoError(t, err)
	assert.Equal(t, friend.Accepted, got.Status)
	assert.Equal(t, "user-2", got.UserID)
}

func TestFriendService_Accept(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	edge := &friend.Friend{ID: "f-1", RequesterID: "user-2", AddresseeID: "user-1", Status: friend.Pending}

	deps.store.EXPECT().GetFriendship(ctx, "f-1").Return(edge, nil).Once()
	deps.store.EXPECT().AcceptFriendship(ctx, "f-1", "user-1").Return(nil).Once()
	deps.store.EXPECT().GetUserByID(ctx, "user-2").Return(&user.User{ID: "user-2", Name: "Bob"}, nil).Once()

	got, err := svc.Accept(ctx, "user-1", "f-1")
	require.NoError(t, err)
	assert.Equal(t, friend.Accepted, got.Status)
	assert.Equal(t, "Bob", got.Name)
	assert.True(t, got.Since.Equal(fixedNow))
}

func TestFriendService_Accept_NotAddressee(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	edge := &friend.Friend{ID: "f-1", RequesterID: "user-1", AddresseeID: "user-2", Status: friend.Pending}

	deps.store.EXPECT().GetFriendship(ctx, "f-1").Return(edge, nil).Once()

	_, err := svc.Accept(ctx, "user-1", "f-1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}

func TestFriendService_Accept_RaceLost(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	edge := &friend.Friend{ID: "f-1", RequesterID: "user-2", AddresseeID: "user-1", Status: friend.Pending}

	deps.store.EXPECT().GetFriendship(ctx, "f-1").Return(edge, nil).Once()
	deps.store.EXPECT().AcceptFriendship(ctx, "f-1", "user-1").Return(userstore.ErrFriendshipNotFound).Once()

	_, err := svc.Accept(ctx, "user-1", "f-1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataConflict))
}

func TestFriendService_List(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	edges := []*friend.Friend{
		{ID: "f-1", RequesterID: "user-1", AddresseeID: "user-2", Status: friend.Accepted},
		{ID: "f-2", RequesterID: "user-3", AddresseeID: "user-1", Status: friend.Pending},
		{ID: "f-3", RequesterID: "user-1", AddresseeID: "user-4", Status: friend.Pending},
	}

	deps.store.EXPECT().ListFriendships(ctx, "user-1").Return(edges, nil).Once()
	deps.store.EXPECT().GetUsers(ctx, []string{"user-2", "user-3", "user-4"}).Return([]*user.User{
		{ID: "user-2", Handle: "bob"},
		{ID: "user-3", Handle: "carol"},
	}, nil).Once()

	got, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got.Friends, 1)
	assert.Equal(t, "bob", got.Friends[0].Handle)
	require.Len(t, got.Incoming, 1)
	assert.Equal(t, "carol", got.Incoming[0].Handle)
	require.Len(t, got.Outgoing, 1)
	assert.Empty(t, got.Outgoing[0].Handle)
}

func TestFriendService_List_Empty(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.store.EXPECT().ListFriendships(ctx, "user-1").Return(nil, nil).Once()

	got, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, got.Friends)
	assert.Empty(t, got.Friends)
}

func TestFriendService_Visit(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	edge := &friend.Friend{ID: "f-1", RequesterID: "user-1", AddresseeID: "user-2", Status: friend.Accepted}
	room := &dashboard.VisitRoom{Pet: dashboard.NewRoomPet(&pet.Pet{ID: "pet-2", Mood: 80, Fullness: 80})}

	deps.store.EXPECT().GetFriendshipBetween(ctx, "user-1", "user-2").Return(edge, nil).Once()
	deps.store.EXPECT().GetUserByID(ctx, "user-2").Return(&user.User{ID: "user-2", Handle: "bob"}, nil).Once()
	deps.rooms.EXPECT().GetVisitRoom(ctx, "user-2").Return(room, nil).Once()
	deps.missions.EXPECT().RecordProgress(ctx, "user-1", mission.CodeDailyVisitFriend).
		Return(&mission.Completion{ID: "mu-1", Code: mission.CodeDailyVisitFriend, Reward: 5}, nil).Once()

	got, err := svc.Visit(ctx, "user-1", "user-2")
	require.NoError(t, err)
	assert.Same(t, room, got.Room)
	assert.Equal(t, "bob", got.Friend.Handle)
	require.NotNil(t, got.MissionCompleted)
	assert.Equal(t, mission.CodeDailyVisitFriend, got.MissionCompleted.Code)
}

func TestFriendService_Visit_MissionFailureIgnored(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	edge := &friend.Friend{ID: "f-1", RequesterID: "user-2", AddresseeID: "user-1", Status: friend.Accepted}

	deps.store.EXPECT().GetFriendshipBetween(ctx, "user-1", "user-2").Return(edge, nil).Once()
	deps.store.EXPECT().GetUserByID(ctx, "user-2").Return(&user.User{ID: "user-2"}, nil).Once()
	deps.rooms.EXPECT().GetVisitRoom(ctx, "user-2").Return(&dashboard.VisitRoom{}, nil).Once()
	deps.missions.EXPECT().RecordProgress(ctx, "user-1", mission.CodeDailyVisitFriend).
		Return(nil, errors.New("db down")).Once()

	got, err := svc.Visit(ctx, "user-1", "user-2")
	require.NoError(t, err)
	assert.Nil(t, got.MissionCompleted)
}

func TestFriendService_Visit_NotFriends(t *testing.T) {
	tests := []struct {
		name string
		edge *friend.Friend
		err  error
	}{
		{name: "no edge", err: userstore.ErrFriendshipNotFound},
		{name: "pending", edge: &friend.Friend{ID: "f-1", RequesterID: "user-1", AddresseeID: "user-2", Status: friend.Pending}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, deps := newTestService(t)

			deps.store.EXPECT().GetFriendshipBetween(ctx, "user-1", "user-2").Return(tt.edge, tt.err).Once()

			_, err := svc.Visit(ctx, "user-1", "user-2")
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryForbidden))
		})
	}
}
