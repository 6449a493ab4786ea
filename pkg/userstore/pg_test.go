package userstore

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpet/finpet-api/pkg/friend"
	"github.com/finpet/finpet-api/pkg/pgutil"
	mghelper "github.com/finpet/finpet-api/pkg/pgutil/migrations"
	"github.com/finpet/finpet-api/pkg/user"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()
	requireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &UserDao{}, &FriendDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func requireDockerAccess(t *testing.T) {
	t.Helper()

	candidates := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}

	for _, sock := range candidates {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed userstore tests")
}

func newTestUser(id, email string) *user.User {
	return &user.User{ID: id, Email: email, Balance: decimal.RequireFromString("100")}
}

func TestUserPGStore_CreateAndGet(t *testing.T) {
	ctx, s := setupStore(t)

	u := newTestUser("auth|alice", "alice@example.com")
	u.Name = "Alice"
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	got, err := s.GetUser(ctx, WithID(u.ID))
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	if got.Email != u.Email || got.Name != "Alice" || got.Handle != "" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if !got.Balance.Equal(u.Balance) {
		t.Fatalf("balance mismatch: got %s want %s", got.Balance, u.Balance)
	}

	byEmail, err := s.GetUser(ctx, WithEmail(u.Email))
	if err != nil {
		t.Fatalf("GetUser(email) failed: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Fatalf("id mismatch: got %s want %s", byEmail.ID, u.ID)
	}

	_, err = s.GetUser(ctx, WithID("auth|nobody"))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	dup := newTestUser("auth|other", u.Email)
	if err := s.CreateUser(ctx, dup); !pgutil.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation for duplicate email, got %v", err)
	}
}

func TestUserPGStore_SetHandleOnce(t *testing.T) {
	ctx, s := setupStore(t)

	alice := newTestUser("auth|alice", "alice@example.com")
	bob := newTestUser("auth|bob", "bob@example.com")
	for _, u := range []*user.User{alice, bob} {
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}

	if err := s.SetHandle(ctx, alice.ID, "alice01"); err != nil {
		t.Fatalf("SetHandle() failed: %v", err)
	}
	if err := s.SetHandle(ctx, alice.ID, "alice02"); !errors.Is(err, ErrHandleAlreadySet) {
		t.Fatalf("expected ErrHandleAlreadySet, got %v", err)
	}
	if err := s.SetHandle(ctx, bob.ID, "alice01"); !errors.Is(err, ErrHandleTaken) {
		t.Fatalf("expected ErrHandleTaken, got %v", err)
	}
	if err := s.SetHandle(ctx, "auth|nobody", "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	got, err := s.GetUser(ctx, WithHandle("alice01"))
	if err != nil {
		t.Fatalf("GetUser(handle) failed: %v", err)
	}
	if got.ID != alice.ID {
		t.Fatalf("expected %s, got %s", alice.ID, got.ID)
	}
}

func TestUserPGStore_UpdateProfile(t *testing.T) {
	ctx, s := setupStore(t)

	u := newTestUser("auth|carol", "carol@example.com")
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	name := "Carol"
	if err := s.UpdateProfile(ctx, u.ID, &name, nil); err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}
	got, err := s.GetUser(ctx, WithID(u.ID))
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	if got.Name != name || got.Image != "" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if err := s.UpdateProfile(ctx, "auth|nobody", &name, nil); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserPGStore_IncrementBalance(t *testing.T) {
	ctx, s := setupStore(t)

	u := newTestUser("auth|dave", "dave@example.com")
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	deltas := []string{"25.50", "-10", "-0.25", "4.75"}
	var balance decimal.Decimal
	var err error
	for _, d := range deltas {
		balance, err = s.IncrementBalance(ctx, u.ID, decimal.RequireFromString(d))
		if err != nil {
			t.Fatalf("IncrementBalance(%s) failed: %v", d, err)
		}
	}

	want := decimal.RequireFromString("120")
	if !balance.Equal(want) {
		t.Fatalf("balance mismatch: got %s want %s", balance, want)
	}

	_, err = s.IncrementBalance(ctx, "auth|nobody", decimal.NewFromInt(1))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserPGStore_Friendships(t *testing.T) {
	ctx, s := setupStore(t)

	for _, u := range []*user.User{
		newTestUser("auth|a", "a@example.com"),
		newTestUser("auth|b", "b@example.com"),
		newTestUser("auth|c", "c@example.com"),
	} {
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}

	now := time.Now()
	ab := &friend.Friend{ID: uuid.NewString(), RequesterID: "auth|a", AddresseeID: "auth|b", Status: friend.Pending, CreatedAt: now, UpdatedAt: now}
	if err := s.CreateFriendship(ctx, ab); err != nil {
		t.Fatalf("CreateFriendship() failed: %v", err)
	}

	reverse := &friend.Friend{ID: uuid.NewString(), RequesterID: "auth|b", AddresseeID: "auth|a", Status: friend.Pending}
	if err := s.CreateFriendship(ctx, reverse); !errors.Is(err, ErrFriendshipExists) {
		t.Fatalf("expected ErrFriendshipExists for reverse edge, got %v", err)
	}

	cb := &friend.Friend{ID: uuid.NewString(), RequesterID: "auth|c", AddresseeID: "auth|b", Status: friend.Pending}
	if err := s.CreateFriendship(ctx, cb); err != nil {
		t.Fatalf("CreateFriendship() failed: %v", err)
	}

	n, err := s.CountPendingInvitations(ctx, "auth|b")
	if err != nil {
		t.Fatalf("CountPendingInvitations() failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 pending invitations, got %d", n)
	}

	// only the addressee can accept
	if err := s.AcceptFriendship(ctx, ab.ID, "auth|a"); !errors.Is(err, ErrFriendshipNotFound) {
		t.Fatalf("expected ErrFriendshipNotFound, got %v", err)
	}
	if err := s.AcceptFriendship(ctx, ab.ID, "auth|b"); err != nil {
		t.Fatalf("AcceptFriendship() failed: %v", err)
	}
	if err := s.AcceptFriendship(ctx, ab.ID, "auth|b"); !errors.Is(err, ErrFriendshipNotFound) {
		t.Fatalf("expected second accept to fail, got %v", err)
	}

	got, err := s.GetFriendshipBetween(ctx, "auth|b", "auth|a")
	if err != nil {
		t.Fatalf("GetFriendshipBetween() failed: %v", err)
	}
	if got.Status != friend.Accepted {
		t.Fatalf("expected accepted, got %s", got.Status)
	}

	list, err := s.ListFriendships(ctx, "auth|b")
	if err != nil {
		t.Fatalf("ListFriendships() failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(list))
	}

	_, err = s.GetFriendshipBetween(ctx, "auth|a", "auth|c")
	if !errors.Is(err, ErrFriendshipNotFound) {
		t.Fatalf("expected ErrFriendshipNotFound, got %v", err)
	}
}
