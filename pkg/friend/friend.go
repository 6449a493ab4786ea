// Package friend models friendship edges between users.
package friend

import (
	"time"

	"github.com/finpet/finpet-api/pkg/dashboard"
	"github.com/finpet/finpet-api/pkg/mission"
	"github.com/finpet/finpet-api/pkg/user"
)

// Status of a friendship edge.
type Status string

const (
	Pending  Status = "PENDING"
	Accepted Status = "ACCEPTED"
)

// Friend is a directed edge from the requester to the addressee. An accepted
// edge represents a symmetric friendship.
type Friend struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requesterId"`
	AddresseeID string    `json:"addresseeId"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Other returns the user on the other end of the edge.
func (f *Friend) Other(userID string) string {
	if f.RequesterID == userID {
		return f.AddresseeID
	}
	return f.RequesterID
}

// Involves reports whether userID is either end of the edge.
func (f *Friend) Involves(userID string) bool {
	return f.RequesterID == userID || f.AddresseeID == userID
}

// Profile is a friend as shown in the friend list.
type Profile struct {
	FriendshipID string    `json:"friendshipId"`
	UserID       string    `json:"id"`
	Handle       string    `json:"userID,omitempty"`
	Name         string    `json:"name,omitempty"`
	Image        string    `json:"image,omitempty"`
	Status       Status    `json:"status"`
	Incoming     bool      `json:"incoming"`
	Since        time.Time `json:"since"`
}

// InviteRequest is the body of POST /api/friends.
type InviteRequest struct {
	Handle string `json:"userID" validate:"required,min=3,max=32"`
}

// NewProfile describes the other end of f as seen by viewerID. other may be
// nil when the user row is gone.
func NewProfile(f *Friend, viewerID string, other *user.User) Profile {
	p := Profile{
		FriendshipID: f.ID,
		UserID:       f.Other(viewerID),
		Status:       f.Status,
		Incoming:     f.AddresseeID == viewerID,
		Since:        f.UpdatedAt,
	}
	if other != nil {
		p.Handle = other.Handle
		p.Name = other.Name
		p.Image = other.Image
	}
	return p
}

// Overview splits a user's edges into friends and open invitations.
type Overview struct {
	Friends  []Profile `json:"friends"`
	Incoming []Profile `json:"incoming"`
	Outgoing []Profile `json:"outgoing"`
}

// Summarize builds the Overview of viewerID from its edges. users is keyed by
// user id.
func Summarize(edges []*Friend, viewerID string, users map[string]*user.User) Overview {
	o := Overview{Friends: []Profile{}, Incoming: []Profile{}, Outgoing: []Profile{}}
	seen := make(map[string]struct{}, len(edges))
	for _, f := range edges {
		if !f.Involves(viewerID) {
			continue
		}
		other := f.Other(viewerID)
		p := NewProfile(f, viewerID, users[other])
		switch {
		case f.Status == Accepted:
			if _, dup := seen[other]; dup {
				continue
			}
			seen[other] = struct{}{}
			o.Friends = append(o.Friends, p)
		case p.Incoming:
			o.Incoming = append(o.Incoming, p)
		default:
			o.Outgoing = append(o.Outgoing, p)
		}
	}
	return o
}

// Visit is a friend's room as seen by a visitor.
type Visit struct {
	Friend           Profile              `json:"friend"`
	Room             *dashboard.VisitRoom `json:"room"`
	MissionCompleted *mission.Completion  `json:"missionCompleted,omitempty"`
}
