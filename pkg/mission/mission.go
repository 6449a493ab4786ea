// Package mission models the mission catalog and per-user progress.
package mission

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Period is how often a mission's progress resets.
type Period string

const (
	Daily  Period = "daily"
	Weekly Period = "weekly"
)

// Seeded mission codes.
const (
	CodeDailyTransaction  = "daily_record_transaction"
	CodeWeeklyTransaction = "weekly_record_transaction"
	CodeDailyVisitFriend  = "daily_visit_friend"
)

// UnclaimedWindow bounds how long a completed mission stays in the
// unclaimed summary.
const UnclaimedWindow = 24 * time.Hour

// Mission is a catalog entry.
type Mission struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Period      Period `json:"type"`
	Target      int    `json:"target"`
	Reward      int    `json:"reward"`
}

// Progress is a user's progress on a mission for one period.
type Progress struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	MissionID   string     `json:"missionId"`
	PeriodStart time.Time  `json:"periodStart"`
	Progress    int        `json:"progress"`
	Completed   bool       `json:"completed"`
	Claimed     bool       `json:"claimed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	ClaimedAt   *time.Time `json:"claimedAt,omitempty"`
	Mission     *Mission   `json:"mission,omitempty"`
}

// Claimable reports whether the reward can be paid out.
func (p *Progress) Claimable() bool {
	return p.Completed && !p.Claimed
}

// Summary is the dashboard view of a completed, unclaimed mission.
type Summary struct {
	ID          string    `json:"id"`
	MissionID   string    `json:"missionId"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Reward      int       `json:"reward"`
	CompletedAt time.Time `json:"completedAt"`
}

// Completion is returned when an increment completes a mission.
type Completion struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Title  string `json:"title"`
	Reward int    `json:"reward"`
}

// Status is a mission together with the caller's progress in the current period.
type Status struct {
	Mission
	ProgressID  string     `json:"progressId,omitempty"`
	PeriodStart time.Time  `json:"periodStart"`
	Progress    int        `json:"progress"`
	Completed   bool       `json:"completed"`
	Claimed     bool       `json:"claimed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ClaimResult is returned after a reward is paid out.
type ClaimResult struct {
	ID        string `json:"id"`
	MissionID string `json:"missionId"`
	Reward    int    `json:"reward"`
	PetPoints int    `json:"petPoints"`
}

// Seed returns the built-in mission catalog. IDs are derived from the code
// so seeding is repeatable.
func Seed() []Mission {
	seed := []Mission{
		{Code: CodeDailyTransaction, Title: "Record a transaction", Description: "Log one expense or income today.", Period: Daily, Target: 1, Reward: 10},
		{Code: CodeWeeklyTransaction, Title: "Keep the streak", Description: "Log five transactions this week.", Period: Weekly, Target: 5, Reward: 30},
		{Code: CodeDailyVisitFriend, Title: "Visit a friend", Description: "Drop by a friend's pet room.", Period: Daily, Target: 1, Reward: 5},
	}
	for i := range seed {
		seed[i].ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("finpet.mission."+seed[i].Code)).String()
	}
	return seed
}

// PeriodStart returns the start of the period containing now: local
// midnight for daily missions, local Monday midnight for weekly ones.
func PeriodStart(p Period, now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if p != Weekly {
		return day
	}
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Unclaimed filters progress rows down to completed, unclaimed missions
// finished within UnclaimedWindow of now, newest first.
func Unclaimed(rows []Progress, now time.Time) []Summary {
	cutoff := now.Add(-UnclaimedWindow)
	out := make([]Summary, 0)
	for _, p := range rows {
		if !p.Claimable() || p.CompletedAt == nil || p.CompletedAt.Before(cutoff) {
			continue
		}
		s := Summary{ID: p.ID, MissionID: p.MissionID, CompletedAt: *p.CompletedAt}
		if p.Mission != nil {
			s.Code = p.Mission.Code
			s.Title = p.Mission.Title
			s.Reward = p.Mission.Reward
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out
}

// EarliestPeriodStart is the oldest period start any catalog mission can
// have at now. Progress rows older than this are history.
func EarliestPeriodStart(now time.Time, loc *time.Location) time.Time {
	return PeriodStart(Weekly, now, loc)
}

// Statuses pairs each mission with its progress row for the period
// containing now. Missions without a row report zero progress.
func Statuses(missions []*Mission, rows []Progress, now time.Time, loc *time.Location) []Status {
	out := make([]Status, 0, len(missions))
	for _, m := range missions {
		st := Status{Mission: *m, PeriodStart: PeriodStart(m.Period, now, loc)}
		for _, p := range rows {
			if p.MissionID != m.ID || !p.PeriodStart.Equal(st.PeriodStart) {
				continue
			}
			st.ProgressID = p.ID
			st.Progress = p.Progress
			st.Completed = p.Completed
			st.Claimed = p.Claimed
			st.CompletedAt = p.CompletedAt
			break
		}
		out = append(out, st)
	}
	return out
}
