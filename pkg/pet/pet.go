// Package pet holds the virtual pet domain model and the pure state
// transitions applied to it: the once-per-day decay, the login streak and the
// mood nudges caused by recorded transactions.
package pet

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MinStat and MaxStat bound mood and fullness.
	MinStat = 0
	MaxStat = 100

	unhappyBelow = 30
	hungryBelow  = 30

	maxMoodNudge  = 5
	nudgeDivisor  = 20
	defaultName   = "Piggy"
	defaultPoints = 50
	defaultStat   = 70
)

// Pet is the per-user companion whose stats reflect tracking consistency.
type Pet struct {
	ID                   string     `json:"id"`
	UserID               string     `json:"userId"`
	Name                 string     `json:"name"`
	ImageURL             string     `json:"imageUrl,omitempty"`
	Points               int        `json:"points"`
	Fullness             int        `json:"fullness"`
	Mood                 int        `json:"mood"`
	LastLoginDate        *time.Time `json:"lastLoginDate,omitempty"`
	LastDailyReset       *time.Time `json:"lastDailyReset,omitempty"`
	ConsecutiveLoginDays int        `json:"consecutiveLoginDays"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// IsUnhappy reports whether the pet's mood is low enough to show distress.
func (p *Pet) IsUnhappy() bool {
	return p.Mood < unhappyBelow
}

// IsHungry reports whether the pet needs feeding.
func (p *Pet) IsHungry() bool {
	return p.Fullness < hungryBelow
}

// Rules are the tunable constants of the daily transition.
type Rules struct {
	MoodDecay      int
	FullnessDecay  int
	LoginMoodBonus int
	StreakTarget   int
	StreakBonus    int
}

// DefaultRules mirrors the configuration defaults.
func DefaultRules() Rules {
	return Rules{
		MoodDecay:      25,
		FullnessDecay:  10,
		LoginMoodBonus: 5,
		StreakTarget:   5,
		StreakBonus:    20,
	}
}

// NewDefault builds the pet created lazily on a user's first dashboard visit.
// It is already reset and logged in for today so that the first payload shows
// the default stats unchanged.
func NewDefault(id, userID string, now time.Time, loc *time.Location) *Pet {
	today := StartOfDay(now, loc)
	login := now
	return &Pet{
		ID:                   id,
		UserID:               userID,
		Name:                 defaultName,
		Points:               defaultPoints,
		Fullness:             defaultStat,
		Mood:                 defaultStat,
		LastLoginDate:        &login,
		LastDailyReset:       &today,
		ConsecutiveLoginDays: 1,
		CreatedAt:            now,
	}
}

// Transition is the outcome of ApplyDailyTransition. When Changed is false Pet
// equals the input and nothing needs to be persisted.
type Transition struct {
	Pet         Pet
	Changed     bool
	Decayed     bool
	LoggedIn    bool
	StreakBonus bool
}

// ApplyDailyTransition applies the once-per-day decay and the first-visit
// login bonus and streak accounting. Calling it again on its own output for
// the same calendar day is a no-op.
func ApplyDailyTransition(p Pet, now time.Time, loc *time.Location, rules Rules) Transition {
	today := StartOfDay(now, loc)
	t := Transition{Pet: p}

	if p.LastDailyReset == nil || StartOfDay(*p.LastDailyReset, loc).Before(today) {
		t.Pet.Mood = Clamp(t.Pet.Mood - rules.MoodDecay)
		t.Pet.Fullness = Clamp(t.Pet.Fullness - rules.FullnessDecay)
		reset := today
		t.Pet.LastDailyReset = &reset
		t.Decayed = true
	}

	if p.LastLoginDate == nil || StartOfDay(*p.LastLoginDate, loc).Before(today) {
		t.Pet.Mood = Clamp(t.Pet.Mood + rules.LoginMoodBonus)
		login := now
		t.Pet.LastLoginDate = &login
		t.LoggedIn = true

		yesterday := today.AddDate(0, 0, -1)
		if p.LastLoginDate != nil && StartOfDay(*p.LastLoginDate, loc).Equal(yesterday) {
			t.Pet.ConsecutiveLoginDays = p.ConsecutiveLoginDays + 1
			if rules.StreakTarget > 0 && t.Pet.ConsecutiveLoginDays >= rules.StreakTarget {
				t.Pet.Points += rules.StreakBonus
				t.Pet.ConsecutiveLoginDays = 0
				t.StreakBonus = true
			}
		} else {
			t.Pet.ConsecutiveLoginDays = 1
		}
	}

	t.Changed = t.Decayed || t.LoggedIn
	return t
}

// MoodNudge returns the mood delta caused by recording a transaction of the
// given amount: floor(amount/20)+1 capped at 5, positive for income and
// negative for expenses. Non-positive amounts do not move the mood.
func MoodNudge(amount decimal.Decimal, income bool) int {
	if !amount.IsPositive() {
		return 0
	}
	magnitude := int(amount.Div(decimal.NewFromInt(nudgeDivisor)).IntPart()) + 1
	if magnitude > maxMoodNudge {
		magnitude = maxMoodNudge
	}
	if income {
		return magnitude
	}
	return -magnitude
}

// Clamp bounds v to [MinStat, MaxStat].
func Clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
