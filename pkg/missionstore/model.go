package missionstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/finpet/finpet-api/pkg/mission"
)

// MissionDao maps to the 'missions' catalog table.
type MissionDao struct {
	bun.BaseModel `bun:"table:missions,alias:m"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	Code          string    `bun:"code,unique,notnull,type:varchar(64)"`
	Title         string    `bun:"title,notnull,type:varchar(100)"`
	Description   *string   `bun:"description,type:text"`
	Period        string    `bun:"period,notnull,type:varchar(16)"`
	Target        int       `bun:"target,notnull,default:1"`
	Reward        int       `bun:"reward,notnull,default:0"`
	Active        bool      `bun:"active,notnull,default:true"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// MissionUserDao maps to 'mission_users'. One row per user, mission and period.
type MissionUserDao struct {
	bun.BaseModel `bun:"table:mission_users,alias:mu"`
	ID            string     `bun:"id,pk,type:varchar(36)"`
	UserID        string     `bun:"user_id,notnull,type:varchar(64),unique:mission_users_user_mission_period"`
	MissionID     string     `bun:"mission_id,notnull,type:varchar(36),unique:mission_users_user_mission_period"`
	PeriodStart   time.Time  `bun:"period_start,notnull,type:timestamptz,unique:mission_users_user_mission_period"`
	Progress      int        `bun:"progress,notnull,default:0"`
	Completed     bool       `bun:"completed,notnull,default:false"`
	Claimed       bool       `bun:"claimed,notnull,default:false"`
	CompletedAt   *time.Time `bun:"completed_at,type:timestamptz"`
	ClaimedAt     *time.Time `bun:"claimed_at,type:timestamptz"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	Mission *MissionDao `bun:"rel:belongs-to,join:mission_id=id"`
}

func toMission(dao *MissionDao) *mission.Mission {
	m := &mission.Mission{
		ID:     dao.ID,
		Code:   dao.Code,
		Title:  dao.Title,
		Period: mission.Period(dao.Period),
		Target: dao.Target,
		Reward: dao.Reward,
	}
	if dao.Description != nil {
		m.Description = *dao.Description
	}
	return m
}

// ToMissionDao converts a catalog entry for seeding.
func ToMissionDao(m *mission.Mission) *MissionDao {
	dao := &MissionDao{
		ID:     m.ID,
		Code:   m.Code,
		Title:  m.Title,
		Period: string(m.Period),
		Target: m.Target,
		Reward: m.Reward,
		Active: true,
	}
	if m.Description != "" {
		dao.Description = &m.Description
	}
	return dao
}

func toProgress(dao *MissionUserDao) mission.Progress {
	p := mission.Progress{
		ID:          dao.ID,
		UserID:      dao.UserID,
		MissionID:   dao.MissionID,
		PeriodStart: dao.PeriodStart,
		Progress:    dao.Progress,
		Completed:   dao.Completed,
		Claimed:     dao.Claimed,
		CompletedAt: dao.CompletedAt,
		ClaimedAt:   dao.ClaimedAt,
	}
	if dao.Mission != nil {
		p.Mission = toMission(dao.Mission)
	}
	return p
}
