package models

import (
	"time"

	"github.com/google/uuid"
)

type Rank struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"size:10;not null;unique" json:"user_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	TotalTeam  int       `gorm:"default:0" json:"total_team"`
	DirectTeam int       `gorm:"default:0" json:"direct_team"`
	Points     float64   `gorm:"default:0" json:"points"`

	Rewards []RankReward `gorm:"foreignKey:RankID" json:"rewards"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RankReward struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RankID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	RankName   string    `gorm:"size:100;not null" json:"rank_name"`
	Status     string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	AchievedAt time.Time `gorm:"not null" json:"achieved_at"`
}
