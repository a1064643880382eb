package model

import "time"

// Row types for the persisted ranking tables. Each (source, period) pair has
// its own table; the concrete table name is supplied per write via the
// ranking.Table handle, so these carry no TableName of their own.

type ContributionRank struct {
	ID                uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID            string    `json:"user_id" gorm:"column:user_id;type:varchar(36);not null"`
	ContributionCount int       `json:"contribution_count" gorm:"column:contribution_count;default:0"`
	Rank              int       `json:"rank" gorm:"column:rank;not null"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"column:updated_at"`
}

type StarRank struct {
	ID         uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"column:user_id;type:varchar(36);not null"`
	TotalStars int       `json:"total_stars" gorm:"column:total_stars;default:0"`
	Rank       int       `json:"rank" gorm:"column:rank;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

type QiitaRank struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"column:user_id;type:varchar(36);not null"`
	Score     int       `json:"score" gorm:"column:score;default:0"`
	Rank      int       `json:"rank" gorm:"column:rank;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

type ActivityRank struct {
	ID            uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID        string    `json:"user_id" gorm:"column:user_id;type:varchar(36);not null"`
	ActivityScore int       `json:"activity_score" gorm:"column:activity_score;default:0"`
	Rank          int       `json:"rank" gorm:"column:rank;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}
