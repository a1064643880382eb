package model

import (
	"context"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

// Post maps the timeline table of in-app posts.
type Post struct {
	Model
	ID        string    `json:"id" gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"column:user_id;type:varchar(36);index"`
	Content   string    `json:"content" gorm:"column:content;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func NewPost(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Post, error) {
	post := &Post{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return post, nil
}

func (p *Post) TableName() string {
	return "timeline"
}

// CountSince counts the posts a user authored at or after the cutoff.
// Only a lower bound is applied; that matches how the activity ranking
// has always been computed.
func (p *Post) CountSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	db, err := p.Mysql.Db()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&Post{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error; err != nil {
		p.Logger.Error(ctx, "Failed to count posts for user %s: %v", userID, err)
		return 0, err
	}
	return count, nil
}
