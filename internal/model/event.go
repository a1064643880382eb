package model

import (
	"context"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

// Event maps the events table of user-hosted events.
type Event struct {
	Model
	ID        string    `json:"id" gorm:"column:id;primaryKey;type:varchar(36)"`
	OwnerID   string    `json:"owner_id" gorm:"column:owner_id;type:varchar(36);index"`
	Title     string    `json:"title" gorm:"column:title;type:varchar(255)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func NewEvent(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Event, error) {
	event := &Event{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return event, nil
}

func (e *Event) TableName() string {
	return "events"
}

// CountSince counts the events a user owns created at or after the cutoff.
func (e *Event) CountSince(ctx context.Context, ownerID string, since time.Time) (int64, error) {
	db, err := e.Mysql.Db()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&Event{}).
		Where("owner_id = ? AND created_at >= ?", ownerID, since).
		Count(&count).Error; err != nil {
		e.Logger.Error(ctx, "Failed to count events for user %s: %v", ownerID, err)
		return 0, err
	}
	return count, nil
}
