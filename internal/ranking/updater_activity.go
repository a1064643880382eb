package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/internal/model"
	"github.com/geeklink/ranking-service/internal/period"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

// ActivityUpdater ranks users by in-app activity: timeline posts plus
// hosted events, read from the local store instead of an external API.
// Every registered user is eligible; no credential is involved.
type ActivityUpdater struct {
	Logger   log.Logger
	Config   *cfg.Config
	Users    AllUserSource
	Posts    ActivityCounter
	Events   ActivityCounter
	Writer   Writer
	Guard    *Guard
	Notifier *Notifier
}

// userActivity is the per-user record the activity adapter produces.
type userActivity struct {
	postCount  int64
	eventCount int64
}

func NewActivityUpdater(logger log.Logger, config *cfg.Config, mysql *db.Mysql, writer Writer, guard *Guard, notifier *Notifier) (*ActivityUpdater, error) {
	userMd, err := model.NewUser(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create user model: %w", err)
	}
	postMd, err := model.NewPost(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create post model: %w", err)
	}
	eventMd, err := model.NewEvent(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create event model: %w", err)
	}

	return &ActivityUpdater{
		Logger:   logger,
		Config:   config,
		Users:    userMd,
		Posts:    postMd,
		Events:   eventMd,
		Writer:   writer,
		Guard:    guard,
		Notifier: notifier,
	}, nil
}

func (u *ActivityUpdater) Source() Source {
	return SourceActivity
}

func (u *ActivityUpdater) Update(ctx context.Context, p period.Period) ([]Entry, error) {
	table, err := TableFor(SourceActivity, p)
	if err != nil {
		return nil, err
	}
	unlock := u.Guard.Lock(table)
	defer unlock()

	window := period.Resolve(p, time.Now())
	u.Logger.Info(ctx, "Updating %s, window since %s",
		table.Name(), window.Start.Format(time.RFC3339))

	accounts, err := u.Users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	// Local store reads only, so no fetch timeout is applied here.
	slots := fanOut(ctx, u.Logger, 0, accounts,
		func(fetchCtx context.Context, account model.Account) (userActivity, error) {
			postCount, err := u.Posts.CountSince(fetchCtx, account.UserID, window.Start)
			if err != nil {
				return userActivity{}, err
			}
			eventCount, err := u.Events.CountSince(fetchCtx, account.UserID, window.Start)
			if err != nil {
				return userActivity{}, err
			}
			return userActivity{postCount: postCount, eventCount: eventCount}, nil
		})

	entries := make([]Entry, 0, len(slots))
	for _, slot := range slots {
		if !slot.ok {
			continue
		}
		entries = append(entries, Entry{
			UserID: slot.account.UserID,
			Score:  ActivityScore(slot.data.postCount, slot.data.eventCount),
		})
	}

	ranked := Rank(entries)
	if err := u.Writer.Replace(ctx, table, ranked); err != nil {
		return nil, err
	}
	u.Notifier.NotifyRefreshed(ctx, table, len(ranked))

	u.Logger.Info(ctx, "Replaced %s with %d of %d users", table.Name(), len(ranked), len(accounts))
	return topN(u.Config, ranked), nil
}
