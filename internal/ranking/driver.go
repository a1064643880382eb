package ranking

import (
	"context"
	"fmt"

	"github.com/geeklink/ranking-service/internal/period"
	"github.com/geeklink/ranking-service/pkg/log"
)

// OnlineResetter flips the online flag back for every user; concretely the
// user model.
type OnlineResetter interface {
	ResetOnline(ctx context.Context) (int64, error)
}

// Driver runs ranking refreshes across all families. Families run in
// sequence; the fan-out inside each family is what runs in parallel.
type Driver struct {
	Logger   log.Logger
	Updaters []Updater
	Users    OnlineResetter
}

func NewDriver(logger log.Logger, updaters []Updater, users OnlineResetter) (*Driver, error) {
	return &Driver{
		Logger:   logger,
		Updaters: updaters,
		Users:    users,
	}, nil
}

// UpdateAll refreshes the weekly and monthly ranking of every family.
// The daily variants have their own, more frequent trigger.
func (d *Driver) UpdateAll(ctx context.Context) error {
	for _, updater := range d.Updaters {
		for _, p := range []period.Period{period.Weekly, period.Monthly} {
			if _, err := updater.Update(ctx, p); err != nil {
				d.Logger.Error(ctx, "Failed to update %s %s ranking: %v", p, updater.Source(), err)
				return fmt.Errorf("%s %s ranking: %w", p, updater.Source(), err)
			}
		}
	}
	return nil
}

// UpdateDaily refreshes the daily ranking of every family, then resets the
// online flags as a side task of the daily cycle.
func (d *Driver) UpdateDaily(ctx context.Context) error {
	for _, updater := range d.Updaters {
		if _, err := updater.Update(ctx, period.Daily); err != nil {
			d.Logger.Error(ctx, "Failed to update daily %s ranking: %v", updater.Source(), err)
			return fmt.Errorf("daily %s ranking: %w", updater.Source(), err)
		}
	}

	reset, err := d.Users.ResetOnline(ctx)
	if err != nil {
		return fmt.Errorf("reset online users: %w", err)
	}
	d.Logger.Info(ctx, "Reset %d online users", reset)
	return nil
}
