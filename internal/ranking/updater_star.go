package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	githubapi "github.com/geeklink/ranking-service/internal/github_api"
	"github.com/geeklink/ranking-service/internal/model"
	"github.com/geeklink/ranking-service/internal/period"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

// ContributionStarUpdater ranks users by the stars of the repositories they
// committed to during the period window. Star counts are the current
// snapshot at call time, not historical values.
type ContributionStarUpdater struct {
	Logger   log.Logger
	Config   *cfg.Config
	Users    GithubUserSource
	Github   CommitContributionsCaller
	Writer   Writer
	Guard    *Guard
	Notifier *Notifier
}

func NewContributionStarUpdater(logger log.Logger, config *cfg.Config, mysql *db.Mysql, writer Writer, guard *Guard, notifier *Notifier) (*ContributionStarUpdater, error) {
	userMd, err := model.NewUser(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create user model: %w", err)
	}

	return &ContributionStarUpdater{
		Logger:   logger,
		Config:   config,
		Users:    userMd,
		Github:   githubapi.NewCaller(logger, config),
		Writer:   writer,
		Guard:    guard,
		Notifier: notifier,
	}, nil
}

func (u *ContributionStarUpdater) Source() Source {
	return SourceContributionStar
}

func (u *ContributionStarUpdater) Update(ctx context.Context, p period.Period) ([]Entry, error) {
	table, err := TableFor(SourceContributionStar, p)
	if err != nil {
		return nil, err
	}
	unlock := u.Guard.Lock(table)
	defer unlock()

	window := period.Resolve(p, time.Now())
	u.Logger.Info(ctx, "Updating %s, window %s .. %s",
		table.Name(), window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))

	accounts, err := u.Users.GithubLinked(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list github-linked users: %w", err)
	}

	timeout := time.Duration(u.Config.GithubApi.FetchTimeoutSec) * time.Second
	slots := fanOut(ctx, u.Logger, timeout, accounts,
		func(fetchCtx context.Context, account model.Account) ([]githubapi.RepositoryContribution, error) {
			return u.Github.CommitContributionsByRepository(fetchCtx, account.Username, account.AccessToken, window.Start, window.End)
		})

	entries := make([]Entry, 0, len(slots))
	for _, slot := range slots {
		if !slot.ok {
			continue
		}
		entries = append(entries, Entry{
			UserID: slot.account.UserID,
			Score:  StarScore(slot.data),
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
