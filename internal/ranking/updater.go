// Package ranking implements the leaderboard recomputation pipeline: list
// eligible users, fetch their activity from the relevant source, score and
// rank them, and atomically replace the persisted table for the
// (source, period) pair.

package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	githubapi "github.com/geeklink/ranking-service/internal/github_api"
	"github.com/geeklink/ranking-service/internal/model"
	"github.com/geeklink/ranking-service/internal/period"
	qiitaapi "github.com/geeklink/ranking-service/internal/qiita_api"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

const defaultTopN = 5

// Updater recomputes one ranking family for a period and returns the top
// entries for the triggering caller.
type Updater interface {
	Source() Source
	Update(ctx context.Context, p period.Period) ([]Entry, error)
}

// Collaborator contracts. The concrete implementations live in
// internal/model and the API caller packages; tests substitute fakes.

type GithubUserSource interface {
	GithubLinked(ctx context.Context) ([]model.Account, error)
}

type QiitaUserSource interface {
	QiitaLinked(ctx context.Context) ([]model.Account, error)
}

type AllUserSource interface {
	All(ctx context.Context) ([]model.Account, error)
}

type ContributionCalendarCaller interface {
	ContributionCalendar(ctx context.Context, username, accessToken string, from, to time.Time) ([]githubapi.ContributionDay, error)
}

type CommitContributionsCaller interface {
	CommitContributionsByRepository(ctx context.Context, username, accessToken string, from, to time.Time) ([]githubapi.RepositoryContribution, error)
}

type QiitaItemsCaller interface {
	Items(ctx context.Context, accessToken string, createdSince time.Time) ([]qiitaapi.Article, error)
}

// ActivityCounter counts rows owned by one user created at or after a
// cutoff. Both the post and the event models satisfy it.
type ActivityCounter interface {
	CountSince(ctx context.Context, userID string, since time.Time) (int64, error)
}

// FactoryUpdater builds the updater for a ranking source. Writer, guard and
// notifier are shared across families.
func FactoryUpdater(source Source, logger log.Logger, config *cfg.Config, mysql *db.Mysql, writer Writer, guard *Guard, notifier *Notifier) (Updater, error) {
	switch source {
	case SourceContribution:
		return NewContributionUpdater(logger, config, mysql, writer, guard, notifier)
	case SourceContributionStar:
		return NewContributionStarUpdater(logger, config, mysql, writer, guard, notifier)
	case SourceQiita:
		return NewQiitaUpdater(logger, config, mysql, writer, guard, notifier)
	case SourceActivity:
		return NewActivityUpdater(logger, config, mysql, writer, guard, notifier)
	default:
		return nil, fmt.Errorf("unsupported ranking source: %s", source)
	}
}

func topN(config *cfg.Config, ranked []Entry) []Entry {
	n := config.Ranking.TopN
	if n <= 0 {
		n = defaultTopN
	}
	return TopN(ranked, n)
}
