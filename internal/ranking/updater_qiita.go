package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/internal/model"
	"github.com/geeklink/ranking-service/internal/period"
	qiitaapi "github.com/geeklink/ranking-service/internal/qiita_api"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

// QiitaUpdater ranks users by the engagement of their Qiita articles
// created inside the period window.
type QiitaUpdater struct {
	Logger   log.Logger
	Config   *cfg.Config
	Users    QiitaUserSource
	Qiita    QiitaItemsCaller
	Writer   Writer
	Guard    *Guard
	Notifier *Notifier
}

func NewQiitaUpdater(logger log.Logger, config *cfg.Config, mysql *db.Mysql, writer Writer, guard *Guard, notifier *Notifier) (*QiitaUpdater, error) {
	userMd, err := model.NewUser(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create user model: %w", err)
	}

	return &QiitaUpdater{
		Logger:   logger,
		Config:   config,
		Users:    userMd,
		Qiita:    qiitaapi.NewCaller(logger, config),
		Writer:   writer,
		Guard:    guard,
		Notifier: notifier,
	}, nil
}

func (u *QiitaUpdater) Source() Source {
	return SourceQiita
}

func (u *QiitaUpdater) Update(ctx context.Context, p period.Period) ([]Entry, error) {
	table, err := TableFor(SourceQiita, p)
	if err != nil {
		return nil, err
	}
	unlock := u.Guard.Lock(table)
	defer unlock()

	window := period.Resolve(p, time.Now())
	u.Logger.Info(ctx, "Updating %s, window %s .. %s",
		table.Name(), window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))

	accounts, err := u.Users.QiitaLinked(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list qiita-linked users: %w", err)
	}

	timeout := time.Duration(u.Config.QiitaApi.FetchTimeoutSec) * time.Second
	slots := fanOut(ctx, u.Logger, timeout, accounts,
		func(fetchCtx context.Context, account model.Account) ([]qiitaapi.Article, error) {
			return u.Qiita.Items(fetchCtx, account.AccessToken, window.Start)
		})

	entries := make([]Entry, 0, len(slots))
	for _, slot := range slots {
		if !slot.ok {
			continue
		}
		entries = append(entries, Entry{
			UserID: slot.account.UserID,
			Score:  QiitaScore(slot.data),
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
