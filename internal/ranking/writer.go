package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/internal/model"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
	"gorm.io/gorm"
)

// JST offset applied to every persisted updated_at stamp.
const jstOffset = 9 * time.Hour

const defaultInsertBatchSize = 100

// Writer replaces the full contents of one ranking table with a freshly
// ranked list.
type Writer interface {
	Replace(ctx context.Context, table Table, entries []Entry) error
}

// MysqlWriter persists rankings through gorm. Delete and insert run inside
// a single transaction so a failed insert can never leave the table empty.
type MysqlWriter struct {
	Logger log.Logger
	Config *cfg.Config
	Mysql  *db.Mysql
}

func NewMysqlWriter(logger log.Logger, config *cfg.Config, mysql *db.Mysql) (*MysqlWriter, error) {
	return &MysqlWriter{
		Logger: logger,
		Config: config,
		Mysql:  mysql,
	}, nil
}

func (w *MysqlWriter) Replace(ctx context.Context, table Table, entries []Entry) error {
	database, err := w.Mysql.Db()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	// One stamp per run, shared by every row of the write.
	stampedAt := JstStamp(time.Now())
	rows := BuildRows(table, entries, stampedAt)

	batchSize := w.Config.Ranking.InsertBatchSize
	if batchSize <= 0 {
		batchSize = defaultInsertBatchSize
	}

	return database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM `" + table.Name() + "`").Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table.Name(), err)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := tx.Table(table.Name()).CreateInBatches(rows, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table.Name(), err)
		}
		return nil
	})
}

// JstStamp shifts an instant by +9h. Persisted updated_at values have
// always been stored this way; changing it would break the reading client.
func JstStamp(now time.Time) time.Time {
	return now.UTC().Add(jstOffset)
}

// BuildRows maps ranked entries onto the row type of the table's family.
func BuildRows(table Table, entries []Entry, stampedAt time.Time) interface{} {
	switch table.Source() {
	case SourceContribution:
		rows := make([]model.ContributionRank, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, model.ContributionRank{
				UserID:            entry.UserID,
				ContributionCount: entry.Score,
				Rank:              entry.Rank,
				CreatedAt:         stampedAt,
				UpdatedAt:         stampedAt,
			})
		}
		return rows
	case SourceContributionStar:
		rows := make([]model.StarRank, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, model.StarRank{
				UserID:     entry.UserID,
				TotalStars: entry.Score,
				Rank:       entry.Rank,
				CreatedAt:  stampedAt,
				UpdatedAt:  stampedAt,
			})
		}
		return rows
	case SourceQiita:
		rows := make([]model.QiitaRank, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, model.QiitaRank{
				UserID:    entry.UserID,
				Score:     entry.Score,
				Rank:      entry.Rank,
				CreatedAt: stampedAt,
				UpdatedAt: stampedAt,
			})
		}
		return rows
	case SourceActivity:
		rows := make([]model.ActivityRank, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, model.ActivityRank{
				UserID:        entry.UserID,
				ActivityScore: entry.Score,
				Rank:          entry.Rank,
				CreatedAt:     stampedAt,
				UpdatedAt:     stampedAt,
			})
		}
		return rows
	default:
		panic(fmt.Sprintf("invalid ranking source: %q", string(table.Source())))
	}
}

// MigrateTables creates the twelve ranking tables when missing.
func MigrateTables(mysql *db.Mysql) error {
	database, err := mysql.Db()
	if err != nil {
		return err
	}
	for _, table := range AllTables() {
		if err := database.Table(table.Name()).AutoMigrate(rowPrototype(table.Source())); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", table.Name(), err)
		}
	}
	return nil
}

func rowPrototype(s Source) interface{} {
	switch s {
	case SourceContribution:
		return &model.ContributionRank{}
	case SourceContributionStar:
		return &model.StarRank{}
	case SourceQiita:
		return &model.QiitaRank{}
	case SourceActivity:
		return &model.ActivityRank{}
	default:
		panic(fmt.Sprintf("invalid ranking source: %q", string(s)))
	}
}
