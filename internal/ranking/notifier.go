package ranking

import (
	"context"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/pkg/kafka"
	"github.com/geeklink/ranking-service/pkg/log"
)

// Notifier announces refreshed ranking tables on Kafka so read-side caches
// can invalidate. Publishing is best effort: a broker failure is logged and
// never fails the ranking run.
type Notifier struct {
	Logger   log.Logger
	producer *kafka.Producer
}

// RefreshMessage is the payload published per replaced table.
type RefreshMessage struct {
	Table       string    `json:"table"`
	Entries     int       `json:"entries"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

func NewNotifier(config *cfg.Config, logger log.Logger) *Notifier {
	n := &Notifier{Logger: logger}
	if config.Kafka.Enabled {
		n.producer = kafka.NewProducer(config, logger, config.Kafka.Topic)
	}
	return n
}

func (n *Notifier) NotifyRefreshed(ctx context.Context, table Table, entries int) {
	if n == nil || n.producer == nil {
		return
	}
	msg := RefreshMessage{
		Table:       table.Name(),
		Entries:     entries,
		RefreshedAt: time.Now(),
	}
	if err := n.producer.Publish(ctx, table.Name(), msg); err != nil {
		n.Logger.Warn(ctx, "Failed to publish refresh notification for %s: %v", table.Name(), err)
	}
}

func (n *Notifier) Close() error {
	if n == nil || n.producer == nil {
		return nil
	}
	return n.producer.Close()
}
