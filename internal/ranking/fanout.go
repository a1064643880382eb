package ranking

import (
	"context"
	"sync"
	"time"

	"github.com/geeklink/ranking-service/internal/model"
	"github.com/geeklink/ranking-service/pkg/log"
)

// fetchSlot holds one user's fetch result, kept at the user's position in
// the listing. Ranking ties break on listing order, so the join must not
// depend on fetch completion order.
type fetchSlot[T any] struct {
	account model.Account
	data    T
	ok      bool
}

// fanOut issues one fetch per account concurrently and joins all results
// before returning. A failed or timed-out fetch marks its slot as skipped
// and never aborts the batch.
func fanOut[T any](
	ctx context.Context,
	logger log.Logger,
	timeout time.Duration,
	accounts []model.Account,
	fetch func(ctx context.Context, account model.Account) (T, error),
) []fetchSlot[T] {
	slots := make([]fetchSlot[T], len(accounts))

	var wg sync.WaitGroup
	for i, account := range accounts {
		wg.Add(1)
		go func(i int, account model.Account) {
			defer wg.Done()

			fetchCtx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			data, err := fetch(fetchCtx, account)
			if err != nil {
				logger.Warn(ctx, "Skipping user %s in this run: %v", account.UserID, err)
				slots[i] = fetchSlot[T]{account: account}
				return
			}
			slots[i] = fetchSlot[T]{account: account, data: data, ok: true}
		}(i, account)
	}
	wg.Wait()

	return slots
}
