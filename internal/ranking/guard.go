package ranking

import "sync"

// Guard serializes ranking runs per table. Two triggers for the same
// (source, period) would otherwise race on the delete+insert replace.
type Guard struct {
	mu    sync.Mutex
	locks map[Table]*sync.Mutex
}

func NewGuard() *Guard {
	return &Guard{
		locks: make(map[Table]*sync.Mutex),
	}
}

// Lock blocks until the table is free and returns the unlock func.
func (g *Guard) Lock(table Table) func() {
	g.mu.Lock()
	lock, ok := g.locks[table]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[table] = lock
	}
	g.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
