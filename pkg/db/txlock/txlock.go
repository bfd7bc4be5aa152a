// Package txlock serializes mutating operations per franchise. Two
// concurrent purchases, or a purchase racing a distribution run, must never
// observe the same shares-issued or reserve-balance snapshot.
package txlock

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Runner executes a function inside a transaction while holding an
// exclusive per-key lock. On postgres the transaction additionally takes a
// pg advisory xact lock so the exclusion spans processes; the in-process
// mutex covers sqlite, where advisory locks do not exist.
type Runner struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewRunner(db *gorm.DB) *Runner {
	return &Runner{
		db:    db,
		locks: make(map[int64]*sync.Mutex),
	}
}

// lock namespace, keeps franchise locks clear of other advisory users.
const advisoryNamespace int32 = 7_401_293

func (r *Runner) mutexFor(key int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.locks[key]
	if !ok {
		m = &sync.Mutex{}
		r.locks[key] = m
	}
	return m
}

// WithKey runs fn in a transaction serialized on key. The lock is held for
// the full check-then-mutate duration; operations on different keys proceed
// in parallel.
func (r *Runner) WithKey(ctx context.Context, key int64, fn func(tx *gorm.DB) error) error {
	m := r.mutexFor(key)
	m.Lock()
	defer m.Unlock()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", advisoryNamespace, int32(key)).Error; err != nil {
				return err
			}
		}
		return fn(tx)
	})
}
