// Package hasher runs SHA-256 over batches of independent messages on a
// bounded worker pool, with an optional digest cache.
package hasher

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"massnet.org/sha256/config"
	"massnet.org/sha256/logging"
	"massnet.org/sha256/massutil/ccache"
	"massnet.org/sha256/sha256"
)

const serviceName = "hasher"

var (
	ErrOperating = errors.New("hasher is operating")
	ErrStarted   = errors.New("hasher is started")
	ErrStopped   = errors.New("hasher is stopped")
)

// Hasher is safe for concurrent use. Sum works in any state; SumBatch
// requires a started Hasher.
type Hasher struct {
	started   int32
	operating int32

	// l guards pool. Batches hold it shared so Stop waits for them.
	l     sync.RWMutex
	pool  *ants.Pool
	cfg   *config.Hasher
	cache *ccache.DigestCache

	hashed    uint64
	cacheHits uint64
}

func New(cfg *config.Hasher) (*Hasher, error) {
	if err := config.CheckHasher(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid hasher config")
	}
	h := &Hasher{cfg: cfg}
	if cfg.CacheEntries > 0 {
		h.cache = ccache.NewDigestCache(cfg.CacheEntries, cfg.CacheMaxLen)
	}
	return h, nil
}

func (h *Hasher) Name() string {
	return serviceName
}

func (h *Hasher) Started() bool {
	return atomic.LoadInt32(&h.started) == 1
}

func (h *Hasher) Start() error {
	if swapped := atomic.CompareAndSwapInt32(&h.operating, 0, 1); !swapped {
		return ErrOperating
	}
	defer atomic.StoreInt32(&h.operating, 0)

	if atomic.LoadInt32(&h.started) == 1 {
		return ErrStarted
	}

	pool, err := ants.NewPool(h.cfg.Workers, ants.WithPreAlloc(true))
	if err != nil {
		return errors.Wrap(err, "fail on NewPool")
	}
	h.l.Lock()
	h.pool = pool
	h.l.Unlock()
	atomic.StoreInt32(&h.started, 1)

	logging.CPrint(logging.INFO, "hasher started", logging.LogFormat{
		"workers":       h.cfg.Workers,
		"cache_entries": h.cfg.CacheEntries,
	})
	return nil
}

func (h *Hasher) Stop() error {
	if swapped := atomic.CompareAndSwapInt32(&h.operating, 0, 1); !swapped {
		return ErrOperating
	}
	defer atomic.StoreInt32(&h.operating, 0)

	if atomic.LoadInt32(&h.started) == 0 {
		return ErrStopped
	}

	h.l.Lock()
	atomic.StoreInt32(&h.started, 0)
	h.pool.Release()
	h.pool = nil
	h.l.Unlock()

	logging.CPrint(logging.INFO, "hasher stopped", logging.LogFormat{
		"hashed":     h.Hashed(),
		"cache_hits": h.CacheHits(),
	})
	return nil
}

// Hashed returns how many digests were computed, excluding cache hits.
func (h *Hasher) Hashed() uint64 {
	return atomic.LoadUint64(&h.hashed)
}

func (h *Hasher) CacheHits() uint64 {
	return atomic.LoadUint64(&h.cacheHits)
}

// Sum returns the digest of msg, consulting the cache first.
func (h *Hasher) Sum(msg []byte) (sha256.Digest, error) {
	if h.cache != nil {
		if d, ok := h.cache.Get(msg); ok {
			atomic.AddUint64(&h.cacheHits, 1)
			return d, nil
		}
	}

	d, err := sha256.Sum(msg)
	if err != nil {
		return sha256.Digest{}, err
	}
	atomic.AddUint64(&h.hashed, 1)

	if h.cache != nil {
		h.cache.Add(msg, d)
	}
	return d, nil
}

// SumBatch hashes every message on the worker pool. Result i is the digest
// of msgs[i]. The first failure, or cancellation of ctx, aborts the batch.
func (h *Hasher) SumBatch(ctx context.Context, msgs [][]byte) ([]sha256.Digest, error) {
	h.l.RLock()
	defer h.l.RUnlock()
	if h.pool == nil {
		return nil, ErrStopped
	}

	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		results  = make([]sha256.Digest, len(msgs))
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := range msgs {
		if batchCtx.Err() != nil {
			break
		}
		idx := i
		wg.Add(1)
		err := h.pool.Submit(func() {
			defer wg.Done()
			if batchCtx.Err() != nil {
				return
			}
			d, err := h.Sum(msgs[idx])
			if err != nil {
				fail(errors.Wrapf(err, "message %d", idx))
				return
			}
			results[idx] = d
		})
		if err != nil {
			wg.Done()
			fail(errors.Wrap(err, "fail on Submit"))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		logging.CPrint(logging.ERROR, "fail on SumBatch", logging.LogFormat{"err": firstErr, "count": len(msgs)})
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		logging.CPrint(logging.WARN, "batch cancelled", logging.LogFormat{"err": err, "count": len(msgs)})
		return nil, err
	}

	logging.CPrint(logging.DEBUG, "batch hashed", logging.LogFormat{"count": len(msgs)})
	return results, nil
}
