// Package hashpool runs bcrypt work on a fixed set of worker goroutines so
// the request goroutine suspends on a channel instead of burning CPU inline.
package hashpool

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/openfleet/garage-api/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

type opKind int

const (
	opHash opKind = iota
	opCompare
)

type result struct {
	hash string
	err  error
}

type job struct {
	op       opKind
	password string
	hashed   string
	reply    chan result
}

// Pool routes hash jobs to a fixed set of workers using consistent hashing
// on a subject key (the account name or email), guaranteeing per-account
// job ordering.
type Pool struct {
	workers []chan job
	cost    int
	log     zerolog.Logger
}

// New creates a Pool with numWorkers sharded workers hashing at the given
// bcrypt cost. If numWorkers <= 0, defaultWorkers is used; an out-of-range
// cost falls back to bcrypt.DefaultCost.
func New(numWorkers, cost int, log zerolog.Logger) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	p := &Pool{
		workers: make([]chan job, numWorkers),
		cost:    cost,
		log:     log,
	}
	for i := range p.workers {
		p.workers[i] = make(chan job, channelBuffer)
	}
	return p
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i, ch := range p.workers {
		go p.runWorker(ctx, i, ch)
	}
}

// Hash derives the bcrypt digest of password on the worker owning key. The
// caller blocks until the digest is ready or ctx is cancelled.
func (p *Pool) Hash(ctx context.Context, key, password string) (string, error) {
	res, err := p.submit(ctx, key, job{op: opHash, password: password})
	if err != nil {
		return "", err
	}
	return res.hash, res.err
}

// Compare verifies password against the stored bcrypt digest on the worker
// owning key. A mismatch surfaces as bcrypt.ErrMismatchedHashAndPassword.
func (p *Pool) Compare(ctx context.Context, key, hashed, password string) error {
	res, err := p.submit(ctx, key, job{op: opCompare, hashed: hashed, password: password})
	if err != nil {
		return err
	}
	return res.err
}

func (p *Pool) submit(ctx context.Context, key string, j job) (result, error) {
	idx := p.shardIndex(key)
	j.reply = make(chan result, 1)

	metrics.HashQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	select {
	case p.workers[idx] <- j:
	case <-ctx.Done():
		metrics.HashQueueDepth.WithLabelValues(strconv.Itoa(idx)).Dec()
		return result{}, ctx.Err()
	}

	select {
	case res := <-j.reply:
		return res, nil
	case <-ctx.Done():
		return result{}, ctx.Err()
	}
}

// shardIndex maps a subject key deterministically to a worker index.
func (p *Pool) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(p.workers)
}

func (p *Pool) runWorker(ctx context.Context, id int, ch <-chan job) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-ch:
			if !ok {
				return
			}
			metrics.HashQueueDepth.WithLabelValues(workerID).Dec()

			start := time.Now()
			var res result
			switch j.op {
			case opHash:
				digest, err := bcrypt.GenerateFromPassword([]byte(j.password), p.cost)
				res = result{hash: string(digest), err: err}
				metrics.HashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
			case opCompare:
				res = result{err: bcrypt.CompareHashAndPassword([]byte(j.hashed), []byte(j.password))}
				metrics.HashDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
			}

			if res.err != nil && res.err != bcrypt.ErrMismatchedHashAndPassword {
				p.log.Error().Err(res.err).Int("worker_id", id).Msg("bcrypt operation failed")
			}
			j.reply <- res
		}
	}
}
