// Package batch runs a function over a list of items on a fixed pool of
// worker goroutines and returns the results in input order.
//
//	p := batch.New(4)
//	defer p.Shutdown(5 * time.Second)
//
//	titles, err := batch.Process(ctx, p, items, func(item media.Item) (string, error) {
//	    return item.Title(), nil
//	})
//
// A Processor never reads shared state on its own. Callers hand it a
// snapshot and the function must not mutate what other goroutines read.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
)

// job is one queued unit of work. Exactly one of run or cancel is called.
type job struct {
	run    func()
	cancel func(err error)
}

// Processor is a fixed-size worker pool.
type Processor struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []job
	active  int
	closed  bool
	workers int
	wg      sync.WaitGroup
	logger  *zerolog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New starts a pool of workers goroutines. Values below one are raised
// to one.
func New(workers int, opts ...Option) *Processor {
	if workers < 1 {
		workers = 1
	}
	p := &Processor{
		workers: workers,
		logger:  logging.Default(),
	}
	p.cond = sync.NewCond(&p.mu)
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}
	p.logger.Debug().Int("workers", workers).Msg("Batch processor started")
	return p
}

// NewDefault starts one worker per CPU.
func NewDefault(opts ...Option) *Processor {
	return New(runtime.NumCPU(), opts...)
}

// Workers returns the pool size.
func (p *Processor) Workers() int {
	return p.workers
}

func (p *Processor) work() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		j := p.queue[0]
		p.queue[0] = job{}
		p.queue = p.queue[1:]
		p.active++
		p.mu.Unlock()

		j.run()

		p.mu.Lock()
		p.active--
		p.mu.Unlock()
	}
}

// submit queues jobs atomically, or none of them once shut down.
func (p *Processor) submit(jobs []job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return fmt.Errorf("%w: %w",
			pkgerrors.NewStateError("submit batch", "", "processor is shut down"), pkgerrors.ErrClosed)
	}
	p.queue = append(p.queue, jobs...)
	p.cond.Broadcast()
	return nil
}

// Shutdown stops accepting work and waits up to timeout for queued and
// running jobs. Jobs still queued at the deadline are canceled and their
// Process calls fail with ErrCanceled; running jobs are left to finish.
// It reports whether every job completed.
func (p *Processor) Shutdown(timeout time.Duration) bool {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(max(timeout, 0))
	defer timer.Stop()

	select {
	case <-done:
		p.logger.Debug().Msg("Batch processor stopped")
		return true
	case <-timer.C:
	}

	p.mu.Lock()
	pending := p.queue
	p.queue = nil
	running := p.active
	p.mu.Unlock()

	if len(pending) == 0 && running == 0 {
		return true
	}
	for _, j := range pending {
		j.cancel(pkgerrors.ErrCanceled)
	}
	p.logger.Warn().
		Dur("timeout", timeout).
		Int("canceled", len(pending)).
		Int("running", running).
		Msg("Forced batch processor shutdown")
	return false
}

// Process applies fn to every item on p and returns the results in input
// order. All jobs run to completion; if any failed, the error of the
// lowest failing index is returned. A panic inside fn is reported as that
// item's error. Jobs that have not started when ctx is done fail with
// ErrCanceled.
func Process[T, R any](ctx context.Context, p *Processor, items []T, fn func(T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	errs := make([]error, len(items))
	var wg sync.WaitGroup
	wg.Add(len(items))

	jobs := make([]job, len(items))
	for i := range items {
		jobs[i] = job{
			run: func() {
				defer wg.Done()
				if err := ctx.Err(); err != nil {
					errs[i] = fmt.Errorf("%w: %w", pkgerrors.ErrCanceled, err)
					return
				}
				results[i], errs[i] = call(fn, items[i])
			},
			cancel: func(err error) {
				defer wg.Done()
				errs[i] = err
			},
		}
	}

	if err := p.submit(jobs); err != nil {
		return nil, err
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
	}
	return results, nil
}

// call runs fn, converting a panic into an error.
func call[T, R any](fn func(T) (R, error), item T) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(item)
}
