// Package feedback writes confirmed mappings and user quality signals back
// into the library. Writes are best-effort and never fail the caller.
package feedback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rolematch/internal/metrics"
	"rolematch/internal/models"
)

// Defaults for Options.
const (
	DefaultWorkers      = 4
	DefaultWriteTimeout = 5 * time.Second
)

// Writer is the write side of the mapping library.
type Writer interface {
	Upsert(ctx context.Context, originalTitle, standardizedTitle string, seniority *models.SeniorityLevel, roleFamily *string, tags models.ContextTags) error
	Verify(ctx context.Context, title string) error
	Report(ctx context.Context, title string) error
}

// Options tunes the background writers.
type Options struct {
	// Workers caps the library writes in flight at once.
	Workers int
	// WriteTimeout bounds one write, counted from when a worker picks it up.
	WriteTimeout time.Duration
}

type job struct {
	action string
	title  string
	write  func(context.Context) error
}

// Loop queues library writes in memory and applies them with a fixed number
// of workers. Enqueueing never blocks. Failures are logged and counted.
type Loop struct {
	writer Writer
	opts   Options

	mu     sync.Mutex
	ready  *sync.Cond
	queue  []job
	closed bool

	pending sync.WaitGroup
	workers sync.WaitGroup
}

// New creates a Loop and starts its workers. Zero option values take the
// package defaults.
func New(writer Writer, opts Options) *Loop {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultWriteTimeout
	}

	l := &Loop{writer: writer, opts: opts}
	l.ready = sync.NewCond(&l.mu)
	for range opts.Workers {
		l.workers.Add(1)
		go l.work()
	}
	return l
}

// ConfirmMapping records that originalTitle resolved to the given canonical values.
func (l *Loop) ConfirmMapping(originalTitle, standardizedTitle string, seniority *models.SeniorityLevel, roleFamily *string, tags models.ContextTags) {
	l.enqueue(models.FeedbackConfirm, originalTitle, func(ctx context.Context) error {
		return l.writer.Upsert(ctx, originalTitle, standardizedTitle, seniority, roleFamily, tags)
	})
}

// MarkVerified records a user confirming the stored mapping is right.
func (l *Loop) MarkVerified(originalTitle string) {
	l.enqueue(models.FeedbackVerify, originalTitle, func(ctx context.Context) error {
		return l.writer.Verify(ctx, originalTitle)
	})
}

// MarkReported records a user flagging the stored mapping as wrong.
func (l *Loop) MarkReported(originalTitle string) {
	l.enqueue(models.FeedbackReport, originalTitle, func(ctx context.Context) error {
		return l.writer.Report(ctx, originalTitle)
	})
}

// Wait blocks until every queued write has finished.
func (l *Loop) Wait() {
	l.pending.Wait()
}

// Close applies the queued writes and stops the workers. Writes enqueued
// after Close are dropped.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.ready.Broadcast()
	l.workers.Wait()
}

func (l *Loop) enqueue(action, title string, write func(context.Context) error) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		metrics.RecordFeedbackFailure(action)
		slog.Error("feedback loop closed, dropping library write", "action", action, "title", title)
		return
	}
	l.pending.Add(1)
	l.queue = append(l.queue, job{action: action, title: title, write: write})
	metrics.SetFeedbackQueueDepth(len(l.queue))
	l.mu.Unlock()
	l.ready.Signal()
}

// next pops the oldest job. It returns false once the loop is closed and drained.
func (l *Loop) next() (job, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for len(l.queue) == 0 && !l.closed {
		l.ready.Wait()
	}
	if len(l.queue) == 0 {
		return job{}, false
	}
	j := l.queue[0]
	l.queue[0] = job{}
	l.queue = l.queue[1:]
	metrics.SetFeedbackQueueDepth(len(l.queue))
	return j, true
}

func (l *Loop) work() {
	defer l.workers.Done()
	for {
		j, ok := l.next()
		if !ok {
			return
		}
		l.run(j)
	}
}

func (l *Loop) run(j job) {
	defer l.pending.Done()
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordFeedbackFailure(j.action)
			slog.Error("library write panicked", "action", j.action, "title", j.title, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), l.opts.WriteTimeout)
	defer cancel()

	if err := j.write(ctx); err != nil {
		metrics.RecordFeedbackFailure(j.action)
		slog.Error("failed to record library feedback", "action", j.action, "title", j.title, "error", err)
	}
}
