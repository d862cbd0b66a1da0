// Package scheduler runs named periodic tasks on a single goroutine.
//
// Each task has its own ticker, but every tick fans in to one channel and
// all handlers execute on the goroutine that called Run. Handlers therefore
// never run concurrently with each other and may share state without locks.
// Fire invokes one logical tick synchronously, which is how tests drive a
// dashboard without wall-clock timers.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// DefaultStopTimeout is the maximum time Stop waits for Run to return.
const DefaultStopTimeout = 5 * time.Second

var (
	// ErrDuplicateTask is returned by Every when the name is already registered.
	ErrDuplicateTask = errors.New("task already registered")
	// ErrInvalidInterval is returned by Every for a non-positive interval.
	ErrInvalidInterval = errors.New("task interval must be positive")
	// ErrUnknownTask is returned by Fire for an unregistered name.
	ErrUnknownTask = errors.New("unknown task")
	// ErrRunning is returned when the loop is modified or started while running.
	ErrRunning = errors.New("loop already running")
)

// Handler performs one tick of work. now is the tick time.
type Handler func(now time.Time)

// Option configures a task at registration.
type Option func(*task)

// Immediate runs the handler once as soon as Run starts, before the first
// interval elapses.
func Immediate() Option {
	return func(t *task) { t.immediate = true }
}

// TaskStatus reports the execution history of one task.
type TaskStatus struct {
	Name       string
	Interval   time.Duration
	RunCount   int64
	ErrorCount int64
	LastRun    time.Time
	LastError  error
}

type task struct {
	name      string
	interval  time.Duration
	handler   Handler
	immediate bool
	status    TaskStatus
}

type firing struct {
	task *task
	at   time.Time
}

// Loop owns a set of periodic tasks.
type Loop struct {
	logger *slog.Logger

	mu      sync.Mutex
	tasks   []*task
	byName  map[string]*task
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates an empty Loop. If logger is nil, a no-op logger is used.
func New(logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		logger: logger,
		byName: make(map[string]*task),
	}
}

// Every registers handler to run every interval under name. Tasks must be
// registered before Run.
func (l *Loop) Every(name string, interval time.Duration, handler Handler, opts ...Option) error {
	if interval <= 0 {
		return fmt.Errorf("register %q: %w", name, ErrInvalidInterval)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return fmt.Errorf("register %q: %w", name, ErrRunning)
	}
	if _, exists := l.byName[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateTask)
	}

	t := &task{
		name:     name,
		interval: interval,
		handler:  handler,
		status:   TaskStatus{Name: name, Interval: interval},
	}
	for _, opt := range opts {
		opt(t)
	}
	l.tasks = append(l.tasks, t)
	l.byName[name] = t
	return nil
}

// Run executes tasks until ctx is cancelled or Stop is called. It blocks,
// and every handler runs on the calling goroutine.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	l.running = true
	l.cancel = cancel
	l.done = make(chan struct{})
	tasks := make([]*task, len(l.tasks))
	copy(tasks, l.tasks)
	done := l.done
	l.mu.Unlock()

	defer func() {
		cancel()
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		close(done)
	}()

	l.logger.Debug("scheduler starting", "tasks", len(tasks))

	fired := make(chan firing)
	var wg sync.WaitGroup
	for _, t := range tasks {
		wg.Add(1)
		go tick(ctx, &wg, t, fired)
	}
	defer wg.Wait()

	for _, t := range tasks {
		if t.immediate {
			l.execute(t, time.Now())
		}
	}

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("scheduler stopped")
			return nil
		case f := <-fired:
			l.execute(f.task, f.at)
		}
	}
}

// Stop cancels a running loop and waits for Run to return, up to
// DefaultStopTimeout. Calling Stop on an idle loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()

	select {
	case <-done:
	case <-time.After(DefaultStopTimeout):
		l.logger.Warn("scheduler stop timed out", "timeout", DefaultStopTimeout)
	}
}

// Fire runs the named task once, synchronously, as if its ticker fired at
// now. It must not be called concurrently with Run.
func (l *Loop) Fire(name string, now time.Time) error {
	l.mu.Lock()
	t, ok := l.byName[name]
	l.mu.Unlock()
	if !ok {
		return fmt.Errorf("fire %q: %w", name, ErrUnknownTask)
	}
	l.execute(t, now)
	return nil
}

// Status returns the execution history of the named task.
func (l *Loop) Status(name string) (TaskStatus, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.byName[name]
	if !ok {
		return TaskStatus{}, false
	}
	return t.status, true
}

// tick forwards ticker events for one task until ctx is done.
func tick(ctx context.Context, wg *sync.WaitGroup, t *task, fired chan<- firing) {
	defer wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case at := <-ticker.C:
			select {
			case fired <- firing{task: t, at: at}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// execute runs one handler invocation. A panicking handler is recorded as
// an error; it does not stop the loop or affect later ticks.
func (l *Loop) execute(t *task, now time.Time) {
	err := safeCall(t.handler, now)

	l.mu.Lock()
	t.status.RunCount++
	t.status.LastRun = now
	t.status.LastError = err
	if err != nil {
		t.status.ErrorCount++
	}
	l.mu.Unlock()

	if err != nil {
		l.logger.Error("scheduled task failed", "task", t.name, "error", err)
	}
}

func safeCall(h Handler, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	h(now)
	return nil
}
