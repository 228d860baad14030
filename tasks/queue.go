package tasks

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is one order notification waiting for a worker.
type Job struct {
	ID         string
	OrderID    uint
	Message    string
	EnqueuedAt time.Time
}

type Handler func(ctx context.Context, job Job) error

// Queue runs jobs on a fixed set of worker goroutines. Delivery is at most
// once: a full queue drops the job and a failed job is not retried.
type Queue struct {
	jobs    chan Job
	handler Handler
	workers int

	mu     sync.RWMutex
	closed bool

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func NewQueue(workers, size int, handler Handler) *Queue {
	if workers < 1 {
		workers = 1
	}
	if size < 0 {
		size = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Queue{
		jobs:    make(chan Job, size),
		handler: handler,
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (q *Queue) Start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.work()
	}
	log.Printf("Started %d notification workers", q.workers)
}

func (q *Queue) work() {
	defer q.wg.Done()
	for job := range q.jobs {
		q.run(job)
	}
}

func (q *Queue) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Notification job %s for order %d panicked: %v", job.ID, job.OrderID, r)
		}
	}()
	if err := q.handler(q.ctx, job); err != nil {
		log.Printf("Notification job %s for order %d failed: %v", job.ID, job.OrderID, err)
	}
}

// Enqueue schedules a notification without blocking the caller.
func (q *Queue) Enqueue(orderID uint, message string) {
	job := Job{ID: uuid.NewString(), OrderID: orderID, Message: message, EnqueuedAt: time.Now()}

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		log.Printf("Notification queue closed, dropping job for order %d", orderID)
		return
	}
	select {
	case q.jobs <- job:
	default:
		log.Printf("Notification queue full, dropping job for order %d", orderID)
	}
}

// Shutdown stops accepting jobs and waits for queued ones to finish. When ctx
// expires first, running jobs are cancelled and ctx.Err() is returned.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.cancel()
		return nil
	case <-ctx.Done():
		q.cancel()
		return ctx.Err()
	}
}
