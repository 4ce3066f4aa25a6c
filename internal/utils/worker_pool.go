package utils

import "sync"

// WorkerPool runs fire-and-forget tasks on a fixed set of workers so a slow
// task never blocks the submitting loop.
type WorkerPool struct {
	jobQueue  chan func()
	waitGroup sync.WaitGroup
}

// NewWorkerPool creates a pool with the given worker count and queue depth.
func NewWorkerPool(workers, queueDepth int) *WorkerPool {
	pool := &WorkerPool{
		jobQueue: make(chan func(), queueDepth),
	}

	pool.waitGroup.Add(workers)
	for i := 0; i < workers; i++ {
		go pool.worker()
	}

	return pool
}

func (wp *WorkerPool) worker() {
	defer wp.waitGroup.Done()
	for job := range wp.jobQueue {
		job()
	}
}

// TrySubmit enqueues a task without blocking. It reports false when the
// queue is full, in which case the task is dropped.
func (wp *WorkerPool) TrySubmit(task func()) bool {
	select {
	case wp.jobQueue <- task:
		return true
	default:
		return false
	}
}

// Shutdown waits for queued tasks to finish and stops the workers.
func (wp *WorkerPool) Shutdown() {
	close(wp.jobQueue)
	wp.waitGroup.Wait()
}
