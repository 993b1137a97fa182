package concurrent

import (
	"runtime"
	"sync"
)

type JobFunc[T any, G any] func(job T) G

// indexed. job tagged with its input position.
type indexed[V any] struct {
	index int
	value V
}

// Result. output of the job added as the Index-th one.
type Result[G any] struct {
	Index int
	Value G
}

/*
WorkerPool. fixed number of goroutines applying one JobFunc to every job added.

Usage: Start, AddJob for every job, Close, then read CollectResults until it is closed
(Wait closes it once every worker is done). Run does all of that and returns the results
in input order.
*/
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan indexed[T]
	results    chan Result[G]
	wg         sync.WaitGroup
	nextIndex  int
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan indexed[T], jobQueueSize),
		results:    make(chan Result[G], jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- Result[G]{Index: job.index, Value: jobFunc(job.value)}
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 1; i <= wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait. block until every worker returned, then close the results channel.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// AddJob. not safe for concurrent use, jobs are numbered in the order they are added.
func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- indexed[T]{index: wp.nextIndex, value: job}
	wp.nextIndex++
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// CollectResults. results in completion order, with the index of their job.
func (wp *WorkerPool[T, G]) CollectResults() <-chan Result[G] {
	return wp.results
}

// Run. apply jobFunc to every job on numWorkers goroutines, results in input order.
func Run[T any, G any](numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(jobs))
	wp.Start(jobFunc)
	for _, job := range jobs {
		wp.AddJob(job)
	}
	wp.Close()
	wp.Wait()

	out := make([]G, len(jobs))
	for res := range wp.CollectResults() {
		out[res.Index] = res.Value
	}
	return out
}
