package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/integrator"
)

// Task is a unit of work executed by a worker
type Task func(w *Worker)

// Worker owns the per-goroutine state tasks need: a random stream and a
// reusable walk
type Worker struct {
	ID     int
	Random *core.Random
	Walk   *integrator.Walk
}

// NewWorker creates a worker whose random stream is derived from seed and id
func NewWorker(id int, seed uint32) *Worker {
	random := core.NewRandom(core.MixSeed(seed, id))
	return &Worker{
		ID:     id,
		Random: random,
		Walk:   integrator.NewWalk(random),
	}
}

// WorkerPool runs tasks on a fixed set of goroutines
type WorkerPool struct {
	taskQueue  chan Task
	workers    []*Worker
	numWorkers int
	running    sync.WaitGroup // Worker goroutines
	inFlight   sync.WaitGroup // Submitted but unfinished tasks
	pending    atomic.Int64
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero workers means one per CPU.
func NewWorkerPool(numWorkers int, seed uint32) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:  make(chan Task, numWorkers*4),
		numWorkers: numWorkers,
	}
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, NewWorker(i, seed))
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.running.Add(1)
		go wp.run(worker)
	}
}

// Stop waits for queued tasks and shuts the workers down
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.running.Wait()
}

// Submit queues a task. It blocks while the queue is full.
func (wp *WorkerPool) Submit(task Task) {
	wp.inFlight.Add(1)
	wp.pending.Add(1)
	wp.taskQueue <- task
}

// Wait blocks until every submitted task has finished
func (wp *WorkerPool) Wait() {
	wp.inFlight.Wait()
}

// Pending returns the number of submitted tasks that have not finished
func (wp *WorkerPool) Pending() int {
	return int(wp.pending.Load())
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run(w *Worker) {
	defer wp.running.Done()

	for task := range wp.taskQueue {
		task(w)
		wp.pending.Add(-1)
		wp.inFlight.Done()
	}
}
