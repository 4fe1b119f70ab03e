package renderer

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4, 7)
	pool.Start()
	defer pool.Stop()

	if pool.NumWorkers() != 4 {
		t.Fatalf("Expected 4 workers, got %d", pool.NumWorkers())
	}

	var count atomic.Int64
	var mu sync.Mutex
	seen := make(map[int]bool)

	for round := 0; round < 3; round++ {
		for i := 0; i < 50; i++ {
			pool.Submit(func(w *Worker) {
				count.Add(1)
				mu.Lock()
				seen[w.ID] = true
				mu.Unlock()
			})
		}
		pool.Wait()

		if pool.Pending() != 0 {
			t.Errorf("Expected no pending tasks after Wait, got %d", pool.Pending())
		}
		if got := count.Load(); got != int64((round+1)*50) {
			t.Fatalf("Expected %d tasks run, got %d", (round+1)*50, got)
		}
	}

	for id := range seen {
		if id < 0 || id >= 4 {
			t.Errorf("Unexpected worker ID %d", id)
		}
	}
}

func TestNewWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(0, 1)
	if pool.NumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.NumWorkers())
	}
}

func TestNewWorker_DistinctStreams(t *testing.T) {
	a := NewWorker(0, 42)
	b := NewWorker(1, 42)
	again := NewWorker(0, 42)

	va, vb := a.Random.Uint32(), b.Random.Uint32()
	if va == vb {
		t.Error("Expected workers to draw from different streams")
	}
	if again.Random.Uint32() != va {
		t.Error("Expected the same worker ID and seed to reproduce the stream")
	}
}
