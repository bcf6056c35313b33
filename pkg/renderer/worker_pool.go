package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// maxBatches caps how many full-frame buffers one parallel render holds
const maxBatches = 16

// SampleTask asks a worker to render a batch of samples over the full frame
type SampleTask struct {
	TaskID  int   // For deterministic ordering
	Samples int   // Samples per pixel in this batch
	Seed    int64 // Seed of the batch's private random generator
}

// SampleResult contains the result from rendering a batch
type SampleResult struct {
	TaskID int
	Buffer *Buffer
	Error  error
}

// WorkerPool manages parallel sample batch rendering
type WorkerPool struct {
	taskQueue   chan SampleTask
	resultQueue chan SampleResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual batch rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan SampleTask
	resultQueue chan SampleResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize bounds the number of tasks that can be submitted before results
// are read.
func NewWorkerPool(raytracer *Raytracer, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan SampleTask, queueSize),
		resultQueue: make(chan SampleResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Tasks picked up after ctx is done are answered
// with ctx's error instead of being rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a batch task to the worker pool
func (wp *WorkerPool) SubmitTask(task SampleTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed batch result
func (wp *WorkerPool) GetResult() (SampleResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- SampleResult{TaskID: task.TaskID, Error: err}
			continue
		}

		// Every batch owns its generator so results do not depend on which
		// worker ran it
		sampler := core.NewSeededSampler(task.Seed)
		buffer := w.raytracer.RenderSamples(task.Samples, sampler)

		w.resultQueue <- SampleResult{
			TaskID: task.TaskID,
			Buffer: buffer,
		}
	}
}

// TaskSeed derives the seed of one batch from the render seed
func TaskSeed(seed int64, taskID int) int64 {
	// splitmix64 finalizer over seed and task index
	z := uint64(seed) + (uint64(taskID)+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

// SplitSamples divides samples into at most maxBatches batch sizes, the
// larger batches first. The split depends only on samples.
func SplitSamples(samples int) []int {
	if samples <= 0 {
		return nil
	}
	n := min(samples, maxBatches)
	batches := make([]int, n)
	for i := range batches {
		batches[i] = samples / n
		if i < samples%n {
			batches[i]++
		}
	}
	return batches
}

// RenderParallel renders samples per pixel across numWorkers goroutines.
// Batches are summed in task order, so the result for a given seed does not
// depend on the number of workers or on scheduling.
func RenderParallel(ctx context.Context, raytracer *Raytracer, samples, numWorkers int, seed int64) (*Buffer, error) {
	batches := SplitSamples(samples)
	cfg := raytracer.Config()
	total := NewBuffer(cfg.Width, cfg.Height)
	if len(batches) == 0 {
		return total, nil
	}

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	pool := NewWorkerPool(raytracer, min(numWorkers, len(batches)), len(batches))
	pool.Start(ctx)
	for id, n := range batches {
		pool.SubmitTask(SampleTask{TaskID: id, Samples: n, Seed: TaskSeed(seed, id)})
	}
	pool.Stop()

	results := make([]*Buffer, len(batches))
	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		results[result.TaskID] = result.Buffer
	}
	if firstErr != nil {
		return nil, fmt.Errorf("render %d samples: %w", samples, firstErr)
	}

	for _, buffer := range results {
		if err := total.Add(buffer); err != nil {
			return nil, err
		}
	}
	return total, nil
}
