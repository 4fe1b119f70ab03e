package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/integrator"
	"github.com/df07/go-tile-pathtracer/pkg/log"
	"github.com/df07/go-tile-pathtracer/pkg/scene"
)

var logger = log.New("renderer")

// Mode selects how tiles are scheduled
type Mode int

const (
	// Parallel renders tiles on a worker pool
	Parallel Mode = iota
	// Sequential renders tiles one by one on the calling goroutine
	Sequential
)

func (m Mode) String() string {
	switch m {
	case Parallel:
		return "parallel"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Config contains configuration for progressive rendering
type Config struct {
	Mode               Mode
	NumWorkers         int    // Number of parallel workers (0 = use CPU count)
	Seed               uint32 // Base seed for every worker's random stream
	Adaptive           bool   // Stop sampling pixels that cannot change
	Preview            bool   // Use sun-lit preview shading instead of path tracing
	Snapshots          bool   // Attach the resolved image to every IterationResult
	RouletteMinBounces int
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Mode:               Parallel,
		NumWorkers:         0,
		Seed:               1,
		Adaptive:           true,
		RouletteMinBounces: integrator.DefaultConfig().RouletteMinBounces,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.Mode != Parallel && c.Mode != Sequential {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(c.Mode))
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.NumWorkers)
	}
	return nil
}

// Renderer progressively refines a frame by sweeping every tile once per
// iteration
type Renderer struct {
	scene        *scene.Scene
	config       Config
	frame        *Frame
	tiles        []*Tile
	tileRenderer *TileRenderer
}

// NewRenderer validates the scene and configuration and allocates a frame
func NewRenderer(sc *scene.Scene, config Config) (*Renderer, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var integratorInst integrator.Integrator
	if config.Preview {
		integratorInst = integrator.NewPreviewTracer()
	} else {
		integratorInst = integrator.NewPathTracer(integrator.Config{
			BounceLimit:        sc.BounceLimit,
			RouletteMinBounces: config.RouletteMinBounces,
		})
	}

	return &Renderer{
		scene:        sc,
		config:       config,
		frame:        NewFrame(sc.Width, sc.Height),
		tiles:        NewTileGrid(sc.Width, sc.Height, sc.TileSize),
		tileRenderer: NewTileRenderer(sc, integratorInst, config.Adaptive),
	}, nil
}

// Frame returns the accumulation buffers. They must not be read while a
// render is in progress.
func (r *Renderer) Frame() *Frame {
	return r.frame
}

// Scene returns the scene being rendered
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// Reset discards all accumulated samples, e.g. after the camera moved
func (r *Renderer) Reset() {
	r.frame.Reset()
}

// RenderProgressive renders the scene's iteration budget in the background.
// A result is sent after each iteration; the error channel receives at most
// one error. Cancellation is observed between iterations.
func (r *Renderer) RenderProgressive(ctx context.Context) (<-chan IterationResult, <-chan error) {
	iterChan := make(chan IterationResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(iterChan)
		defer close(errChan)

		var pool *WorkerPool
		var walk *integrator.Walk
		if r.config.Mode == Parallel {
			pool = NewWorkerPool(r.config.NumWorkers, r.config.Seed)
			pool.Start()
			defer pool.Stop()
			logger.Debugf("rendering %d tiles with %d workers", len(r.tiles), pool.NumWorkers())
		} else {
			walk = integrator.NewWalk(core.NewRandom(core.MixSeed(r.config.Seed, 0)))
		}

		budget := r.scene.Iterations
		for r.frame.Iteration < budget {
			select {
			case <-ctx.Done():
				logger.Infof("rendering cancelled before iteration %d", r.frame.Iteration+1)
				errChan <- fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
				return
			default:
			}

			start := time.Now()
			var stats TileStats
			if pool != nil {
				stats = r.renderParallel(pool)
			} else {
				stats = r.renderSequential(walk)
			}
			r.frame.Iteration++

			active := r.frame.ActivePixels()
			result := IterationResult{
				Iteration:    r.frame.Iteration,
				Stats:        stats,
				ActivePixels: active,
				Duration:     time.Since(start),
				IsLast:       r.frame.Iteration == budget || active == 0,
			}
			if r.config.Snapshots {
				result.Image = r.frame.Resolve()
			}
			logger.Debugf("iteration %d/%d: %d samples, %d active pixels, %v",
				result.Iteration, budget, stats.Samples, active, result.Duration)

			select {
			case iterChan <- result:
			case <-ctx.Done():
				errChan <- fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
				return
			}

			if active == 0 {
				logger.Infof("all pixels converged after %d iterations", r.frame.Iteration)
				return
			}
		}
	}()

	return iterChan, errChan
}

// renderSequential sweeps the tiles in order on the calling goroutine
func (r *Renderer) renderSequential(walk *integrator.Walk) TileStats {
	var stats TileStats
	for _, tile := range r.tiles {
		stats.Add(r.tileRenderer.RenderTile(tile, r.frame, walk))
	}
	return stats
}

// renderParallel submits every tile and waits for all of them. Tiles are
// disjoint, so no two tasks write the same pixel.
func (r *Renderer) renderParallel(pool *WorkerPool) TileStats {
	results := make([]TileStats, len(r.tiles))
	for i, tile := range r.tiles {
		pool.Submit(func(w *Worker) {
			results[i] = r.tileRenderer.RenderTile(tile, r.frame, w.Walk)
		})
	}
	pool.Wait()

	var stats TileStats
	for _, s := range results {
		stats.Add(s)
	}
	return stats
}

// Render runs RenderProgressive to completion and returns the averaged image
func (r *Renderer) Render(ctx context.Context) (*core.Image, RenderStats, error) {
	start := time.Now()
	iterChan, errChan := r.RenderProgressive(ctx)

	bounces := 0
	for result := range iterChan {
		bounces += result.Stats.Bounces
	}
	if err := <-errChan; err != nil {
		return nil, RenderStats{}, err
	}

	stats := computeStats(r.frame)
	stats.TotalBounces = bounces
	if stats.TotalSamples > 0 {
		stats.AverageBounces = float64(bounces) / float64(stats.TotalSamples)
	}
	stats.Duration = time.Since(start)

	logger.Infof("rendered %dx%d in %v: %d iterations, %.2f samples/pixel",
		r.frame.Width, r.frame.Height, stats.Duration, stats.Iterations, stats.AverageSamples)

	return r.frame.Resolve(), stats, nil
}
