package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	InitialSamples     int   // Samples for first pass (1 recommended)
	MaxSamplesPerPixel int   // Maximum total samples per pixel
	MaxPasses          int   // Maximum number of passes
	NumWorkers         int   // Number of parallel workers (0 = use CPU count)
	Seed               int64 // Base seed; every pass derives its own
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		InitialSamples:     1,
		MaxSamplesPerPixel: 50,
		MaxPasses:          7,
		NumWorkers:         0, // Auto-detect CPU count
		Seed:               42,
	}
}

// ProgressiveRaytracer refines an image over several passes, each adding
// samples to one shared accumulation buffer
type ProgressiveRaytracer struct {
	raytracer   *Raytracer
	config      ProgressiveConfig
	accum       *Buffer
	currentPass int
	start       time.Time
	logger      core.Logger
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(raytracer *Raytracer, config ProgressiveConfig, logger core.Logger) *ProgressiveRaytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.MaxPasses <= 0 {
		config.MaxPasses = 1
	}
	if config.InitialSamples <= 0 {
		config.InitialSamples = 1
	}
	cfg := raytracer.Config()
	return &ProgressiveRaytracer{
		raytracer: raytracer,
		config:    config,
		accum:     NewBuffer(cfg.Width, cfg.Height),
		logger:    logger,
	}
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	// Special case: if only 1 pass, use all samples
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}

	// For multiple passes: first pass is quick preview
	if passNumber == 1 {
		return min(pr.config.InitialSamples, pr.config.MaxSamplesPerPixel)
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	targetSamples := pr.config.InitialSamples + (passNumber-1)*samplesPerPass

	// For the final pass, use all remaining samples
	if passNumber >= pr.config.MaxPasses {
		targetSamples = pr.config.MaxSamplesPerPixel
	}

	return min(targetSamples, pr.config.MaxSamplesPerPixel)
}

// RenderPass renders a single progressive pass and returns the image
// accumulated so far
func (pr *ProgressiveRaytracer) RenderPass(ctx context.Context, passNumber int) (*image.RGBA, RenderStats, error) {
	if pr.currentPass == 0 {
		pr.start = time.Now()
	}
	pr.currentPass = passNumber

	targetSamples := pr.getSamplesForPass(passNumber)
	newSamples := targetSamples - pr.accum.Samples

	pr.logger.Printf("Pass %d: Target %d samples per pixel (+%d)...\n", passNumber, targetSamples, newSamples)

	if newSamples > 0 {
		buffer, err := RenderParallel(ctx, pr.raytracer, newSamples, pr.config.NumWorkers, TaskSeed(pr.config.Seed, -passNumber))
		if err != nil {
			return nil, RenderStats{}, fmt.Errorf("pass %d: %w", passNumber, err)
		}
		if err := pr.accum.Add(buffer); err != nil {
			return nil, RenderStats{}, fmt.Errorf("pass %d: %w", passNumber, err)
		}
	}

	img := ToImage(pr.accum.Width, pr.accum.Height, pr.accum.Resolve())
	stats := NewRenderStats(pr.accum, pr.config.MaxSamplesPerPixel, passNumber, time.Since(pr.start))
	return img, stats, nil
}

// Buffer returns the accumulation buffer. It must not be modified while
// passes are running.
func (pr *ProgressiveRaytracer) Buffer() *Buffer {
	return pr.accum
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// RenderProgressive renders with channel-based communication. The pass
// channel is closed after the last pass; a failure or cancellation is
// delivered on the error channel.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			// Check if client disconnected before starting this pass
			select {
			case <-ctx.Done():
				pr.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()

			img, stats, err := pr.RenderPass(ctx, pass)
			if err != nil {
				errChan <- err
				return
			}

			pr.logger.Printf("Pass %d completed in %v (actual: %d samples/pixel)\n",
				pass, time.Since(startTime), stats.SamplesPerPixel)

			isLast := pass == pr.config.MaxPasses || stats.SamplesPerPixel >= pr.config.MaxSamplesPerPixel
			result := PassResult{
				PassNumber: pass,
				Image:      img,
				Stats:      stats,
				IsLast:     isLast,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}

			if isLast {
				pr.logger.Printf("Reached %d samples per pixel, stopping.\n", stats.SamplesPerPixel)
				return
			}
		}
	}()

	return passChan, errChan
}
