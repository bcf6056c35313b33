package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/Lucifier129/go-ray-tracing/pkg/config"
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/output"
	"github.com/Lucifier129/go-ray-tracing/pkg/preview"
	"github.com/Lucifier129/go-ray-tracing/pkg/publish"
	"github.com/Lucifier129/go-ray-tracing/pkg/renderer"
	"github.com/Lucifier129/go-ray-tracing/pkg/scene"
)

// publisherFactory creates the uploader used by -publish
type publisherFactory func(publish.S3Config, core.Logger) (publish.Publisher, error)

func newS3Publisher(cfg publish.S3Config, logger core.Logger) (publish.Publisher, error) {
	return publish.NewS3Publisher(cfg, logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootDir := os.Getenv("RAYTRACER_ROOT_DIR")
	if rootDir == "" {
		rootDir = "."
	}
	cfg, err := config.Load(rootDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := run(ctx, os.Args[1:], cfg, os.Stdout, renderer.NewDefaultLogger(), newS3Publisher); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Render failed: %v", err)
	}
}

// run parses flags over cfg, renders the selected scene and writes the
// outputs
func run(ctx context.Context, args []string, cfg config.Config, stdout io.Writer, logger core.Logger, newPublisher publisherFactory) error {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(stdout)

	flags.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene name (see -list)")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Image height in pixels (0 keeps the scene aspect ratio)")
	flags.IntVar(&cfg.SamplesPerPixel, "samples", cfg.SamplesPerPixel, "Samples per pixel")
	flags.IntVar(&cfg.MaxDepth, "depth", cfg.MaxDepth, "Maximum ray bounce depth")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel workers (0 uses every CPU)")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for scene layout and sampling")
	flags.IntVar(&cfg.Passes, "passes", cfg.Passes, "Progressive passes (1 renders in a single pass)")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "Output file; the extension picks the format (.png, .jpg, .ppm, ...)")
	flags.IntVar(&cfg.Thumbnail, "thumbnail", cfg.Thumbnail, "Also write a thumbnail with this longest edge (0 disables)")
	previewPath := flags.String("preview", "", "Also write a raster preview of the scene to this file")
	doPublish := flags.Bool("publish", false, "Upload the outputs to the configured S3 bucket")
	list := flags.Bool("list", false, "List available scenes and exit")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, group := range scene.ListAllScenes().Groups {
			fmt.Fprintf(stdout, "%s:\n", group.Name)
			for _, info := range group.Scenes {
				fmt.Fprintf(stdout, "  %-16s %s\n", info.ID, info.Description)
			}
		}
		return nil
	}

	sceneObj, err := scene.New(cfg.Scene, scene.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Seed:            cfg.Seed,
	})
	if err != nil {
		return err
	}
	if err := sceneObj.Sampling.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Rendering %s at %dx%d, %d samples per pixel, depth %d\n", sceneObj.Name,
		sceneObj.Sampling.Width, sceneObj.Sampling.Height, sceneObj.Sampling.SamplesPerPixel, sceneObj.Sampling.MaxDepth)

	if *previewPath != "" {
		if err := output.Save(*previewPath, preview.Render(sceneObj)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Preview saved as %s\n", *previewPath)
	}

	startTime := time.Now()
	pixels, stats, err := render(ctx, sceneObj, cfg, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Render completed in %v (%s)\n", time.Since(startTime).Round(time.Millisecond), stats)

	files, err := writeOutputs(sceneObj.Sampling, pixels, cfg)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(stdout, "Render saved as %s\n", f.path)
	}

	if !*doPublish {
		return nil
	}
	publisher, err := newPublisher(cfg.S3, logger)
	if err != nil {
		return err
	}
	for _, f := range files {
		key := filepath.Base(f.path)
		if err := publisher.Publish(ctx, key, f.data, output.ContentType(f.path)); err != nil {
			return err
		}
	}
	return nil
}

// render returns gamma corrected pixels, top row first
func render(ctx context.Context, sceneObj *scene.Scene, cfg config.Config, logger core.Logger) ([]core.Vec3, renderer.RenderStats, error) {
	rt := sceneObj.Raytracer()

	if cfg.Passes <= 1 {
		start := time.Now()
		buffer, err := renderer.RenderParallel(ctx, rt, sceneObj.Sampling.SamplesPerPixel, cfg.Workers, cfg.Seed)
		if err != nil {
			return nil, renderer.RenderStats{}, err
		}
		stats := renderer.NewRenderStats(buffer, sceneObj.Sampling.SamplesPerPixel, 1, time.Since(start))
		return buffer.Resolve(), stats, nil
	}

	progressive := renderer.NewProgressiveRaytracer(rt, renderer.ProgressiveConfig{
		InitialSamples:     1,
		MaxSamplesPerPixel: sceneObj.Sampling.SamplesPerPixel,
		MaxPasses:          cfg.Passes,
		NumWorkers:         cfg.Workers,
		Seed:               cfg.Seed,
	}, logger)

	var stats renderer.RenderStats
	passChan, errChan := progressive.RenderProgressive(ctx)
	for result := range passChan {
		stats = result.Stats
	}
	if err := <-errChan; err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return progressive.Buffer().Resolve(), stats, nil
}

type outputFile struct {
	path string
	data []byte
}

// writeOutputs encodes the image, and optionally its thumbnail, and saves
// them to disk
func writeOutputs(sampling renderer.SamplingConfig, pixels []core.Vec3, cfg config.Config) ([]outputFile, error) {
	if dir := filepath.Dir(cfg.Output); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var files []outputFile
	ext := strings.ToLower(filepath.Ext(cfg.Output))

	var buf bytes.Buffer
	img := renderer.ToImage(sampling.Width, sampling.Height, pixels)
	if ext == ".ppm" {
		if err := output.WritePPM(&buf, sampling.Width, sampling.Height, pixels); err != nil {
			return nil, err
		}
	} else if err := output.Encode(&buf, img, ext); err != nil {
		return nil, err
	}
	files = append(files, outputFile{path: cfg.Output, data: buf.Bytes()})

	if cfg.Thumbnail > 0 {
		thumbPath := output.ThumbnailPath(cfg.Output)
		if ext == ".ppm" {
			thumbPath = strings.TrimSuffix(thumbPath, filepath.Ext(thumbPath)) + ".png"
		}
		data, err := encodeThumbnail(img, cfg.Thumbnail, thumbPath)
		if err != nil {
			return nil, err
		}
		files = append(files, outputFile{path: thumbPath, data: data})
	}

	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.path, err)
		}
	}
	return files, nil
}

func encodeThumbnail(img image.Image, size int, path string) ([]byte, error) {
	var buf bytes.Buffer
	if err := output.Encode(&buf, output.Thumbnail(img, size, size), filepath.Ext(path)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
