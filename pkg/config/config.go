// Package config loads render settings from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Lucifier129/go-ray-tracing/pkg/publish"
)

// Config holds settings shared by the CLI and the web server
type Config struct {
	Scene           string
	Width           int
	Height          int // 0 derives the height from the scene aspect ratio
	SamplesPerPixel int
	MaxDepth        int
	Workers         int // 0 uses every CPU
	Seed            int64
	Output          string
	Thumbnail       int // Longest thumbnail edge; 0 disables thumbnails
	Passes          int
	Port            int
	S3              publish.S3Config
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Scene:           "random",
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		Output:          "output/render.png",
		Passes:          7,
		Port:            8080,
	}
}

// Load reads rootDir/.env if present, then overlays RAYTRACER_* and S3_*
// environment variables on the defaults. Variables already set in the
// environment win over the file.
func Load(rootDir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(rootDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()
	cfg.Scene = getEnv("RAYTRACER_SCENE", cfg.Scene)
	cfg.Output = getEnv("RAYTRACER_OUTPUT", cfg.Output)

	ints := []struct {
		key  string
		dest *int
	}{
		{"RAYTRACER_WIDTH", &cfg.Width},
		{"RAYTRACER_HEIGHT", &cfg.Height},
		{"RAYTRACER_SAMPLES", &cfg.SamplesPerPixel},
		{"RAYTRACER_MAX_DEPTH", &cfg.MaxDepth},
		{"RAYTRACER_WORKERS", &cfg.Workers},
		{"RAYTRACER_THUMBNAIL", &cfg.Thumbnail},
		{"RAYTRACER_PASSES", &cfg.Passes},
		{"RAYTRACER_PORT", &cfg.Port},
	}
	for _, v := range ints {
		if err := lookupInt(v.key, v.dest); err != nil {
			return Config{}, err
		}
	}

	if value, ok := os.LookupEnv("RAYTRACER_SEED"); ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("RAYTRACER_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	cfg.S3 = publish.S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Prefix:    os.Getenv("S3_PREFIX"),
	}

	return cfg, nil
}

// getEnv returns the variable or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func lookupInt(key string, dest *int) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dest = n
	return nil
}
