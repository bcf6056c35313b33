package main

import (
	"flag"
	"log"
	"os"

	"github.com/Lucifier129/go-ray-tracing/pkg/config"
	"github.com/Lucifier129/go-ray-tracing/web/server"
)

func main() {
	rootDir := os.Getenv("RAYTRACER_ROOT_DIR")
	if rootDir == "" {
		rootDir = "."
	}
	cfg, err := config.Load(rootDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Parse command line flags
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port to serve on")
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene rendered when a request names none")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel workers per render (0 uses every CPU)")
	flag.Parse()

	webServer := server.NewServer(cfg)

	log.Printf("Ray Tracing Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
