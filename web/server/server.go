package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Lucifier129/go-ray-tracing/pkg/camera"
	"github.com/Lucifier129/go-ray-tracing/pkg/config"
	"github.com/Lucifier129/go-ray-tracing/pkg/scene"
)

//go:embed static
var staticFiles embed.FS

// Parameter limits shared by every endpoint
const (
	maxImageSize  = 2000
	maxSamples    = 10000
	maxPasses     = 1000
	maxRayDepth   = 500
	maxMoveLength = 1000
)

// Server handles web requests for the progressive raytracer
type Server struct {
	port     int
	defaults config.Config
}

// NewServer creates a new web server using cfg for unspecified parameters
func NewServer(cfg config.Config) *Server {
	return &Server{port: cfg.Port, defaults: cfg}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string            `json:"scene"`      // Registered scene name
	Width      int               `json:"width"`      // Image width
	Height     int               `json:"height"`     // Image height; 0 keeps the scene aspect
	MaxSamples int               `json:"maxSamples"` // Maximum samples per pixel
	MaxPasses  int               `json:"maxPasses"`  // Maximum number of passes
	MaxDepth   int               `json:"maxDepth"`   // Maximum ray bounces
	Seed       int64             `json:"seed"`       // Layout and sampling seed
	Moves      []camera.Movement `json:"moves"`      // Camera moves applied before rendering
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("/", http.FileServer(http.FS(static)))

	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/pixel", s.handlePixel)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the registered scenes by group
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListAllScenes())
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = s.defaults.Scene
	}

	sceneObj, err := scene.New(sceneName, scene.Options{Seed: s.defaults.Seed, SphereCount: 4})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cam := sceneObj.CameraConfig
	info, _ := scene.Lookup(sceneName)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene":   sceneName,
		"movable": info.Movable,
		"defaults": map[string]interface{}{
			"width":           sceneObj.Sampling.Width,
			"height":          sceneObj.Sampling.Height,
			"samplesPerPixel": sceneObj.Sampling.SamplesPerPixel,
			"maxDepth":        sceneObj.Sampling.MaxDepth,
			"vfov":            cam.VFov,
			"aperture":        cam.Aperture,
			"lookFrom":        [3]float64{cam.LookFrom.X, cam.LookFrom.Y, cam.LookFrom.Z},
			"lookAt":          [3]float64{cam.LookAt.X, cam.LookAt.Y, cam.LookAt.Z},
		},
		"limits": map[string]interface{}{
			"width":      map[string]int{"min": 1, "max": maxImageSize},
			"height":     map[string]int{"min": 0, "max": maxImageSize},
			"maxSamples": map[string]int{"min": 1, "max": maxSamples},
			"maxPasses":  map[string]int{"min": 1, "max": maxPasses},
			"maxDepth":   map[string]int{"min": 1, "max": maxRayDepth},
		},
	})
}

// parseCommonSceneParams parses the parameters that select and size a scene
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	values := r.URL.Query()

	req.Scene = values.Get("scene")
	if req.Scene == "" {
		req.Scene = s.defaults.Scene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", s.defaults.Width, 1, maxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(values, "height", s.defaults.Height, 0, maxImageSize); err != nil {
		return err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", s.defaults.MaxDepth, 1, maxRayDepth); err != nil {
		return err
	}
	if req.Seed, err = parseInt64Param(values, "seed", s.defaults.Seed); err != nil {
		return err
	}

	if moves := values.Get("moves"); moves != "" {
		if len(moves) > maxMoveLength {
			return fmt.Errorf("moves must be at most %d characters", maxMoveLength)
		}
		if req.Moves, err = camera.ParseMovements(moves); err != nil {
			return err
		}
	}

	return nil
}

// createScene builds the requested scene and applies its camera moves
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.New(req.Scene, scene.Options{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.MaxSamples,
		MaxDepth:        req.MaxDepth,
		Seed:            req.Seed,
	})
	if err != nil {
		return nil, err
	}

	for _, m := range req.Moves {
		if err := sceneObj.Move(m); err != nil {
			return nil, err
		}
	}
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses an unbounded 64-bit integer parameter
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parsePixel reads x and y and checks them against the image size
func parsePixel(values url.Values, width, height int) (int, int, error) {
	x, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate")
	}
	y, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate")
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, fmt.Errorf("pixel (%d, %d) out of bounds for %dx%d image", x, y, width, height)
	}
	return x, y, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
