package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/output"
	"github.com/Lucifier129/go-ray-tracing/pkg/preview"
	"github.com/Lucifier129/go-ray-tracing/pkg/renderer"
)

// ProgressUpdate represents a single progressive pass sent via SSE
type ProgressUpdate struct {
	PassNumber  int    `json:"passNumber"`
	TotalPasses int    `json:"totalPasses"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int     `json:"totalPixels"`
	TotalSamples    int     `json:"totalSamples"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
	MaxSamples      int     `json:"maxSamples"`
	Progress        float64 `json:"progress"`
}

// handleRender streams progressive passes via SSE. Every write happens on
// the handler goroutine, so the stream needs no locking.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		setSSEHeaders(w)
		writeSSEEvent(w, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Camera moves are applied here, before any pass starts
	sceneObj, err := s.createScene(req)
	if err != nil {
		setSSEHeaders(w)
		writeSSEEvent(w, "error", err.Error())
		return
	}

	setSSEHeaders(w)

	// A raster preview gives the client a frame before the first pass lands
	if previewData, err := imageToBase64PNG(preview.Render(sceneObj)); err == nil {
		writeSSEEvent(w, "preview", previewData)
	}

	consoleChan, webLogger := setupConsoleLogging()
	config := renderer.ProgressiveConfig{
		InitialSamples:     1,
		MaxSamplesPerPixel: req.MaxSamples,
		MaxPasses:          req.MaxPasses,
		NumWorkers:         s.defaults.Workers,
		Seed:               req.Seed,
	}
	raytracer := renderer.NewProgressiveRaytracer(sceneObj.Raytracer(), config, webLogger)

	startTime := time.Now()
	passChan, errChan := raytracer.RenderProgressive(ctx)

	for passChan != nil || errChan != nil {
		select {
		case msg := <-consoleChan:
			writeConsoleMessage(w, msg)

		case passResult, ok := <-passChan:
			if !ok {
				passChan = nil
				continue
			}
			if err := s.writePass(w, passResult, req, startTime); err != nil {
				log.Printf("Error sending pass %d: %v", passResult.PassNumber, err)
				return
			}

		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			if err != nil {
				writeSSEEvent(w, "error", fmt.Sprintf("Rendering failed: %v", err))
				return
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}

	drainConsole(w, consoleChan)
	writeSSEEvent(w, "complete", "Rendering completed")
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	if req.MaxSamples, err = parseIntParam(r.URL.Query(), "samples", s.defaults.SamplesPerPixel, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxPasses, err = parseIntParam(r.URL.Query(), "passes", s.defaults.Passes, 1, maxPasses); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxSamples > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writePass encodes one pass and sends it
func (s *Server) writePass(w http.ResponseWriter, result renderer.PassResult, req *RenderRequest, startTime time.Time) error {
	imageData, err := imageToBase64PNG(result.Image)
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	update := ProgressUpdate{
		PassNumber:  result.PassNumber,
		TotalPasses: req.MaxPasses,
		ImageData:   imageData,
		Stats: Stats{
			TotalPixels:     result.Stats.TotalPixels,
			TotalSamples:    result.Stats.TotalSamples,
			SamplesPerPixel: result.Stats.SamplesPerPixel,
			MaxSamples:      result.Stats.MaxSamples,
			Progress:        result.Stats.Progress(),
		},
		IsComplete: result.IsLast,
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	}

	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return writeSSEEvent(w, "pass", string(data))
}

// writeConsoleMessage forwards one log line to the client
func writeConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling console message: %v", err)
		return
	}
	writeSSEEvent(w, "console", string(data))
}

// drainConsole sends log lines still buffered after the last pass
func drainConsole(w http.ResponseWriter, consoleChan chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			writeConsoleMessage(w, msg)
		default:
			return
		}
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := output.Encode(&buf, img, "png"); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// writeSSEEvent sends a generic SSE event
func writeSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
