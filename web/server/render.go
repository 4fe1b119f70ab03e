package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/output"
	"github.com/df07/go-tile-pathtracer/pkg/postprocess"
	"github.com/df07/go-tile-pathtracer/pkg/renderer"
)

// ProgressUpdate represents a single progressive update sent via SSE
type ProgressUpdate struct {
	Iteration       int    `json:"iteration"`
	TotalIterations int    `json:"totalIterations"`
	ImageData       string `json:"imageData"` // Base64 encoded PNG
	Stats           Stats  `json:"stats"`
	IsComplete      bool   `json:"isComplete"`
	ElapsedMs       int64  `json:"elapsedMs"`
}

// Stats represents the work done in one iteration
type Stats struct {
	Samples      int `json:"samples"`
	Bounces      int `json:"bounces"`
	Converged    int `json:"converged"`
	ActivePixels int `json:"activePixels"`
}

// handleRender streams one PNG per iteration as server-sent events. The
// final frame gets bloom when requested.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("streaming not supported"))
		return
	}

	req, err := parseSceneRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sc, err := req.buildScene()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	config := renderer.DefaultConfig()
	config.Preview = req.Preview
	config.Snapshots = true
	rt, err := renderer.NewRenderer(sc, config)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	setSSEHeaders(w)
	ctx := r.Context()
	startTime := time.Now()
	logger.Infof("streaming scene %q at %dx%d", sc.Name, sc.Width, sc.Height)

	iterChan, errChan := rt.RenderProgressive(ctx)
	for result := range iterChan {
		var bloom *postprocess.BloomConfig
		if result.IsLast && req.Bloom {
			cfg := postprocess.DefaultBloomConfig()
			bloom = &cfg
		}

		imageData, err := encodeFrame(result.Image, bloom)
		if err != nil {
			sendSSEEvent(w, flusher, "error", fmt.Sprintf("failed to encode image: %v", err))
			return
		}

		update := ProgressUpdate{
			Iteration:       result.Iteration,
			TotalIterations: sc.Iterations,
			ImageData:       imageData,
			Stats: Stats{
				Samples:      result.Stats.Samples,
				Bounces:      result.Stats.Bounces,
				Converged:    result.Stats.Converged,
				ActivePixels: result.ActivePixels,
			},
			IsComplete: result.IsLast,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		}
		data, err := json.Marshal(update)
		if err != nil {
			sendSSEEvent(w, flusher, "error", err.Error())
			return
		}
		if err := sendSSEEvent(w, flusher, "progress", string(data)); err != nil {
			// Client went away; the renderer stops once ctx is cancelled
			logger.Infof("client disconnected: %v", err)
			return
		}
	}

	if err := <-errChan; err != nil {
		sendSSEEvent(w, flusher, "error", fmt.Sprintf("render error: %v", err))
		return
	}
	sendSSEEvent(w, flusher, "complete", "rendering completed")
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEEvent writes and flushes one event
func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// encodeFrame tone maps a resolved frame and returns it as a base64 PNG
func encodeFrame(img *core.Image, bloom *postprocess.BloomConfig) (string, error) {
	display := postprocess.Compose(img, nil)
	if bloom != nil {
		display = postprocess.Compose(img, postprocess.Bloom(img, *bloom))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, output.ToRGBA(display)); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
