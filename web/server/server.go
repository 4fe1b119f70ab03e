package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-tile-pathtracer/pkg/log"
	"github.com/df07/go-tile-pathtracer/pkg/scene"
)

var logger = log.New("server")

// Server streams progressive renders of the built-in scenes over HTTP
type Server struct {
	addr string
	mux  *http.ServeMux
}

// NewServer creates a new web server listening on addr
func NewServer(addr string) *Server {
	s := &Server{addr: addr, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	return s
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.mux}

	errChan := make(chan error, 1)
	go func() {
		logger.Noticef("serving on http://%s", s.addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SceneDescription lists a built-in scene with its default settings
type SceneDescription struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Bodies       int        `json:"bodies"`
	Iterations   int        `json:"iterations"`
	Antialiasing int        `json:"antialiasing"`
	BounceLimit  int        `json:"bounceLimit"`
	Policy       string     `json:"policy"`
	Center       [3]float64 `json:"center"`
	Extent       [3]float64 `json:"extent"`
}

// handleScenes returns every built-in scene and its defaults
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	var scenes []SceneDescription
	for _, info := range scene.List() {
		sc, err := scene.Lookup(info.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		world := sc.World()
		bounds := world.Bounds()
		center, extent := bounds.Center(), bounds.Size()
		scenes = append(scenes, SceneDescription{
			ID:           info.ID,
			Name:         info.DisplayName,
			Description:  info.Description,
			Bodies:       len(sc.Bodies),
			Iterations:   sc.Iterations,
			Antialiasing: sc.Antialiasing,
			BounceLimit:  sc.BounceLimit,
			Policy:       sc.Policy.String(),
			Center:       [3]float64{center.X, center.Y, center.Z},
			Extent:       [3]float64{extent.X, extent.Y, extent.Z},
		})
	}
	writeJSON(w, http.StatusOK, scenes)
}

// SceneRequest holds the scene parameters shared by render and inspect
type SceneRequest struct {
	Scene        string
	Width        int
	Height       int
	Iterations   int
	Antialiasing int
	Preview      bool
	Bloom        bool
}

// parseSceneRequest parses the query parameters shared by all scene endpoints
func parseSceneRequest(values url.Values) (*SceneRequest, error) {
	req := &SceneRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, 8, 4096); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 225, 8, 4096); err != nil {
		return nil, err
	}
	if req.Iterations, err = parseIntParam(values, "iterations", 16, 1, 10000); err != nil {
		return nil, err
	}
	if req.Antialiasing, err = parseIntParam(values, "aa", 4, 1, 16); err != nil {
		return nil, err
	}
	if req.Preview, err = parseBoolParam(values, "preview", false); err != nil {
		return nil, err
	}
	if req.Bloom, err = parseBoolParam(values, "bloom", true); err != nil {
		return nil, err
	}

	if req.Width*req.Height > 1920*1080 && req.Iterations > 100 {
		logger.Warning("large image with many iterations may render slowly")
	}
	return req, nil
}

// buildScene looks up the requested scene and applies the request settings
func (req *SceneRequest) buildScene() (*scene.Scene, error) {
	sc, err := scene.Lookup(req.Scene)
	if err != nil {
		return nil, err
	}
	sc.Width = req.Width
	sc.Height = req.Height
	sc.Iterations = req.Iterations
	sc.Antialiasing = req.Antialiasing
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
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

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
