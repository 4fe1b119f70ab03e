package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type sseEvent struct {
	name string
	data string
}

// parseSSE splits a recorded event stream into events
func parseSSE(body string) []sseEvent {
	var events []sseEvent
	for _, block := range strings.Split(body, "\n\n") {
		var ev sseEvent
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				ev.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				ev.data = strings.TrimPrefix(line, "data: ")
			}
		}
		if ev.name != "" {
			events = append(events, ev)
		}
	}
	return events
}

func doRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(":0").Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["status"] != "ok" {
		t.Errorf("Unexpected health response %q (%v)", rec.Body.String(), err)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := doRequest(t, "/api/scenes")

	var scenes []SceneDescription
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Failed to decode scenes: %v", err)
	}
	if len(scenes) != 5 {
		t.Fatalf("Expected 5 scenes, got %d", len(scenes))
	}
	if scenes[0].ID != "blend" || scenes[0].Bodies == 0 || scenes[0].Policy != "nearest" {
		t.Errorf("Unexpected first scene %+v", scenes[0])
	}
	for _, sc := range scenes {
		if sc.Extent[0] <= 0 || sc.Extent[1] <= 0 || sc.Extent[2] <= 0 {
			t.Errorf("Scene %s has an empty extent %v", sc.ID, sc.Extent)
		}
	}
}

func TestHandleRender_Preview(t *testing.T) {
	rec := doRequest(t, "/api/render?scene=mirrors&width=16&height=8&iterations=3&aa=1&preview=true")

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Expected event stream, got %q: %s", ct, rec.Body.String())
	}

	events := parseSSE(rec.Body.String())
	if len(events) != 2 || events[0].name != "progress" || events[1].name != "complete" {
		t.Fatalf("Expected one progress event then complete, got %+v", events)
	}

	var update ProgressUpdate
	if err := json.Unmarshal([]byte(events[0].data), &update); err != nil {
		t.Fatalf("Failed to decode update: %v", err)
	}
	// Preview shading converges every pixel after the first pass
	if update.Iteration != 1 || !update.IsComplete || update.Stats.ActivePixels != 0 {
		t.Errorf("Unexpected update %+v", update.Stats)
	}
	if update.Stats.Samples != 128 || update.TotalIterations != 3 {
		t.Errorf("Expected 128 samples of 3 planned iterations, got %+v", update)
	}

	raw, err := base64.StdEncoding.DecodeString(update.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64 image: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("Expected 16x8 image, got %v", b)
	}
}

func TestHandleRender_BadRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown scene", "scene=nope"},
		{"width too small", "width=2"},
		{"bad iterations", "iterations=many"},
		{"bad bool", "preview=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, "/api/render?"+tt.query)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	t.Run("center ray escapes to the sky", func(t *testing.T) {
		rec := doRequest(t, "/api/inspect?scene=mirrors&width=32&height=18&x=16&y=9")

		var resp InspectResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Hit || resp.Material != nil {
			t.Errorf("Expected a miss, got %+v", resp)
		}
		if resp.Background == [3]float64{} {
			t.Error("Expected sky color for a miss")
		}
	})

	t.Run("bottom row sees a surface", func(t *testing.T) {
		rec := doRequest(t, "/api/inspect?scene=mirrors&width=32&height=18&x=16&y=17")

		var resp InspectResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if !resp.Hit || resp.Material == nil || resp.Distance <= 0 {
			t.Fatalf("Expected a hit, got %+v", resp)
		}
		if resp.GeometryType != "floor" && resp.GeometryType != "sphere" {
			t.Errorf("Unexpected geometry type %q", resp.GeometryType)
		}
	})

	t.Run("errors", func(t *testing.T) {
		for _, query := range []string{"x=1", "x=a&y=1", "x=-1&y=0", "width=16&height=8&x=16&y=0"} {
			if rec := doRequest(t, "/api/inspect?"+query); rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", query, rec.Code)
			}
		}
	})
}

func TestStart_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewServer("127.0.0.1:0").Start(ctx); err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
}
