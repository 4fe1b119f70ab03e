package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/geometry"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// InspectResponse describes the first surface seen through a pixel
type InspectResponse struct {
	Hit          bool              `json:"hit"`
	GeometryType string            `json:"geometryType"`
	Point        [3]float64        `json:"point"`
	Normal       [3]float64        `json:"normal"`
	Distance     float64           `json:"distance"`
	Material     *MaterialResponse `json:"material,omitempty"`
	Background   [3]float64        `json:"background"`
}

// MaterialResponse lists the properties of a surface material
type MaterialResponse struct {
	Color               [3]float64 `json:"color"`
	Smoothness          float64    `json:"smoothness"`
	SpecularProbability float64    `json:"specularProbability"`
	SpecularColor       [3]float64 `json:"specularColor"`
	Transparency        float64    `json:"transparency"`
	IndexOfRefraction   float64    `json:"indexOfRefraction"`
	Emission            [3]float64 `json:"emission"`
}

func newMaterialResponse(m *material.Material) *MaterialResponse {
	if m == nil {
		return nil
	}
	return &MaterialResponse{
		Color:               [3]float64{m.Color.X, m.Color.Y, m.Color.Z},
		Smoothness:          m.Smoothness,
		SpecularProbability: m.SpecularProbability,
		SpecularColor:       [3]float64{m.SpecularColor.X, m.SpecularColor.Y, m.SpecularColor.Z},
		Transparency:        m.Transparency,
		IndexOfRefraction:   m.IndexOfRefraction,
		Emission:            [3]float64{m.Emission.X, m.Emission.Y, m.Emission.Z},
	}
}

// geometryType names the shape that produced hit
func geometryType(hit geometry.HitInfo, ray core.Ray, bodies []geometry.Shape) string {
	if hit.Floor {
		return "floor"
	}
	for _, body := range bodies {
		h, ok := body.Hit(ray)
		if !ok || h.T != hit.T {
			continue
		}
		switch body.(type) {
		case *geometry.Sphere:
			return "sphere"
		case *geometry.Box:
			return "box"
		}
	}
	return "unknown"
}

// handleInspect casts the center ray of a pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
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

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid x coordinate"))
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid y coordinate"))
		return
	}
	if pixelX < 0 || pixelX >= sc.Width || pixelY < 0 || pixelY >= sc.Height {
		writeError(w, http.StatusBadRequest, fmt.Errorf("pixel coordinates out of bounds"))
		return
	}

	ray := sc.Camera.Ray(float64(pixelX), float64(pixelY), sc.Width, sc.Height)
	hit, ok := sc.Intersect(ray)
	if !ok {
		bg := sc.Background(ray.Direction)
		writeJSON(w, http.StatusOK, InspectResponse{Background: [3]float64{bg.X, bg.Y, bg.Z}})
		return
	}

	point := ray.At(hit.T)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType(hit, ray, sc.Bodies),
		Point:        [3]float64{point.X, point.Y, point.Z},
		Normal:       [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:     hit.T,
		Material:     newMaterialResponse(hit.Material),
	})
}
