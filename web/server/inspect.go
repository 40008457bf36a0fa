package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Index        int                    `json:"index"` // Object index in insertion order, -1 on a miss
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Distance     float64                `json:"distance"`
	Color        string                 `json:"color"` // Color shown at the pixel, as #rrggbb
	Properties   map[string]interface{} `json:"properties"`
}

// extractGeometryInfo describes a shape using type assertions
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch sh := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{sh.Center.X, sh.Center.Y, sh.Center.Z}
		properties["radius"] = sh.Radius
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

// inspectPixel casts the camera ray through a pixel and describes what it hits
func inspectPixel(setup *scene.Setup, pixelX, pixelY int) InspectResponse {
	ray := setup.Camera().CameraRay(pixelX, pixelY)

	hit, ok := setup.Scene.NearestIntersection(ray)
	if !ok {
		bg := setup.Scene.Background
		return InspectResponse{
			Index:      -1,
			Color:      fmt.Sprintf("#%02x%02x%02x", bg.R, bg.G, bg.B),
			Properties: map[string]interface{}{},
		}
	}

	geometryType, properties := extractGeometryInfo(hit.Object.Shape)
	point := ray.At(hit.Distance)
	c := hit.Object.Color

	return InspectResponse{
		Hit:          true,
		Index:        hit.Index,
		GeometryType: geometryType,
		Point:        [3]float64{point.X, point.Y, point.Z},
		Distance:     hit.Distance,
		Color:        fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		Properties:   properties,
	}
}

// handleInspect reports the object seen through a pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	setup, err := s.createSetup(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, height := setup.CameraConfig.Width, setup.CameraConfig.Height
	x, err := parseIntParam(r.URL.Query(), "x", -1, 0, width-1)
	if err != nil || x < 0 {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("x must be between 0 and %d", width-1))
		return
	}
	y, err := parseIntParam(r.URL.Query(), "y", -1, 0, height-1)
	if err != nil || y < 0 {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("y must be between 0 and %d", height-1))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(inspectPixel(setup, x, y))
}

// writeJSONError writes an error response as JSON
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
