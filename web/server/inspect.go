package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
	"github.com/Lucifier129/go-ray-tracing/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties"`
}

// PixelResponse is one radiance sample of one pixel
type PixelResponse struct {
	X     int        `json:"x"`
	Y     int        `json:"y"` // Counted from the bottom row
	Color [3]float64 `json:"color"`
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo describes the fields that matter for the material kind
func extractMaterialInfo(mat *material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	if mat == nil {
		return material.KindDefault.String(), properties
	}

	switch mat.Kind {
	case material.KindLambertian:
		properties["albedo"] = [3]float64{mat.Albedo.X, mat.Albedo.Y, mat.Albedo.Z}
		properties["color"] = hexColor(mat.Albedo)
	case material.KindMetal:
		properties["albedo"] = [3]float64{mat.Albedo.X, mat.Albedo.Y, mat.Albedo.Z}
		properties["color"] = hexColor(mat.Albedo)
		properties["fuzz"] = mat.Fuzz
	case material.KindDielectric:
		properties["refractiveIndex"] = mat.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
	}
	return mat.Kind.String(), properties
}

// extractGeometryInfo describes a primitive
func extractGeometryInfo(obj geometry.Hittable, time float64) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := obj.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.MovingSphere:
		center := geom.CenterAt(time)
		properties["center"] = [3]float64{center.X, center.Y, center.Z}
		properties["center0"] = [3]float64{geom.Center0.X, geom.Center0.Y, geom.Center0.Z}
		properties["center1"] = [3]float64{geom.Center1.X, geom.Center1.Y, geom.Center1.Z}
		properties["radius"] = geom.Radius
		return "moving_sphere", properties

	default:
		return "unknown", properties
	}
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord material.HitRecord
	Object    geometry.Hittable // The primitive that was hit, if found
	Time      float64
}

// inspectPixel casts a ray through the center of image pixel (x, row), row
// counted from the top, and returns the first object hit
func inspectPixel(sceneObj *scene.Scene, x, row int) InspectResult {
	w, h := sceneObj.Sampling.Width, sceneObj.Sampling.Height
	u := (float64(x) + 0.5) / float64(max(w-1, 1))
	v := (float64(h-1-row) + 0.5) / float64(max(h-1, 1))

	// A fixed seed gives the same lens and shutter sample on every request
	sampler := core.NewSeededSampler(0)
	ray := sceneObj.Camera.GetRay(u, v, sampler)

	hit, isHit := sceneObj.World.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The list does not report which object won, so find the one at hit.T
	for _, obj := range sceneObj.World.Objects() {
		if objHit, ok := obj.Hit(ray, 0.001, math.Inf(1)); ok && objHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Object: obj, Time: ray.Time}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit, Time: ray.Time}
}

// handleInspect handles ray casting inspection requests. Coordinates are
// image coordinates with the origin at the top left.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	x, row, err := parsePixel(r.URL.Query(), sceneObj.Sampling.Width, sceneObj.Sampling.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := inspectPixel(sceneObj, x, row)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Object, result.Time)

	hit := result.HitRecord
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:       [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}

// handlePixel traces a single jittered sample through pixel (x, y), y counted
// from the bottom row, and returns its linear radiance
func (s *Server) handlePixel(w http.ResponseWriter, r *http.Request) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	x, y, err := parsePixel(r.URL.Query(), sceneObj.Sampling.Width, sceneObj.Sampling.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := sceneObj.Raytracer().SamplePixel(x, y, core.NewSeededSampler(req.Seed))
	writeJSON(w, http.StatusOK, PixelResponse{X: x, Y: y, Color: [3]float64{c.X, c.Y, c.Z}})
}
