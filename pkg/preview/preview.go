// Package preview rasterizes a scene in a few milliseconds so interactive
// clients have something to show before the first path traced pass.
package preview

import (
	"image"

	"github.com/fogleman/fauxgl"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
	"github.com/Lucifier129/go-ray-tracing/pkg/scene"
)

// Icosphere subdivision level used for every sphere
const sphereDetail = 3

var (
	backgroundColor = fauxgl.Color{R: 0.75, G: 0.85, B: 1.0, A: 1}
	glassColor      = fauxgl.Color{R: 0.9, G: 0.95, B: 1.0, A: 1}
	defaultColor    = fauxgl.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
)

// Render draws the scene's spheres with Phong shading through a pinhole at
// the scene camera's position
func Render(sceneObj *scene.Scene) image.Image {
	w, h := sceneObj.Sampling.Width, sceneObj.Sampling.Height
	cam := sceneObj.CameraConfig

	eye := vector(cam.LookFrom)
	center := vector(cam.LookAt)
	up := vector(cam.Up)
	aspect := float64(w) / float64(h)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(cam.VFov, aspect, 0.01, 5000)

	light := eye.Sub(center).Normalize()
	shader := fauxgl.NewPhongShader(matrix, light, eye)

	context := fauxgl.NewContext(w, h)
	context.ClearColorBufferWith(backgroundColor)
	context.Shader = shader

	midTime := (cam.Time0 + cam.Time1) / 2
	for _, obj := range sceneObj.World.Objects() {
		mesh, mat, ok := sphereMesh(obj, midTime)
		if !ok {
			continue
		}
		shader.ObjectColor = materialColor(mat)
		context.DrawMesh(mesh)
	}

	return context.Image()
}

// sphereMesh tessellates static and moving spheres; moving ones are drawn
// where they are at time
func sphereMesh(obj geometry.Hittable, time float64) (*fauxgl.Mesh, *material.Material, bool) {
	var center core.Vec3
	var radius float64
	var mat *material.Material

	switch s := obj.(type) {
	case *geometry.Sphere:
		center, radius, mat = s.Center, s.Radius, &s.Material
	case *geometry.MovingSphere:
		center, radius, mat = s.CenterAt(time), s.Radius, &s.Material
	default:
		return nil, nil, false
	}

	mesh := fauxgl.NewSphere(sphereDetail)
	mesh.Transform(fauxgl.Scale(fauxgl.V(radius, radius, radius)).Translate(vector(center)))
	return mesh, mat, true
}

// materialColor picks a flat color that suggests the material
func materialColor(mat *material.Material) fauxgl.Color {
	switch mat.Kind {
	case material.KindLambertian, material.KindMetal:
		return fauxgl.Color{R: mat.Albedo.X, G: mat.Albedo.Y, B: mat.Albedo.Z, A: 1}
	case material.KindDielectric:
		return glassColor
	default:
		return defaultColor
	}
}

func vector(v core.Vec3) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
