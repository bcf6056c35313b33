package geometry

import (
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
)

// HittableList is an unordered collection of objects searched linearly.
// It must not be modified while a render is reading it.
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	l := &HittableList{}
	l.Add(objects...)
	return l
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.objects = append(l.objects, objects...)
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns the objects in insertion order
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Hit returns the nearest intersection among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	checkInterval(tMin, tMax)

	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
