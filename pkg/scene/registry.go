package scene

import (
	"fmt"
	"sort"
	"strings"
)

// Builder constructs a scene from overrides
type Builder func(Options) *Scene

// SceneInfo represents a registered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Registry key
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	Group       string `json:"group"`   // Grouping category
	Movable     bool   `json:"movable"` // Camera accepts keyboard movement
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type entry struct {
	description string
	group       string
	movable     bool
	build       Builder
}

var registry = map[string]entry{
	"gradient":       {"Empty world showing the sky gradient", "Basics", false, NewGradientScene},
	"normals":        {"Sphere and ground colored by surface normal", "Basics", false, NewNormalsScene},
	"diffuse":        {"Lambertian sphere on a ground sphere", "Basics", false, NewDiffuseScene},
	"materials":      {"Diffuse, fuzzy metal and glass spheres", "Materials", false, NewMaterialsScene},
	"viewpoint":      {"Materials spheres from an oriented pinhole camera", "Materials", false, NewViewpointScene},
	"depth-of-field": {"Materials spheres through a thin lens with a wide aperture", "Materials", false, NewDepthOfFieldScene},
	"random":         {"Book cover field of random spheres with depth of field", "Random", false, NewRandomScene},
	"motion":         {"Random spheres with motion blur and keyboard camera", "Random", true, NewMotionScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns metadata for one scene
func Lookup(name string) (SceneInfo, bool) {
	e, ok := registry[name]
	if !ok {
		return SceneInfo{}, false
	}
	return SceneInfo{
		ID:          name,
		DisplayName: titleCase(name),
		Description: e.description,
		Group:       e.group,
		Movable:     e.movable,
	}, true
}

// ListAllScenes returns every scene grouped by category, groups and scenes
// sorted by name
func ListAllScenes() ScenesResponse {
	byGroup := make(map[string][]SceneInfo)
	for _, name := range Names() {
		info, _ := Lookup(name)
		byGroup[info.Group] = append(byGroup[info.Group], info)
	}

	groupNames := make([]string, 0, len(byGroup))
	for name := range byGroup {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	var response ScenesResponse
	for _, name := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: name, Scenes: byGroup[name]})
	}
	return response
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return e.build(opts), nil
}

// titleCase converts "depth-of-field" into "Depth Of Field"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
