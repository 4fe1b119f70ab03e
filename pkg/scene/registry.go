package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	DisplayName string
	Description string
	build       func() *Scene
}

var registry = map[string]SceneInfo{}

func register(id, description string, build func() *Scene) {
	registry[id] = SceneInfo{
		ID:          id,
		DisplayName: titleCase(id),
		Description: description,
		build:       build,
	}
}

func init() {
	register("default", "colored spheres, a mirror and two lights over a checkered floor", NewDefaultScene)
	register("box-room", "cube frame of boxes lit by four colored box lights", NewBoxRoomScene)
	register("mirrors", "spheres of decreasing smoothness under the sky", NewMirrorScene)
	register("glass", "clear, frosted and nested refractive bodies", NewGlassScene)
	register("blend", "materials averaged step by step from diffuse to mirror", NewBlendScene)
}

// List returns every built-in scene sorted by ID
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, info := range registry {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Lookup builds a fresh copy of the named scene
func Lookup(id string) (*Scene, error) {
	info, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return info.build(), nil
}

// titleCase converts a scene ID such as "box-room" into "Box Room"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
