package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Identifier accepted by NewBuiltinScene
	Description string // One-line description for help output
}

type builtinScene struct {
	description string
	build       func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		description: "four spheres, ivory and red rubber, one light",
		build:       NewDefaultScene,
	},
	"showcase": {
		description: "checkerboard floor, glass, mirror, boxes, three lights",
		build:       NewShowcaseScene,
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by name
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for name, s := range builtinScenes {
		scenes = append(scenes, SceneInfo{Name: name, Description: s.description})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// NewBuiltinScene creates a fresh copy of the named built-in scene
func NewBuiltinScene(name string) (*Scene, error) {
	s, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return s.build(), nil
}
