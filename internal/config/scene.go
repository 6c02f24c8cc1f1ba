package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is the on-disk YAML description cmd/csgproc reads: an ordered
// chain of brushes, each naming a primitive and its parameters, plus the
// optional chunking and UV settings.
type Scene struct {
	Brushes   []SceneBrush `yaml:"brushes"`
	ChunkSize float64      `yaml:"chunk_size"`
	UVScale   float64      `yaml:"uv_scale"`
}

// SceneBrush names one chain entry: a primitive type, its parameters, the
// boolean operation, and an explicit chain order. Order is redundant with
// the brush's position in Brushes for a well-formed scene but is kept
// explicit so a scene file can be hand-edited without reordering entries.
type SceneBrush struct {
	Primitive   string     `yaml:"primitive"`
	Operation   string     `yaml:"operation"`
	Order       int        `yaml:"order"`
	MaterialTag int        `yaml:"material_tag"`
	Center      [3]float64 `yaml:"center"`
	HalfExtents [3]float64 `yaml:"half_extents"`
	Radius      float64    `yaml:"radius"`
	InnerRadius float64    `yaml:"inner_radius"`
	HalfHeight  float64    `yaml:"half_height"`
	HalfDepth   float64    `yaml:"half_depth"`
	Sides       int        `yaml:"sides"`
	LatSegments int        `yaml:"lat_segments"`
	LonSegments int        `yaml:"lon_segments"`
	SlopeAxis   int        `yaml:"slope_axis"`
}

// LoadScene reads and parses a scene file from path.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return Scene{}, fmt.Errorf("config: parse scene: %w", err)
	}
	return scene, nil
}
