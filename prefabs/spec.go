package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LevelSpec lays out one playable room.
type LevelSpec struct {
	Name      string            `yaml:"name"`
	Width     float64           `yaml:"width"`
	Height    float64           `yaml:"height"`
	Gravity   *float64          `yaml:"gravity"`
	Platforms []PlatformSpec    `yaml:"platforms"`
	Entities  []LevelEntitySpec `yaml:"entities"`
	Color     *YAMLColor        `yaml:"color"`
}

type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LevelEntitySpec places a prefab. Count repeats it, stepping by DX/DY.
type LevelEntitySpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Count  int     `yaml:"count"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
}

func LoadLevelSpec(filename string) (LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return spec, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return spec, fmt.Errorf("prefabs: level %s: size %vx%v must be positive", filename, spec.Width, spec.Height)
	}
	for i, ent := range spec.Entities {
		if ent.Prefab == "" {
			return spec, fmt.Errorf("prefabs: level %s: entity %d has no prefab", filename, i)
		}
	}
	return spec, nil
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour premultiplied, or fallback when unset.
func (c *YAMLColor) RGBA8(fallback color.RGBA) color.RGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ParseColor decodes "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	var c YAMLColor
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: s}
	if err := c.UnmarshalYAML(node); err != nil {
		return color.RGBA{}, err
	}
	return c.RGBA8(color.RGBA{}), nil
}
