package prefabs

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/weapon"
	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	CoyoteFrames int     `yaml:"coyote_frames"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Circle     bool    `yaml:"circle"`
	Color      string  `yaml:"color"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	FacingLeft bool    `yaml:"facing_left"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type LineRenderComponentSpec struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	EndX      float64 `yaml:"end_x"`
	EndY      float64 `yaml:"end_y"`
	Width     float32 `yaml:"width"`
	Color     string  `yaml:"color"`
	AntiAlias bool    `yaml:"anti_alias"`
	Hidden    bool    `yaml:"hidden"`
}

type CameraComponentSpec struct {
	TargetName string  `yaml:"target_name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
}

type AudioComponentSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

type PhysicsBodyComponentSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Radius       float64 `yaml:"radius"`
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	Elasticity   float64 `yaml:"elasticity"`
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
	Static       bool    `yaml:"static"`
	AlignTopLeft bool    `yaml:"align_top_left"`
	Category     string  `yaml:"category"`
	Frozen       bool    `yaml:"frozen"`
	NoRotation   bool    `yaml:"no_rotation"`
}

type AimComponentSpec struct {
	DirX          float64 `yaml:"dir_x"`
	DirY          float64 `yaml:"dir_y"`
	OriginOffsetX float64 `yaml:"origin_offset_x"`
	OriginOffsetY float64 `yaml:"origin_offset_y"`
	AnchorOffsetX float64 `yaml:"anchor_offset_x"`
	AnchorOffsetY float64 `yaml:"anchor_offset_y"`
}

type CarrierComponentSpec struct {
	ReachRadius float64 `yaml:"reach_radius"`
	HoldOffsetX float64 `yaml:"hold_offset_x"`
	HoldOffsetY float64 `yaml:"hold_offset_y"`

	// StartingWeapon is a weapon prefab built and equipped with the carrier.
	StartingWeapon string `yaml:"starting_weapon"`
}

type InteractableComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Prompt string  `yaml:"prompt"`
}

type WeaponComponentSpec struct {
	Kind           string         `yaml:"kind"`
	Name           string         `yaml:"name"`
	MuzzleLength   float64        `yaml:"muzzle_length"`
	PrimarySound   string         `yaml:"primary_sound"`
	SecondarySound string         `yaml:"secondary_sound"`
	GravityGun     GravityGunSpec `yaml:"gravity_gun"`
}

// VectorSpec is an offset in world units. Up is subtracted from Y so tuning
// can say "50 above" without knowing the screen axis points down.
type VectorSpec struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	Up float64 `yaml:"up"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y - v.Up}
}

type EffectNamesSpec struct {
	LaunchSound     *string `yaml:"launch_sound"`
	LaunchParticles *string `yaml:"launch_particles"`
	GrabSound       *string `yaml:"grab_sound"`
	HoverSound      *string `yaml:"hover_sound"`
	HoverParticles  *string `yaml:"hover_particles"`
	MuzzleBeam      *string `yaml:"muzzle_beam"`
	MuzzleParticles *string `yaml:"muzzle_particles"`
}

// GravityGunSpec is gravity gun tuning as written in YAML. Unset fields keep
// the defaults.
type GravityGunSpec struct {
	MaxRange        float64         `yaml:"max_range"`
	Categories      []string        `yaml:"categories"`
	GrabOffset      *VectorSpec     `yaml:"grab_offset"`
	FollowOffset    *VectorSpec     `yaml:"follow_offset"`
	FollowDistance  *float64        `yaml:"follow_distance"`
	FollowLerpAlpha *float64        `yaml:"follow_lerp_alpha"`
	LaunchImpulse   *float64        `yaml:"launch_impulse"`
	MaxForce        float64         `yaml:"max_force"`
	Debug           bool            `yaml:"debug"`
	Effects         EffectNamesSpec `yaml:"effects"`
}

// Config overlays the spec onto weapon.DefaultGravityGunConfig and validates
// the result.
func (s GravityGunSpec) Config() (weapon.GravityGunConfig, error) {
	cfg := weapon.DefaultGravityGunConfig()
	if s.MaxRange != 0 {
		cfg.MaxRange = s.MaxRange
	}
	if len(s.Categories) > 0 {
		cats, err := ParseCategories(s.Categories)
		if err != nil {
			return cfg, err
		}
		cfg.Categories = cats
	}
	if s.GrabOffset != nil {
		cfg.GrabOffset = s.GrabOffset.Vector()
	}
	if s.FollowOffset != nil {
		cfg.FollowOffset = s.FollowOffset.Vector()
	}
	if s.FollowDistance != nil {
		cfg.FollowDistance = *s.FollowDistance
	}
	if s.FollowLerpAlpha != nil {
		cfg.FollowLerpAlpha = *s.FollowLerpAlpha
	}
	if s.LaunchImpulse != nil {
		cfg.LaunchImpulse = *s.LaunchImpulse
	}
	if s.MaxForce != 0 {
		cfg.MaxForce = s.MaxForce
	}
	cfg.Debug = s.Debug

	overlay := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	overlay(&cfg.Effects.LaunchSound, s.Effects.LaunchSound)
	overlay(&cfg.Effects.LaunchParticles, s.Effects.LaunchParticles)
	overlay(&cfg.Effects.GrabSound, s.Effects.GrabSound)
	overlay(&cfg.Effects.HoverSound, s.Effects.HoverSound)
	overlay(&cfg.Effects.HoverParticles, s.Effects.HoverParticles)
	overlay(&cfg.Effects.MuzzleBeam, s.Effects.MuzzleBeam)
	overlay(&cfg.Effects.MuzzleParticles, s.Effects.MuzzleParticles)

	return cfg.Validated()
}

var categoryNames = map[string]weapon.Category{
	"world":  weapon.CategoryWorld,
	"player": weapon.CategoryPlayer,
	"prop":   weapon.CategoryProp,
	"weapon": weapon.CategoryWeapon,
	"debris": weapon.CategoryDebris,
}

// ParseCategory maps a category name to its bit. The empty name is world
// geometry.
func ParseCategory(name string) (weapon.Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, nil
	}
	c, ok := categoryNames[name]
	if !ok {
		return 0, fmt.Errorf("prefabs: unknown category %q", name)
	}
	return c, nil
}

func ParseCategories(names []string) (weapon.Category, error) {
	var out weapon.Category
	for _, name := range names {
		c, err := ParseCategory(name)
		if err != nil {
			return 0, err
		}
		out |= c
	}
	return out, nil
}

// LoadGravityGunConfig reads the weapon.gravity_gun block of a prefab.
func LoadGravityGunConfig(prefabPath string) (weapon.GravityGunConfig, error) {
	spec, err := LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return weapon.GravityGunConfig{}, err
	}
	ws, err := DecodeComponentSpec[WeaponComponentSpec](spec.Components["weapon"])
	if err != nil {
		return weapon.GravityGunConfig{}, fmt.Errorf("prefabs: decode %s weapon: %w", prefabPath, err)
	}
	cfg, err := ws.GravityGun.Config()
	if err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", prefabPath, err)
	}
	return cfg, nil
}
