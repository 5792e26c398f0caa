package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
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

// AudioSpec names one sound effect and the mixer channel it plays on.
type AudioSpec struct {
	Name    string  `yaml:"name"`
	File    string  `yaml:"file"`
	Channel int     `yaml:"channel"`
	Volume  float64 `yaml:"volume"`
}

// ClipSpec describes how one animation clip is cut from its sheet. With Meta
// set the Aseprite export is used; with FrameW set the sheet is a fixed strip;
// otherwise the sheet is sliced into square frames.
type ClipSpec struct {
	Name       string  `yaml:"name"`
	Sheet      string  `yaml:"sheet"`
	Meta       string  `yaml:"meta"`
	Loop       bool    `yaml:"loop"`
	FrameW     int     `yaml:"frame_w"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
}

type AnimationSpec struct {
	// SpriteW/SpriteH is the authored frame size; the clip is scaled to the body.
	SpriteW float64    `yaml:"sprite_w"`
	SpriteH float64    `yaml:"sprite_h"`
	Initial string     `yaml:"initial"`
	Clips   []ClipSpec `yaml:"clips"`
}

// Scale returns the factors that fit the authored sprite to w x h.
func (a AnimationSpec) Scale(w, h float64) (float64, float64) {
	sx, sy := 1.0, 1.0
	if a.SpriteW > 0 {
		sx = w / a.SpriteW
	}
	if a.SpriteH > 0 {
		sy = h / a.SpriteH
	}
	return sx, sy
}

type SwordSpec struct {
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	Inflate   float64   `yaml:"inflate"`
	OffsetX   float64   `yaml:"offset_x"`
	OffsetY   float64   `yaml:"offset_y"`
	DrawShift float64   `yaml:"draw_shift"`
	Damage    int       `yaml:"damage"`
	Idle      ClipSpec  `yaml:"idle"`
	Attack    ClipSpec  `yaml:"attack"`
	Color     YAMLColor `yaml:"color"`
}

type PlayerSpec struct {
	Name               string        `yaml:"name"`
	Width              float64       `yaml:"width"`
	Height             float64       `yaml:"height"`
	MoveSpeed          float64       `yaml:"move_speed"`
	Gravity            float64       `yaml:"gravity"`
	JumpSpeed          float64       `yaml:"jump_speed"`
	MaxHealth          int           `yaml:"max_health"`
	RespawnFrames      int           `yaml:"respawn_frames"`
	KnockbackFrames    int           `yaml:"knockback_frames"`
	FootstepIntervalMS int           `yaml:"footstep_interval_ms"`
	FootstepVariants   int           `yaml:"footstep_variants"`
	Placeholder        YAMLColor     `yaml:"placeholder"`
	Animation          AnimationSpec `yaml:"animation"`
	Sword              SwordSpec     `yaml:"sword"`
	Audio              []AudioSpec   `yaml:"audio"`
}

type EnemySpec struct {
	Name             string        `yaml:"name"`
	Width            float64       `yaml:"width"`
	Height           float64       `yaml:"height"`
	Speed            float64       `yaml:"speed"`
	Gravity          float64       `yaml:"gravity"`
	Health           int           `yaml:"health"`
	DetectionRange   float64       `yaml:"detection_range"`
	AttackSpeed      float64       `yaml:"attack_speed"`
	AttackFrames     int           `yaml:"attack_frames"`
	CooldownFrames   int           `yaml:"cooldown_frames"`
	LedgeLookAhead   float64       `yaml:"ledge_look_ahead"`
	LedgeProbeHeight float64       `yaml:"ledge_probe_height"`
	FallLimit        float64       `yaml:"fall_limit"`
	SpawnOffsetY     float64       `yaml:"spawn_offset_y"`
	Placeholder      YAMLColor     `yaml:"placeholder"`
	Animation        AnimationSpec `yaml:"animation"`
	Audio            []AudioSpec   `yaml:"audio"`
}

type FlyingEnemySpec struct {
	Name              string        `yaml:"name"`
	Width             float64       `yaml:"width"`
	Height            float64       `yaml:"height"`
	Speed             float64       `yaml:"speed"`
	Health            int           `yaml:"health"`
	HoverSpeed        float64       `yaml:"hover_speed"`
	HoverAmplitude    float64       `yaml:"hover_amplitude"`
	DetectionRange    float64       `yaml:"detection_range"`
	LoseInterest      float64       `yaml:"lose_interest"`
	CooldownFrames    int           `yaml:"cooldown_frames"`
	PreferredDistance float64       `yaml:"preferred_distance"`
	DistanceSlack     float64       `yaml:"distance_slack"`
	AttackBand        float64       `yaml:"attack_band"`
	ApproachFactor    float64       `yaml:"approach_factor"`
	PatrolRange       float64       `yaml:"patrol_range"`
	FireDelay         int           `yaml:"fire_delay"`
	HoverAbove        float64       `yaml:"hover_above"`
	RetreatHeight     float64       `yaml:"retreat_height"`
	RetreatFrames     int           `yaml:"retreat_frames"`
	Smoothing         float64       `yaml:"smoothing"`
	HitboxInset       float64       `yaml:"hitbox_inset"`
	FallLimit         float64       `yaml:"fall_limit"`
	Placeholder       YAMLColor     `yaml:"placeholder"`
	ChargeColor       YAMLColor     `yaml:"charge_color"`
	Animation         AnimationSpec `yaml:"animation"`
	Audio             []AudioSpec   `yaml:"audio"`
}

type ProjectileSpec struct {
	Speed         float64   `yaml:"speed"`
	Gravity       float64   `yaml:"gravity"`
	Lifetime      int       `yaml:"lifetime"`
	MinSize       int       `yaml:"min_size"`
	MaxSize       int       `yaml:"max_size"`
	Jitter        float64   `yaml:"jitter"`
	WobbleSpeed   float64   `yaml:"wobble_speed"`
	TrailInterval int       `yaml:"trail_interval"`
	TrailChance   float64   `yaml:"trail_chance"`
	TrailLifetime int       `yaml:"trail_lifetime"`
	Color         YAMLColor `yaml:"color"`
}

// StrikeSpec is the effect of one kind of contact hit on the player.
type StrikeSpec struct {
	Damage     int       `yaml:"damage"`
	KnockbackX float64   `yaml:"knockback_x"`
	KnockbackY float64   `yaml:"knockback_y"`
	Color      YAMLColor `yaml:"color"`
}

type HitEffectSpec struct {
	Particles int       `yaml:"particles"`
	Lifetime  int       `yaml:"lifetime"`
	Color     YAMLColor `yaml:"color"`
}

type CombatSpec struct {
	InvulnerableFrames int           `yaml:"invulnerable_frames"`
	BlinkFrames        int           `yaml:"blink_frames"`
	Ground             StrikeSpec    `yaml:"ground"`
	GroundAttacking    StrikeSpec    `yaml:"ground_attacking"`
	Flying             StrikeSpec    `yaml:"flying"`
	Projectile         StrikeSpec    `yaml:"projectile"`
	HitEffect          HitEffectSpec `yaml:"hit_effect"`
}

// ControlsSpec maps actions to key names per scheme. Key names follow
// ebiten's Key text form ("A", "Space", "ArrowLeft").
type ControlsSpec struct {
	Scheme  string                         `yaml:"scheme"`
	Toggle  string                         `yaml:"toggle"`
	Schemes map[string]map[string][]string `yaml:"schemes"`
}

type MixerSpec struct {
	SampleRate  int     `yaml:"sample_rate"`
	Music       string  `yaml:"music"`
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
	Channels    int     `yaml:"channels"`
}

type FogSpec struct {
	Count int       `yaml:"count"`
	Speed float64   `yaml:"speed"`
	Alpha uint8     `yaml:"alpha"`
	Color YAMLColor `yaml:"color"`
}

type FirefliesSpec struct {
	Count int       `yaml:"count"`
	Color YAMLColor `yaml:"color"`
}

type OverlaySpec struct {
	Alpha       uint8   `yaml:"alpha"`
	LightRadius float64 `yaml:"light_radius"`
}

type BackgroundSpec struct {
	Parallax float64   `yaml:"parallax"`
	Sky      YAMLColor `yaml:"sky"`
	Far      YAMLColor `yaml:"far"`
	Near     YAMLColor `yaml:"near"`
}

type GraphicsSpec struct {
	Fog        FogSpec        `yaml:"fog"`
	Fireflies  FirefliesSpec  `yaml:"fireflies"`
	Overlay    OverlaySpec    `yaml:"overlay"`
	Background BackgroundSpec `yaml:"background"`
	Camera     CameraSpec     `yaml:"camera"`
	Tile       YAMLColor      `yaml:"tile"`
	TileEdge   YAMLColor      `yaml:"tile_edge"`
	DeathZone  YAMLColor      `yaml:"death_zone"`
	Outline    YAMLColor      `yaml:"outline"`
	TileSheet  string         `yaml:"tile_sheet"`
}

// CameraSpec tunes the follow camera. Smoothing is the fraction of the
// distance to the target covered per tick; 0 snaps.
type CameraSpec struct {
	Smoothing float64 `yaml:"smoothing"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as color.RGBA, opaque white when unset.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
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
