package config

import (
	"fmt"
	"image/color"

	"github.com/gonewx/portfolio-fx/internal/particlefield"
	"github.com/lucasb-eyer/go-colorful"
)

// FieldConfig 粒子场配置
//
// 配置文件位置: data/config.yaml 的 field 节
// 环境变量前缀: PORTFOLIO_FX_FIELD_
type FieldConfig struct {
	// MaxParticles 粒子数量上限
	MaxParticles int `yaml:"maxParticles" env:"MAX_PARTICLES"`
	// Spacing 每个粒子占用的视口宽度（像素），数量 = floor(视口宽度 / Spacing)
	Spacing float64 `yaml:"spacing" env:"SPACING"`
	// MaxSpeed 初始速度每个分量的最大绝对值（像素/帧）
	MaxSpeed float64 `yaml:"maxSpeed" env:"MAX_SPEED"`

	Radius RangeConfig `yaml:"radius" envPrefix:"RADIUS_"`
	Alpha  RangeConfig `yaml:"alpha" envPrefix:"ALPHA_"`

	// RepelRadius 指针排斥半径
	RepelRadius float64 `yaml:"repelRadius" env:"REPEL_RADIUS"`
	// RepelStrength 指针排斥最大力度（距离为 0 时）
	RepelStrength float64 `yaml:"repelStrength" env:"REPEL_STRENGTH"`
	// Damping 每帧速度阻尼系数
	Damping float64 `yaml:"damping" env:"DAMPING"`

	// LinkDistance 连线距离阈值
	LinkDistance float64 `yaml:"linkDistance" env:"LINK_DISTANCE"`
	// LinkOpacity 连线最大不透明度（距离为 0 时）
	LinkOpacity float64 `yaml:"linkOpacity" env:"LINK_OPACITY"`
	// LinkWidth 连线宽度
	LinkWidth float64 `yaml:"linkWidth" env:"LINK_WIDTH"`

	// ParticleColor / LinkColor 十六进制颜色，如 "#a29bfe"
	ParticleColor string `yaml:"particleColor" env:"PARTICLE_COLOR"`
	LinkColor     string `yaml:"linkColor" env:"LINK_COLOR"`
}

// RangeConfig 闭区间 [Min, Max]
type RangeConfig struct {
	Min float64 `yaml:"min" env:"MIN"`
	Max float64 `yaml:"max" env:"MAX"`
}

// DefaultFieldConfig returns the field settings of the portfolio hero.
func DefaultFieldConfig() FieldConfig {
	p := particlefield.DefaultParams()
	return FieldConfig{
		MaxParticles:  p.MaxParticles,
		Spacing:       p.Spacing,
		MaxSpeed:      p.MaxSpeed,
		Radius:        RangeConfig{Min: p.MinRadius, Max: p.MaxRadius},
		Alpha:         RangeConfig{Min: p.MinAlpha, Max: p.MaxAlpha},
		RepelRadius:   p.RepelRadius,
		RepelStrength: p.RepelStrength,
		Damping:       p.Damping,
		LinkDistance:  p.LinkDistance,
		LinkOpacity:   p.LinkMaxOpacity,
		LinkWidth:     p.LinkWidth,
		ParticleColor: HexColor(p.ParticleColor),
		LinkColor:     HexColor(p.LinkColor),
	}
}

// Validate 验证粒子场配置
func (c *FieldConfig) Validate() error {
	if c.MaxParticles < 0 {
		return fmt.Errorf("maxParticles must not be negative, got %d", c.MaxParticles)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("spacing must be positive, got %.2f", c.Spacing)
	}
	if c.MaxSpeed < 0 {
		return fmt.Errorf("maxSpeed must not be negative, got %.2f", c.MaxSpeed)
	}
	if err := c.Radius.validate("radius", 0, 0); err != nil {
		return err
	}
	if err := c.Alpha.validate("alpha", 0, 1); err != nil {
		return err
	}
	if c.RepelRadius < 0 || c.RepelStrength < 0 {
		return fmt.Errorf("repelRadius and repelStrength must not be negative")
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("damping must be in (0, 1], got %.4f", c.Damping)
	}
	if c.LinkDistance < 0 {
		return fmt.Errorf("linkDistance must not be negative, got %.2f", c.LinkDistance)
	}
	if c.LinkOpacity < 0 || c.LinkOpacity > 1 {
		return fmt.Errorf("linkOpacity must be in [0, 1], got %.2f", c.LinkOpacity)
	}
	if _, err := ParseHexColor(c.ParticleColor); err != nil {
		return fmt.Errorf("particleColor: %w", err)
	}
	if _, err := ParseHexColor(c.LinkColor); err != nil {
		return fmt.Errorf("linkColor: %w", err)
	}
	return nil
}

// validate 检查 Min <= Max，且当 upper > 0 时两端都在 [lower, upper] 内
func (r RangeConfig) validate(name string, lower, upper float64) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s range invalid: min(%.2f) > max(%.2f)", name, r.Min, r.Max)
	}
	if r.Min < lower {
		return fmt.Errorf("%s range invalid: min(%.2f) < %.2f", name, r.Min, lower)
	}
	if upper > 0 && r.Max > upper {
		return fmt.Errorf("%s range invalid: max(%.2f) > %.2f", name, r.Max, upper)
	}
	return nil
}

// Params converts the config into animator parameters. The config must have
// passed Validate; unparsable colors fall back to the defaults.
func (c *FieldConfig) Params() particlefield.Params {
	def := particlefield.DefaultParams()

	p := particlefield.Params{
		MaxParticles:   c.MaxParticles,
		Spacing:        c.Spacing,
		MaxSpeed:       c.MaxSpeed,
		MinRadius:      c.Radius.Min,
		MaxRadius:      c.Radius.Max,
		MinAlpha:       c.Alpha.Min,
		MaxAlpha:       c.Alpha.Max,
		RepelRadius:    c.RepelRadius,
		RepelStrength:  c.RepelStrength,
		Damping:        c.Damping,
		LinkDistance:   c.LinkDistance,
		LinkMaxOpacity: c.LinkOpacity,
		LinkWidth:      c.LinkWidth,
		ParticleColor:  def.ParticleColor,
		LinkColor:      def.LinkColor,
	}
	if clr, err := ParseHexColor(c.ParticleColor); err == nil {
		p.ParticleColor = clr
	}
	if clr, err := ParseHexColor(c.LinkColor); err == nil {
		p.LinkColor = clr
	}
	return p
}

// ParseHexColor 解析 "#rrggbb" 或 "#rgb" 形式的颜色，返回不透明颜色
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// HexColor 将颜色格式化为 "#rrggbb"
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
