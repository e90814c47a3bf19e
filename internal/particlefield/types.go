// Package particlefield implements the hero-section particle field: a set of
// slowly drifting points that bounce off the surface edges, are pushed away by
// the pointer and are joined by faint lines when close to each other.
//
// The package knows nothing about windows or images. The host supplies a
// Surface (the measured container size) and a Canvas (the drawing target) and
// drives the animation by calling Step/Render or Frame once per tick.
package particlefield

import (
	"image/color"
	"math"
)

// Particle 单个粒子的运行时状态
//
// 坐标相对于绘制表面（左上角为原点），速度单位为 像素/帧。
// R 和 Alpha 在创建时确定，之后不再改变。
type Particle struct {
	X, Y   float64 // 位置
	VX, VY float64 // 速度 (px/frame)
	R      float64 // 半径
	Alpha  float64 // 不透明度 [0.1, 0.5]
}

// Pointer 指针状态（相对于绘制表面）
//
// 指针离开表面时被重置为远离表面的哨兵坐标，Present 为 false，
// 此时不产生任何排斥力。
type Pointer struct {
	X, Y    float64
	Present bool
}

// Sentinel coordinates used while the pointer is outside the surface.
const (
	SentinelX = -1000.0
	SentinelY = -1000.0
)

// absentPointer returns the far off-surface sentinel.
func absentPointer() Pointer {
	return Pointer{X: SentinelX, Y: SentinelY}
}

// Surface is the measured drawing area. For a window this is the layout
// size; for the headless renderer it is a fixed size.
type Surface interface {
	Size() (w, h float64)
}

// FixedSurface is a Surface with constant dimensions.
type FixedSurface struct {
	W, H float64
}

// Size implements Surface.
func (s FixedSurface) Size() (float64, float64) {
	return s.W, s.H
}

// Canvas is the drawing target of the field.
type Canvas interface {
	// Clear erases the rectangle (0,0)-(w,h).
	Clear(w, h float64)
	// FillCircle draws a filled circle.
	FillCircle(x, y, r float64, clr color.Color)
	// StrokeLine draws a line segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Params 粒子场的全部可调参数
type Params struct {
	// 粒子数量 = min(MaxParticles, floor(viewportWidth / Spacing))
	MaxParticles int
	Spacing      float64

	// 初始速度每个分量在 [-MaxSpeed, MaxSpeed] 内均匀分布
	MaxSpeed float64

	MinRadius float64
	MaxRadius float64
	MinAlpha  float64
	MaxAlpha  float64

	// 指针排斥：距离 d < RepelRadius 时力度 = (RepelRadius-d)/RepelRadius * RepelStrength
	RepelRadius   float64
	RepelStrength float64

	// 每帧速度阻尼
	Damping float64

	// 连线：距离 d < LinkDistance 时不透明度 = (1 - d/LinkDistance) * LinkMaxOpacity
	LinkDistance   float64
	LinkMaxOpacity float64
	LinkWidth      float64

	// 颜色的 A 通道会被粒子/连线的不透明度替换
	ParticleColor color.RGBA
	LinkColor     color.RGBA
}

// DefaultParams returns the values the portfolio hero section ships with.
func DefaultParams() Params {
	return Params{
		MaxParticles:   80,
		Spacing:        18,
		MaxSpeed:       0.25,
		MinRadius:      0.5,
		MaxRadius:      2.0,
		MinAlpha:       0.1,
		MaxAlpha:       0.5,
		RepelRadius:    120,
		RepelStrength:  0.02,
		Damping:        0.999,
		LinkDistance:   140,
		LinkMaxOpacity: 0.12,
		LinkWidth:      0.6,
		ParticleColor:  color.RGBA{R: 162, G: 155, B: 254, A: 255},
		LinkColor:      color.RGBA{R: 108, G: 92, B: 231, A: 255},
	}
}

// RepulsionForce returns the magnitude of the push a particle receives from
// a pointer d units away. Zero at or beyond RepelRadius.
func (p Params) RepulsionForce(d float64) float64 {
	if p.RepelRadius <= 0 || d < 0 || d >= p.RepelRadius {
		return 0
	}
	return (p.RepelRadius - d) / p.RepelRadius * p.RepelStrength
}

// LinkOpacity returns the opacity of the line joining two particles d units
// apart. Zero at or beyond LinkDistance.
func (p Params) LinkOpacity(d float64) float64 {
	if p.LinkDistance <= 0 || d < 0 || d >= p.LinkDistance {
		return 0
	}
	return (1 - d/p.LinkDistance) * p.LinkMaxOpacity
}

// ParticleCount computes min(max, floor(viewportWidth/spacing)), never
// negative. A viewport narrower than spacing yields zero particles, and so
// does a non-finite width or spacing.
func ParticleCount(viewportWidth float64, max int, spacing float64) int {
	if !finite(viewportWidth) || !finite(spacing) || spacing <= 0 || viewportWidth <= 0 || max <= 0 {
		return 0
	}
	n := viewportWidth / spacing
	if n >= float64(max) {
		return max
	}
	return int(n)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// withAlpha 将不透明度 [0,1] 写入颜色的 A 通道（非预乘）
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
