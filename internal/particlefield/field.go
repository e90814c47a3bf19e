package particlefield

import (
	"math"
	"math/rand"
)

// Field owns one animated particle field: the surface size, the particles and
// the pointer state. All methods are safe on a nil *Field and do nothing, so a
// host without a surface can keep calling them.
//
// A Field is not safe for concurrent use; the host drives it from a single
// loop (Ebitengine's Update/Draw, or the headless renderer).
type Field struct {
	surface Surface
	params  Params
	rng     *rand.Rand

	w, h      float64
	particles []Particle
	pointer   Pointer
}

// New measures the surface and seeds the particle batch.
//
// 参数：
//   - surface: 绘制表面，为 nil 时返回 nil（静默跳过，不是错误）
//   - viewportWidth: 视口宽度，决定粒子数量
//   - params: 参数，通常来自 DefaultParams 或 config.FieldConfig
//   - rng: 随机源，为 nil 时使用基于当前时间的随机源
func New(surface Surface, viewportWidth float64, params Params, rng *rand.Rand) *Field {
	if surface == nil {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	f := &Field{
		surface: surface,
		params:  params,
		rng:     rng,
		pointer: absentPointer(),
	}
	f.Reseed(viewportWidth)
	return f
}

// Reseed re-measures the surface and replaces the particle batch with a
// fresh one sized for viewportWidth. The pointer state is kept.
//
// Hosts that learn the real viewport only after creating the field (the
// first window layout) call this once; later resizes use Resize.
func (f *Field) Reseed(viewportWidth float64) {
	if f == nil {
		return
	}
	f.Resize()

	n := ParticleCount(viewportWidth, f.params.MaxParticles, f.params.Spacing)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = f.newParticle()
	}
}

func (f *Field) newParticle() Particle {
	return Particle{
		X:     f.rng.Float64() * f.w,
		Y:     f.rng.Float64() * f.h,
		VX:    (f.rng.Float64()*2 - 1) * f.params.MaxSpeed,
		VY:    (f.rng.Float64()*2 - 1) * f.params.MaxSpeed,
		R:     f.params.MinRadius + f.rng.Float64()*(f.params.MaxRadius-f.params.MinRadius),
		Alpha: f.params.MinAlpha + f.rng.Float64()*(f.params.MaxAlpha-f.params.MinAlpha),
	}
}

// Resize re-measures the surface. Particles keep their positions; any that
// end up outside the new bounds are turned back by reflection.
func (f *Field) Resize() {
	if f == nil {
		return
	}
	w, h := f.surface.Size()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.w, f.h = w, h
}

// PointerMove records the pointer position in surface coordinates.
func (f *Field) PointerMove(x, y float64) {
	if f == nil {
		return
	}
	f.pointer = Pointer{X: x, Y: y, Present: true}
}

// PointerLeave resets the pointer to the off-surface sentinel, disabling
// repulsion until the next PointerMove.
func (f *Field) PointerLeave() {
	if f == nil {
		return
	}
	f.pointer = absentPointer()
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	if f == nil {
		return
	}
	for i := range f.particles {
		f.stepParticle(&f.particles[i])
	}
}

// stepParticle 单个粒子的一帧更新：位移 → 边界反弹 → 指针排斥 → 阻尼
func (f *Field) stepParticle(p *Particle) {
	p.X += p.VX
	p.Y += p.VY

	// 反弹而不是钳制：只翻转仍指向表面外侧的速度分量，
	// 这样缩小表面后落在外面的粒子会回来，而不是每帧来回翻转
	if (p.X < 0 && p.VX < 0) || (p.X > f.w && p.VX > 0) {
		p.VX = -p.VX
	}
	if (p.Y < 0 && p.VY < 0) || (p.Y > f.h && p.VY > 0) {
		p.VY = -p.VY
	}

	if f.pointer.Present {
		dx := p.X - f.pointer.X
		dy := p.Y - f.pointer.Y
		d := math.Hypot(dx, dy)
		// d == 0 时方向未定义，不施加排斥
		if force := f.params.RepulsionForce(d); force > 0 && d > 0 {
			p.VX += dx / d * force
			p.VY += dy / d * force
		}
	}

	p.VX *= f.params.Damping
	p.VY *= f.params.Damping
}

// Render clears the surface and draws particles and links at their current
// positions.
func (f *Field) Render(c Canvas) {
	if f == nil || c == nil {
		return
	}
	c.Clear(f.w, f.h)
	for i := range f.particles {
		f.drawParticle(c, &f.particles[i])
	}
	f.drawLinks(c)
}

// Frame runs one full tick: clear, then update and draw each particle in
// turn, then the connection pass.
func (f *Field) Frame(c Canvas) {
	if f == nil {
		return
	}
	if c == nil {
		f.Step()
		return
	}
	c.Clear(f.w, f.h)
	for i := range f.particles {
		p := &f.particles[i]
		f.stepParticle(p)
		f.drawParticle(c, p)
	}
	f.drawLinks(c)
}

func (f *Field) drawParticle(c Canvas, p *Particle) {
	c.FillCircle(p.X, p.Y, p.R, withAlpha(f.params.ParticleColor, p.Alpha))
}

func (f *Field) drawLinks(c Canvas) {
	f.Links(func(i, j int, opacity float64) {
		a, b := &f.particles[i], &f.particles[j]
		c.StrokeLine(a.X, a.Y, b.X, b.Y, f.params.LinkWidth, withAlpha(f.params.LinkColor, opacity))
	})
}

// Links calls fn for every pair (i < j) of particles closer than the link
// distance, with the opacity of the line joining them.
//
// O(N²) over all pairs; N is capped by MaxParticles.
func (f *Field) Links(fn func(i, j int, opacity float64)) {
	if f == nil || fn == nil {
		return
	}
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			d := math.Hypot(f.particles[i].X-f.particles[j].X, f.particles[i].Y-f.particles[j].Y)
			if opacity := f.params.LinkOpacity(d); opacity > 0 {
				fn(i, j, opacity)
			}
		}
	}
}

// RepulsionForce is Params.RepulsionForce for this field's parameters.
func (f *Field) RepulsionForce(d float64) float64 {
	if f == nil {
		return 0
	}
	return f.params.RepulsionForce(d)
}

// LinkOpacity is Params.LinkOpacity for this field's parameters.
func (f *Field) LinkOpacity(d float64) float64 {
	if f == nil {
		return 0
	}
	return f.params.LinkOpacity(d)
}

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	if f == nil {
		return nil
	}
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Len returns the number of particles.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.particles)
}

// Size returns the surface dimensions measured at the last Resize.
func (f *Field) Size() (w, h float64) {
	if f == nil {
		return 0, 0
	}
	return f.w, f.h
}

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer {
	if f == nil {
		return absentPointer()
	}
	return f.pointer
}

// Params returns the parameters the field was created with.
func (f *Field) Params() Params {
	if f == nil {
		return Params{}
	}
	return f.params
}
