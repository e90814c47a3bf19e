package particlefield

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

// recordingCanvas 记录所有绘制调用，用于断言
type recordingCanvas struct {
	clears  [][2]float64
	circles []circleOp
	lines   []lineOp
}

type circleOp struct {
	x, y, r float64
	clr     color.Color
}

type lineOp struct {
	x0, y0, x1, y1, width float64
	clr                   color.Color
}

func (c *recordingCanvas) Clear(w, h float64) {
	c.clears = append(c.clears, [2]float64{w, h})
}

func (c *recordingCanvas) FillCircle(x, y, r float64, clr color.Color) {
	c.circles = append(c.circles, circleOp{x, y, r, clr})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.lines = append(c.lines, lineOp{x0, y0, x1, y1, width, clr})
}

// mutableSurface 可在测试中修改尺寸的表面
type mutableSurface struct {
	w, h float64
}

func (s *mutableSurface) Size() (float64, float64) {
	return s.w, s.h
}

func newTestField(t *testing.T, w, h, viewport float64) *Field {
	t.Helper()
	f := New(FixedSurface{W: w, H: h}, viewport, DefaultParams(), rand.New(rand.NewSource(42)))
	if f == nil {
		t.Fatal("New returned nil for a non-nil surface")
	}
	return f
}

func TestParticleCount(t *testing.T) {
	tests := []struct {
		name     string
		viewport float64
		want     int
	}{
		{"wide desktop capped at 80", 1920, 80},
		{"exactly at cap", 1440, 80},
		{"laptop", 900, 50},
		{"floors fractional", 899, 49},
		{"one particle", 18, 1},
		{"narrower than spacing", 17, 0},
		{"zero width", 0, 0},
		{"negative width", -50, 0},
		{"NaN width", math.NaN(), 0},
		{"infinite width", math.Inf(1), 0},
		{"negative infinite width", math.Inf(-1), 0},
		{"huge width capped", 1e300, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParticleCount(tt.viewport, 80, 18); got != tt.want {
				t.Errorf("ParticleCount(%v) = %d, want %d", tt.viewport, got, tt.want)
			}
		})
	}
}

func TestParticleCount_NonFiniteSpacing(t *testing.T) {
	for _, spacing := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := ParticleCount(1280, 80, spacing); got != 0 {
			t.Errorf("ParticleCount(1280, 80, %v) = %d, want 0", spacing, got)
		}
	}
}

func TestNew_NonFiniteViewport(t *testing.T) {
	for _, vw := range []float64{math.NaN(), math.Inf(1)} {
		f := New(FixedSurface{W: 100, H: 100}, vw, DefaultParams(), rand.New(rand.NewSource(1)))
		if f.Len() != 0 {
			t.Errorf("New with viewport %v: %d particles, want 0", vw, f.Len())
		}
	}
}

func TestNew_NilSurfaceIsNoop(t *testing.T) {
	f := New(nil, 1280, DefaultParams(), nil)
	if f != nil {
		t.Fatalf("New(nil) = %v, want nil", f)
	}

	// 所有方法在 nil 上都应安全
	c := &recordingCanvas{}
	f.Resize()
	f.PointerMove(10, 10)
	f.PointerLeave()
	f.Step()
	f.Render(c)
	f.Frame(c)
	f.Links(func(i, j int, opacity float64) { t.Error("nil field must not report links") })

	if f.Len() != 0 || f.Particles() != nil {
		t.Error("nil field should have no particles")
	}
	if len(c.clears)+len(c.circles)+len(c.lines) != 0 {
		t.Error("nil field must not draw")
	}
	if p := f.Pointer(); p.Present {
		t.Error("nil field pointer should be absent")
	}
}

func TestNew_SeedsWithinRanges(t *testing.T) {
	f := newTestField(t, 800, 600, 1280)
	params := DefaultParams()

	if f.Len() != 71 {
		t.Fatalf("particle count = %d, want 71", f.Len())
	}

	for i, p := range f.Particles() {
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
			t.Errorf("particle %d position (%.2f, %.2f) outside surface", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > params.MaxSpeed || math.Abs(p.VY) > params.MaxSpeed {
			t.Errorf("particle %d velocity (%.3f, %.3f) exceeds %.2f", i, p.VX, p.VY, params.MaxSpeed)
		}
		if p.R < 0.5 || p.R > 2.0 {
			t.Errorf("particle %d radius %.3f outside [0.5, 2.0]", i, p.R)
		}
		if p.Alpha < 0.1 || p.Alpha > 0.5 {
			t.Errorf("particle %d alpha %.3f outside [0.1, 0.5]", i, p.Alpha)
		}
	}

	if p := f.Pointer(); p.Present || p.X != SentinelX || p.Y != SentinelY {
		t.Errorf("initial pointer = %+v, want sentinel", p)
	}
}

func TestNew_DeterministicWithSeed(t *testing.T) {
	a := New(FixedSurface{W: 500, H: 400}, 1000, DefaultParams(), rand.New(rand.NewSource(7)))
	b := New(FixedSurface{W: 500, H: 400}, 1000, DefaultParams(), rand.New(rand.NewSource(7)))

	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs with the same seed: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestPointerMoveAndLeave(t *testing.T) {
	f := newTestField(t, 800, 600, 1280)

	f.PointerMove(120, 45)
	if p := f.Pointer(); !p.Present || p.X != 120 || p.Y != 45 {
		t.Errorf("after PointerMove pointer = %+v", p)
	}

	f.PointerLeave()
	if p := f.Pointer(); p.Present || p.X != SentinelX || p.Y != SentinelY {
		t.Errorf("after PointerLeave pointer = %+v, want sentinel", p)
	}
}

func TestResize_ClearsNewRegion(t *testing.T) {
	surface := &mutableSurface{w: 800, h: 600}
	f := New(surface, 1280, DefaultParams(), rand.New(rand.NewSource(1)))

	c := &recordingCanvas{}
	f.Frame(c)

	surface.w, surface.h = 1024, 300
	f.Resize()
	f.Frame(c)
	f.Render(c)

	want := [][2]float64{{800, 600}, {1024, 300}, {1024, 300}}
	if len(c.clears) != len(want) {
		t.Fatalf("clears = %v, want %v", c.clears, want)
	}
	for i := range want {
		if c.clears[i] != want[i] {
			t.Errorf("clear %d = %v, want %v", i, c.clears[i], want[i])
		}
	}

	if w, h := f.Size(); w != 1024 || h != 300 {
		t.Errorf("Size() = (%v, %v), want (1024, 300)", w, h)
	}
}

func TestReseed_UsesNewViewport(t *testing.T) {
	surface := &mutableSurface{w: 1280, h: 720}
	f := New(surface, 1280, DefaultParams(), rand.New(rand.NewSource(5)))
	f.PointerMove(10, 10)
	if f.Len() != 71 {
		t.Fatalf("initial particles = %d, want 71", f.Len())
	}

	surface.w, surface.h = 390, 844
	f.Reseed(390)

	if f.Len() != 21 {
		t.Errorf("particles after Reseed(390) = %d, want 21", f.Len())
	}
	for i, p := range f.Particles() {
		if p.X < 0 || p.X > 390 || p.Y < 0 || p.Y > 844 {
			t.Errorf("particle %d at (%.1f, %.1f) outside the new surface", i, p.X, p.Y)
		}
	}
	if p := f.Pointer(); !p.Present {
		t.Error("Reseed should keep the pointer state")
	}

	var nilField *Field
	nilField.Reseed(100)
}

func TestResize_NegativeSizeTreatedAsZero(t *testing.T) {
	surface := &mutableSurface{w: 100, h: 100}
	f := New(surface, 400, DefaultParams(), rand.New(rand.NewSource(1)))

	surface.w, surface.h = -5, -1
	f.Resize()
	if w, h := f.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = (%v, %v), want (0, 0)", w, h)
	}
}

func TestZeroParticleViewport(t *testing.T) {
	f := New(FixedSurface{W: 16, H: 300}, 16, DefaultParams(), rand.New(rand.NewSource(3)))
	if f.Len() != 0 {
		t.Fatalf("particle count = %d, want 0", f.Len())
	}

	c := &recordingCanvas{}
	for i := 0; i < 120; i++ {
		f.Frame(c)
	}

	if len(c.clears) != 120 {
		t.Errorf("clears = %d, want 120", len(c.clears))
	}
	if len(c.circles) != 0 || len(c.lines) != 0 {
		t.Errorf("zero-particle field drew %d circles and %d lines", len(c.circles), len(c.lines))
	}
}

func TestFrame_MatchesStepThenRender(t *testing.T) {
	a := New(FixedSurface{W: 640, H: 480}, 1280, DefaultParams(), rand.New(rand.NewSource(11)))
	b := New(FixedSurface{W: 640, H: 480}, 1280, DefaultParams(), rand.New(rand.NewSource(11)))
	a.PointerMove(320, 240)
	b.PointerMove(320, 240)

	ca, cb := &recordingCanvas{}, &recordingCanvas{}
	for i := 0; i < 30; i++ {
		a.Frame(ca)
		b.Step()
		b.Render(cb)
	}

	if len(ca.circles) != len(cb.circles) || len(ca.lines) != len(cb.lines) {
		t.Fatalf("op counts differ: frame %d/%d, step+render %d/%d",
			len(ca.circles), len(ca.lines), len(cb.circles), len(cb.lines))
	}
	for i := range ca.circles {
		if ca.circles[i] != cb.circles[i] {
			t.Fatalf("circle %d differs: %+v vs %+v", i, ca.circles[i], cb.circles[i])
		}
	}
}

func TestRender_DrawsEveryParticleWithItsOwnStyle(t *testing.T) {
	f := newTestField(t, 800, 600, 540)
	c := &recordingCanvas{}
	f.Render(c)

	particles := f.Particles()
	if len(c.circles) != len(particles) {
		t.Fatalf("circles = %d, want %d", len(c.circles), len(particles))
	}
	for i, op := range c.circles {
		p := particles[i]
		if op.x != p.X || op.y != p.Y || op.r != p.R {
			t.Errorf("circle %d = %+v, particle = %+v", i, op, p)
		}
		nrgba, ok := op.clr.(color.NRGBA)
		if !ok {
			t.Fatalf("circle color type %T, want color.NRGBA", op.clr)
		}
		if nrgba.R != 162 || nrgba.G != 155 || nrgba.B != 254 {
			t.Errorf("circle %d color = %+v", i, nrgba)
		}
		if want := uint8(p.Alpha*255 + 0.5); nrgba.A != want {
			t.Errorf("circle %d alpha = %d, want %d", i, nrgba.A, want)
		}
	}
}

func TestRender_NilCanvas(t *testing.T) {
	f := newTestField(t, 200, 200, 200)
	before := f.Particles()
	f.Render(nil)
	f.Frame(nil)

	// Frame(nil) 仍然推进物理
	after := f.Particles()
	moved := false
	for i := range before {
		if before[i].X != after[i].X || before[i].Y != after[i].Y {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("Frame(nil) should still step the particles")
	}
}
