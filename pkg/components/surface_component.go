package components

// SurfaceComponent 绘制表面（视口）尺寸
//
// 由 ResizeSystem 在窗口尺寸变化时更新，实现 particlefield.Surface，
// 粒子场通过它重新测量自身尺寸。
type SurfaceComponent struct {
	Width  float64
	Height float64
	// Changed 本帧尺寸是否发生了变化
	Changed bool
}

// Size implements particlefield.Surface.
func (s *SurfaceComponent) Size() (float64, float64) {
	return s.Width, s.Height
}
