package components

// CursorComponent 自定义光标状态
//
// 圆点直接跟随指针；圆环每帧以 FollowFactor 的比例向指针靠近。
type CursorComponent struct {
	DotX, DotY   float64
	RingX, RingY float64

	// Enabled 视口宽度与用户设置都允许时为 true
	Enabled bool
	// Visible 指针在表面内时可见
	Visible bool
	// Pressed 指针按下时圆环放大
	Pressed bool
}
