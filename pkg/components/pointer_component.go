package components

// PointerComponent 当前帧的指针（鼠标或触摸）状态，表面坐标
type PointerComponent struct {
	X, Y float64
	// Inside 指针是否位于表面内；离开表面等价于 mouseleave
	Inside bool
	// Pressed 左键或触摸是否按下
	Pressed bool
	// Entered / Left 本帧是否刚进入 / 刚离开表面
	Entered bool
	Left    bool
}
