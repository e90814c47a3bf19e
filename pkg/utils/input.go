// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSample 一帧的原始指针采样（屏幕坐标）
type PointerSample struct {
	X, Y int
	// HasPosition 是否有可用位置：桌面端鼠标总有位置，移动端只有触摸时才有
	HasPosition bool
	// Pressed 鼠标左键或触摸按下
	Pressed bool
	// Touching 位置来自触摸
	Touching bool
}

// ReadPointer 读取当前帧的指针状态
// 同时支持鼠标和触摸输入，优先使用触摸
func ReadPointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, HasPosition: true, Pressed: true, Touching: true}
	}

	// 移动端没有悬停：手指抬起即视为离开
	if IsMobile() {
		return PointerSample{}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		X:           x,
		Y:           y,
		HasPosition: true,
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// PointerEvent 经过 PointerTracker 处理后的指针状态
type PointerEvent struct {
	X, Y    float64
	Inside  bool
	Pressed bool
	// Entered / Left 本帧刚进入 / 刚离开表面
	Entered bool
	Left    bool
}

// PointerTracker 跨帧跟踪指针是否位于表面内
//
// Ebitengine 没有 mouseleave 事件，这里用"位置落在表面外或不可用"来推导离开。
type PointerTracker struct {
	inside bool
}

// Track 根据采样和表面尺寸计算本帧的指针事件
func (pt *PointerTracker) Track(s PointerSample, w, h float64) PointerEvent {
	x, y := float64(s.X), float64(s.Y)
	inside := s.HasPosition && InsideSurface(x, y, w, h)

	ev := PointerEvent{
		X:       x,
		Y:       y,
		Inside:  inside,
		Pressed: s.Pressed && inside,
		Entered: inside && !pt.inside,
		Left:    !inside && pt.inside,
	}
	pt.inside = inside
	return ev
}

// Inside 上一次 Track 时指针是否在表面内
func (pt *PointerTracker) Inside() bool {
	return pt.inside
}

// InsideSurface 判断点是否位于 [0,w)×[0,h) 内
func InsideSurface(x, y, w, h float64) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}
