package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas 在 *ebiten.Image 上绘制（通常是 Draw 传入的 screen）
type EbitenCanvas struct {
	dst        *ebiten.Image
	background color.Color
}

// NewEbitenCanvas 创建画布
//
// 参数：
//   - dst: 目标图像
//   - background: 清除时填充的颜色，为 nil 时清除为透明
func NewEbitenCanvas(dst *ebiten.Image, background color.Color) *EbitenCanvas {
	return &EbitenCanvas{dst: dst, background: background}
}

// Reset 切换目标图像（每帧 screen 可能不同）
func (c *EbitenCanvas) Reset(dst *ebiten.Image) {
	c.dst = dst
}

// Clear 用背景色替换 (0,0)-(w,h) 区域的像素
func (c *EbitenCanvas) Clear(w, h float64) {
	r := clearBounds(w, h).Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	sub := c.dst.SubImage(r).(*ebiten.Image)
	if c.background == nil {
		sub.Clear()
		return
	}
	sub.Fill(c.background)
}

// FillCircle 绘制抗锯齿实心圆
func (c *EbitenCanvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.FillCircle(c.dst, float32(x), float32(y), float32(r), clr, true)
}

// StrokeLine 绘制抗锯齿线段
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// StrokeCircle 绘制抗锯齿空心圆
func (c *EbitenCanvas) StrokeCircle(x, y, r, width float64, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(x), float32(y), float32(r), float32(width), clr, true)
}
