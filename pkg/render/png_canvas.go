package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
)

// PNGCanvas 离屏画布，基于 fogleman/gg，用于无窗口渲染和截图
type PNGCanvas struct {
	dc         *gg.Context
	background color.Color
}

// NewPNGCanvas 创建 width×height 的离屏画布
//
// background 为 nil 时清除为透明。
func NewPNGCanvas(width, height int, background color.Color) *PNGCanvas {
	if background == nil {
		background = color.Transparent
	}
	return &PNGCanvas{
		dc:         gg.NewContext(width, height),
		background: background,
	}
}

// Clear 用背景色替换 (0,0)-(w,h) 区域的像素（不混合）
func (c *PNGCanvas) Clear(w, h float64) {
	dst, ok := c.dc.Image().(draw.Image)
	if !ok {
		return
	}
	r := clearBounds(w, h).Intersect(dst.Bounds())
	draw.Draw(dst, r, image.NewUniform(c.background), image.Point{}, draw.Src)
}

// FillCircle 绘制实心圆
func (c *PNGCanvas) FillCircle(x, y, r float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

// StrokeLine 绘制线段
func (c *PNGCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
}

// StrokeCircle 绘制空心圆
func (c *PNGCanvas) StrokeCircle(x, y, r, width float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(x, y, r)
	c.dc.Stroke()
}

// Image 返回当前图像
func (c *PNGCanvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG 将当前图像以 PNG 格式写入 w
func (c *PNGCanvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG 将当前图像保存为 PNG 文件
func (c *PNGCanvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save png %s: %w", path, err)
	}
	return nil
}
