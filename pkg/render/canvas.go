// Package render 提供粒子场 Canvas 的两种实现：
// 窗口内的 Ebitengine 图像，和离屏的 PNG 图像（fogleman/gg）。
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gonewx/portfolio-fx/internal/particlefield"
)

// Canvas 在粒子场 Canvas 的基础上增加描边圆，用于绘制光标圆环
type Canvas interface {
	particlefield.Canvas
	StrokeCircle(x, y, r, width float64, clr color.Color)
}

// clearBounds 返回清除区域 (0,0)-(w,h)，小数尺寸向上取整以覆盖边缘像素
func clearBounds(w, h float64) image.Rectangle {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h)))
}
