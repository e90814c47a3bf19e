package systems

import (
	"image/color"

	"github.com/gonewx/portfolio-fx/pkg/components"
	"github.com/gonewx/portfolio-fx/pkg/config"
	"github.com/gonewx/portfolio-fx/pkg/ecs"
	"github.com/gonewx/portfolio-fx/pkg/render"
)

// RenderSystem 把粒子场和自定义光标绘制到 Canvas
//
// 绘制顺序：粒子场（清除 + 粒子 + 连线）→ 光标圆环 → 光标圆点
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cursor        config.CursorConfig
	dotColor      color.RGBA
	ringColor     color.RGBA
}

// NewRenderSystem 创建渲染系统
//
// 光标颜色在配置验证时已检查过，这里解析失败时使用白色。
func NewRenderSystem(em *ecs.EntityManager, cursorCfg config.CursorConfig) *RenderSystem {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dot, err := config.ParseHexColor(cursorCfg.DotColor)
	if err != nil {
		dot = white
	}
	ring, err := config.ParseHexColor(cursorCfg.RingColor)
	if err != nil {
		ring = white
	}
	return &RenderSystem{
		entityManager: em,
		cursor:        cursorCfg,
		dotColor:      dot,
		ringColor:     ring,
	}
}

// Draw 绘制所有粒子场与光标
func (s *RenderSystem) Draw(c render.Canvas) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleFieldComponent](s.entityManager) {
		fc, _ := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, id)
		fc.Field.Render(c)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.CursorComponent](s.entityManager) {
		cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, id)
		if !cursor.Visible {
			continue
		}
		s.drawCursor(c, cursor)
	}
}

func (s *RenderSystem) drawCursor(c render.Canvas, cursor *components.CursorComponent) {
	ringRadius := s.cursor.RingRadius
	if cursor.Pressed {
		ringRadius *= s.cursor.RingPressScale
	}
	c.StrokeCircle(cursor.RingX, cursor.RingY, ringRadius, s.cursor.RingWidth, s.ringColor)
	c.FillCircle(cursor.DotX, cursor.DotY, s.cursor.DotRadius, s.dotColor)
}
