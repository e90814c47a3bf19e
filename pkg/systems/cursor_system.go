package systems

import (
	"github.com/gonewx/portfolio-fx/pkg/components"
	"github.com/gonewx/portfolio-fx/pkg/config"
	"github.com/gonewx/portfolio-fx/pkg/ecs"
	"github.com/gonewx/portfolio-fx/pkg/utils"
)

// CursorSystem 更新自定义光标：圆点紧跟指针，圆环缓动跟随
//
// 视口宽度小于 MinViewportWidth、配置关闭或用户关闭时不启用。
type CursorSystem struct {
	entityManager *ecs.EntityManager
	config        config.CursorConfig
	// userEnabled 用户设置开关，为 nil 时视为开启
	userEnabled func() bool
}

// NewCursorSystem 创建光标系统
func NewCursorSystem(em *ecs.EntityManager, cfg config.CursorConfig, userEnabled func() bool) *CursorSystem {
	return &CursorSystem{
		entityManager: em,
		config:        cfg,
		userEnabled:   userEnabled,
	}
}

// Update 更新所有光标实体
func (s *CursorSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.SurfaceComponent, *components.PointerComponent, *components.CursorComponent](s.entityManager)
	for _, id := range entities {
		surface, _ := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, id)
		pointer, _ := ecs.GetComponent[*components.PointerComponent](s.entityManager, id)
		cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, id)

		cursor.Enabled = s.enabledFor(surface.Width)
		cursor.Visible = cursor.Enabled && pointer.Inside
		cursor.Pressed = pointer.Pressed

		// 圆点只在指针位于表面内时更新；离开后圆环继续向最后位置收拢
		if pointer.Inside {
			cursor.DotX = pointer.X
			cursor.DotY = pointer.Y
		}
		follow := utils.Clamp01(s.config.FollowFactor)
		cursor.RingX = utils.Approach(cursor.RingX, cursor.DotX, follow)
		cursor.RingY = utils.Approach(cursor.RingY, cursor.DotY, follow)
	}
}

// Enabled 判断给定视口宽度下自定义光标是否启用
func (s *CursorSystem) Enabled(viewportWidth float64) bool {
	return s.enabledFor(viewportWidth)
}

func (s *CursorSystem) enabledFor(viewportWidth float64) bool {
	if !s.config.Enabled || viewportWidth < s.config.MinViewportWidth {
		return false
	}
	return s.userEnabled == nil || s.userEnabled()
}
