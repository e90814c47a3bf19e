package systems

import (
	"log"

	"github.com/gonewx/portfolio-fx/pkg/components"
	"github.com/gonewx/portfolio-fx/pkg/ecs"
)

// ResizeSystem 把视口尺寸变化传递给表面组件和粒子场
type ResizeSystem struct {
	entityManager *ecs.EntityManager
}

// NewResizeSystem 创建尺寸系统
func NewResizeSystem(em *ecs.EntityManager) *ResizeSystem {
	return &ResizeSystem{entityManager: em}
}

// SetSize 记录新的视口尺寸，真正的 Resize 在下一次 Update 中执行
func (s *ResizeSystem) SetSize(width, height float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.SurfaceComponent](s.entityManager) {
		surface, _ := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, id)
		if surface.Width == width && surface.Height == height {
			continue
		}
		surface.Width = width
		surface.Height = height
		surface.Changed = true
	}
}

// Update 对尺寸发生变化的表面重新测量粒子场
//
// 在 ParticleFieldSystem 之前执行，保证同一帧内的物理和渲染
// 使用同一个尺寸。
func (s *ResizeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.SurfaceComponent](s.entityManager) {
		surface, _ := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, id)
		if !surface.Changed {
			continue
		}
		surface.Changed = false

		if field, ok := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, id); ok {
			field.Field.Resize()
		}
		log.Printf("[ResizeSystem] Surface %d resized to %.0fx%.0f", id, surface.Width, surface.Height)
	}
}
