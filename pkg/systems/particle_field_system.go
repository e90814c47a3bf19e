package systems

import (
	"github.com/gonewx/portfolio-fx/pkg/components"
	"github.com/gonewx/portfolio-fx/pkg/ecs"
)

// ParticleFieldSystem 驱动粒子场：转发指针状态并推进一帧物理
//
// 粒子速度以 像素/帧 为单位，与 Ebitengine 的固定 TPS 对应，
// 因此这里不使用 deltaTime。
type ParticleFieldSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleFieldSystem 创建粒子场系统
func NewParticleFieldSystem(em *ecs.EntityManager) *ParticleFieldSystem {
	return &ParticleFieldSystem{entityManager: em}
}

// Update 处理所有粒子场实体
func (s *ParticleFieldSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleFieldComponent](s.entityManager) {
		fc, _ := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, id)
		if fc.Field == nil {
			continue
		}

		if pointer, ok := ecs.GetComponent[*components.PointerComponent](s.entityManager, id); ok {
			switch {
			case pointer.Inside:
				fc.Field.PointerMove(pointer.X, pointer.Y)
			case pointer.Left:
				fc.Field.PointerLeave()
			}
		}

		if !fc.Paused {
			fc.Field.Step()
		}
	}
}
