package systems

import (
	"github.com/gonewx/portfolio-fx/pkg/components"
	"github.com/gonewx/portfolio-fx/pkg/ecs"
	"github.com/gonewx/portfolio-fx/pkg/utils"
)

// PointerReader 读取一帧的原始指针采样
// 生产环境使用 utils.ReadPointer，测试中可注入脚本化输入
type PointerReader func() utils.PointerSample

// InputSystem 将原始指针输入转换为表面坐标下的 PointerComponent
//
// 指针移出表面（或移动端手指抬起）被视为 mouseleave。
type InputSystem struct {
	entityManager *ecs.EntityManager
	read          PointerReader
	// 每个表面独立跟踪进入/离开状态
	trackers map[ecs.EntityID]*utils.PointerTracker
}

// NewInputSystem 创建输入系统，read 为 nil 时使用 utils.ReadPointer
func NewInputSystem(em *ecs.EntityManager, read PointerReader) *InputSystem {
	if read == nil {
		read = utils.ReadPointer
	}
	return &InputSystem{
		entityManager: em,
		read:          read,
		trackers:      make(map[ecs.EntityID]*utils.PointerTracker),
	}
}

// Update 采样一次指针并写入所有带表面的指针组件
func (s *InputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.SurfaceComponent, *components.PointerComponent](s.entityManager)
	if len(entities) == 0 {
		return
	}

	sample := s.read()
	for _, id := range entities {
		surface, _ := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, id)
		pointer, _ := ecs.GetComponent[*components.PointerComponent](s.entityManager, id)

		tracker, ok := s.trackers[id]
		if !ok {
			tracker = &utils.PointerTracker{}
			s.trackers[id] = tracker
		}
		ev := tracker.Track(sample, surface.Width, surface.Height)
		pointer.X = ev.X
		pointer.Y = ev.Y
		pointer.Inside = ev.Inside
		pointer.Pressed = ev.Pressed
		pointer.Entered = ev.Entered
		pointer.Left = ev.Left
	}
}
