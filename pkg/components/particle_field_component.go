package components

import "github.com/gonewx/portfolio-fx/internal/particlefield"

// ParticleFieldComponent 持有一个粒子场实例
//
// Field 为 nil 表示没有可用的绘制表面，相关系统直接跳过。
type ParticleFieldComponent struct {
	Field *particlefield.Field
	// Paused 暂停时不推进物理，但仍然渲染当前帧
	Paused bool
}
