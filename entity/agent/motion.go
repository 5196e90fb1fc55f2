package agent

import (
	"github.com/yudono/gta/collision"
	"github.com/yudono/gta/utils/config"
)

// advance 沿当前车道前进
// 功能：progress += speed * dt * MovementScale，位置为车道起终点的线性插值
// 参数：dt-时间步长，checker-碰撞检测（可为nil）
// 返回：Moved/Blocked/Expired
// 说明：
// 1. progress超过ExpireProgress时返回Expired，不检测碰撞，由种群负责移除
// 2. 候选位置碰撞时回退progress，位置与朝向保持不变
// 3. 朝向每次由车道的起终点向量重新计算
func (a *Agent) advance(dt float64, checker collision.Checker) Outcome {
	rt := &a.runtime
	prev := rt.Progress
	rt.Progress += a.speed * dt * config.MovementScale
	if rt.Progress > config.ExpireProgress {
		return Expired
	}
	pos := rt.Lane.PositionAt(rt.Progress)
	if checker != nil && rt.Progress != prev && checker.Collides(pos) {
		rt.Progress = prev
		return Blocked
	}
	rt.Position = pos
	rt.Heading = rt.Lane.Heading()
	return Moved
}
