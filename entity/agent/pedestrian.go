package agent

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/yudono/gta/entity"
)

// updateBehavior 根据与参考角色的距离更新行人的模式与动画
// 说明：模式与动画只是输出给动画层的标签，不影响车道上的进度；
// 跟随模式下远于RunDistance为Run，近于StopDistance为Idle，其余为Walk；
// 没有参考角色或超出FollowRadius时为Idle模式并步行
func (a *Agent) updateBehavior(reference *orb.Point) {
	rt := &a.runtime
	b := a.m.behavior
	rt.Mode = ModeIdle
	rt.Animation = entity.AnimationWalk
	if reference == nil {
		return
	}
	d := planar.Distance(rt.Position, *reference)
	if d > b.FollowRadius {
		return
	}
	rt.Mode = ModeFollow
	switch {
	case d > b.RunDistance:
		rt.Animation = entity.AnimationRun
	case d < b.StopDistance:
		rt.Animation = entity.AnimationIdle
	}
}
