package agent

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/entity/lane"
)

// TurnResult 一次转向判定的结果
type TurnResult int

const (
	TurnSkipped     TurnResult = iota // 未满足触发条件
	TurnNoCandidate                   // 在路口但没有可转入的车道，不进入冷却
	TurnStraight                      // 判定后继续直行
	TurnTurned                        // 已转入新车道
)

func (r TurnResult) String() string {
	switch r {
	case TurnSkipped:
		return "Skipped"
	case TurnNoCandidate:
		return "NoCandidate"
	case TurnStraight:
		return "Straight"
	case TurnTurned:
		return "Turned"
	}
	return fmt.Sprintf("TurnResult(%d)", int(r))
}

// evaluateTurn 路口转向判定
// 功能：在路口附近以一定概率转入与路口相连的其他车道
// 参数：force-是否强制判定（前进被阻挡时使用）
// 返回：判定结果
// 算法说明：
// 1. 非强制判定要求：未在当前路口判定过、冷却结束、progress位于窗口内
// 2. 触发半径内必须有路口，强制判定也不例外
// 3. 候选车道为路口相连车道中除当前车道外、满足IsValidTurn的车道；为空则NoCandidate
// 4. 非强制判定按概率决定是否转向；强制判定必定转向
// 5. 直行或转向后进入冷却
func (a *Agent) evaluateTurn(force bool) TurnResult {
	rt := &a.runtime
	turn := a.m.cfg.Turn
	if !force {
		if rt.AtIntersection || rt.TurnCooldown > 0 {
			return TurnSkipped
		}
		if rt.Progress <= turn.Window.Min || rt.Progress >= turn.Window.Max {
			return TurnSkipped
		}
	}
	j, ok := a.m.junctions.Nearest(rt.Position, turn.TriggerRadius)
	if !ok {
		return TurnSkipped
	}
	rt.AtIntersection = true
	candidates := a.turnCandidates(j)
	if len(candidates) == 0 {
		log.Debugf("%v: no turn candidate at %v from %v", a, j, rt.Lane)
		return TurnNoCandidate
	}
	rt.TurnCooldown = turn.Cooldown
	if !force && !a.generator.PTrue(turn.Probability) {
		return TurnStraight
	}
	a.switchLane(a.chooseLane(candidates))
	return TurnTurned
}

// turnCandidates 路口处可转入的车道
func (a *Agent) turnCandidates(j entity.IJunction) []entity.ILane {
	current := a.runtime.Lane
	return lo.Filter(j.ConnectedLanes(), func(l entity.ILane, _ int) bool {
		return l.ID() != current.ID() && lane.IsValidTurn(current, l)
	})
}

// chooseLane 在候选车道中选择，优先未被占用的车道，全部被占用时等概率选择
func (a *Agent) chooseLane(candidates []entity.ILane) entity.ILane {
	occupancy := a.m.occupancy
	weights := lo.Map(candidates, func(l entity.ILane, _ int) float64 {
		if occupancy.IsFree(l.ID()) {
			return 1
		}
		return 0
	})
	if lo.Sum(weights) == 0 {
		weights = lo.Map(candidates, func(_ entity.ILane, _ int) float64 { return 1 })
	}
	return candidates[a.generator.DiscreteDistribution(weights)]
}

// switchLane 转入新车道，progress归零并重新计算位置与朝向
func (a *Agent) switchLane(next entity.ILane) {
	rt := &a.runtime
	a.m.occupancy.Release(rt.Lane.ID())
	a.m.occupancy.Claim(next.ID())
	log.Debugf("%v: turn %s -> %s", a, rt.Lane.ID(), next.ID())
	rt.Lane = next
	rt.Progress = 0
	rt.Position = next.PositionAt(0)
	rt.Heading = next.Heading()
}

// refreshIntersection 离开路口触发半径后清除路口标记
func (a *Agent) refreshIntersection() {
	rt := &a.runtime
	if !rt.AtIntersection {
		return
	}
	if _, ok := a.m.junctions.Nearest(rt.Position, a.m.cfg.Turn.TriggerRadius); !ok {
		rt.AtIntersection = false
	}
}
