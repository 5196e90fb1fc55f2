package agent

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/yudono/gta/collision"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/utils/container"
	"github.com/yudono/gta/utils/randengine"
)

// Outcome 单帧移动结果
type Outcome int

const (
	Moved   Outcome = iota // 正常前进
	Blocked                // 候选位置碰撞，本帧不移动
	Expired                // progress超过阈值，需要移除并重新生成
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "Moved"
	case Blocked:
		return "Blocked"
	case Expired:
		return "Expired"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Mode 行人行为模式，由与参考角色（玩家）的距离决定，与车道进度无关
type Mode int

const (
	ModeIdle Mode = iota
	ModeFollow
)

func (m Mode) String() string {
	if m == ModeFollow {
		return "Follow"
	}
	return "Idle"
}

// runtime 运行时数据
type runtime struct {
	Lane           entity.ILane // 当前车道，总是属于所在种群的车道集合
	Progress       float64      // 车道上的进度
	Position       orb.Point    // 地面坐标{x, z}
	Heading        float64      // 偏航角
	TurnCooldown   float64      // 距下一次允许转向判定的剩余时间（秒）
	AtIntersection bool         // 已在当前路口完成判定
	Mode           Mode
	Animation      entity.AnimationState
}

// Agent 一辆车或一个行人
type Agent struct {
	container.IncrementalItemBase

	m *Manager

	id    int32
	kind  entity.AgentKind
	speed float64 // 随机速度，生成后不变

	generator *randengine.Engine // 随机数生成器，以种群种子和ID派生

	runtime  runtime // 运行时数据
	snapshot runtime // 上一帧结束时的快照，供其他agent读取
}

// newAgent 在生成位置上创建agent
// 参数：m-所属种群，id-编号，p-生成位置
func newAgent(m *Manager, id int32, p Placement) *Agent {
	a := &Agent{
		m:         m,
		id:        id,
		kind:      m.kind,
		generator: randengine.New(randengine.Derive(m.seed, uint64(id))),
	}
	a.speed = a.generator.Uniform(m.cfg.Speed.Min, m.cfg.Speed.Max)
	a.runtime = runtime{
		Lane:     p.Lane,
		Progress: p.Progress,
		Position: p.Position,
		Heading:  p.Lane.Heading(),
	}
	if a.kind == entity.Pedestrian {
		a.runtime.Animation = entity.AnimationWalk
	}
	a.snapshot = a.runtime
	return a
}

func (a *Agent) String() string {
	return fmt.Sprintf("%v %d", a.kind, a.id)
}

func (a *Agent) ID() int32 {
	return a.id
}

func (a *Agent) Kind() entity.AgentKind {
	return a.kind
}

func (a *Agent) Speed() float64 {
	return a.speed
}

func (a *Agent) Lane() entity.ILane {
	return a.runtime.Lane
}

func (a *Agent) Progress() float64 {
	return a.runtime.Progress
}

func (a *Agent) Position() orb.Point {
	return a.runtime.Position
}

func (a *Agent) Heading() float64 {
	return a.runtime.Heading
}

func (a *Agent) TurnCooldown() float64 {
	return a.runtime.TurnCooldown
}

func (a *Agent) AtIntersection() bool {
	return a.runtime.AtIntersection
}

func (a *Agent) Mode() Mode {
	return a.runtime.Mode
}

func (a *Agent) Animation() entity.AnimationState {
	return a.runtime.Animation
}

// SnapshotPosition 上一帧结束时的位置
func (a *Agent) SnapshotPosition() orb.Point {
	return a.snapshot.Position
}

// prepare 准备阶段，保存快照
func (a *Agent) prepare() {
	a.snapshot = a.runtime
}

// update 更新阶段
// 功能：冷却计时、行人行为、沿车道前进、转向判定
// 参数：dt-时间步长，reference-参考角色位置（可为nil），checker-碰撞检测
// 返回：本帧移动结果
// 算法说明：
// 1. 冷却时间递减到0为止
// 2. 行人根据与参考角色的距离更新模式与动画
// 3. 前进；被阻挡时立即强制判定转向，避免卡在障碍物前
// 4. 正常前进后离开路口半径则清除路口标记，再按常规条件判定转向
func (a *Agent) update(dt float64, reference *orb.Point, checker collision.Checker) (Outcome, TurnResult) {
	rt := &a.runtime
	rt.TurnCooldown = max(rt.TurnCooldown-dt, 0)
	if a.kind == entity.Pedestrian {
		a.updateBehavior(reference)
	}
	outcome := a.advance(dt, checker)
	turn := TurnSkipped
	switch outcome {
	case Expired:
	case Blocked:
		if a.kind == entity.Pedestrian {
			rt.Animation = entity.AnimationIdle
		}
		turn = a.evaluateTurn(true)
	case Moved:
		a.refreshIntersection()
		turn = a.evaluateTurn(false)
	}
	return outcome, turn
}

// motion 输出给外部可视化层的状态
func (a *Agent) motion() entity.AgentMotion {
	return entity.AgentMotion{
		ID:        a.id,
		Kind:      a.kind,
		Position:  a.runtime.Position,
		Heading:   a.runtime.Heading,
		Animation: a.runtime.Animation,
		LaneID:    a.runtime.Lane.ID(),
		Progress:  a.runtime.Progress,
	}
}
