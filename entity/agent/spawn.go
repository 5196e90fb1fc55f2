package agent

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/samber/lo"
	"github.com/yudono/gta/collision"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/entity/lane"
	"github.com/yudono/gta/utils/config"
)

// Sampler 生成位置采样使用的随机源，randengine.Engine满足该接口
type Sampler interface {
	Float64() float64
	Intn(n int) int
}

// SpawnConstraints 生成位置约束
type SpawnConstraints struct {
	Center *orb.Point // 只在与该点距离不超过Radius的车道上生成，nil表示不限制
	Radius float64

	MinSpacing float64 // 与现有agent的最小间距

	Reference            *orb.Point // 参考角色（玩家）位置，nil表示不检查
	MinReferenceDistance float64

	Obstacles collision.Checker // 静态障碍物检测，nil表示不检查
	Progress  config.Range      // 允许生成的progress区间
}

// Placement 生成位置
type Placement struct {
	Lane     entity.ILane
	Progress float64
	Position orb.Point
}

// SpawnPlacer 生成位置选择器
type SpawnPlacer struct {
	sampler Sampler
}

// NewSpawnPlacer 创建生成位置选择器
func NewSpawnPlacer(sampler Sampler) *SpawnPlacer {
	return &SpawnPlacer{sampler: sampler}
}

// Place 选择一个生成位置
// 功能：先选车道，再在车道的允许区间内均匀采样
// 参数：lanes-候选车道，existing-现有agent位置（上一帧快照），occupied-车道占用，
// used-本次运行中已用于生成的车道，c-约束
// 返回：生成位置，没有找到时返回false（本轮跳过生成，下一帧再试）
// 算法说明：
// 1. 按与Center的距离过滤车道，该过滤不放宽，没有车道靠近Center时直接失败
// 2. 依次放宽：未使用且未占用 -> 清空已使用记录后取未占用 -> 全部邻近车道
// 3. 在选中车道上最多采样MaxSpawnAttempts次，拒绝违反间距、参考距离或与障碍物碰撞的位置
// 4. 成功后将车道记入已使用
func (s *SpawnPlacer) Place(lanes []entity.ILane, existing []orb.Point, occupied, used *lane.OccupancyTracker, c SpawnConstraints) (Placement, bool) {
	pool := s.candidatePool(lanes, occupied, used, c)
	if len(pool) == 0 {
		return Placement{}, false
	}
	l := pool[s.sampler.Intn(len(pool))]
	from, to := s.progressRange(l, c)
	for i := 0; i < config.MaxSpawnAttempts; i++ {
		progress := from + (to-from)*s.sampler.Float64()
		pos := l.PositionAt(progress)
		if collision.Near(pos, existing, c.MinSpacing) {
			continue
		}
		if c.Reference != nil && planar.Distance(pos, *c.Reference) < c.MinReferenceDistance {
			continue
		}
		if c.Obstacles != nil && c.Obstacles.Collides(pos) {
			continue
		}
		used.Claim(l.ID())
		return Placement{Lane: l, Progress: progress, Position: pos}, true
	}
	return Placement{}, false
}

// candidatePool 按过滤阶梯得到候选车道
func (s *SpawnPlacer) candidatePool(lanes []entity.ILane, occupied, used *lane.OccupancyTracker, c SpawnConstraints) []entity.ILane {
	near := lanes
	if c.Center != nil {
		center := *c.Center
		near = lo.Filter(lanes, func(l entity.ILane, _ int) bool {
			return l.DistanceTo(center) <= c.Radius
		})
	}
	if len(near) == 0 {
		return nil
	}
	free := lo.Filter(near, func(l entity.ILane, _ int) bool {
		return occupied.IsFree(l.ID())
	})
	fresh := lo.Filter(free, func(l entity.ILane, _ int) bool {
		return used.IsFree(l.ID())
	})
	if len(fresh) > 0 {
		return fresh
	}
	used.Clear()
	if len(free) > 0 {
		return free
	}
	return near
}

// progressRange 车道上允许采样的progress区间
// 说明：有Center时取Progress与圆内区间的交集，交集为空时使用圆内区间
func (s *SpawnPlacer) progressRange(l entity.ILane, c SpawnConstraints) (float64, float64) {
	from, to := c.Progress.Min, c.Progress.Max
	if c.Center == nil {
		return from, to
	}
	sFrom, sTo, ok := l.SpanWithin(*c.Center, c.Radius)
	if !ok {
		return from, to
	}
	if a, b := max(from, sFrom), min(to, sTo); a <= b {
		return a, b
	}
	return sFrom, sTo
}
