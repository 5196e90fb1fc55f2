package agent

import (
	"git.fiblab.net/general/common/v2/parallel"
	"github.com/paulmach/orb"
	"github.com/samber/lo"
	"github.com/yudono/gta/collision"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/entity/lane"
	"github.com/yudono/gta/utils/config"
	"github.com/yudono/gta/utils/container"
	"github.com/yudono/gta/utils/randengine"
)

// Stats 种群计数
type Stats struct {
	Spawned       int
	Expired       int
	Turns         int
	Blocked       int
	SpawnFailures int
}

// Manager 一类agent（车辆或行人）的种群管理器
// 功能：生成、逐帧推进、移除并补充agent，使种群数量维持在目标值
// 说明：agent存储于IncrementalArray，一帧内的增删在下一次Prepare时生效；
// 与其他agent相关的检测只读取上一帧的快照位置
type Manager struct {
	kind     entity.AgentKind
	cfg      config.Population
	behavior config.PedestrianBehavior
	seed     uint64

	agents *container.IncrementalArray[*Agent]
	nextID int32

	lanes     []entity.ILane
	junctions entity.IJunctionManager
	guard     *collision.Guard

	occupancy *lane.OccupancyTracker // 车道占用
	used      *lane.OccupancyTracker // 本次运行中已用于生成的车道

	generator *randengine.Engine
	placer    *SpawnPlacer

	spawned []*Agent // 本帧新生成的agent，尚未进入agents.Data()
	stats   Stats
}

// NewManager 创建种群管理器
// 参数：kind-agent类别，cfg-种群参数，behavior-行人行为参数，seed-种群随机种子
func NewManager(kind entity.AgentKind, cfg config.Population, behavior config.PedestrianBehavior, seed uint64) *Manager {
	generator := randengine.New(seed)
	return &Manager{
		kind:      kind,
		cfg:       cfg,
		behavior:  behavior,
		seed:      seed,
		agents:    container.NewIncrementalArray[*Agent](),
		occupancy: lane.NewOccupancyTracker(kind.String() + " occupancy"),
		used:      lane.NewOccupancyTracker(kind.String() + " used"),
		generator: generator,
		placer:    NewSpawnPlacer(generator),
		spawned:   make([]*Agent, 0),
	}
}

// Init 绑定车道网络与障碍物，生成初始种群
// 参数：lanes-种群使用的车道集合，junctions-对应的路口，obstacles-静态障碍物，reference-参考角色位置（可为nil）
func (m *Manager) Init(lanes []entity.ILane, junctions entity.IJunctionManager, obstacles []entity.Obstacle, reference *orb.Point) {
	m.lanes = lanes
	m.junctions = junctions
	m.guard = collision.NewGuard(obstacles, m.cfg.Radius)
	m.fill(reference)
	m.Prepare()
	log.Infof("%v: init %d/%d agents on %d lanes", m.kind, m.Len(), m.cfg.Target, len(lanes))
}

// Prepare 准备阶段
// 功能：应用本帧的增删，保存所有agent的快照
// 说明：快照互不依赖，并行复制
func (m *Manager) Prepare() {
	m.agents.Prepare()
	parallel.GoFor(m.agents.Data(), func(a *Agent) { a.prepare() })
	m.spawned = m.spawned[:0]
}

// Update 更新阶段
// 功能：逐个推进agent，移除过期agent并补充生成
// 参数：dt-时间步长，reference-参考角色位置（可为nil）
// 算法说明：
// 1. 由快照位置构造其他agent的距离检测（仅在种群开启AvoidAgents时）
// 2. 顺序更新每个agent；过期agent释放车道并在下一次Prepare时移除
// 3. 种群数量低于目标时在本帧补充生成，直到达到目标或生成失败
func (m *Manager) Update(dt float64, reference *orb.Point) {
	guard := m.guard
	if m.cfg.AvoidAgents {
		neighbors := lo.Map(m.agents.Data(), func(a *Agent, _ int) collision.Neighbor {
			return collision.Neighbor{ID: a.id, Position: a.snapshot.Position}
		})
		guard = guard.WithAgents(neighbors, m.cfg.AgentDistance)
	}
	for _, a := range m.agents.Data() {
		outcome, turn := a.update(dt, reference, guard.For(a.id))
		switch outcome {
		case Expired:
			m.occupancy.Release(a.runtime.Lane.ID())
			m.agents.Remove(a)
			m.stats.Expired++
			log.Debugf("%v: expired on %s", a, a.runtime.Lane.ID())
		case Blocked:
			m.stats.Blocked++
		}
		if turn == TurnTurned {
			m.stats.Turns++
		}
	}
	m.fill(reference)
}

// fill 补充生成直到达到目标数量或生成失败
func (m *Manager) fill(reference *orb.Point) {
	for m.Len() < m.cfg.Target {
		if !m.spawn(reference) {
			m.stats.SpawnFailures++
			log.Debugf("%v: spawn exhausted with %d/%d agents", m.kind, m.Len(), m.cfg.Target)
			return
		}
	}
}

// spawn 生成一个agent
// 说明：间距检测使用上一帧快照位置以及本帧已生成agent的位置
func (m *Manager) spawn(reference *orb.Point) bool {
	existing := make([]orb.Point, 0, m.agents.Len()+len(m.spawned))
	for _, a := range m.agents.Data() {
		existing = append(existing, a.snapshot.Position)
	}
	for _, a := range m.spawned {
		existing = append(existing, a.runtime.Position)
	}
	c := SpawnConstraints{
		MinSpacing:           m.cfg.Spawn.MinSpacing,
		MinReferenceDistance: m.cfg.Spawn.MinReferenceDistance,
		Obstacles:            m.guard,
		Progress:             m.cfg.Spawn.Progress,
	}
	if reference != nil {
		ref := *reference
		c.Reference = &ref
		if m.cfg.Spawn.Radius > 0 {
			c.Center = &ref
			c.Radius = m.cfg.Spawn.Radius
		}
	}
	p, ok := m.placer.Place(m.lanes, existing, m.occupancy, m.used, c)
	if !ok {
		return false
	}
	a := newAgent(m, m.nextID, p)
	m.nextID++
	m.occupancy.Claim(p.Lane.ID())
	m.agents.Add(a)
	m.spawned = append(m.spawned, a)
	m.stats.Spawned++
	return true
}

func (m *Manager) Kind() entity.AgentKind {
	return m.kind
}

// Len 种群数量（含本帧的增删）
func (m *Manager) Len() int {
	return m.agents.PendingLen()
}

// Agents 当前生效的agent
func (m *Manager) Agents() []*Agent {
	return m.agents.Data()
}

// Motions 输出给外部可视化层的状态
func (m *Manager) Motions() []entity.AgentMotion {
	return lo.Map(m.agents.Data(), func(a *Agent, _ int) entity.AgentMotion {
		return a.motion()
	})
}

func (m *Manager) Stats() Stats {
	return m.stats
}

// Occupancy 车道占用
func (m *Manager) Occupancy() *lane.OccupancyTracker {
	return m.occupancy
}

// Used 已用于生成的车道
func (m *Manager) Used() *lane.OccupancyTracker {
	return m.used
}
