package agent

import (
	"testing"

	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/entity/junction"
	"github.com/yudono/gta/entity/lane"
	"github.com/yudono/gta/entity/road"
	"github.com/yudono/gta/utils/config"
)

// newGrid3 3x3网格：一条横向街道、一条纵向街道、一个位于(-7.5, -7.5)的路口，
// 横向车道在progress 0.5处经过路口
func newGrid3(t *testing.T) (*lane.LaneManager, *junction.JunctionManager) {
	t.Helper()
	city := config.City{GridSize: 3, BlockSize: 15, LaneWidth: 1.2, StreetEvery: 3, StreetResidue: 1}
	rm := road.NewManager()
	rm.Init(city)
	lm := lane.NewManager(config.LaneScheme{Offset: .6})
	lm.Init(rm.Roads())
	jm := junction.NewManager()
	jm.Init(rm, lm, 1.2)
	return lm, jm
}

func testPopulation() config.Population {
	p := config.Default().Populations.Vehicle
	p.Target = 0
	p.Speed = config.Range{Min: 3, Max: 3}
	p.Spawn.MinSpacing = 0
	p.Spawn.MinReferenceDistance = 0
	return p
}

func newTestManager(t *testing.T, kind entity.AgentKind, cfg config.Population) (*Manager, *lane.LaneManager) {
	t.Helper()
	lm, jm := newGrid3(t)
	m := NewManager(kind, cfg, config.Default().PedestrianBehavior, 1)
	m.Init(lm.Lanes(), jm, nil, nil)
	return m, lm
}

// place 在指定车道位置直接放置agent并使其生效
func place(m *Manager, l entity.ILane, progress float64) *Agent {
	a := newAgent(m, m.nextID, Placement{Lane: l, Progress: progress, Position: l.PositionAt(progress)})
	m.nextID++
	m.occupancy.Claim(l.ID())
	m.agents.Add(a)
	m.Prepare()
	return a
}

// scriptedSampler 按脚本返回随机数，脚本用完后重复最后一个值
type scriptedSampler struct {
	floats []float64
	ints   []int
}

func (s *scriptedSampler) Float64() float64 {
	v := s.floats[0]
	if len(s.floats) > 1 {
		s.floats = s.floats[1:]
	}
	return v
}

func (s *scriptedSampler) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}
