package agent

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/entity/lane"
)

// singleJunction 只有一个路口、且只连接给定车道的路口管理器
type singleJunction struct {
	position orb.Point
	lanes    []entity.ILane
}

func (j *singleJunction) String() string { return "single" }
func (j *singleJunction) ID() int32 { return 0 }
func (j *singleJunction) Position() orb.Point { return j.position }
func (j *singleJunction) ConnectedLaneIDs() []string { return nil }
func (j *singleJunction) ConnectedLanes() []entity.ILane { return j.lanes }
func (j *singleJunction) IsConnected(laneID string) bool { return false }
func (j *singleJunction) Junctions() []entity.IJunction { return []entity.IJunction{j} }
func (j *singleJunction) Len() int { return 1 }
func (j *singleJunction) Get(int32) entity.IJunction { return j }
func (j *singleJunction) GetOrError(int32) (entity.IJunction, error) { return j, nil }
func (j *singleJunction) Nearest(pos orb.Point, radius float64) (entity.IJunction, bool) {
	return j, planar.Distance(pos, j.position) <= radius
}

func atProgress(a *Agent, progress float64) {
	a.runtime.Progress = progress
	a.runtime.Position = a.runtime.Lane.PositionAt(progress)
}

func TestTurnSkipped(t *testing.T) {
	m, lm := newTestManager(t, entity.Vehicle, testPopulation())
	a := place(m, lm.Get("h_1_right"), .3)

	// 窗口外
	assert.Equal(t, TurnSkipped, a.evaluateTurn(false))
	assert.False(t, a.AtIntersection())

	// 冷却中
	atProgress(a, .5)
	a.runtime.TurnCooldown = 1
	assert.Equal(t, TurnSkipped, a.evaluateTurn(false))

	// 窗口为开区间
	a.runtime.TurnCooldown = 0
	atProgress(a, .4)
	assert.Equal(t, TurnSkipped, a.evaluateTurn(false))

	// 强制判定也需要路口在触发半径内
	atProgress(a, .3)
	assert.Equal(t, TurnSkipped, a.evaluateTurn(true))
	assert.Equal(t, "h_1_right", a.Lane().ID())
}

func TestTurnStraight(t *testing.T) {
	cfg := testPopulation()
	cfg.Turn.Probability = 0
	m, lm := newTestManager(t, entity.Vehicle, cfg)
	a := place(m, lm.Get("h_1_right"), .5)

	assert.Equal(t, TurnStraight, a.evaluateTurn(false))
	assert.Equal(t, "h_1_right", a.Lane().ID())
	assert.True(t, a.AtIntersection())
	assert.Equal(t, cfg.Turn.Cooldown, a.TurnCooldown())

	// 同一路口只判定一次
	a.runtime.TurnCooldown = 0
	assert.Equal(t, TurnSkipped, a.evaluateTurn(false))

	// 离开触发半径后清除
	a.refreshIntersection()
	assert.True(t, a.AtIntersection())
	atProgress(a, .8)
	a.refreshIntersection()
	assert.False(t, a.AtIntersection())
}

func TestTurnTurned(t *testing.T) {
	cfg := testPopulation()
	cfg.Turn.Probability = 1
	m, lm := newTestManager(t, entity.Vehicle, cfg)
	from := lm.Get("h_1_right")
	a := place(m, from, .5)

	assert.Equal(t, TurnTurned, a.evaluateTurn(false))
	to := a.Lane()
	assert.Contains(t, []string{"h_1_left", "v_1_down", "v_1_up"}, to.ID())
	assert.True(t, lane.IsValidTurn(from, to))
	assert.Equal(t, 0., a.Progress())
	assert.Equal(t, to.Start(), a.Position())
	assert.InDelta(t, to.Heading(), a.Heading(), 1e-9)
	assert.Equal(t, cfg.Turn.Cooldown, a.TurnCooldown())

	assert.True(t, m.Occupancy().IsFree(from.ID()))
	assert.Equal(t, 1, m.Occupancy().Count(to.ID()))
	assert.Equal(t, 1, m.Occupancy().Total())
}

func TestTurnForced(t *testing.T) {
	cfg := testPopulation()
	cfg.Turn.Probability = 0
	m, lm := newTestManager(t, entity.Vehicle, cfg)
	a := place(m, lm.Get("h_1_right"), .45)
	a.runtime.TurnCooldown = 2
	a.runtime.AtIntersection = true

	// 忽略窗口、冷却、路口标记与概率
	assert.Equal(t, TurnTurned, a.evaluateTurn(true))
	assert.NotEqual(t, "h_1_right", a.Lane().ID())
}

func TestTurnPrefersFreeLane(t *testing.T) {
	cfg := testPopulation()
	cfg.Turn.Probability = 1
	m, lm := newTestManager(t, entity.Vehicle, cfg)
	m.Occupancy().Claim("h_1_left")
	m.Occupancy().Claim("v_1_down")

	for i := 0; i < 20; i++ {
		a := place(m, lm.Get("h_1_right"), .5)
		require.Equal(t, TurnTurned, a.evaluateTurn(false))
		assert.Equal(t, "v_1_up", a.Lane().ID())
		// 恢复占用情况
		m.Occupancy().Release("v_1_up")
	}
}

func TestTurnAllOccupied(t *testing.T) {
	cfg := testPopulation()
	cfg.Turn.Probability = 1
	m, lm := newTestManager(t, entity.Vehicle, cfg)
	for _, id := range []string{"h_1_left", "v_1_down", "v_1_up"} {
		m.Occupancy().Claim(id)
	}
	a := place(m, lm.Get("h_1_right"), .5)
	assert.Equal(t, TurnTurned, a.evaluateTurn(false))
	assert.Equal(t, 2, m.Occupancy().Count(a.Lane().ID()))
}

func TestTurnNoCandidate(t *testing.T) {
	cfg := testPopulation()
	cfg.Turn.Probability = 1
	m, lm := newTestManager(t, entity.Vehicle, cfg)
	current := lm.Get("h_1_right")
	a := place(m, current, .5)
	// 只连接当前车道与同向同标签车道
	m.junctions = &singleJunction{
		position: orb.Point{-7.5, -7.5},
		lanes:    []entity.ILane{current, lane.New("h_9_right", orb.Point{0, 50}, orb.Point{10, 50}, entity.Horizontal, lane.TagRight)},
	}

	assert.Equal(t, TurnNoCandidate, a.evaluateTurn(false))
	assert.Equal(t, "h_1_right", a.Lane().ID())
	// 未进入冷却
	assert.Equal(t, 0., a.TurnCooldown())
	assert.Equal(t, TurnNoCandidate, a.evaluateTurn(true))
}

func TestUpdateTurnsNearIntersection(t *testing.T) {
	cfg := testPopulation()
	cfg.Turn.Probability = 1
	m, lm := newTestManager(t, entity.Vehicle, cfg)
	a := place(m, lm.Get("h_1_right"), .49)

	outcome, turn := a.update(1, nil, nil)
	assert.Equal(t, Moved, outcome)
	assert.Equal(t, TurnTurned, turn)
	assert.Equal(t, 0., a.Progress())
}
