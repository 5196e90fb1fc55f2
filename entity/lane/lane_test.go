package lane_test

import (
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/entity/lane"
	"github.com/yudono/gta/entity/road"
	"github.com/yudono/gta/utils/config"
)

func newLanes(t *testing.T, scheme config.LaneScheme) *lane.LaneManager {
	t.Helper()
	rm := road.NewManager()
	rm.Init(config.Default().City)
	m := lane.NewManager(scheme)
	m.Init(rm.Roads())
	return m
}

func TestLaneGenerate(t *testing.T) {
	m := newLanes(t, config.LaneScheme{Offset: .6})

	// 2*13 + 2*13
	assert.Equal(t, 52, m.Len())
	ids := m.IDs()
	assert.Len(t, lo.Uniq(ids), len(ids))

	l := m.Get("h_4_right")
	assert.Equal(t, entity.Horizontal, l.Direction())
	assert.Equal(t, lane.TagRight, l.Tag())
	assert.InDelta(t, -300, l.Start().X(), 1e-9)
	assert.InDelta(t, -239.4, l.Start().Y(), 1e-9)
	assert.InDelta(t, 285, l.End().X(), 1e-9)
	assert.InDelta(t, -239.4, l.End().Y(), 1e-9)
	assert.InDelta(t, 585, l.Length(), 1e-9)
	assert.Equal(t, 4, l.ParentRoad().Index())

	_, err := m.GetOrError("h_5_right")
	assert.Error(t, err)
	assert.Panics(t, func() { m.Get("h_5_right") })
}

func TestLaneOffsetsSymmetric(t *testing.T) {
	m := newLanes(t, config.LaneScheme{Offset: .6})
	for _, l := range m.Lanes() {
		if l.Direction() != entity.Horizontal || l.Tag() != lane.TagRight {
			continue
		}
		other := m.Get(strings.TrimSuffix(l.ID(), lane.TagRight) + lane.TagLeft)
		center := l.ParentRoad().Center()
		assert.InDelta(t, l.FixedCoord()-center, center-other.FixedCoord(), 1e-9, l.ID())
		assert.Greater(t, l.FixedCoord(), other.FixedCoord())
	}
}

func TestLaneDirections(t *testing.T) {
	m := newLanes(t, config.LaneScheme{Offset: .6})

	right, left := m.Get("h_1_right"), m.Get("h_1_left")
	assert.Greater(t, right.End().X(), right.Start().X())
	assert.Less(t, left.End().X(), left.Start().X())
	assert.InDelta(t, math.Pi/2, right.Heading(), 1e-9)
	assert.InDelta(t, -math.Pi/2, left.Heading(), 1e-9)

	down, up := m.Get("v_1_down"), m.Get("v_1_up")
	assert.Greater(t, down.End().Y(), down.Start().Y())
	assert.Less(t, up.End().Y(), up.Start().Y())
	assert.InDelta(t, 0, down.Heading(), 1e-9)
	assert.InDelta(t, math.Pi, math.Abs(up.Heading()), 1e-9)
	assert.Less(t, down.FixedCoord(), up.FixedCoord())
}

func TestSidewalkScheme(t *testing.T) {
	m := newLanes(t, config.LaneScheme{Prefix: "sw_", Offset: 2.5})
	assert.Equal(t, 52, m.Len())
	l := m.Get("sw_h_4_right")
	assert.InDelta(t, -237.5, l.FixedCoord(), 1e-9)
	assert.True(t, lo.EveryBy(m.IDs(), func(id string) bool { return id[:3] == "sw_" }))

	assert.Panics(t, func() { lane.NewManager(config.LaneScheme{}) })
}

func TestPositionAt(t *testing.T) {
	l := lane.New("test", orb.Point{0, 0}, orb.Point{100, 0}, entity.Horizontal, lane.TagRight)
	assert.InDelta(t, 3, l.PositionAt(.03).X(), 1e-9)
	assert.Zero(t, l.PositionAt(.03).Y())
	assert.Equal(t, orb.Point{0, 0}, l.PositionAt(0))
	assert.Equal(t, orb.Point{100, 0}, l.PositionAt(1))
	// 不截断
	assert.InDelta(t, 110, l.PositionAt(1.1).X(), 1e-9)
	assert.InDelta(t, 5, l.DistanceTo(orb.Point{50, 5}), 1e-9)
	assert.InDelta(t, 5, l.DistanceTo(orb.Point{-3, 4}), 1e-9)
}

func TestSpanWithin(t *testing.T) {
	l := lane.New("test", orb.Point{0, 0}, orb.Point{100, 0}, entity.Horizontal, lane.TagRight)

	from, to, ok := l.SpanWithin(orb.Point{50, 0}, 10)
	require.True(t, ok)
	assert.InDelta(t, .4, from, 1e-9)
	assert.InDelta(t, .6, to, 1e-9)

	// 截断到[0,1]
	from, to, ok = l.SpanWithin(orb.Point{0, 6}, 10)
	require.True(t, ok)
	assert.InDelta(t, 0, from, 1e-9)
	assert.InDelta(t, .08, to, 1e-9)

	_, _, ok = l.SpanWithin(orb.Point{50, 20}, 10)
	assert.False(t, ok)
	_, _, ok = l.SpanWithin(orb.Point{200, 0}, 10)
	assert.False(t, ok)
}

func TestIsValidTurn(t *testing.T) {
	m := newLanes(t, config.LaneScheme{Offset: .6})
	for _, from := range m.Lanes() {
		for _, to := range m.Lanes() {
			want := from.Direction() != to.Direction() || from.Tag() != to.Tag()
			assert.Equal(t, want, lane.IsValidTurn(from, to), "%s -> %s", from.ID(), to.ID())
		}
	}
	assert.False(t, lane.IsValidTurn(m.Get("h_1_right"), m.Get("h_4_right")))
	assert.True(t, lane.IsValidTurn(m.Get("h_1_right"), m.Get("h_1_left")))
	assert.True(t, lane.IsValidTurn(m.Get("h_1_right"), m.Get("v_1_up")))
}
