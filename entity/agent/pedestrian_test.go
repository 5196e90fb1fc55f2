package agent

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/yudono/gta/entity"
)

func TestPedestrianBehavior(t *testing.T) {
	cfg := testPopulation()
	m, lm := newTestManager(t, entity.Pedestrian, cfg)
	a := place(m, lm.Get("h_1_right"), .1)
	assert.Equal(t, entity.AnimationWalk, a.Animation())
	pos := a.Position()

	for _, c := range []struct {
		name      string
		reference *orb.Point
		mode      Mode
		animation entity.AnimationState
	}{
		{"none", nil, ModeIdle, entity.AnimationWalk},
		{"far", &orb.Point{pos.X() + 20, pos.Y()}, ModeIdle, entity.AnimationWalk},
		{"run", &orb.Point{pos.X() + 10, pos.Y()}, ModeFollow, entity.AnimationRun},
		{"walk", &orb.Point{pos.X() + 5, pos.Y()}, ModeFollow, entity.AnimationWalk},
		{"stop", &orb.Point{pos.X() + 1, pos.Y()}, ModeFollow, entity.AnimationIdle},
	} {
		a.updateBehavior(c.reference)
		assert.Equal(t, c.mode, a.Mode(), c.name)
		assert.Equal(t, c.animation, a.Animation(), c.name)
	}
}

func TestPedestrianBehaviorKeepsProgressRate(t *testing.T) {
	m, lm := newTestManager(t, entity.Pedestrian, testPopulation())
	l := lm.Get("h_1_right")
	a := place(m, l, .1)

	for _, c := range []struct {
		name      string
		offset    float64
		animation entity.AnimationState
	}{
		{"stop", 1, entity.AnimationIdle},
		{"walk", 5, entity.AnimationWalk},
		{"run", 10, entity.AnimationRun},
	} {
		before := a.Progress()
		reference := orb.Point{a.Position().X(), a.Position().Y() + c.offset}
		outcome, _ := a.update(1, &reference, nil)
		assert.Equal(t, Moved, outcome, c.name)
		assert.Equal(t, c.animation, a.Animation(), c.name)
		// 动画标签不影响进度
		assert.InDelta(t, 3*1*.01, a.Progress()-before, 1e-9, c.name)
		assert.Equal(t, l.PositionAt(a.Progress()), a.Position(), c.name)
	}
}
