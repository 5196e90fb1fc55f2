package lane_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yudono/gta/entity/lane"
)

func TestOccupancy(t *testing.T) {
	o := lane.NewOccupancyTracker("test")
	assert.True(t, o.IsFree("a"))

	o.Claim("a")
	o.Claim("a")
	o.Claim("b")
	assert.False(t, o.IsFree("a"))
	assert.Equal(t, 2, o.Count("a"))
	assert.Equal(t, 2, o.Len())
	assert.Equal(t, 3, o.Total())
	assert.Equal(t, []string{"a", "b"}, o.Claimed())

	// 释放一次后仍被另一个agent占用
	assert.True(t, o.Release("a"))
	assert.False(t, o.IsFree("a"))
	assert.True(t, o.Release("a"))
	assert.True(t, o.IsFree("a"))

	// 重复释放不会使计数为负
	assert.False(t, o.Release("a"))
	assert.Equal(t, 0, o.Count("a"))
	o.Claim("a")
	assert.False(t, o.IsFree("a"))

	o.Clear()
	assert.Zero(t, o.Len())
	assert.True(t, o.IsFree("b"))
}
