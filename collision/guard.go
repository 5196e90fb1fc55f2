// 碰撞检测：地面上的轴对齐包围盒与距离阈值检测，只返回是否碰撞，不计算响应
package collision

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/yudono/gta/entity"
)

// Checker 位置碰撞检测接口
type Checker interface {
	Collides(pos orb.Point) bool
}

// Neighbor 参与距离检测的其他agent（上一帧快照位置）
type Neighbor struct {
	ID       int32
	Position orb.Point
}

// Collides 检测半径为radius的圆（按正方形处理）是否与任一障碍物相交
// 说明：|dx| < width/2 + radius 且 |dz| < depth/2 + radius，命中第一个即返回
func Collides(pos orb.Point, obstacles []entity.Obstacle, radius float64) bool {
	for _, o := range obstacles {
		if math.Abs(pos.X()-o.X) < o.Width/2+radius &&
			math.Abs(pos.Y()-o.Z) < o.Depth/2+radius {
			return true
		}
	}
	return false
}

// Near 检测pos与others中任一点的距离是否小于minDistance
func Near(pos orb.Point, others []orb.Point, minDistance float64) bool {
	for _, p := range others {
		if planar.Distance(pos, p) < minDistance {
			return true
		}
	}
	return false
}

// Guard 碰撞检测器
// 功能：绑定静态障碍物与agent半径，可选地附加其他agent的快照位置
type Guard struct {
	obstacles []entity.Obstacle
	radius    float64

	neighbors   []Neighbor
	minDistance float64
}

// NewGuard 创建只检测静态障碍物的检测器
func NewGuard(obstacles []entity.Obstacle, radius float64) *Guard {
	return &Guard{
		obstacles: obstacles,
		radius:    radius,
	}
}

// WithAgents 返回附加了其他agent距离检测的检测器副本
func (g *Guard) WithAgents(neighbors []Neighbor, minDistance float64) *Guard {
	c := *g
	c.neighbors = neighbors
	c.minDistance = minDistance
	return &c
}

// Collides 仅检测静态障碍物
func (g *Guard) Collides(pos orb.Point) bool {
	if g == nil {
		return false
	}
	return Collides(pos, g.obstacles, g.radius)
}

// For 返回给编号为id的agent使用的检测器，距离检测忽略其自身
func (g *Guard) For(id int32) Checker {
	return agentChecker{g: g, self: id}
}

type agentChecker struct {
	g    *Guard
	self int32
}

func (c agentChecker) Collides(pos orb.Point) bool {
	if c.g == nil {
		return false
	}
	if c.g.Collides(pos) {
		return true
	}
	for _, n := range c.g.neighbors {
		if n.ID != c.self && planar.Distance(pos, n.Position) < c.g.minDistance {
			return true
		}
	}
	return false
}
