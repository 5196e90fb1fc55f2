package entity

import (
	"fmt"

	"github.com/paulmach/orb"
)

// 车道方向
type Direction int

const (
	Horizontal Direction = iota // 沿x方向，z固定
	Vertical                    // 沿z方向，x固定
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// agent类别
type AgentKind int

const (
	Vehicle AgentKind = iota
	Pedestrian
)

func (k AgentKind) String() string {
	switch k {
	case Vehicle:
		return "vehicle"
	case Pedestrian:
		return "pedestrian"
	}
	return fmt.Sprintf("AgentKind(%d)", int(k))
}

// 提供给外部动画层的状态标签，仅行人有意义
type AnimationState int

const (
	AnimationNone AnimationState = iota
	AnimationIdle
	AnimationWalk
	AnimationRun
)

func (s AnimationState) String() string {
	switch s {
	case AnimationNone:
		return ""
	case AnimationIdle:
		return "Idle"
	case AnimationWalk:
		return "Walk"
	case AnimationRun:
		return "Run"
	}
	return fmt.Sprintf("AnimationState(%d)", int(s))
}

// Obstacle 静态障碍物（建筑）在地面上的轴对齐矩形
// 说明：(X, Z)为中心，Width沿x，Depth沿z
type Obstacle struct {
	X     float64
	Z     float64
	Width float64
	Depth float64
}

// Bound 转换为orb.Bound（地面坐标orb.Point{x, z}）
func (o Obstacle) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{o.X - o.Width/2, o.Z - o.Depth/2},
		Max: orb.Point{o.X + o.Width/2, o.Z + o.Depth/2},
	}
}

// AgentMotion 每帧输出给外部可视化层的agent状态
type AgentMotion struct {
	ID        int32
	Kind      AgentKind
	Position  orb.Point // 地面坐标{x, z}
	Heading   float64   // 偏航角，atan2(dx, dz)
	Animation AnimationState
	LaneID    string
	Progress  float64
}

// entity/road/road.go的依赖倒置
type IRoad interface {
	String() string

	ID() int32                // 获取Road ID
	Direction() Direction     // 街道走向
	Index() int               // 所在网格线索引
	Center() float64          // 中心线的固定坐标（横向街道为z，纵向街道为x）
	Span() (from, to float64) // 沿走向的起止坐标
}

// entity/lane/lane.go的依赖倒置
type ILane interface {
	String() string

	ID() string           // 获取Lane ID
	Start() orb.Point     // 起点
	End() orb.Point       // 终点
	Direction() Direction // 方向
	Tag() string          // 方向标签（right/left/down/up）
	Length() float64      // 长度
	ParentRoad() IRoad    // 所在街道
	FixedCoord() float64  // 横向固定坐标（横向车道为z，纵向车道为x）

	// 沿走向的坐标范围
	AlongRange() (lo, hi float64)
	// progress对应的位置，不截断，progress>1时沿车道方向外推
	PositionAt(progress float64) orb.Point
	// 由起点到终点向量计算的偏航角
	Heading() float64
	// 点到线段距离
	DistanceTo(p orb.Point) float64
	// 位于圆内的progress区间（已截断到[0,1]）
	SpanWithin(center orb.Point, radius float64) (lo, hi float64, ok bool)
}

// entity/junction/junction.go的依赖倒置
type IJunction interface {
	String() string

	ID() int32                  // 获取Junction ID
	Position() orb.Point        // 路口中心
	ConnectedLaneIDs() []string // 与路口相连的车道ID（有序）
	ConnectedLanes() []ILane    // 与路口相连的车道
	IsConnected(laneID string) bool
}
