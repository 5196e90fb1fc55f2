package lane

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/yudono/gta/entity"
)

// 车道方向标签
const (
	TagRight = "right" // 横向，沿+x
	TagLeft  = "left"  // 横向，沿-x
	TagDown  = "down"  // 纵向，沿+z
	TagUp    = "up"    // 纵向，沿-z
)

// Lane 车道实体
// 功能：有向线段，agent沿起点到终点前进；生成后不可变
type Lane struct {
	id         string
	start, end orb.Point
	direction  entity.Direction
	tag        string
	length     float64
	parentRoad entity.IRoad
}

// New 创建车道
// 参数：id-唯一ID，start/end-起终点（地面坐标{x, z}），direction-方向，tag-方向标签
func New(id string, start, end orb.Point, direction entity.Direction, tag string) *Lane {
	return &Lane{
		id:        id,
		start:     start,
		end:       end,
		direction: direction,
		tag:       tag,
		length:    planar.Distance(start, end),
	}
}

// newRoadLane 按方案在街道一侧生成车道
// 说明：横向街道right在z+offset、left在z-offset；纵向街道down在x-offset、up在x+offset
func newRoadLane(r entity.IRoad, prefix, tag string, offset float64) *Lane {
	from, to := r.Span()
	c := r.Center()
	var start, end orb.Point
	var id string
	switch r.Direction() {
	case entity.Horizontal:
		id = fmt.Sprintf("%sh_%d_%s", prefix, r.Index(), tag)
		switch tag {
		case TagRight:
			start, end = orb.Point{from, c + offset}, orb.Point{to, c + offset}
		case TagLeft:
			start, end = orb.Point{to, c - offset}, orb.Point{from, c - offset}
		default:
			log.Panicf("bad tag %s for horizontal road %v", tag, r)
		}
	case entity.Vertical:
		id = fmt.Sprintf("%sv_%d_%s", prefix, r.Index(), tag)
		switch tag {
		case TagDown:
			start, end = orb.Point{c - offset, from}, orb.Point{c - offset, to}
		case TagUp:
			start, end = orb.Point{c + offset, to}, orb.Point{c + offset, from}
		default:
			log.Panicf("bad tag %s for vertical road %v", tag, r)
		}
	}
	l := New(id, start, end, r.Direction(), tag)
	l.parentRoad = r
	return l
}

func (l *Lane) String() string {
	return fmt.Sprintf("Lane %s", l.id)
}

// 获取Lane ID
func (l *Lane) ID() string {
	if l == nil {
		return ""
	}
	return l.id
}

func (l *Lane) Start() orb.Point {
	return l.start
}

func (l *Lane) End() orb.Point {
	return l.end
}

func (l *Lane) Direction() entity.Direction {
	return l.direction
}

func (l *Lane) Tag() string {
	return l.tag
}

// 获取Lane长度
func (l *Lane) Length() float64 {
	return l.length
}

// 获取Lane所在的Road，直接用New创建的车道没有所在街道
func (l *Lane) ParentRoad() entity.IRoad {
	return l.parentRoad
}

// FixedCoord 横向固定坐标
func (l *Lane) FixedCoord() float64 {
	if l.direction == entity.Horizontal {
		return l.start.Y()
	}
	return l.start.X()
}

// AlongRange 沿走向的坐标范围
func (l *Lane) AlongRange() (lo, hi float64) {
	if l.direction == entity.Horizontal {
		lo, hi = l.start.X(), l.end.X()
	} else {
		lo, hi = l.start.Y(), l.end.Y()
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return
}

// PositionAt 将progress转换为位置
// 说明：线性插值，不做截断；progress>1时沿车道方向外推（即将被移除的agent驶出车道末端）
func (l *Lane) PositionAt(progress float64) orb.Point {
	return orb.Point{
		l.start.X() + (l.end.X()-l.start.X())*progress,
		l.start.Y() + (l.end.Y()-l.start.Y())*progress,
	}
}

// Heading 由起点到终点的向量计算偏航角
func (l *Lane) Heading() float64 {
	return math.Atan2(l.end.X()-l.start.X(), l.end.Y()-l.start.Y())
}

// DistanceTo 点到车道线段的距离
func (l *Lane) DistanceTo(p orb.Point) float64 {
	return planar.DistanceFromSegment(l.start, l.end, p)
}

// SpanWithin 计算车道位于圆内部分对应的progress区间
// 功能：求解 |start + t*(end-start) - center| <= radius，结果与[0,1]取交集
// 返回：区间与是否存在
func (l *Lane) SpanWithin(center orb.Point, radius float64) (lo, hi float64, ok bool) {
	dx, dz := l.end.X()-l.start.X(), l.end.Y()-l.start.Y()
	fx, fz := l.start.X()-center.X(), l.start.Y()-center.Y()
	a := dx*dx + dz*dz
	c := fx*fx + fz*fz - radius*radius
	if a == 0 {
		// 退化为点
		return 0, 1, c <= 0
	}
	b := 2 * (fx*dx + fz*dz)
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	lo = math.Max((-b-sq)/(2*a), 0)
	hi = math.Min((-b+sq)/(2*a), 1)
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// IsValidTurn 检查从from转到to是否为合法转向
// 说明：同方向车道仅当方向标签不同时合法（不允许重选同一车道）；不同方向总是合法
func IsValidTurn(from, to entity.ILane) bool {
	if from.Direction() == to.Direction() {
		return from.Tag() != to.Tag()
	}
	return true
}
