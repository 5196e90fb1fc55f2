package junction

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/samber/lo"
	"github.com/yudono/gta/entity"
)

// Junction 路口
// 功能：横纵两条街道的交点，记录从该点经过的车道，agent在此处决定是否转向
type Junction struct {
	id         int32
	position   orb.Point
	horizontal entity.IRoad
	vertical   entity.IRoad

	lanes   []entity.ILane
	laneIDs map[string]struct{}
}

// newJunction 创建路口并计算相连车道
// 参数：id-路口ID，h/v-相交的横纵街道，lanes-候选车道，tolerance-横向容差
func newJunction(id int32, h, v entity.IRoad, lanes []entity.ILane, tolerance float64) *Junction {
	j := &Junction{
		id:         id,
		position:   orb.Point{v.Center(), h.Center()},
		horizontal: h,
		vertical:   v,
	}
	j.lanes = lo.Filter(lanes, func(l entity.ILane, _ int) bool {
		return passesThrough(l, j.position, tolerance)
	})
	j.laneIDs = lo.SliceToMap(j.lanes, func(l entity.ILane) (string, struct{}) {
		return l.ID(), struct{}{}
	})
	return j
}

// passesThrough 车道是否经过路口
// 说明：路口横向坐标与车道固定坐标之差不超过容差，且路口沿走向坐标落在车道范围内
func passesThrough(l entity.ILane, pos orb.Point, tolerance float64) bool {
	cross, along := pos.Y(), pos.X()
	if l.Direction() == entity.Vertical {
		cross, along = pos.X(), pos.Y()
	}
	from, to := l.AlongRange()
	return math.Abs(cross-l.FixedCoord()) <= tolerance && along >= from && along <= to
}

func (j *Junction) String() string {
	return fmt.Sprintf("Junction %d(%v x %v)", j.id, j.horizontal.Index(), j.vertical.Index())
}

// 获取Junction ID
func (j *Junction) ID() int32 {
	return j.id
}

func (j *Junction) Position() orb.Point {
	return j.position
}

// ConnectedLaneIDs 与路口相连的车道ID（有序）
func (j *Junction) ConnectedLaneIDs() []string {
	ids := lo.Keys(j.laneIDs)
	sort.Strings(ids)
	return ids
}

// ConnectedLanes 与路口相连的车道（生成顺序）
func (j *Junction) ConnectedLanes() []entity.ILane {
	return j.lanes
}

func (j *Junction) IsConnected(laneID string) bool {
	_, ok := j.laneIDs[laneID]
	return ok
}
