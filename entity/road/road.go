package road

import (
	"fmt"

	"github.com/yudono/gta/entity"
)

// Road 街道实体
// 功能：表示网格上的一条双向街道，是车道与路口生成的基础
// 说明：街道沿一条网格线贯穿整个城市，两侧车道由lane包按方案偏移生成
type Road struct {
	id        int32
	direction entity.Direction
	index     int     // 网格线索引
	center    float64 // 中心线固定坐标
	from, to  float64 // 沿走向的起止坐标
}

func newRoad(id int32, direction entity.Direction, index int, center, from, to float64) *Road {
	return &Road{
		id:        id,
		direction: direction,
		index:     index,
		center:    center,
		from:      from,
		to:        to,
	}
}

func (r *Road) String() string {
	return fmt.Sprintf("Road %d(%v #%d)", r.id, r.direction, r.index)
}

// 获取Road ID
func (r *Road) ID() int32 {
	return r.id
}

func (r *Road) Direction() entity.Direction {
	return r.direction
}

func (r *Road) Index() int {
	return r.index
}

func (r *Road) Center() float64 {
	return r.center
}

func (r *Road) Span() (from, to float64) {
	return r.from, r.to
}
