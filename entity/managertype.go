package entity

import "github.com/paulmach/orb"

// Manager依赖倒置

// entity/road/manager.go的依赖倒置
type IRoadManager interface {
	Roads() []IRoad      // 所有街道
	Horizontal() []IRoad // 横向街道（按网格索引排序）
	Vertical() []IRoad   // 纵向街道（按网格索引排序）
	Coord(index int) float64
	IsStreet(index int) bool

	// 输入Road ID，查找Road，如果不存在则panic
	Get(id int32) IRoad
	// 输入Road ID，查找Road，如果不存在则返回error
	GetOrError(id int32) (IRoad, error)
}

// entity/lane/manager.go的依赖倒置
type ILaneManager interface {
	Lanes() []ILane // 所有车道（生成顺序）
	Len() int

	// 输入Lane ID，查找Lane，如果不存在则panic
	Get(id string) ILane
	// 输入Lane ID，查找Lane，如果不存在则返回error
	GetOrError(id string) (ILane, error)
}

// entity/junction/manager.go的依赖倒置
type IJunctionManager interface {
	Junctions() []IJunction
	Len() int

	// 输入Junction ID，查找Junction，如果不存在则panic
	Get(id int32) IJunction
	// 输入Junction ID，查找Junction，如果不存在则返回error
	GetOrError(id int32) (IJunction, error)
	// 查找radius内最近的路口
	Nearest(pos orb.Point, radius float64) (IJunction, bool)
}

// entity/building/manager.go的依赖倒置
type IBuildingManager interface {
	Obstacles() []Obstacle // 所有建筑占地
	Bound() orb.Bound      // 城市中建筑的总体范围
	Len() int
}
