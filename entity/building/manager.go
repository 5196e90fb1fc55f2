package building

import (
	"git.fiblab.net/general/common/v2/parallel"
	"github.com/paulmach/orb"
	"github.com/samber/lo"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/utils/config"
)

// BuildingManager 建筑管理器
// 功能：为城市中所有非街道网格单元生成建筑，提供静态障碍物列表
type BuildingManager struct {
	buildings []*Building
	obstacles []entity.Obstacle
	bound     orb.Bound
}

// NewManager 创建建筑管理器实例
func NewManager() *BuildingManager {
	return &BuildingManager{
		buildings: make([]*Building, 0),
		obstacles: make([]entity.Obstacle, 0),
	}
}

// Init 生成所有建筑
// 功能：遍历网格，行列均不在街道上的单元各生成一栋建筑
// 参数：city-城市参数，roadManager-街道管理器（提供网格坐标与街道判定），seed-城市种子
// 说明：每栋建筑使用自己的随机数引擎，并行生成结果与并行顺序无关
func (m *BuildingManager) Init(city config.City, roadManager entity.IRoadManager, seed uint64) {
	cells := make([]cell, 0)
	id := int32(0)
	for row := 0; row < city.GridSize; row++ {
		if roadManager.IsStreet(row) {
			continue
		}
		for col := 0; col < city.GridSize; col++ {
			if roadManager.IsStreet(col) {
				continue
			}
			cells = append(cells, cell{
				id:     id,
				row:    row,
				col:    col,
				center: orb.Point{roadManager.Coord(col), roadManager.Coord(row)},
			})
			id++
		}
	}
	m.buildings = parallel.GoMap(cells, func(c cell) *Building {
		return newBuilding(c, city, seed)
	})
	m.obstacles = lo.Map(m.buildings, func(b *Building, _ int) entity.Obstacle {
		return b.footprint
	})
	if len(m.obstacles) > 0 {
		m.bound = m.obstacles[0].Bound()
		for _, o := range m.obstacles[1:] {
			m.bound = m.bound.Union(o.Bound())
		}
	}
	log.Debugf("generated %d buildings within %v", len(m.buildings), m.bound)
}

// Obstacles 所有建筑占地
func (m *BuildingManager) Obstacles() []entity.Obstacle {
	return m.obstacles
}

// Bound 所有建筑的总体范围
func (m *BuildingManager) Bound() orb.Bound {
	return m.bound
}

func (m *BuildingManager) Len() int {
	return len(m.buildings)
}

// Buildings 所有建筑
func (m *BuildingManager) Buildings() []*Building {
	return m.buildings
}
