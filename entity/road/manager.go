package road

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/utils/config"
)

// RoadManager Road管理器
// 功能：由城市网格参数生成所有街道，提供查找与网格坐标换算
type RoadManager struct {
	city       config.City
	halfExtent float64

	data       map[int32]*Road
	roads      []*Road
	horizontal []entity.IRoad
	vertical   []entity.IRoad
}

// NewManager 创建Road管理器实例
func NewManager() *RoadManager {
	return &RoadManager{
		data:       make(map[int32]*Road),
		roads:      make([]*Road, 0),
		horizontal: make([]entity.IRoad, 0),
		vertical:   make([]entity.IRoad, 0),
	}
}

// Init 根据城市网格生成街道
// 功能：对索引满足 i % StreetEvery == StreetResidue 的每条网格行/列各生成一条街道
// 参数：city-城市网格参数
// 说明：先生成全部横向街道（按行号），再生成纵向街道（按列号），ID依次递增；
// 每条街道沿走向覆盖网格索引0到GridSize-1
func (m *RoadManager) Init(city config.City) {
	m.city = city
	m.halfExtent = float64(city.GridSize) * city.BlockSize / 2
	m.roads = m.roads[:0]
	m.horizontal = m.horizontal[:0]
	m.vertical = m.vertical[:0]
	from, to := m.Coord(0), m.Coord(city.GridSize-1)
	id := int32(0)
	for _, direction := range []entity.Direction{entity.Horizontal, entity.Vertical} {
		for i := 0; i < city.GridSize; i++ {
			if !m.IsStreet(i) {
				continue
			}
			r := newRoad(id, direction, i, m.Coord(i), from, to)
			id++
			m.roads = append(m.roads, r)
			if direction == entity.Horizontal {
				m.horizontal = append(m.horizontal, r)
			} else {
				m.vertical = append(m.vertical, r)
			}
		}
	}
	m.data = lo.SliceToMap(m.roads, func(r *Road) (int32, *Road) {
		return r.id, r
	})
	log.Debugf("generated %d horizontal and %d vertical roads", len(m.horizontal), len(m.vertical))
}

// Coord 网格索引对应的世界坐标（城市以原点为中心）
func (m *RoadManager) Coord(index int) float64 {
	return float64(index)*m.city.BlockSize - m.halfExtent
}

// IsStreet 网格线index上是否有街道
func (m *RoadManager) IsStreet(index int) bool {
	return index%m.city.StreetEvery == m.city.StreetResidue
}

func (m *RoadManager) Roads() []entity.IRoad {
	return lo.Map(m.roads, func(r *Road, _ int) entity.IRoad { return r })
}

func (m *RoadManager) Horizontal() []entity.IRoad {
	return m.horizontal
}

func (m *RoadManager) Vertical() []entity.IRoad {
	return m.vertical
}

// Get 根据ID获取Road实例，如果不存在则panic
func (m *RoadManager) Get(id int32) entity.IRoad {
	if r, ok := m.data[id]; !ok {
		log.Panicf("no id %d in road data", id)
		return nil
	} else {
		return r
	}
}

// GetOrError 根据ID获取Road实例，如果不存在则返回错误
func (m *RoadManager) GetOrError(id int32) (entity.IRoad, error) {
	if r, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in road data", id)
	} else {
		return r, nil
	}
}
