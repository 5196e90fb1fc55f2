package junction

import (
	"fmt"

	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/samber/lo"
	"github.com/yudono/gta/entity"
)

// JunctionManager Junction管理器
// 功能：在每对横纵街道的交点生成路口，并为一组车道计算路口连接关系
type JunctionManager struct {
	data      map[int32]*Junction
	junctions []entity.IJunction
}

// NewManager 创建Junction管理器实例
func NewManager() *JunctionManager {
	return &JunctionManager{
		data:      make(map[int32]*Junction),
		junctions: make([]entity.IJunction, 0),
	}
}

// Init 生成所有路口
// 功能：路口数 = 横向街道数 × 纵向街道数，按(行, 列)顺序编号
// 参数：roadManager-街道管理器，laneManager-车道管理器，tolerance-车道与路口的横向容差
func (m *JunctionManager) Init(roadManager entity.IRoadManager, laneManager entity.ILaneManager, tolerance float64) {
	lanes := laneManager.Lanes()
	m.junctions = make([]entity.IJunction, 0, len(roadManager.Horizontal())*len(roadManager.Vertical()))
	id := int32(0)
	for _, h := range roadManager.Horizontal() {
		for _, v := range roadManager.Vertical() {
			j := newJunction(id, h, v, lanes, tolerance)
			id++
			if len(j.lanes) == 0 {
				log.Warnf("%v has no connected lane, check tolerance %v", j, tolerance)
			}
			m.data[j.id] = j
			m.junctions = append(m.junctions, j)
		}
	}
	log.Debugf("generated %d junctions", len(m.junctions))
}

func (m *JunctionManager) Junctions() []entity.IJunction {
	return m.junctions
}

func (m *JunctionManager) Len() int {
	return len(m.junctions)
}

// Get 根据ID获取Junction实例，如果不存在则panic
func (m *JunctionManager) Get(id int32) entity.IJunction {
	if j, ok := m.data[id]; !ok {
		log.Panicf("no id %d in junction data", id)
		return nil
	} else {
		return j
	}
}

// GetOrError 根据ID获取Junction实例，如果不存在则返回错误
func (m *JunctionManager) GetOrError(id int32) (entity.IJunction, error) {
	if j, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in junction data", id)
	} else {
		return j, nil
	}
}

// Nearest 查找radius内最近的路口
// 返回：路口与是否找到
func (m *JunctionManager) Nearest(pos orb.Point, radius float64) (entity.IJunction, bool) {
	var best entity.IJunction
	bestD := mathutil.INF
	for _, j := range m.junctions {
		if d := planar.Distance(pos, j.Position()); d <= radius && d < bestD {
			best, bestD = j, d
		}
	}
	return best, best != nil
}

// ConnectionCounts 每个路口相连车道数的分布（车道数 -> 路口数）
func (m *JunctionManager) ConnectionCounts() map[int]int {
	return lo.CountValuesBy(m.junctions, func(j entity.IJunction) int {
		return len(j.ConnectedLanes())
	})
}
