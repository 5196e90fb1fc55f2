package lane

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/utils/config"
)

// LaneManager Lane管理器
// 功能：按车道方案为所有街道生成一组车道（车行道或人行道），提供按ID查找
// 说明：同一方案内车道ID唯一；不同方案通过前缀区分
type LaneManager struct {
	scheme config.LaneScheme

	data  map[string]*Lane
	lanes []entity.ILane
}

// NewManager 创建Lane管理器实例
// 参数：scheme-车道方案，Offset必须已解析为正数
func NewManager(scheme config.LaneScheme) *LaneManager {
	if scheme.Offset <= 0 {
		log.Panicf("lane scheme %+v: offset must be positive", scheme)
	}
	return &LaneManager{
		scheme: scheme,
		data:   make(map[string]*Lane),
		lanes:  make([]entity.ILane, 0),
	}
}

// Init 为每条街道生成两条相向车道
// 功能：横向街道生成right/left，纵向街道生成down/up，分别偏移±Offset
// 参数：roads-所有街道
// 说明：ID由方案前缀、走向、网格索引与方向标签构成，出现重复ID视为程序错误
func (m *LaneManager) Init(roads []entity.IRoad) {
	m.lanes = make([]entity.ILane, 0, 2*len(roads))
	m.data = make(map[string]*Lane, 2*len(roads))
	for _, r := range roads {
		tags := [2]string{TagRight, TagLeft}
		if r.Direction() == entity.Vertical {
			tags = [2]string{TagDown, TagUp}
		}
		for _, tag := range tags {
			l := newRoadLane(r, m.scheme.Prefix, tag, m.scheme.Offset)
			if _, ok := m.data[l.id]; ok {
				log.Panicf("duplicate lane id %s", l.id)
			}
			m.data[l.id] = l
			m.lanes = append(m.lanes, l)
		}
	}
	log.Debugf("scheme %q: generated %d lanes", m.scheme.Prefix, len(m.lanes))
}

// Scheme 车道方案
func (m *LaneManager) Scheme() config.LaneScheme {
	return m.scheme
}

// Lanes 所有车道（生成顺序）
func (m *LaneManager) Lanes() []entity.ILane {
	return m.lanes
}

func (m *LaneManager) Len() int {
	return len(m.lanes)
}

// IDs 所有车道ID
func (m *LaneManager) IDs() []string {
	return lo.Map(m.lanes, func(l entity.ILane, _ int) string { return l.ID() })
}

// Get 根据ID获取Lane实例，如果不存在则panic
func (m *LaneManager) Get(id string) entity.ILane {
	if lane, ok := m.data[id]; !ok {
		log.Panicf("no id %s in lane data", id)
		return nil
	} else {
		return lane
	}
}

// GetOrError 根据ID获取Lane实例，如果不存在则返回错误
func (m *LaneManager) GetOrError(id string) (entity.ILane, error) {
	if lane, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %s in lane data", id)
	} else {
		return lane, nil
	}
}
