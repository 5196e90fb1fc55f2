package lane

import (
	"sort"

	"github.com/samber/lo"
)

// OccupancyTracker 车道占用记录
// 功能：以车道ID为键记录被占用（或已使用）的车道，供生成和转向时分散agent
// 说明：使用计数而非集合，回退策略允许同一车道被多个agent占用时释放不会误清他人的占用；
// 释放未占用的车道只记录警告，不会让计数变为负数
type OccupancyTracker struct {
	name   string
	counts map[string]int
}

// NewOccupancyTracker 创建占用记录
// 参数：name-名称，用于日志
func NewOccupancyTracker(name string) *OccupancyTracker {
	return &OccupancyTracker{
		name:   name,
		counts: make(map[string]int),
	}
}

// Claim 占用车道
func (t *OccupancyTracker) Claim(id string) {
	t.counts[id]++
}

// Release 释放车道
// 返回：是否确实释放了一次占用
func (t *OccupancyTracker) Release(id string) bool {
	n, ok := t.counts[id]
	if !ok {
		log.Warnf("%s: release lane %s which is not claimed", t.name, id)
		return false
	}
	if n <= 1 {
		delete(t.counts, id)
	} else {
		t.counts[id] = n - 1
	}
	return true
}

// IsFree 车道是否未被占用
func (t *OccupancyTracker) IsFree(id string) bool {
	return t.counts[id] == 0
}

// Count 车道被占用的次数
func (t *OccupancyTracker) Count(id string) int {
	return t.counts[id]
}

// Len 被占用车道的数量
func (t *OccupancyTracker) Len() int {
	return len(t.counts)
}

// Total 所有占用次数之和
func (t *OccupancyTracker) Total() int {
	return lo.Sum(lo.Values(t.counts))
}

// Clear 清空全部占用
func (t *OccupancyTracker) Clear() {
	clear(t.counts)
}

// Claimed 被占用车道ID（有序）
func (t *OccupancyTracker) Claimed() []string {
	ids := lo.Keys(t.counts)
	sort.Strings(ids)
	return ids
}
