package container

import "github.com/samber/lo"

// IIncrementalItem 支持增量更新的元素接口
// 功能：元素记录自己在数组中的位置，删除时无需查找
type IIncrementalItem interface {
	Index() int         // 获取元素的索引
	SetIndex(index int) // 设置元素的索引
}

// IncrementalItemBase 增量元素基类，可嵌入结构体以实现IIncrementalItem
type IncrementalItemBase struct {
	index int // 元素在数组中的索引
}

// Index 获取元素的索引
func (b *IncrementalItemBase) Index() int {
	return b.index
}

// SetIndex 设置元素的索引
func (b *IncrementalItemBase) SetIndex(index int) {
	b.index = index
}

// IncrementalArray 增量数组
// 功能：一帧内的增删先进入缓冲区，Prepare时统一生效
// 说明：遍历Data()期间可以安全地Add/Remove，本帧遍历看到的始终是上一次Prepare后的内容；
// Prepare保持剩余元素的相对顺序，保证逐帧更新顺序稳定
type IncrementalArray[T IIncrementalItem] struct {
	data   []T // 主数据数组
	add    []T // 待添加的元素列表
	remove []T // 待删除的元素列表
}

// NewIncrementalArray 创建增量数组
func NewIncrementalArray[T IIncrementalItem]() *IncrementalArray[T] {
	return &IncrementalArray[T]{
		data:   make([]T, 0),
		add:    make([]T, 0),
		remove: make([]T, 0),
	}
}

// Len 获取当前数组长度（不含缓冲区）
func (a *IncrementalArray[T]) Len() int {
	return len(a.data)
}

// PendingLen 获取Prepare后的数组长度
func (a *IncrementalArray[T]) PendingLen() int {
	return len(a.data) + len(a.add) - len(a.remove)
}

// Data 获取当前数据
// 说明：返回的切片在下一次Prepare前有效，调用方不应修改
func (a *IncrementalArray[T]) Data() []T {
	return a.data
}

// Add 增加元素（等到Prepare时才会真正增加）
func (a *IncrementalArray[T]) Add(value T) {
	a.add = append(a.add, value)
}

// Remove 删除元素（等到Prepare时才会真正删除）
// 说明：只接受已经生效（位于Data()中）且尚未请求删除的元素，其余请求直接忽略，
// 因此PendingLen与Prepare后的长度始终一致
func (a *IncrementalArray[T]) Remove(value T) {
	if !a.contains(value) {
		return
	}
	if lo.ContainsBy(a.remove, func(x T) bool { return any(x) == any(value) }) {
		return
	}
	a.remove = append(a.remove, value)
}

// contains 元素是否位于当前数据中（按记录的索引判断）
func (a *IncrementalArray[T]) contains(value T) bool {
	ind := value.Index()
	return ind >= 0 && ind < len(a.data) && any(a.data[ind]) == any(value)
}

// Prepare 执行增量操作
// 算法说明：
// 1. 按索引标记待删除元素
// 2. 压缩主数组，保持剩余元素顺序
// 3. 追加待添加元素并重新编号
func (a *IncrementalArray[T]) Prepare() {
	if len(a.add) == 0 && len(a.remove) == 0 {
		return
	}
	removed := make(map[int]struct{}, len(a.remove))
	for _, x := range a.remove {
		removed[x.Index()] = struct{}{}
	}
	kept := a.data[:0]
	for i, x := range a.data {
		if _, ok := removed[i]; ok {
			continue
		}
		kept = append(kept, x)
	}
	kept = append(kept, a.add...)
	for i, x := range kept {
		x.SetIndex(i)
	}
	// 清理尾部残留引用
	var zero T
	for i := len(kept); i < len(a.data); i++ {
		a.data[i] = zero
	}
	a.data = kept
	a.add = a.add[:0]
	a.remove = a.remove[:0]
}
