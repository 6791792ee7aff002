package pqheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number 是可以求平均值的数值类型
type Number interface {
	constraints.Integer | constraints.Float
}

// MedianValue 保存中位数两侧的值，元素个数为奇数时 Lo == Hi。
// 只有在需要对两个不同的值求平均时才会转换为浮点数，所以 int64 等大整数不会丢失精度。
type MedianValue[T Number] struct {
	Lo, Hi T
}

// Exact 在中位数恰好是一个已观察到的值时返回该值
func (m MedianValue[T]) Exact() (T, bool) {
	return m.Lo, m.Lo == m.Hi
}

// Float64 返回中位数的浮点表示，Lo != Hi 时为两者的平均数
func (m MedianValue[T]) Float64() float64 {
	if m.Lo == m.Hi {
		return float64(m.Lo)
	}
	return (float64(m.Lo) + float64(m.Hi)) / 2
}

func (m MedianValue[T]) String() string {
	if v, ok := m.Exact(); ok {
		return fmt.Sprint(v)
	}
	return fmt.Sprint(m.Float64())
}

// RunningMedian 用两个堆维护数据流的中位数：
// lower 是保存较小一半的大顶堆，upper 是保存较大一半的小顶堆，
// 两者大小之差不超过 1，且 lower 中的每个值都不大于 upper 中的任何值。
type RunningMedian[T Number] struct {
	lower *BinaryHeap[T, T]
	upper *BinaryHeap[T, T]
}

func NewRunningMedian[T Number]() *RunningMedian[T] {
	return &RunningMedian[T]{
		lower: New[T, T](MaxHeap),
		upper: New[T, T](MinHeap),
	}
}

// Len 返回已观察到的值的个数
func (m *RunningMedian[T]) Len() int {
	return m.lower.Len() + m.upper.Len()
}

// Observe 加入 v 并返回加入后的中位数，时间复杂度 O(log n)。
func (m *RunningMedian[T]) Observe(v T) MedianValue[T] {
	if top, ok := m.lower.Top(); !ok || v <= top {
		m.lower.Push(v, v)
	} else {
		m.upper.Push(v, v)
	}

	switch {
	case m.lower.Len()-m.upper.Len() > 1:
		move(m.lower, m.upper)
	case m.upper.Len()-m.lower.Len() > 1:
		move(m.upper, m.lower)
	}

	median, _ := m.Median()
	return median
}

// Median 返回当前中位数，还没有观察到任何值时第二个返回值为 false。
func (m *RunningMedian[T]) Median() (MedianValue[T], bool) {
	lo, hasLo := m.lower.Top()
	hi, hasHi := m.upper.Top()

	switch {
	case m.lower.Len() == m.upper.Len():
		if !hasLo || !hasHi {
			return MedianValue[T]{}, false
		}
		return MedianValue[T]{Lo: lo, Hi: hi}, true
	case m.lower.Len() > m.upper.Len():
		return MedianValue[T]{Lo: lo, Hi: lo}, true
	default:
		return MedianValue[T]{Lo: hi, Hi: hi}, true
	}
}

// RunningMedians 依次返回 values 每个前缀的中位数，结果与 values 等长。
func RunningMedians[T Number](values []T) []MedianValue[T] {
	m := NewRunningMedian[T]()
	out := make([]MedianValue[T], 0, len(values))
	for _, v := range values {
		out = append(out, m.Observe(v))
	}
	return out
}

func move[T Number](from, to *BinaryHeap[T, T]) {
	e, ok := from.Pop()
	if !ok {
		return
	}
	to.Push(e.Key, e.Value)
}
