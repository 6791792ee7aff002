package pqheap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Mode 决定堆的排序方式，必须在构造时显式指定。
type Mode uint8

const (
	// MinHeap 堆顶为最小元素
	MinHeap Mode = iota + 1
	// MaxHeap 堆顶为最大元素
	MaxHeap
)

func (m Mode) String() string {
	switch m {
	case MinHeap:
		return "min"
	case MaxHeap:
		return "max"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// BinaryHeap 是基于切片的完全二叉树，下标 i 的子节点为 2i+1 和 2i+2。
// BinaryHeap 不是并发安全的，多个 goroutine 共享同一个堆时需要调用方自行加锁。
type BinaryHeap[K, V constraints.Ordered] struct {
	data []Entry[K, V]
	// before(a, b) 为 true 表示 a 应当比 b 更靠近堆顶
	before func(a, b Entry[K, V]) bool
	mode   Mode
}

// New 创建一个空堆，mode 非 MinHeap 或 MaxHeap 时 panic。
func New[K, V constraints.Ordered](mode Mode) *BinaryHeap[K, V] {
	h := &BinaryHeap[K, V]{mode: mode}
	switch mode {
	case MinHeap:
		h.before = func(a, b Entry[K, V]) bool { return a.Less(b) }
	case MaxHeap:
		h.before = func(a, b Entry[K, V]) bool { return a.Greater(b) }
	default:
		panic(fmt.Sprintf("pqheap: invalid heap mode %d", uint8(mode)))
	}
	return h
}

func (h *BinaryHeap[K, V]) Mode() Mode { return h.mode }

func (h *BinaryHeap[K, V]) Len() int { return len(h.data) }

func (h *BinaryHeap[K, V]) Empty() bool { return len(h.data) == 0 }

// Push 将 (key, value) 追加到末尾，然后向上调整。
func (h *BinaryHeap[K, V]) Push(key K, value V) {
	h.data = append(h.data, Entry[K, V]{Key: key, Value: value})
	h.up(len(h.data) - 1)
}

// Pop 移除并返回堆顶元素，堆为空时第二个返回值为 false。
func (h *BinaryHeap[K, V]) Pop() (Entry[K, V], bool) {
	if len(h.data) == 0 {
		var zero Entry[K, V]
		return zero, false
	}

	n := len(h.data) - 1
	h.swap(0, n)
	e := h.data[n]
	h.data[n] = Entry[K, V]{} // 释放对旧元素的引用
	h.data = h.data[:n]
	h.down(0)
	return e, true
}

// Top 返回堆顶元素的 Value，不修改堆。
func (h *BinaryHeap[K, V]) Top() (V, bool) {
	if len(h.data) == 0 {
		var zero V
		return zero, false
	}
	return h.data[0].Value, true
}

// String 按存储顺序（而非排序顺序）输出所有元素
func (h *BinaryHeap[K, V]) String() string {
	var sb strings.Builder
	for i, e := range h.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (i * 2) + 1 }
func right(i int) int  { return left(i) + 1 }

func (h *BinaryHeap[K, V]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *BinaryHeap[K, V]) up(j int) {
	for j > 0 {
		i := parent(j)
		if !h.before(h.data[j], h.data[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *BinaryHeap[K, V]) down(i int) {
	n := len(h.data)
	for {
		j1 := left(i)
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1
		// 左右子节点相等时选择右子节点
		if j2 := right(i); j2 < n && !h.before(h.data[j1], h.data[j2]) {
			j = j2
		}
		if !h.before(h.data[j], h.data[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
}
