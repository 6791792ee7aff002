package pqheap

import "golang.org/x/exp/constraints"

// HeapSort 返回 values 的升序副本，values 本身不会被修改。
// 每个值同时作为 Entry 的 Key 和 Value 放入大顶堆，依次弹出得到降序序列后再反转。
// 相等元素全部保留，但不保证稳定。
func HeapSort[T constraints.Ordered](values []T) []T {
	maxHeap := New[T, T](MaxHeap)
	for _, v := range values {
		maxHeap.Push(v, v)
	}

	out := make([]T, 0, maxHeap.Len())
	for !maxHeap.Empty() {
		e, _ := maxHeap.Pop()
		out = append(out, e.Key)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
