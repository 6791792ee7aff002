package pqheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Entry 是堆中排序的基本单元，先比较 Key，Key 相同时再比较 Value。
type Entry[K, V constraints.Ordered] struct {
	Key   K
	Value V
}

// Less 判断 e 是否严格小于 o
func (e Entry[K, V]) Less(o Entry[K, V]) bool {
	return e.Key < o.Key || (e.Key == o.Key && e.Value < o.Value)
}

// Greater 判断 e 是否严格大于 o
func (e Entry[K, V]) Greater(o Entry[K, V]) bool {
	return e.Key > o.Key || (e.Key == o.Key && e.Value > o.Value)
}

func (e Entry[K, V]) Equal(o Entry[K, V]) bool {
	return e.Key == o.Key && e.Value == o.Value
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v,%v)", e.Key, e.Value)
}
