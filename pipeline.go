package pqheap

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// Emit 启动一个 goroutine 将 values 依次发送到返回的 channel 中。
func Emit[T any](ctx context.Context, eg *errgroup.Group, values []T) <-chan T {
	ch := make(chan T)

	eg.Go(func() error {
		defer func() { close(ch); logger.Debug("emitter exits", "count", len(values)) }()
		for _, v := range values {
			select {
			case ch <- v:
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "emitter")
			}
		}
		return nil
	})

	return ch
}

// SortStage 将输入流中的数据放入小顶堆，输入结束后按升序输出
func SortStage[T constraints.Ordered](ctx context.Context, eg *errgroup.Group, input <-chan T) <-chan T {
	ch := make(chan T)

	eg.Go(func() error {
		defer func() { close(ch); logger.Debug("sorter exits") }()
		minHeap := New[T, T](MinHeap)
		for v := range input {
			logger.Debug("sorter got input", "value", v)
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "sorter")
			default:
				minHeap.Push(v, v)
			}
		}

		for !minHeap.Empty() {
			e, _ := minHeap.Pop()
			select {
			case ch <- e.Key:
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "sorter")
			}
		}

		return nil
	})

	return ch
}

// MedianStage 每收到一个值就输出一次当前的中位数
func MedianStage[T Number](ctx context.Context, eg *errgroup.Group, input <-chan T) <-chan MedianValue[T] {
	ch := make(chan MedianValue[T])

	eg.Go(func() error {
		defer func() { close(ch); logger.Debug("median tracker exits") }()
		m := NewRunningMedian[T]()
		for v := range input {
			median := m.Observe(v)
			logger.Debug("median updated", "value", v, "median", median.String(), "count", m.Len())
			select {
			case ch <- median:
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "median tracker")
			}
		}
		return nil
	})

	return ch
}

// Collect 读取 input 中的全部数据，返回的切片在 eg.Wait 返回之后才可以读取。
func Collect[T any](ctx context.Context, eg *errgroup.Group, input <-chan T) *[]T {
	out := new([]T)

	eg.Go(func() error {
		defer logger.Debug("collector exits")
		for {
			select {
			case v, ok := <-input:
				if !ok {
					return nil
				}
				*out = append(*out, v)
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "collector")
			}
		}
	})

	return out
}
