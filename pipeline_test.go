package pqheap

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSortStage(t *testing.T) {
	eg, ctx := errgroup.WithContext(context.Background())
	out := Collect(ctx, eg, SortStage(ctx, eg, Emit(ctx, eg, []int{5, 3, 8, 1, 9, 2})))

	require.NoError(t, eg.Wait())
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, *out)
}

func TestMedianStage(t *testing.T) {
	in := []int{5, 2, 8, 1, 7, 7, 0}

	eg, ctx := errgroup.WithContext(context.Background())
	out := Collect(ctx, eg, MedianStage(ctx, eg, Emit(ctx, eg, in)))

	require.NoError(t, eg.Wait())
	assert.Equal(t, RunningMedians(in), *out)
}

func TestSortedMedianStage(t *testing.T) {
	// 先排序再求中位数，结果与直接对排序后的序列求中位数一致
	in := []int{9, 4, 6, 1, 3}

	eg, ctx := errgroup.WithContext(context.Background())
	out := Collect(ctx, eg, MedianStage(ctx, eg, SortStage(ctx, eg, Emit(ctx, eg, in))))

	require.NoError(t, eg.Wait())
	assert.Equal(t, []float64{1, 2, 3, 3.5, 4}, floats(*out))
}

func TestEmptyStream(t *testing.T) {
	eg, ctx := errgroup.WithContext(context.Background())
	out := Collect(ctx, eg, SortStage(ctx, eg, Emit[int](ctx, eg, nil)))

	require.NoError(t, eg.Wait())
	assert.Empty(t, *out)
}

func TestPipelineCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	cancel()

	eg, ctx := errgroup.WithContext(parent)
	// 没有消费者，Emit 只能因为 ctx 被取消而退出
	Emit(ctx, eg, []int{1, 2, 3})

	err := eg.Wait()
	require.Error(t, err)
	assert.Equal(t, context.Canceled, errors.Cause(err))
}

func TestPipelineCancelMidStream(t *testing.T) {
	t.Run("sorter draining", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		defer cancel()
		eg, ctx := errgroup.WithContext(parent)
		sorted := SortStage(ctx, eg, Emit(ctx, eg, []int{3, 1, 2}))

		// 收到第一个值说明输入已经读完，sorter 正在输出
		assert.Equal(t, 1, <-sorted)
		cancel()

		err := eg.Wait()
		require.Error(t, err)
		assert.Equal(t, context.Canceled, errors.Cause(err))
	})

	t.Run("median tracker", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		defer cancel()
		eg, ctx := errgroup.WithContext(parent)
		medians := MedianStage(ctx, eg, Emit(ctx, eg, []int{5, 2, 8, 1}))

		assert.Equal(t, MedianValue[int]{Lo: 5, Hi: 5}, <-medians)
		cancel()

		err := eg.Wait()
		require.Error(t, err)
		assert.Equal(t, context.Canceled, errors.Cause(err))
	})

	t.Run("collector blocked", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		eg, ctx := errgroup.WithContext(parent)
		out := Collect(ctx, eg, make(chan int))
		cancel()

		err := eg.Wait()
		require.Error(t, err)
		assert.Equal(t, context.Canceled, errors.Cause(err))
		assert.Empty(t, *out)
	})
}

func TestStageLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := logger
	SetLogger(NewLogger(&buf, true))
	defer SetLogger(prev)

	eg, ctx := errgroup.WithContext(context.Background())
	Collect(ctx, eg, SortStage(ctx, eg, Emit(ctx, eg, []int{2, 1})))
	require.NoError(t, eg.Wait())

	assert.Contains(t, buf.String(), "sorter exits")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	SetLogger(nil)
	assert.NotNil(t, logger)
}
